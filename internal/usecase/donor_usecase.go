package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// DonorCriteria selects the donors a request is matched against.
type DonorCriteria struct {
	BloodType  entity.BloodType // Empty matches every blood group.
	ActiveOnly bool             // Only donors holding a push token.
}

// DonorUsecase defines donor matching and listing.
type DonorUsecase interface {
	// ListDonors returns donor summaries to a hospital caller, optionally filtered by blood type.
	ListDonors(ctx context.Context, caller *entity.Caller, bloodType string) (*DonorListOutput, error)

	// MatchDonors returns the raw donor profiles satisfying the criteria.
	MatchDonors(ctx context.Context, criteria DonorCriteria) ([]*entity.Profile, error)
}

// DonorListOutput is the donor listing returned to hospitals.
type DonorListOutput struct {
	OK     bool                  `json:"ok"`
	Donors []entity.DonorSummary `json:"donors"`
	Count  int                   `json:"count"`
}
