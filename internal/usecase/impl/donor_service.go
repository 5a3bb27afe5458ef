package impl

import (
	"context"
	"log/slog"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
)

type donorService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewDonorService creates the donor matcher.
func NewDonorService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.DonorUsecase {
	return &donorService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListDonors returns donor summaries to a hospital caller.
func (srv *donorService) ListDonors(ctx context.Context, caller *entity.Caller, bloodType string) (*usecase.DonorListOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to get donors list.")
	}
	if !profile.Role.IsHospital() {
		return nil, domainerrors.ErrHospitalOnlyDonors
	}

	criteria := usecase.DonorCriteria{BloodType: filterBloodType(bloodType)}
	donors, err := srv.MatchDonors(ctx, criteria)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to get donors list.")
	}

	summaries := make([]entity.DonorSummary, 0, len(donors))
	for _, donor := range donors {
		summaries = append(summaries, entity.NewDonorSummary(donor))
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Donors listed",
		slog.String("hospital_id", uid),
		slog.String("blood_type", criteria.BloodType.String()),
		slog.Int("count", len(summaries)),
	)

	return &usecase.DonorListOutput{OK: true, Donors: summaries, Count: len(summaries)}, nil
}

// MatchDonors returns every donor profile satisfying the criteria. The whole matching set is loaded.
func (srv *donorService) MatchDonors(ctx context.Context, criteria usecase.DonorCriteria) ([]*entity.Profile, error) {
	donors, err := srv.profileRepo.FindDonors(ctx, repository.DonorQuery{
		BloodType:  criteria.BloodType,
		ActiveOnly: criteria.ActiveOnly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to match donors")
	}

	return donors, nil
}
