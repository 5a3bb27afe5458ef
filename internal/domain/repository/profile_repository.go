// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no activated profile exists for a user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPendingProfileNotFound is returned when no pending profile exists for a user.
	ErrPendingProfileNotFound = errors.New("pending profile not found")
)

// DonorQuery selects donor profiles.
type DonorQuery struct {
	// BloodType restricts results to one blood group when non-empty.
	BloodType entity.BloodType
	// ActiveOnly restricts results to donors holding a push token.
	ActiveOnly bool
}

// ProfileRepository defines the persistence operations for pending and activated profiles.
type ProfileRepository interface {
	// SavePending merges the pending profile into the staging record.
	SavePending(ctx context.Context, pending *entity.PendingProfile) error

	// SavePendingFCMToken stashes a push token on the staging record until activation.
	SavePendingFCMToken(ctx context.Context, uid, token string) error

	// FindPendingByID retrieves the staging record of a user.
	FindPendingByID(ctx context.Context, uid string) (*entity.PendingProfile, error)

	// Activate moves the staging record into an activated profile in one transaction.
	// It returns ErrPendingProfileNotFound when the staging record disappeared meanwhile.
	Activate(ctx context.Context, uid string, account *entity.Account, at time.Time) (*entity.Profile, error)

	// FindByID retrieves an activated profile.
	FindByID(ctx context.Context, uid string) (*entity.Profile, error)

	// Exists reports whether an activated profile exists.
	Exists(ctx context.Context, uid string) (bool, error)

	// TouchLastLogin records a login time.
	TouchLastLogin(ctx context.Context, uid string, at time.Time) error

	// SetFCMToken stores the device push token and records a login time.
	SetFCMToken(ctx context.Context, uid, token string, at time.Time) error

	// ClearFCMTokens removes the given push tokens from every profile holding them.
	ClearFCMTokens(ctx context.Context, tokens []string) (int, error)

	// Update applies a partial profile update.
	Update(ctx context.Context, uid string, update entity.ProfileUpdate, at time.Time) error

	// FindDonors retrieves every donor profile matching the query.
	FindDonors(ctx context.Context, query DonorQuery) ([]*entity.Profile, error)

	// DeleteAccountData removes both the staging record and the activated profile.
	// Both deletions are attempted even when one fails.
	DeleteAccountData(ctx context.Context, uid string) error
}
