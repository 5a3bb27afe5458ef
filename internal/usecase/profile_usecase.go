// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// ProfileUsecase defines the interface for the pending-to-active profile lifecycle.
type ProfileUsecase interface {
	// CreatePendingProfile stages the caller's profile until the email is verified.
	CreatePendingProfile(ctx context.Context, caller *entity.Caller, input *CreatePendingProfileInput) (*PendingProfileOutput, error)

	// CompleteProfile activates the staged profile once the email is verified.
	CompleteProfile(ctx context.Context, caller *entity.Caller) (*StatusOutput, error)

	// GetUserData returns the caller's activated profile. targetUID must be empty or the caller.
	GetUserData(ctx context.Context, caller *entity.Caller, targetUID string) (*ProfileOutput, error)

	// GetUserRole returns the role of the caller's activated profile.
	GetUserRole(ctx context.Context, caller *entity.Caller) (*RoleOutput, error)

	// UpdateLastLogin records a login for activated profiles.
	UpdateLastLogin(ctx context.Context, caller *entity.Caller) (*StatusOutput, error)

	// UpdateFCMToken stores the device push token, deferring it until activation when needed.
	UpdateFCMToken(ctx context.Context, caller *entity.Caller, token string) (*StatusOutput, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, caller *entity.Caller, input *UpdateProfileInput) (*StatusOutput, error)
}

// --- Input DTOs ---

// CreatePendingProfileInput carries the staged profile fields.
type CreatePendingProfileInput struct {
	Role           string `json:"role"`
	FullName       string `json:"fullName"`
	BloodType      string `json:"bloodType"`
	BloodBankName  string `json:"bloodBankName"`
	Location       string `json:"location"`
	MedicalFileURL string `json:"medicalFileUrl"`
}

// UpdateProfileInput lists the profile fields a caller may change.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty"`
	Location  *string `json:"location,omitempty"`
	BloodType *string `json:"bloodType,omitempty"`
}

// --- Output DTOs ---

// StatusOutput is the acknowledgement returned by write operations.
type StatusOutput struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// PendingProfileOutput reports whether the caller may complete the profile right away.
type PendingProfileOutput struct {
	OK            bool   `json:"ok"`
	EmailVerified bool   `json:"emailVerified"`
	Message       string `json:"message"`
}

// RoleOutput carries the caller's role.
type RoleOutput struct {
	Role string `json:"role"`
}

// ProfileOutput is the client view of an activated profile. Timestamps are epoch milliseconds.
type ProfileOutput struct {
	UID             string `json:"uid"`
	Role            string `json:"role"`
	Email           string `json:"email,omitempty"`
	EmailVerified   bool   `json:"emailVerified"`
	FullName        string `json:"fullName,omitempty"`
	Name            string `json:"name,omitempty"`
	BloodBankName   string `json:"bloodBankName,omitempty"`
	BloodType       string `json:"bloodType,omitempty"`
	Location        string `json:"location,omitempty"`
	MedicalFileURL  string `json:"medicalFileUrl,omitempty"`
	FCMToken        string `json:"fcmToken,omitempty"`
	CreatedAt       *int64 `json:"createdAt"`
	ActivatedAt     *int64 `json:"activatedAt"`
	EmailVerifiedAt *int64 `json:"emailVerifiedAt"`
	LastLoginAt     *int64 `json:"lastLoginAt"`
	UpdatedAt       *int64 `json:"updatedAt,omitempty"`
}
