// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgEmailAlreadyVerified = "Email already verified. You can complete your profile."
	msgPendingSaved         = "Pending profile saved. Please verify your email."
	msgProfileCompleted     = "Profile already completed."
	msgProfileActivated     = "Profile activated."
	msgNotActivated         = "User profile not yet activated."
	msgTokenDeferred        = "User profile not yet activated. Token will be saved after activation."
	msgLastLoginUpdated     = "Last login time updated."
	msgTokenUpdated         = "FCM token updated."
	msgProfileUpdated       = "Profile updated successfully."
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	identity    service.IdentityDirectory
	logger      *slog.Logger
	now         func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Identity    service.IdentityDirectory
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		identity:    params.Identity,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePendingProfile stages the caller's profile until the email is verified.
func (srv *profileService) CreatePendingProfile(
	ctx context.Context,
	caller *entity.Caller,
	input *usecase.CreatePendingProfileInput,
) (*usecase.PendingProfileOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	account, err := srv.identity.GetAccount(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to save profile data.")
	}

	pending, err := buildPendingProfile(uid, input)
	if err != nil {
		return nil, err
	}
	pending.CreatedAt = srv.now()

	if err := srv.profileRepo.SavePending(ctx, pending); err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to save profile data.")
	}

	srv.log(ctx).Info("Pending profile saved",
		slog.String("uid", uid),
		slog.String("role", pending.Role.String()),
		slog.Bool("email_verified", account.EmailVerified),
	)

	message := msgPendingSaved
	if account.EmailVerified {
		message = msgEmailAlreadyVerified
	}

	return &usecase.PendingProfileOutput{
		OK:            true,
		EmailVerified: account.EmailVerified,
		Message:       message,
	}, nil
}

// buildPendingProfile validates the role-specific fields of a pending profile.
func buildPendingProfile(uid string, input *usecase.CreatePendingProfileInput) (*entity.PendingProfile, error) {
	if input == nil {
		input = &usecase.CreatePendingProfileInput{}
	}

	roleValue, err := requiredString(input.Role, "role")
	if err != nil {
		return nil, err
	}
	role := entity.Role(roleValue)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	pending := &entity.PendingProfile{UID: uid, Role: role}

	if role == entity.RoleDonor {
		if pending.FullName, err = requiredString(input.FullName, "fullName"); err != nil {
			return nil, err
		}
		if strings.TrimSpace(input.BloodType) != "" {
			if pending.BloodType, err = requiredBloodType(input.BloodType); err != nil {
				return nil, err
			}
		}
		pending.MedicalFileURL = optionalString(input.MedicalFileURL)
	} else {
		if pending.BloodBankName, err = requiredString(input.BloodBankName, "bloodBankName"); err != nil {
			return nil, err
		}
	}

	if pending.Location, err = requiredString(input.Location, "location"); err != nil {
		return nil, err
	}

	return pending, nil
}

// CompleteProfile moves the pending profile into an activated one after email verification.
func (srv *profileService) CompleteProfile(ctx context.Context, caller *entity.Caller) (*usecase.StatusOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	account, err := srv.identity.GetAccount(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to activate profile.")
	}
	if !account.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	pending, err := srv.profileRepo.FindPendingByID(ctx, uid)
	if err != nil && !errors.Is(err, repository.ErrPendingProfileNotFound) {
		return nil, domainerrors.ToAppError(err, "Failed to activate profile.")
	}
	if pending == nil || !pending.Role.IsValid() {
		return srv.alreadyCompleted(ctx, uid)
	}

	profile, err := srv.profileRepo.Activate(ctx, uid, account, srv.now())
	if err != nil {
		if errors.Is(err, repository.ErrPendingProfileNotFound) {
			return srv.alreadyCompleted(ctx, uid)
		}

		return nil, domainerrors.ToAppError(err, "Failed to activate profile.")
	}

	if err := srv.identity.SetRoleClaim(ctx, uid, profile.Role); err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to activate profile.")
	}

	srv.log(ctx).Info("Profile activated",
		slog.String("uid", uid),
		slog.String("role", profile.Role.String()),
	)

	return &usecase.StatusOutput{OK: true, Message: msgProfileActivated}, nil
}

// alreadyCompleted resolves a completion attempt that found no pending profile.
// The role claim is re-applied so a completion interrupted after activation converges.
func (srv *profileService) alreadyCompleted(ctx context.Context, uid string) (*usecase.StatusOutput, error) {
	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrPendingProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to activate profile.")
	}

	if profile.Role.IsValid() {
		if err := srv.identity.SetRoleClaim(ctx, uid, profile.Role); err != nil {
			srv.log(ctx).Warn("Failed to re-apply role claim", slog.String("uid", uid), slog.Any("error", err))
		}
	}

	return &usecase.StatusOutput{OK: true, Message: msgProfileCompleted}, nil
}

// GetUserData returns the caller's activated profile.
func (srv *profileService) GetUserData(ctx context.Context, caller *entity.Caller, targetUID string) (*usecase.ProfileOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}
	if target := strings.TrimSpace(targetUID); target != "" && target != uid {
		return nil, domainerrors.ErrNotAllowed
	}

	profile, err := srv.findProfile(ctx, uid, "Failed to load user profile.")
	if err != nil {
		return nil, err
	}

	return toProfileOutput(profile), nil
}

// GetUserRole returns the caller's role.
func (srv *profileService) GetUserRole(ctx context.Context, caller *entity.Caller) (*usecase.RoleOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	profile, err := srv.findProfile(ctx, uid, "Failed to load user role.")
	if err != nil {
		return nil, err
	}

	return &usecase.RoleOutput{Role: profile.Role.String()}, nil
}

// UpdateLastLogin records a login. Callers without an activated profile are acknowledged without writes.
func (srv *profileService) UpdateLastLogin(ctx context.Context, caller *entity.Caller) (*usecase.StatusOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	exists, err := srv.profileRepo.Exists(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to update last login time.")
	}
	if !exists {
		return &usecase.StatusOutput{OK: true, Message: msgNotActivated}, nil
	}

	if err := srv.profileRepo.TouchLastLogin(ctx, uid, srv.now()); err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to update last login time.")
	}

	return &usecase.StatusOutput{OK: true, Message: msgLastLoginUpdated}, nil
}

// UpdateFCMToken stores the device push token. Before activation the token is kept on the pending profile.
func (srv *profileService) UpdateFCMToken(ctx context.Context, caller *entity.Caller, token string) (*usecase.StatusOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrFCMTokenRequired
	}

	exists, err := srv.profileRepo.Exists(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to update FCM token.")
	}

	if !exists {
		if err := srv.profileRepo.SavePendingFCMToken(ctx, uid, token); err != nil {
			return nil, domainerrors.ToAppError(err, "Failed to update FCM token.")
		}
		srv.log(ctx).Debug("FCM token deferred until activation", slog.String("uid", uid))

		return &usecase.StatusOutput{OK: true, Message: msgTokenDeferred}, nil
	}

	if err := srv.profileRepo.SetFCMToken(ctx, uid, token, srv.now()); err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to update FCM token.")
	}

	return &usecase.StatusOutput{OK: true, Message: msgTokenUpdated}, nil
}

// UpdateProfile applies a partial profile update.
func (srv *profileService) UpdateProfile(ctx context.Context, caller *entity.Caller, input *usecase.UpdateProfileInput) (*usecase.StatusOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	profile, err := srv.findProfile(ctx, uid, "Failed to update profile.")
	if err != nil {
		return nil, err
	}

	update, err := buildProfileUpdate(profile, input)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if err := srv.identity.UpdateDisplayName(ctx, uid, *update.Name); err != nil {
			srv.log(ctx).Warn("Failed to update auth display name", slog.String("uid", uid), slog.Any("error", err))
		}
	}

	if err := srv.profileRepo.Update(ctx, uid, update, srv.now()); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to update profile.")
	}

	return &usecase.StatusOutput{OK: true, Message: msgProfileUpdated}, nil
}

// buildProfileUpdate keeps the non-blank fields the profile's role may change.
func buildProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) (entity.ProfileUpdate, error) {
	var update entity.ProfileUpdate
	if input == nil {
		return update, domainerrors.ErrNoProfileFields
	}

	if input.Name != nil {
		if name := optionalString(*input.Name); name != "" {
			update.Name = &name
		}
	}
	if input.Location != nil {
		if location := optionalString(*input.Location); location != "" {
			update.Location = &location
		}
	}
	if input.BloodType != nil && profile.Role == entity.RoleDonor && optionalString(*input.BloodType) != "" {
		bloodType, err := requiredBloodType(*input.BloodType)
		if err != nil {
			return update, err
		}
		update.BloodType = &bloodType
	}

	if update.IsEmpty() {
		return update, domainerrors.ErrNoProfileFields
	}

	return update, nil
}

func (srv *profileService) findProfile(ctx context.Context, uid, fallback string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ToAppError(err, fallback)
	}

	return profile, nil
}
