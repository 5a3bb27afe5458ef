package impl

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	mockRepo "bloodlink/internal/mocks/repository"
	mockSvc "bloodlink/internal/mocks/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	srv         *profileService
	profileRepo *mockRepo.MockProfileRepository
	identity    *mockSvc.MockIdentityDirectory
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	f := &profileFixture{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		identity:    mockSvc.NewMockIdentityDirectory(t),
	}
	f.srv = NewProfileService(ProfileServiceParams{
		ProfileRepo: f.profileRepo,
		Identity:    f.identity,
		Logger:      testLogger(),
	}).(*profileService)
	f.srv.now = func() time.Time { return fixedNow }

	return f
}

func TestProfileService_CreatePendingProfile(t *testing.T) {
	t.Run("donor with verified email", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.identity.EXPECT().GetAccount(ctx, "d1").Return(&entity.Account{UID: "d1", EmailVerified: true}, nil).Once()
		f.profileRepo.EXPECT().SavePending(ctx, &entity.PendingProfile{
			UID:       "d1",
			Role:      entity.RoleDonor,
			FullName:  "Sara Ali",
			BloodType: "AB-",
			Location:  "Irbid",
			CreatedAt: fixedNow,
		}).Return(nil).Once()

		out, err := f.srv.CreatePendingProfile(ctx, donorCaller, &usecase.CreatePendingProfileInput{
			Role:      "donor",
			FullName:  " Sara Ali ",
			BloodType: "ab-",
			Location:  "Irbid",
		})

		require.NoError(t, err)
		assert.True(t, out.EmailVerified)
		assert.Equal(t, "Email already verified. You can complete your profile.", out.Message)
	})

	t.Run("hospital awaiting verification", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.identity.EXPECT().GetAccount(ctx, "h1").Return(&entity.Account{UID: "h1"}, nil).Once()
		f.profileRepo.EXPECT().
			SavePending(ctx, mock.MatchedBy(func(p *entity.PendingProfile) bool {
				return p.Role == entity.RoleHospital && p.BloodBankName == "Central Bank" && p.FullName == ""
			})).
			Return(nil).Once()

		out, err := f.srv.CreatePendingProfile(ctx, hospitalCaller, &usecase.CreatePendingProfileInput{
			Role:          "hospital",
			FullName:      "ignored",
			BloodBankName: "Central Bank",
			Location:      "Amman",
		})

		require.NoError(t, err)
		assert.False(t, out.EmailVerified)
		assert.Equal(t, "Pending profile saved. Please verify your email.", out.Message)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			input   *usecase.CreatePendingProfileInput
			wantErr string
		}{
			{"missing role", &usecase.CreatePendingProfileInput{}, "role is required."},
			{"unknown role", &usecase.CreatePendingProfileInput{Role: "admin"}, domainerrors.ErrInvalidRole.Message()},
			{"donor without name", &usecase.CreatePendingProfileInput{Role: "donor", Location: "x"}, "fullName is required."},
			{"donor with bad blood type", &usecase.CreatePendingProfileInput{Role: "donor", FullName: "a", BloodType: "Z", Location: "x"}, domainerrors.ErrInvalidBloodType.Message()},
			{"hospital without bank", &usecase.CreatePendingProfileInput{Role: "hospital", Location: "x"}, "bloodBankName is required."},
			{"missing location", &usecase.CreatePendingProfileInput{Role: "hospital", BloodBankName: "b"}, "location is required."},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newProfileFixture(t)
				ctx := context.Background()
				f.identity.EXPECT().GetAccount(ctx, "d1").Return(&entity.Account{UID: "d1"}, nil).Once()

				_, err := f.srv.CreatePendingProfile(ctx, donorCaller, tt.input)

				require.Error(t, err)
				assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
				assert.Equal(t, tt.wantErr, err.Error())
			})
		}
	})
}

func TestProfileService_CompleteProfile(t *testing.T) {
	t.Run("activates the pending profile", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()
		account := &entity.Account{UID: "d1", Email: "donor@example.com", EmailVerified: true}

		f.identity.EXPECT().GetAccount(ctx, "d1").Return(account, nil).Once()
		f.profileRepo.EXPECT().FindPendingByID(ctx, "d1").Return(&entity.PendingProfile{UID: "d1", Role: entity.RoleDonor}, nil).Once()
		f.profileRepo.EXPECT().Activate(ctx, "d1", account, fixedNow).Return(donorProfile("d1", "O+", ""), nil).Once()
		f.identity.EXPECT().SetRoleClaim(ctx, "d1", entity.RoleDonor).Return(nil).Once()

		out, err := f.srv.CompleteProfile(ctx, donorCaller)

		require.NoError(t, err)
		assert.Equal(t, "Profile activated.", out.Message)
	})

	t.Run("unverified email", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.identity.EXPECT().GetAccount(ctx, "d1").Return(&entity.Account{UID: "d1"}, nil).Once()

		_, err := f.srv.CompleteProfile(ctx, donorCaller)

		require.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
		assert.Equal(t, domainerrors.KindFailedPrecondition, domainerrors.KindOf(err))
	})

	t.Run("second completion re-applies the claim", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.identity.EXPECT().GetAccount(ctx, "d1").Return(&entity.Account{UID: "d1", EmailVerified: true}, nil).Once()
		f.profileRepo.EXPECT().FindPendingByID(ctx, "d1").Return(nil, repository.ErrPendingProfileNotFound).Once()
		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", "tok"), nil).Once()
		f.identity.EXPECT().SetRoleClaim(ctx, "d1", entity.RoleDonor).Return(errors.New("quota")).Once()

		out, err := f.srv.CompleteProfile(ctx, donorCaller)

		require.NoError(t, err)
		assert.Equal(t, "Profile already completed.", out.Message)
	})

	t.Run("concurrent activation is treated as completed", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()
		account := &entity.Account{UID: "d1", EmailVerified: true}

		f.identity.EXPECT().GetAccount(ctx, "d1").Return(account, nil).Once()
		f.profileRepo.EXPECT().FindPendingByID(ctx, "d1").Return(&entity.PendingProfile{UID: "d1", Role: entity.RoleDonor}, nil).Once()
		f.profileRepo.EXPECT().Activate(ctx, "d1", account, fixedNow).Return(nil, repository.ErrPendingProfileNotFound).Once()
		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", ""), nil).Once()
		f.identity.EXPECT().SetRoleClaim(ctx, "d1", entity.RoleDonor).Return(nil).Once()

		out, err := f.srv.CompleteProfile(ctx, donorCaller)

		require.NoError(t, err)
		assert.Equal(t, "Profile already completed.", out.Message)
	})

	t.Run("nothing to complete", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.identity.EXPECT().GetAccount(ctx, "d1").Return(&entity.Account{UID: "d1", EmailVerified: true}, nil).Once()
		f.profileRepo.EXPECT().FindPendingByID(ctx, "d1").Return(nil, repository.ErrPendingProfileNotFound).Once()
		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(nil, repository.ErrProfileNotFound).Once()

		_, err := f.srv.CompleteProfile(ctx, donorCaller)

		require.ErrorIs(t, err, domainerrors.ErrPendingProfileNotFound)
	})
}

func TestProfileService_GetUserData(t *testing.T) {
	t.Run("own profile", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()
		profile := donorProfile("d1", "B+", "tok")
		profile.ActivatedAt = &fixedNow

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(profile, nil).Once()

		out, err := f.srv.GetUserData(ctx, donorCaller, "d1")

		require.NoError(t, err)
		assert.Equal(t, "donor", out.Role)
		assert.Equal(t, "B+", out.BloodType)
		require.NotNil(t, out.ActivatedAt)
		assert.Equal(t, fixedNow.UnixMilli(), *out.ActivatedAt)
		assert.Nil(t, out.LastLoginAt)
	})

	t.Run("other users are refused", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.srv.GetUserData(context.Background(), donorCaller, "d2")

		require.ErrorIs(t, err, domainerrors.ErrNotAllowed)
	})

	t.Run("not activated", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(nil, repository.ErrProfileNotFound).Once()

		_, err := f.srv.GetUserData(ctx, donorCaller, "")

		require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestProfileService_GetUserRole(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()

	out, err := f.srv.GetUserRole(ctx, hospitalCaller)

	require.NoError(t, err)
	assert.Equal(t, "hospital", out.Role)
}

func TestProfileService_UpdateLastLogin(t *testing.T) {
	t.Run("activated", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().Exists(ctx, "d1").Return(true, nil).Once()
		f.profileRepo.EXPECT().TouchLastLogin(ctx, "d1", fixedNow).Return(nil).Once()

		out, err := f.srv.UpdateLastLogin(ctx, donorCaller)

		require.NoError(t, err)
		assert.Equal(t, "Last login time updated.", out.Message)
	})

	t.Run("not activated", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().Exists(ctx, "d1").Return(false, nil).Once()

		out, err := f.srv.UpdateLastLogin(ctx, donorCaller)

		require.NoError(t, err)
		assert.True(t, out.OK)
		assert.Equal(t, "User profile not yet activated.", out.Message)
	})
}

func TestProfileService_UpdateFCMToken(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.srv.UpdateFCMToken(context.Background(), donorCaller, "   ")

		require.ErrorIs(t, err, domainerrors.ErrFCMTokenRequired)
		assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
	})

	t.Run("deferred before activation", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().Exists(ctx, "d1").Return(false, nil).Once()
		f.profileRepo.EXPECT().SavePendingFCMToken(ctx, "d1", "tok").Return(nil).Once()

		out, err := f.srv.UpdateFCMToken(ctx, donorCaller, " tok ")

		require.NoError(t, err)
		assert.Equal(t, "User profile not yet activated. Token will be saved after activation.", out.Message)
	})

	t.Run("stored on the profile", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().Exists(ctx, "d1").Return(true, nil).Once()
		f.profileRepo.EXPECT().SetFCMToken(ctx, "d1", "tok", fixedNow).Return(nil).Once()

		out, err := f.srv.UpdateFCMToken(ctx, donorCaller, "tok")

		require.NoError(t, err)
		assert.Equal(t, "FCM token updated.", out.Message)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Run("donor updates every field", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()
		bloodType := entity.BloodType("A-")

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", ""), nil).Once()
		f.identity.EXPECT().UpdateDisplayName(ctx, "d1", "Sara").Return(errors.New("unavailable")).Once()
		f.profileRepo.EXPECT().Update(ctx, "d1", entity.ProfileUpdate{
			Name:      ptr("Sara"),
			Location:  ptr("Zarqa"),
			BloodType: &bloodType,
		}, fixedNow).Return(nil).Once()

		out, err := f.srv.UpdateProfile(ctx, donorCaller, &usecase.UpdateProfileInput{
			Name:      ptr(" Sara "),
			Location:  ptr("Zarqa"),
			BloodType: ptr("a-"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Profile updated successfully.", out.Message)
	})

	t.Run("hospital blood type is ignored", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()

		_, err := f.srv.UpdateProfile(ctx, hospitalCaller, &usecase.UpdateProfileInput{BloodType: ptr("A+"), Name: ptr("  ")})

		require.ErrorIs(t, err, domainerrors.ErrNoProfileFields)
	})

	t.Run("invalid blood type", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", ""), nil).Once()

		_, err := f.srv.UpdateProfile(ctx, donorCaller, &usecase.UpdateProfileInput{BloodType: ptr("Q")})

		require.ErrorIs(t, err, domainerrors.ErrInvalidBloodType)
	})
}
