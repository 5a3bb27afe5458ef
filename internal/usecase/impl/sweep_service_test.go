package impl

import (
	"context"
	"testing"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/service"
	mockRepo "bloodlink/internal/mocks/repository"
	mockSvc "bloodlink/internal/mocks/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sweepFixture struct {
	srv              *sweepService
	identity         *mockSvc.MockIdentityDirectory
	profileRepo      *mockRepo.MockProfileRepository
	messageRepo      *mockRepo.MockMessageRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func newSweepFixture(t *testing.T, sweeps *config.SweepsConfig) *sweepFixture {
	t.Helper()

	f := &sweepFixture{
		identity:         mockSvc.NewMockIdentityDirectory(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		messageRepo:      mockRepo.NewMockMessageRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
	}
	f.srv = NewSweepService(SweepServiceParams{
		Config:           &config.Config{Sweeps: sweeps},
		Identity:         f.identity,
		ProfileRepo:      f.profileRepo,
		MessageRepo:      f.messageRepo,
		NotificationRepo: f.notificationRepo,
		Logger:           testLogger(),
	}).(*sweepService)
	f.srv.now = func() time.Time { return fixedNow }

	return f
}

func TestNewSweepService_Retention(t *testing.T) {
	f := newSweepFixture(t, nil)
	assert.Equal(t, 48*time.Hour, f.srv.retention)

	f = newSweepFixture(t, &config.SweepsConfig{UnverifiedRetention: 72 * time.Hour})
	assert.Equal(t, 72*time.Hour, f.srv.retention)
}

func TestSweepService_CleanupUnverifiedAccounts(t *testing.T) {
	f := newSweepFixture(t, nil)
	ctx := context.Background()
	old := fixedNow.Add(-49 * time.Hour)
	fresh := fixedNow.Add(-47 * time.Hour)

	f.identity.EXPECT().ListAccounts(ctx, accountPageSize, "").Return(&service.AccountPage{
		Accounts: []*entity.Account{
			{UID: "stale", CreatedAt: old},
			{UID: "verified", EmailVerified: true, CreatedAt: old},
			{UID: "fresh", CreatedAt: fresh},
		},
		NextPageToken: "p2",
	}, nil).Once()
	f.identity.EXPECT().ListAccounts(ctx, accountPageSize, "p2").Return(&service.AccountPage{
		Accounts: []*entity.Account{
			{UID: "unknown-age"},
			{UID: "broken", CreatedAt: old},
			{UID: "stale-2", CreatedAt: old.Add(-time.Hour)},
		},
	}, nil).Once()

	f.profileRepo.EXPECT().DeleteAccountData(ctx, "stale").Return(nil).Once()
	f.identity.EXPECT().DeleteAccount(ctx, "stale").Return(nil).Once()
	f.profileRepo.EXPECT().DeleteAccountData(ctx, "broken").Return(errors.New("unavailable")).Once()
	f.profileRepo.EXPECT().DeleteAccountData(ctx, "stale-2").Return(nil).Once()
	f.identity.EXPECT().DeleteAccount(ctx, "stale-2").Return(nil).Once()

	report, err := f.srv.CleanupUnverifiedAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.SweepUnverifiedAccounts, report.Name)
	assert.Equal(t, 6, report.Scanned)
	assert.Equal(t, 2, report.Deleted)
	assert.Equal(t, 1, report.Failed)
	f.identity.AssertNotCalled(t, "DeleteAccount", mock.Anything, "broken")
}

func TestSweepService_CleanupUnverifiedAccounts_ListFailure(t *testing.T) {
	f := newSweepFixture(t, nil)
	ctx := context.Background()

	f.identity.EXPECT().ListAccounts(ctx, accountPageSize, "").Return(nil, errors.New("quota")).Once()

	report, err := f.srv.CleanupUnverifiedAccounts(ctx)

	require.Error(t, err)
	require.NotNil(t, report)
	assert.Zero(t, report.Deleted)
}

func TestSweepService_CleanupOrphanMessages(t *testing.T) {
	f := newSweepFixture(t, nil)
	ctx := context.Background()

	f.messageRepo.EXPECT().ListOrphanedRequestIDs(ctx).Return([]string{"gone-1", "gone-2"}, nil).Once()
	f.messageRepo.EXPECT().DeleteByRequest(ctx, "gone-1").Return(4, nil).Once()
	f.messageRepo.EXPECT().DeleteByRequest(ctx, "gone-2").Return(1, errors.New("partial")).Once()

	report, err := f.srv.CleanupOrphanMessages(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.SweepOrphanMessages, report.Name)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 5, report.Deleted)
	assert.Equal(t, 1, report.Failed)
}

func TestSweepService_CleanupOrphanNotifications(t *testing.T) {
	f := newSweepFixture(t, nil)
	ctx := context.Background()

	f.notificationRepo.EXPECT().ListOwnerIDs(ctx).Return([]string{"d1", "d2", "d3"}, nil).Once()
	f.notificationRepo.EXPECT().DeleteOrphaned(ctx, "d1").Return(2, nil).Once()
	f.notificationRepo.EXPECT().DeleteOrphaned(ctx, "d2").Return(0, nil).Once()
	f.notificationRepo.EXPECT().DeleteOrphaned(ctx, "d3").Return(0, errors.New("timeout")).Once()

	report, err := f.srv.CleanupOrphanNotifications(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 2, report.Deleted)
	assert.Equal(t, 1, report.Failed)
}

func TestSweepService_CleanupOrphanNotifications_ListFailure(t *testing.T) {
	f := newSweepFixture(t, nil)
	ctx := context.Background()

	f.notificationRepo.EXPECT().ListOwnerIDs(ctx).Return(nil, errors.New("unavailable")).Once()

	_, err := f.srv.CleanupOrphanNotifications(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list notification owners")
}
