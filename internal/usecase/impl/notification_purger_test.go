package impl

import (
	"context"
	"testing"

	"bloodlink/internal/domain/repository"
	mockRepo "bloodlink/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationPurger(t *testing.T) {
	t.Run("indexed delete wins", func(t *testing.T) {
		repo := mockRepo.NewMockNotificationRepository(t)
		ctx := context.Background()

		repo.EXPECT().DeleteByRequest(ctx, "r1").Return(5, nil).Once()

		deleted, err := newNotificationPurger(repo, testLogger()).Purge(ctx, "r1")

		require.NoError(t, err)
		assert.Equal(t, 5, deleted)
		repo.AssertNotCalled(t, "ListOwnerIDs", mock.Anything)
	})

	t.Run("missing index falls back to the owner scan", func(t *testing.T) {
		repo := mockRepo.NewMockNotificationRepository(t)
		ctx := context.Background()

		repo.EXPECT().DeleteByRequest(ctx, "r1").Return(0, repository.ErrIndexUnavailable).Once()
		repo.EXPECT().ListOwnerIDs(ctx).Return([]string{"a", "b", "c"}, nil).Once()
		repo.EXPECT().DeleteByRequestForUser(ctx, "a", "r1").Return(1, nil).Once()
		repo.EXPECT().DeleteByRequestForUser(ctx, "b", "r1").Return(0, errors.New("timeout")).Once()
		repo.EXPECT().DeleteByRequestForUser(ctx, "c", "r1").Return(2, nil).Once()

		deleted, err := newNotificationPurger(repo, testLogger()).Purge(ctx, "r1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "owner b")
		assert.Equal(t, 3, deleted)
	})

	t.Run("other failures do not trigger the scan", func(t *testing.T) {
		repo := mockRepo.NewMockNotificationRepository(t)
		ctx := context.Background()

		repo.EXPECT().DeleteByRequest(ctx, "r1").Return(1, errors.New("permission denied")).Once()

		deleted, err := newNotificationPurger(repo, testLogger()).Purge(ctx, "r1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "indexed notification purge")
		assert.Equal(t, 1, deleted)
		repo.AssertNotCalled(t, "ListOwnerIDs", mock.Anything)
	})

	t.Run("owner listing failure", func(t *testing.T) {
		repo := mockRepo.NewMockNotificationRepository(t)
		ctx := context.Background()

		repo.EXPECT().DeleteByRequest(ctx, "r1").Return(0, repository.ErrIndexUnavailable).Once()
		repo.EXPECT().ListOwnerIDs(ctx).Return(nil, errors.New("unavailable")).Once()

		deleted, err := newNotificationPurger(repo, testLogger()).Purge(ctx, "r1")

		require.Error(t, err)
		assert.Zero(t, deleted)
		assert.False(t, errors.Is(err, repository.ErrIndexUnavailable))
	})
}
