package impl

import (
	"context"
	"testing"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	mockRepo "bloodlink/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture(t *testing.T) (*notificationService, *mockRepo.MockNotificationRepository) {
	t.Helper()

	repo := mockRepo.NewMockNotificationRepository(t)
	srv := NewNotificationService(repo, testLogger()).(*notificationService)

	return srv, repo
}

func TestNotificationService_GetNotifications(t *testing.T) {
	srv, repo := newNotificationFixture(t)
	ctx := context.Background()
	createdAt := fixedNow

	repo.EXPECT().ListByUser(ctx, "d1").Return([]*entity.Notification{
		{
			ID:            "n2",
			UserID:        "d1",
			Title:         "Urgent blood request",
			Body:          "Central Bank needs O+ blood (2 units)",
			RequestID:     ptr("r1"),
			BloodType:     "O+",
			BloodBankName: "Central Bank",
			IsUrgent:      ptr(true),
			Read:          true,
			CreatedAt:     &createdAt,
		},
		{ID: "n1", UserID: "d1", Title: "Old"},
	}, nil).Once()

	out, err := srv.GetNotifications(ctx, donorCaller)

	require.NoError(t, err)
	require.Equal(t, 2, out.Count)

	first := out.Notifications[0]
	assert.Equal(t, "n2", first.ID)
	assert.Equal(t, "r1", *first.RequestID)
	assert.Equal(t, "O+", first.BloodType)
	assert.True(t, first.Read)
	assert.True(t, first.IsRead)
	require.NotNil(t, first.CreatedAt)
	assert.Equal(t, fixedNow.UnixMilli(), *first.CreatedAt)

	second := out.Notifications[1]
	assert.Nil(t, second.RequestID)
	assert.Nil(t, second.CreatedAt)
	assert.False(t, second.IsRead)
}

func TestNotificationService_GetNotifications_Unauthenticated(t *testing.T) {
	srv, _ := newNotificationFixture(t)

	_, err := srv.GetNotifications(context.Background(), nil)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		wantMessage string
	}{
		{name: "nothing unread", count: 0, wantMessage: "No unread notifications."},
		{name: "several unread", count: 3, wantMessage: "Marked 3 notification(s) as read."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := newNotificationFixture(t)
			ctx := context.Background()

			repo.EXPECT().MarkAllRead(ctx, "d1").Return(tt.count, nil).Once()

			out, err := srv.MarkAllRead(ctx, donorCaller)

			require.NoError(t, err)
			assert.True(t, out.OK)
			assert.Equal(t, tt.count, out.Count)
			assert.Equal(t, tt.wantMessage, out.Message)
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("unread notification is updated", func(t *testing.T) {
		srv, repo := newNotificationFixture(t)
		ctx := context.Background()

		repo.EXPECT().FindByID(ctx, "d1", "n1").Return(&entity.Notification{ID: "n1"}, nil).Once()
		repo.EXPECT().MarkRead(ctx, "d1", "n1").Return(nil).Once()

		out, err := srv.MarkRead(ctx, donorCaller, "n1")

		require.NoError(t, err)
		assert.Equal(t, "Notification marked as read.", out.Message)
	})

	t.Run("already read notification is left alone", func(t *testing.T) {
		srv, repo := newNotificationFixture(t)
		ctx := context.Background()

		repo.EXPECT().FindByID(ctx, "d1", "n1").Return(&entity.Notification{ID: "n1", Read: true}, nil).Once()

		out, err := srv.MarkRead(ctx, donorCaller, "n1")

		require.NoError(t, err)
		assert.True(t, out.OK)
		repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown notification", func(t *testing.T) {
		srv, repo := newNotificationFixture(t)
		ctx := context.Background()

		repo.EXPECT().FindByID(ctx, "d1", "nx").Return(nil, repository.ErrNotificationNotFound).Once()

		_, err := srv.MarkRead(ctx, donorCaller, "nx")

		require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})

	t.Run("missing id", func(t *testing.T) {
		srv, _ := newNotificationFixture(t)

		_, err := srv.MarkRead(context.Background(), donorCaller, "")

		require.Error(t, err)
		assert.Equal(t, "notificationId is required.", err.Error())
	})
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		srv, repo := newNotificationFixture(t)
		ctx := context.Background()

		repo.EXPECT().Delete(ctx, "d1", "n1").Return(nil).Once()

		out, err := srv.DeleteNotification(ctx, donorCaller, "n1")

		require.NoError(t, err)
		assert.Equal(t, "Notification deleted.", out.Message)
	})

	t.Run("not found", func(t *testing.T) {
		srv, repo := newNotificationFixture(t)
		ctx := context.Background()

		repo.EXPECT().Delete(ctx, "d1", "n1").Return(errors.Wrap(repository.ErrNotificationNotFound, "delete")).Once()

		_, err := srv.DeleteNotification(ctx, donorCaller, "n1")

		require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		srv, repo := newNotificationFixture(t)
		ctx := context.Background()

		repo.EXPECT().Delete(ctx, "d1", "n1").Return(errors.New("deadline exceeded")).Once()

		_, err := srv.DeleteNotification(ctx, donorCaller, "n1")

		require.Error(t, err)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}
