package repository

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification does not exist.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrIndexUnavailable is returned when a query needs an index the store does not have.
	ErrIndexUnavailable = errors.New("query index unavailable")
)

// NotificationRepository defines the persistence operations for per-user notifications.
type NotificationRepository interface {
	// CommitBatch writes up to constants.MaxBatchWrites notifications atomically.
	CommitBatch(ctx context.Context, notifications []*entity.Notification) error

	// ListByUser returns every notification of a user, newest first.
	ListByUser(ctx context.Context, uid string) ([]*entity.Notification, error)

	// FindByID retrieves one notification of a user.
	FindByID(ctx context.Context, uid, id string) (*entity.Notification, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, uid, id string) error

	// MarkAllRead flags every unread notification of a user as read and returns how many changed.
	MarkAllRead(ctx context.Context, uid string) (int, error)

	// Delete removes one notification.
	Delete(ctx context.Context, uid, id string) error

	// DeleteByRequest removes every notification referencing the request across all users
	// using the cross-user index. It returns ErrIndexUnavailable when the index is missing.
	DeleteByRequest(ctx context.Context, requestID string) (int, error)

	// DeleteByRequestForUser removes the notifications of one user referencing the request.
	DeleteByRequestForUser(ctx context.Context, uid, requestID string) (int, error)

	// DeleteOrphaned removes the notifications of one user whose request reference is null.
	DeleteOrphaned(ctx context.Context, uid string) (int, error)

	// ListOwnerIDs returns the ids of every user that has a notification collection.
	ListOwnerIDs(ctx context.Context) ([]string, error)
}
