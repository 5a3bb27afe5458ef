package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
)

const (
	msgNoUnread            = "No unread notifications."
	msgNotificationRead    = "Notification marked as read."
	msgNotificationDeleted = "Notification deleted."
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService creates the notification inbox service.
func NewNotificationService(notificationRepo repository.NotificationRepository, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetNotifications returns the caller's notifications, newest first.
func (srv *notificationService) GetNotifications(ctx context.Context, caller *entity.Caller) (*usecase.NotificationListOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	notifications, err := srv.notificationRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to load notifications.")
	}

	outputs := toNotificationOutputs(notifications)

	return &usecase.NotificationListOutput{Notifications: outputs, Count: len(outputs)}, nil
}

// MarkAllRead flags every unread notification of the caller as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, caller *entity.Caller) (*usecase.MarkReadOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}

	count, err := srv.notificationRepo.MarkAllRead(ctx, uid)
	if err != nil {
		return nil, domainerrors.ToAppError(err, "Failed to mark notifications as read.")
	}
	if count == 0 {
		return &usecase.MarkReadOutput{OK: true, Message: msgNoUnread, Count: 0}, nil
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Notifications marked as read",
		slog.String("uid", uid),
		slog.Int("count", count),
	)

	return &usecase.MarkReadOutput{
		OK:      true,
		Message: fmt.Sprintf("Marked %d notification(s) as read.", count),
		Count:   count,
	}, nil
}

// MarkRead flags one notification as read. Already read notifications are left as they are.
func (srv *notificationService) MarkRead(ctx context.Context, caller *entity.Caller, notificationID string) (*usecase.StatusOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}
	id, err := documentID(notificationID, "notificationId")
	if err != nil {
		return nil, err
	}

	notification, err := srv.notificationRepo.FindByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to mark notification as read.")
	}
	if notification.Read {
		return &usecase.StatusOutput{OK: true, Message: msgNotificationRead}, nil
	}

	if err := srv.notificationRepo.MarkRead(ctx, uid, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to mark notification as read.")
	}

	return &usecase.StatusOutput{OK: true, Message: msgNotificationRead}, nil
}

// DeleteNotification removes one notification of the caller.
func (srv *notificationService) DeleteNotification(ctx context.Context, caller *entity.Caller, notificationID string) (*usecase.StatusOutput, error) {
	uid, err := requireCaller(caller)
	if err != nil {
		return nil, err
	}
	id, err := documentID(notificationID, "notificationId")
	if err != nil {
		return nil, err
	}

	if err := srv.notificationRepo.Delete(ctx, uid, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, domainerrors.ToAppError(err, "Failed to delete notification.")
	}

	return &usecase.StatusOutput{OK: true, Message: msgNotificationDeleted}, nil
}
