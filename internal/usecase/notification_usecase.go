package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// NotificationUsecase defines the caller's notification inbox operations.
type NotificationUsecase interface {
	// GetNotifications returns the caller's notifications, newest first.
	GetNotifications(ctx context.Context, caller *entity.Caller) (*NotificationListOutput, error)

	// MarkAllRead flags every unread notification of the caller as read.
	MarkAllRead(ctx context.Context, caller *entity.Caller) (*MarkReadOutput, error)

	// MarkRead flags one notification as read. Marking an already read notification is a no-op.
	MarkRead(ctx context.Context, caller *entity.Caller, notificationID string) (*StatusOutput, error)

	// DeleteNotification removes one notification of the caller.
	DeleteNotification(ctx context.Context, caller *entity.Caller, notificationID string) (*StatusOutput, error)
}

// NotificationOutput is the client view of a notification. CreatedAt is in epoch milliseconds.
type NotificationOutput struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	RequestID     *string `json:"requestId"`
	BloodType     string  `json:"bloodType,omitempty"`
	BloodBankName string  `json:"bloodBankName,omitempty"`
	IsUrgent      *bool   `json:"isUrgent,omitempty"`
	Read          bool    `json:"read"`
	IsRead        bool    `json:"isRead"`
	CreatedAt     *int64  `json:"createdAt"`
}

// NotificationListOutput lists the caller's notifications.
type NotificationListOutput struct {
	Notifications []NotificationOutput `json:"notifications"`
	Count         int                  `json:"count"`
}

// MarkReadOutput reports how many notifications were marked as read.
type MarkReadOutput struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
