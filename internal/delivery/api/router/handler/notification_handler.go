package handler

import (
	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler exposes the caller's notification inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// NotificationIDParam addresses one notification.
type NotificationIDParam struct {
	NotificationID string `param:"notificationId"`
}

// GetNotifications returns the caller's notifications
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	out, err := h.notificationUC.GetNotifications(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// MarkAllRead flags every unread notification as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	out, err := h.notificationUC.MarkAllRead(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// MarkRead flags one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	var req NotificationIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.notificationUC.MarkRead(c.Request().Context(), deliverycontext.GetCaller(c), req.NotificationID)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// DeleteNotification removes one notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	var req NotificationIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.notificationUC.DeleteNotification(c.Request().Context(), deliverycontext.GetCaller(c), req.NotificationID)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
