// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	RequestHandler      *handler.RequestHandler
	DonorHandler        *handler.DonorHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	requestHandler      *handler.RequestHandler
	donorHandler        *handler.DonorHandler
	messageHandler      *handler.MessageHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		requestHandler:      params.RequestHandler,
		donorHandler:        params.DonorHandler,
		messageHandler:      params.MessageHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require a Firebase ID token

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetUserData)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/pending", r.profileHandler.CreatePendingProfile)
		profileGroup.POST("/complete", r.profileHandler.CompleteProfile)
		profileGroup.GET("/role", r.profileHandler.GetUserRole)
		profileGroup.POST("/last-login", r.profileHandler.UpdateLastLogin)
		profileGroup.PUT("/fcm-token", r.profileHandler.UpdateFCMToken)
	}

	apiV1.GET("/donors", r.donorHandler.ListDonors)

	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.POST("", r.requestHandler.CreateRequest)
		requestsGroup.GET("", r.requestHandler.ListRequests)
		requestsGroup.GET("/mine", r.requestHandler.ListOwnRequests)
		requestsGroup.DELETE("/:requestId", r.requestHandler.DeleteRequest)
		requestsGroup.GET("/:requestId/qr", r.requestHandler.GetRequestQRCode)
		requestsGroup.POST("/:requestId/messages", r.messageHandler.SendMessage)
		requestsGroup.GET("/:requestId/messages", r.messageHandler.GetMessages)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.GetNotifications)
		notificationsGroup.POST("/read", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:notificationId/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:notificationId", r.notificationHandler.DeleteNotification)
	}
}
