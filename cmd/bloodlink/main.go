package main

import (
	"context"
	"log/slog"
	"os"

	"bloodlink/config"
	"bloodlink/internal/delivery"
	"bloodlink/internal/delivery/api"
	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/infra/auth"
	"bloodlink/internal/infra/firebase"
	logs "bloodlink/internal/infra/log"
	"bloodlink/internal/infra/notification"
	"bloodlink/internal/infra/persistence/firestoredb"
	"bloodlink/internal/infra/pubsub"
	"bloodlink/internal/infra/qrcode"
	"bloodlink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		firestoredb.Module,
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseIdentity,
			auth.NewTokenVerifier,
			auth.NewIdentityDirectory,
			notification.NewFirebaseService,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewDonorService,
			impl.NewFanoutService,
			impl.NewRequestService,
			impl.NewMessageService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewRequestHandler,
			handler.NewDonorHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
