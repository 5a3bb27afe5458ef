// Package firebase owns the process-wide Firebase app and the clients derived from it.
package firebase

import (
	"context"
	"log/slog"

	"bloodlink/config"
	"bloodlink/internal/domain/lifecycle"
	"bloodlink/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app once per process.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("projectId", cfg.ProjectID))

	return app, nil
}

// FirestoreParams defines the required parameters
type FirestoreParams struct {
	fx.In
	fx.Lifecycle

	App *firebase.App
}

// NewFirestoreClient returns the shared store handle and closes it on shutdown.
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewAuthClient returns the Firebase Authentication client.
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return client, nil
}

// NewMessagingClient returns the Firebase Cloud Messaging client.
func NewMessagingClient(app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Messaging client")
	}

	return client, nil
}

var Module = fx.Options(
	fx.Provide(
		NewApp,
		NewFirestoreClient,
		NewAuthClient,
		NewMessagingClient,
	),
)
