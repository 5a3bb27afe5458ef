package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bloodlink/config"
	"bloodlink/internal/errors"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

// validateFunc checks a Google-signed OIDC token against an audience.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushAuth verifies the OIDC tokens Google attaches to Pub/Sub push and
// Eventarc deliveries.
type PushAuth struct {
	enabled  bool
	audience string
	validate validateFunc
	logger   *slog.Logger
}

// NewPushAuth creates the push authenticator. When no audience is configured
// the URL of the called endpoint is used.
func NewPushAuth(cfg *config.Config, logger *slog.Logger) *PushAuth {
	return &PushAuth{
		enabled:  cfg.Worker.PushAuth.Enabled,
		audience: cfg.Worker.PushAuth.Audience,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// Verify rejects unauthenticated deliveries with 401 so the sender does not
// treat them as processed.
func (a *PushAuth) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.enabled {
			return next(c)
		}

		if err := a.verify(c.Request()); err != nil {
			a.logger.Warn("[Worker] Invalid push token",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusUnauthorized)
		}

		return next(c)
	}
}

// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (a *PushAuth) verify(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := a.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := a.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
