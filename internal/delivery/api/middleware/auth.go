package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "bloodlink/internal/delivery/context"
	deliverymiddleware "bloodlink/internal/delivery/middleware"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from a Firebase ID token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token and stores the caller otherwise.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()
		caller, err := m.verifier.VerifyIDToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("ID token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetCaller(c, caller)
		deliverymiddleware.TagCaller(c, caller.UID)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
