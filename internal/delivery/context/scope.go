// Package context carries the per-request scope shared by middleware, handlers and use cases.
package context

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request id in both directions.
const HeaderXRequestID = "X-Request-Id"

type scopeKey struct{}

// scope is stored by value. Every With* call stores a modified copy so a derived context never
// changes what its parent sees.
type scope struct {
	requestID string
	logger    *slog.Logger
	caller    *entity.Caller
}

func scopeOf(ctx context.Context) scope {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s
	}

	return scope{}
}

func withScope(ctx context.Context, update func(*scope)) context.Context {
	s := scopeOf(ctx)
	update(&s)

	return context.WithValue(ctx, scopeKey{}, s)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withScope(ctx, func(s *scope) { s.requestID = requestID })
}

// GetRequestIDFromContext returns the request id, empty outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	return scopeOf(ctx).requestID
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return withScope(ctx, func(s *scope) { s.logger = logger })
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none was stored.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := scopeOf(ctx).logger; logger != nil {
		return logger
	}

	return fallback
}

func WithCaller(ctx context.Context, caller *entity.Caller) context.Context {
	return withScope(ctx, func(s *scope) { s.caller = caller })
}

// GetCallerFromContext returns the authenticated caller, or nil for anonymous requests.
func GetCallerFromContext(ctx context.Context) *entity.Caller {
	return scopeOf(ctx).caller
}

// The echo helpers keep the scope on the request context, so use cases receive it without
// the handler copying values across.

func SetRequestID(c echo.Context, requestID string) {
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// GetRequestID returns the request id of c. Requests that bypassed the request id middleware
// get a fresh one so response metadata always carries an id.
func GetRequestID(c echo.Context) string {
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

func SetCaller(c echo.Context, caller *entity.Caller) {
	c.SetRequest(c.Request().WithContext(WithCaller(c.Request().Context(), caller)))
}

func GetCaller(c echo.Context) *entity.Caller {
	return GetCallerFromContext(c.Request().Context())
}
