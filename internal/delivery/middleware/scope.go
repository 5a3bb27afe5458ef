// Package middleware holds the echo middleware shared by the API and worker servers.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "bloodlink/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// HeaderCloudTrace carries the trace of requests routed through Google front ends.
const HeaderCloudTrace = "X-Cloud-Trace-Context"

// RequestScope opens the request scope: it resolves the request id, echoes it in the
// response header and stores a logger tagged with it.
func RequestScope(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := resolveRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID), c.Request().Header.Get(HeaderCloudTrace))
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// resolveRequestID prefers the client supplied id, then the Cloud trace id, then a fresh UUID.
func resolveRequestID(header, cloudTrace string) string {
	if id := strings.TrimSpace(header); id != "" {
		return id
	}

	// TRACE_ID/SPAN_ID;o=OPTIONS
	traceID, _, _ := strings.Cut(cloudTrace, "/")
	if traceID = strings.TrimSpace(traceID); traceID != "" {
		return traceID
	}

	return uuid.NewString()
}

// AccessLog writes one line per request: info, warn on 4xx and error on 5xx.
// When enabled is false nothing is logged.
func AccessLog(logger *slog.Logger, enabled bool) echo.MiddlewareFunc {
	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    true,
		Filters: []slogecho.Filter{
			func(echo.Context) bool { return enabled },
		},
	})
}

// TagCaller adds the caller uid to the access log line of the current request.
func TagCaller(c echo.Context, uid string) {
	slogecho.AddCustomAttributes(c, slog.String("uid", uid))
}
