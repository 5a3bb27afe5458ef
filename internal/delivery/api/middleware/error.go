package middleware

import (
	"log/slog"
	"net/http"

	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.String("error", appErr.Message()),
				slog.String("cause", causeOf(appErr)),
			)
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, kindForStatus(httpErr.Code), message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, string(domainerrors.KindInternal), domainerrors.DefaultInternalMessage, nil)
}

// kindForStatus names framework errors (unknown route, body too large) with the error kinds.
func kindForStatus(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return string(domainerrors.KindUnauthenticated)
	case http.StatusForbidden:
		return string(domainerrors.KindPermissionDenied)
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return string(domainerrors.KindNotFound)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return string(domainerrors.KindInvalidArgument)
	default:
		if code >= http.StatusInternalServerError {
			return string(domainerrors.KindInternal)
		}

		return "HTTP_ERROR"
	}
}

// causeOf renders the wrapped collaborator failure with its stack trace.
func causeOf(appErr domainerrors.AppError) string {
	return errors.Trace(errors.Unwrap(appErr))
}
