package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bloodlink/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequestID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		cloudTrace string
		want       string
	}{
		{name: "client id wins", header: " abc ", cloudTrace: "trace/1;o=1", want: "abc"},
		{name: "cloud trace", cloudTrace: "105445aa7843bc8bf206b12000100000/1;o=1", want: "105445aa7843bc8bf206b12000100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRequestID(tt.header, tt.cloudTrace))
		})
	}

	assert.Len(t, resolveRequestID("", ""), 36)
}

func TestRequestScope(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := RequestScope(logger)(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-9", seen)
	assert.Equal(t, "req-9", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, out.String(), "request_id=req-9")
}

func TestAccessLog(t *testing.T) {
	run := func(enabled bool) string {
		var out bytes.Buffer
		e := echo.New()
		e.Use(AccessLog(slog.New(slog.NewTextHandler(&out, nil)), enabled))
		e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		return out.String()
	}

	assert.Contains(t, run(true), "/ping")
	assert.Empty(t, run(false))
}

