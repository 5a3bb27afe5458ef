package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/service"
	mockSvc "bloodlink/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("valid token stores caller", func(t *testing.T) {
		verifier := mockSvc.NewMockTokenVerifier(t)
		caller := &entity.Caller{UID: "u1", Email: "a@b.c", EmailVerified: true}
		verifier.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(caller, nil)

		m := NewAuthMiddleware(verifier, logger)
		c, _ := newAuthContext("Bearer tok")

		var seen *entity.Caller
		err := m.Authenticate(func(c echo.Context) error {
			seen = deliverycontext.GetCallerFromContext(c.Request().Context())

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, caller, seen)
		assert.Equal(t, caller, deliverycontext.GetCaller(c))
	})

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenVerifier(t), logger)
		c, _ := newAuthContext("")

		err := m.Authenticate(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenVerifier(t), logger)
		c, _ := newAuthContext("Basic abc")

		err := m.Authenticate(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("rejected token", func(t *testing.T) {
		verifier := mockSvc.NewMockTokenVerifier(t)
		verifier.EXPECT().VerifyIDToken(mock.Anything, "bad").Return(nil, service.ErrInvalidIDToken)

		m := NewAuthMiddleware(verifier, logger)
		c, _ := newAuthContext("bearer bad")

		called := false
		err := m.Authenticate(func(echo.Context) error {
			called = true

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		assert.False(t, called)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewErrorMiddleware(logger)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app error",
			err:        domainerrors.ErrRequestNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"NOT_FOUND","message":"Request not found."`,
		},
		{
			name:       "internal keeps collaborator message",
			err:        domainerrors.Internal(context.DeadlineExceeded, "Failed to load requests."),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL","message":"context deadline exceeded"`,
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"NOT_FOUND"`,
		},
		{
			name:       "unclassified",
			err:        io.ErrUnexpectedEOF,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"Server error occurred."`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
