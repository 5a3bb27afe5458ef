// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	domainerrors "bloodlink/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = domainerrors.InvalidArgument("Invalid request body.")

// bindAndValidate decodes path, query and body into dst and runs its validate tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errInvalidBody.WithDetails(bindDetails(err))
	}

	if err := c.Validate(dst); err != nil {
		return err
	}

	return nil
}

func bindDetails(err error) string {
	if httpErr, ok := err.(*echo.HTTPError); ok {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}

		return http.StatusText(httpErr.Code)
	}

	return err.Error()
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
