// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser returns the user placed on the context by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on request")
	}

	return user, nil
}

// bind decodes the request body, reporting malformed input as a validation error.
func bind(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return errors.Wrap(
			domainerrors.NewValidationError(domainerrors.FieldError{Field: "body", Message: "is malformed"}),
			err.Error(),
		)
	}

	return nil
}

// contactIDParam parses the :id path parameter.
func contactIDParam(c echo.Context) (int64, error) {
	return parseInt64Field("id", c.Param("id"))
}

// queryInt parses an optional integer query parameter; absent means zero.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, notANumber(name)
	}

	return value, nil
}

func parseInt64Field(name, raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, notANumber(name)
	}

	return value, nil
}

func notANumber(field string) error {
	return domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Message: "must be a number"})
}
