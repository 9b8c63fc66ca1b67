package errors

import (
	"net/http"
	"testing"

	"contacts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapKeepsAppError(t *testing.T) {
	err := ErrContactNotFound.WrapMessage("get contact")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "CONTACT_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrContactNotFound))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrUserAlreadyExists.WithDetails("alice")

	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
	assert.Equal(t, "alice", err.Details())
	assert.Nil(t, ErrUserAlreadyExists.Details(), "predefined error must not be mutated")
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "username", Message: "is required"},
		FieldError{Field: "name", Message: "must be at most 100 characters"},
	)
	wrapped := errors.Wrap(err, "register user")

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
	assert.Contains(t, err.Error(), "username: is required")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Len(t, appErr.Details(), 2)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to create contact")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}
