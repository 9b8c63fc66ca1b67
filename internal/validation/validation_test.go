package validation

import (
	"strings"
	"testing"

	domainerrors "contacts/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string  `json:"username" validate:"required,min=1,max=5"`
	Nick     *string `json:"nick,omitempty" validate:"omitnil,min=1,max=3"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Page     int     `json:"page" validate:"gte=1"`
	Internal string  `json:"-" validate:"required"`
}

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)

	out := make(map[string]string, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		out[f.Field] = f.Message
	}

	return out
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Username: "alice", Page: 1, Internal: "x"})
	assert.NoError(t, err)

	err = v.Validate(&sample{Username: "alice", Nick: strPtr("al"), Email: strPtr("a@x.com"), Page: 3, Internal: "x"})
	assert.NoError(t, err)
}

func TestValidate_CollectsEveryField(t *testing.T) {
	v := New()

	err := v.Validate(&sample{
		Username: strings.Repeat("a", 6),
		Nick:     strPtr(""),
		Email:    strPtr("not-an-email"),
		Page:     0,
		Internal: "x",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fields := fieldsOf(t, err)
	assert.Equal(t, "must be at most 5 characters", fields["username"])
	assert.Equal(t, "must be at least 1 characters", fields["nick"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be greater than or equal to 1", fields["page"])
	assert.Len(t, fields, 4)
}

func TestValidate_Required(t *testing.T) {
	fields := fieldsOf(t, New().Validate(&sample{Page: 1, Internal: "x"}))

	assert.Equal(t, "is required", fields["username"])
}

func TestValidate_CountsRunes(t *testing.T) {
	// five runes, more than five bytes
	assert.NoError(t, New().Validate(&sample{Username: "ñññññ", Page: 1, Internal: "x"}))
}

func TestValidate_NotAStruct(t *testing.T) {
	err := New().Validate("plain string")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
