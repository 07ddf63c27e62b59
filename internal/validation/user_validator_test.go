package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidator_ValidateName(t *testing.T) {
	uv := NewUserValidator()

	assert.NoError(t, uv.ValidateName("Alex"))

	err := uv.ValidateName("   ")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "Name cannot be empty.")
}

func TestUserValidator_ValidateEmail(t *testing.T) {
	uv := NewUserValidator()

	assert.NoError(t, uv.ValidateEmail("alex@email.com"))

	err := uv.ValidateEmail("not-an-email")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Must contain '@'")

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	fieldErrors := validationErr.GetFieldErrors("email")
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, ErrorTypeInvalidFormat, fieldErrors[0].Type)
}

func TestUserValidator_GetValidName(t *testing.T) {
	uv := NewUserValidator()

	name, err := uv.GetValidName("  Alex  ")
	require.NoError(t, err)
	assert.Equal(t, "Alex", name)

	_, err = uv.GetValidName("")
	assert.Error(t, err)
}
