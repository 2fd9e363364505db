package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationErrorWithFieldErrors(t *testing.T) {
	validate := validator.New()

	type payload struct {
		Email    string `validate:"required,email"`
		Username string `validate:"required"`
	}

	err := validate.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Validation failed", detail.Message)

	details, ok := detail.Details.([]string)
	require.True(t, ok)
	assert.Contains(t, details, "Email must be a valid email address")
	assert.Contains(t, details, "Username is required")
}

func TestHandleValidationErrorWithGenericError(t *testing.T) {
	detail := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Invalid request format", detail.Message)
	assert.Equal(t, "unexpected EOF", detail.Details)
}

func TestNewErrorResponse(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeResourceNotFound, "Event not found").WithField("id")
	resp := NewErrorResponse(detail)

	assert.False(t, resp.Success)
	assert.Equal(t, detail, resp.Error)
	assert.Equal(t, ErrorSeverityError, resp.Error.Severity)
	assert.False(t, resp.Timestamp.IsZero())
}
