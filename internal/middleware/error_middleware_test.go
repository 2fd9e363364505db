package middleware

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

func runHandleAPIError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"user not found", apperrors.ErrUserNotFound, 404, "User not found"},
		{"event not found", apperrors.ErrEventNotFound, 404, "Event not found"},
		{"mentorship request not found", apperrors.ErrMentorshipRequestNotFound, 404, "Mentorship request not found"},
		{"job posting not found", apperrors.ErrJobPostingNotFound, 404, "Job posting not found"},
		{"campaign not found", apperrors.ErrCampaignNotFound, 404, "Campaign not found"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, "Invalid credentials"},
		{"account disabled", apperrors.ErrAccountDisabled, 401, "Account is disabled"},
		{"token expired", apperrors.ErrTokenExpired, 401, "Token expired"},
		{"token not found", apperrors.ErrTokenNotFound, 401, "Token not found"},
		{"duplicate username", apperrors.ErrUsernameAlreadyExists, 400, "Username already exists"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, 400, "Email already exists"},
		{"validation failed", apperrors.ErrValidationFailed, 400, "Validation failed"},
		{"bad request", apperrors.ErrBadRequest, 400, "Bad request"},
		{"unknown error", errors.New("disk on fire"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runHandleAPIError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleAPIErrorUnwrapsWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("loading event: %w", apperrors.ErrEventNotFound)
	w := runHandleAPIError(wrapped)
	assert.Equal(t, 404, w.Code)
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	w := runHandleAPIError(apperrors.NewValidationError("Passwords do not match"))
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")

	w = runHandleAPIError(apperrors.NewBadRequestError("Invalid action"))
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid action")
}
