package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// Register rejects these payloads before touching any repository, so a
// service without wired repositories is enough.
func newValidationOnlyAuthService() *AuthService {
	return NewAuthService(nil, nil, nil)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	svc := newValidationOnlyAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		Password:        "longenough1",
		PasswordConfirm: "longenough2",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Passwords do not match")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newValidationOnlyAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		Password:        "short1",
		PasswordConfirm: "short1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	svc := newValidationOnlyAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		Password:        "longenough1",
		PasswordConfirm: "longenough1",
		Role:            "teacher",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Invalid role")
}

func TestResolveRole(t *testing.T) {
	role, err := resolveRole("")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)

	role, err = resolveRole("alumni")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAlumni, role)

	role, err = resolveRole("admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = resolveRole("teacher")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
