package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(exp time.Duration) *TokenService {
	return NewTokenService(TokenConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, expiry, err := svc.Generate(42, "jdoe", "alumni")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "alumni", claims.Role)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(-time.Minute)

	token, _, err := svc.Generate(1, "jdoe", "alumni")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	other := NewTokenService(TokenConfig{SecretKey: "other-secret", TokenExp: time.Hour, TokenIssuer: "test"})

	token, _, err := svc.Generate(1, "jdoe", "alumni")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	_, err := svc.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
