package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/backend/internal/pkg/auth"
)

func newTestAuthMiddleware() *AuthMiddleware {
	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthMiddleware(tokenService, nil, nil)
}

func performAuthRequest(t *testing.T, m *AuthMiddleware, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	w := performAuthRequest(t, newTestAuthMiddleware(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing")
}

func TestRequireAuthRejectsMalformedToken(t *testing.T) {
	w := performAuthRequest(t, newTestAuthMiddleware(), "Bearer definitely-not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireAuthRejectsExpiredSignature(t *testing.T) {
	expiredService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "test",
	})
	token, _, err := expiredService.Generate(1, "jdoe", "alumni")
	require.NoError(t, err)

	w := performAuthRequest(t, newTestAuthMiddleware(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestRequireAuthRejectsForeignSignature(t *testing.T) {
	foreignService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "another-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	token, _, err := foreignService.Generate(1, "jdoe", "alumni")
	require.NoError(t, err)

	w := performAuthRequest(t, newTestAuthMiddleware(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCallerID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, int64(0), CallerID(c))

	c.Set(ContextUserID, int64(7))
	assert.Equal(t, int64(7), CallerID(c))
}
