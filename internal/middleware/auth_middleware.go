// Package middleware contains the gin middleware of the API: bearer token
// authentication and central error-to-status mapping.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
)

// Context keys set by RequireAuth
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware authenticates requests with bearer tokens. A token must
// carry a valid signature AND still have a row in auth_tokens; logout
// removes the row so revocation takes effect on the next request.
type AuthMiddleware struct {
	tokenService *auth.TokenService
	tokenRepo    *repositories.TokenRepository
	userRepo     *repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(
	tokenService *auth.TokenService,
	tokenRepo *repositories.TokenRepository,
	userRepo *repositories.UserRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		tokenRepo:    tokenRepo,
		userRepo:     userRepo,
	}
}

// RequireAuth rejects requests without a live bearer token and stores the
// caller's identity on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authentication required", "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "Authentication required", "Invalid token format")
			return
		}

		claims, err := m.tokenService.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Authentication failed", "Token has expired")
			} else {
				abortUnauthorized(c, "Authentication failed", "Invalid token")
			}
			return
		}

		// The signature alone is not enough: the token must still be stored
		userID, err := m.tokenRepo.GetByValue(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				abortUnauthorized(c, "Authentication failed", "Token has expired")
			} else {
				abortUnauthorized(c, "Authentication failed", "Token has been revoked")
			}
			return
		}

		if userID != claims.UserID {
			abortUnauthorized(c, "Authentication failed", "Invalid token")
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c, "Authentication failed", "Unknown account")
			return
		}

		if !user.IsActive {
			abortUnauthorized(c, "Authentication failed", "Account is disabled")
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, string(user.Role))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message).WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// CallerID returns the authenticated user ID stored by RequireAuth.
func CallerID(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
