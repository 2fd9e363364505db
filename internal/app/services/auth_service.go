package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

const minPasswordLength = 8

// AuthService handles registration, login and logout
type AuthService struct {
	userRepo     *repositories.UserRepository
	tokenRepo    *repositories.TokenRepository
	tokenService *auth.TokenService
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	tokenService *auth.TokenService,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
	}
}

// Register creates a new account and returns it with a fresh bearer token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.NewValidationError("Passwords do not match")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("Password must be at least 8 characters long")
	}

	role, err := resolveRole(req.Role)
	if err != nil {
		return nil, err
	}

	if exists, err := s.userRepo.UsernameExists(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	if exists, err := s.userRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        role,
		Phone:       req.Phone,
		LinkedIn:    req.LinkedIn,
		Batch:       req.Batch,
		Department:  req.Department,
		CurrentOrg:  req.CurrentOrg,
		Designation: req.Designation,
		IsActive:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiry, err := s.tokenService.Generate(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Create(ctx, token, user.ID, expiry); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")

	user.Password = ""
	return &dto.AuthResponse{User: user, Token: token}, nil
}

// Login authenticates a user by username and password. If the user already
// holds a live token the same token is returned again, so repeated logins
// are idempotent until logout or expiry.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, err := s.tokenRepo.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, err
		}

		var expiry time.Time
		token, expiry, err = s.tokenService.Generate(user.ID, user.Username, string(user.Role))
		if err != nil {
			return nil, err
		}

		if err := s.tokenRepo.Create(ctx, token, user.ID, expiry); err != nil {
			return nil, err
		}
	}

	logger.Debug().Int64("userID", user.ID).Msg("User logged in")

	user.Password = ""
	return &dto.AuthResponse{User: user, Token: token}, nil
}

// Logout revokes all tokens of the user. A logout with no live token is
// reported as a bad request.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.NewBadRequestError("Error logging out")
		}
		return err
	}

	logger.Debug().Int64("userID", userID).Msg("User logged out")
	return nil
}
