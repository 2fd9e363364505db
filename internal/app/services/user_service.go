package services

import (
	"context"
	"fmt"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// UserService handles user directory operations
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Create adds a user directly to the directory. Unlike registration it
// returns the user only, without a token.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
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

	user.Password = ""
	return user, nil
}

// GetAll returns all users
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetByID returns a single user
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAlumni returns all users with the alumni role
func (s *UserService) GetAlumni(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetByRole(ctx, models.RoleAlumni)
}

// Update replaces a user's profile fields. The password is never changed
// here.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := models.Role(req.Role)
	if role == "" {
		role = existing.Role
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("Invalid role")
	}

	if req.Username != existing.Username {
		if exists, err := s.userRepo.UsernameExists(ctx, req.Username); err != nil {
			return nil, err
		} else if exists {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
	}

	if req.Email != existing.Email {
		if exists, err := s.userRepo.EmailExists(ctx, req.Email); err != nil {
			return nil, err
		} else if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	existing.Username = req.Username
	existing.Email = req.Email
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Role = role
	existing.Phone = req.Phone
	existing.LinkedIn = req.LinkedIn
	existing.Batch = req.Batch
	existing.Department = req.Department
	existing.CurrentOrg = req.CurrentOrg
	existing.Designation = req.Designation

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete removes a user together with everything the user owns
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
