package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username        string  `json:"username" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required"`
	PasswordConfirm string  `json:"password_confirm" binding:"required"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Role            string  `json:"role" binding:"omitempty,oneof=alumni student admin"`
	Phone           *string `json:"phone"`
	LinkedIn        *string `json:"linkedin"`
	Batch           *string `json:"batch"`
	Department      *string `json:"department"`
	CurrentOrg      *string `json:"current_org"`
	Designation     *string `json:"designation"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user together with the bearer token
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
