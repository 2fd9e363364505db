// Package services contains the business logic layer. Services validate
// input, enforce ownership rules and compose repository calls; controllers
// stay thin on top of them.
package services

import (
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	UserService        *UserService
	EventService       *EventService
	MentorshipService  *MentorshipService
	JobService         *JobService
	FundraisingService *FundraisingService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, tokenService *auth.TokenService) *Services {
	return &Services{
		AuthService:        NewAuthService(repos.UserRepository, repos.TokenRepository, tokenService),
		UserService:        NewUserService(repos.UserRepository),
		EventService:       NewEventService(repos.EventRepository, repos.RegistrationRepository),
		MentorshipService:  NewMentorshipService(repos.MentorshipRepository, repos.UserRepository),
		JobService:         NewJobService(repos.JobRepository),
		FundraisingService: NewFundraisingService(repos.CampaignRepository, repos.DonationRepository, repos.UserRepository),
	}
}

// resolveRole validates a requested account role. An omitted role falls back
// to student, matching the column default.
func resolveRole(requested string) (models.Role, error) {
	if requested == "" {
		return models.RoleStudent, nil
	}

	role := models.Role(requested)
	if !role.IsValid() {
		return "", apperrors.NewValidationError("Invalid role")
	}
	return role, nil
}
