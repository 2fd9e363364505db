package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// MentorshipService handles mentorship requests
type MentorshipService struct {
	mentorshipRepo *repositories.MentorshipRepository
	userRepo       *repositories.UserRepository
}

// NewMentorshipService creates a new mentorship service
func NewMentorshipService(
	mentorshipRepo *repositories.MentorshipRepository,
	userRepo *repositories.UserRepository,
) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
	}
}

// Create files a pending request from the caller to the chosen mentor
func (s *MentorshipService) Create(ctx context.Context, menteeID int64, req *dto.CreateMentorshipRequest) (*models.MentorshipRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, req.MentorID); err != nil {
		return nil, err
	}

	request := &models.MentorshipRequest{
		MentorID: req.MentorID,
		MenteeID: menteeID,
		Message:  req.Message,
		Status:   models.MentorshipPending,
	}

	if err := s.mentorshipRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.mentorshipRepo.GetByID(ctx, request.ID)
}

// ListForUser returns all requests where the caller is mentor or mentee
func (s *MentorshipService) ListForUser(ctx context.Context, userID int64) ([]*models.MentorshipRequest, error) {
	return s.mentorshipRepo.GetForUser(ctx, userID)
}

// Respond lets a mentor accept or reject a pending request. A request the
// caller does not mentor is reported as not found, before the action is
// even looked at.
func (s *MentorshipService) Respond(ctx context.Context, requestID, mentorID int64, action string) (*models.MentorshipRequest, error) {
	request, err := s.mentorshipRepo.GetByIDAndMentor(ctx, requestID, mentorID)
	if err != nil {
		return nil, err
	}

	var status models.MentorshipStatus
	switch action {
	case "accept":
		status = models.MentorshipAccepted
	case "reject":
		status = models.MentorshipRejected
	default:
		return nil, apperrors.NewBadRequestError("Invalid action")
	}

	if err := s.mentorshipRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	logger.Debug().Int64("requestID", requestID).Str("action", action).Msg("Mentorship request answered")

	request.Status = status
	return request, nil
}
