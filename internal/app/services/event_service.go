package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// EventService handles events and event registrations
type EventService struct {
	eventRepo        *repositories.EventRepository
	registrationRepo *repositories.RegistrationRepository
}

// NewEventService creates a new event service
func NewEventService(
	eventRepo *repositories.EventRepository,
	registrationRepo *repositories.RegistrationRepository,
) *EventService {
	return &EventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

// Create adds an event owned by the caller
func (s *EventService) Create(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		CreatedByID: creatorID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, event.ID)
}

// GetAll returns all events
func (s *EventService) GetAll(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// GetByID returns a single event
func (s *EventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Update replaces an event's fields
func (s *EventService) Update(ctx context.Context, id int64, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// Delete removes an event and its registrations
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// Register signs the caller up for an event. Registering twice is not an
// error; the second call reports created=false.
func (s *EventService) Register(ctx context.Context, eventID, userID int64) (created bool, err error) {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, apperrors.ErrEventNotFound
	}

	created, err = s.registrationRepo.GetOrCreate(ctx, eventID, userID)
	if err != nil {
		return false, err
	}

	if created {
		logger.Debug().Int64("eventID", eventID).Int64("userID", userID).Msg("User registered for event")
	}

	return created, nil
}

// ListRegistrations returns the caller's event registrations
func (s *EventService) ListRegistrations(ctx context.Context, userID int64) ([]*models.EventRegistration, error) {
	return s.registrationRepo.GetByUserID(ctx, userID)
}
