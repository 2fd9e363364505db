package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
)

// JobService handles job postings
type JobService struct {
	jobRepo *repositories.JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo *repositories.JobRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// Create adds a job posting owned by the caller
func (s *JobService) Create(ctx context.Context, posterID int64, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Deadline:    req.Deadline,
		PostedByID:  posterID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return s.jobRepo.GetByID(ctx, job.ID)
}

// GetAll returns all job postings
func (s *JobService) GetAll(ctx context.Context) ([]*models.JobPosting, error) {
	return s.jobRepo.GetAll(ctx)
}

// GetByID returns a single job posting
func (s *JobService) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// Update replaces a job posting's fields
func (s *JobService) Update(ctx context.Context, id int64, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Deadline:    req.Deadline,
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return s.jobRepo.GetByID(ctx, id)
}

// Delete removes a job posting
func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobRepo.Delete(ctx, id)
}
