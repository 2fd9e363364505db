package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO job_postings (posted_by, title, description, company, location, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, posted_at`,
		job.PostedByID, job.Title, job.Description, job.Company, job.Location, job.Deadline).
		Scan(&job.ID, &job.PostedAt)

	if err != nil {
		return fmt.Errorf("error creating job posting: %w", err)
	}

	return nil
}

func (r *JobRepository) jobSelect() string {
	return fmt.Sprintf(`
		SELECT j.id, j.posted_by, j.title, j.description, j.company, j.location,
			j.posted_at, j.deadline,
			%s
		FROM job_postings j
		JOIN users u ON u.id = j.posted_by`, userColumns("u"))
}

func scanJobPosting(row pgx.Row) (*models.JobPosting, error) {
	job := &models.JobPosting{PostedBy: &models.User{}}
	dest := []interface{}{
		&job.ID, &job.PostedByID, &job.Title, &job.Description, &job.Company,
		&job.Location, &job.PostedAt, &job.Deadline,
	}
	dest = append(dest, userFields(job.PostedBy)...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return job, nil
}

// GetByID retrieves a job posting with its poster embedded
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	job, err := scanJobPosting(r.db.QueryRow(ctx, r.jobSelect()+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, fmt.Errorf("error retrieving job posting: %w", err)
	}

	return job, nil
}

// GetAll retrieves all job postings
func (r *JobRepository) GetAll(ctx context.Context) ([]*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, r.jobSelect()+` ORDER BY j.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// Update updates a job posting's fields. posted_by and posted_at never
// change.
func (r *JobRepository) Update(ctx context.Context, job *models.JobPosting) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE job_postings
		SET title = $1, description = $2, company = $3, location = $4, deadline = $5
		WHERE id = $6`,
		job.Title, job.Description, job.Company, job.Location, job.Deadline, job.ID)

	if err != nil {
		return fmt.Errorf("error updating job posting: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobPostingNotFound
	}

	return nil
}

// Delete removes a job posting
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job posting: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobPostingNotFound
	}

	return nil
}
