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

// MentorshipRepository handles database operations for mentorship requests
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new mentorship repository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
	}
}

// Create inserts a new mentorship request with pending status
func (r *MentorshipRepository) Create(ctx context.Context, request *models.MentorshipRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentorship_requests (mentor_id, mentee_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, requested_at`,
		request.MentorID, request.MenteeID, request.Message, request.Status).
		Scan(&request.ID, &request.RequestedAt)

	if err != nil {
		return fmt.Errorf("error creating mentorship request: %w", err)
	}

	return nil
}

func (r *MentorshipRepository) requestSelect() string {
	return fmt.Sprintf(`
		SELECT mr.id, mr.mentor_id, mr.mentee_id, mr.message, mr.status, mr.requested_at,
			%s,
			%s
		FROM mentorship_requests mr
		JOIN users m ON m.id = mr.mentor_id
		JOIN users t ON t.id = mr.mentee_id`, userColumns("m"), userColumns("t"))
}

func scanMentorshipRequest(row pgx.Row) (*models.MentorshipRequest, error) {
	request := &models.MentorshipRequest{
		Mentor: &models.User{},
		Mentee: &models.User{},
	}

	dest := []interface{}{
		&request.ID, &request.MentorID, &request.MenteeID,
		&request.Message, &request.Status, &request.RequestedAt,
	}
	dest = append(dest, userFields(request.Mentor)...)
	dest = append(dest, userFields(request.Mentee)...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return request, nil
}

// GetByID retrieves a mentorship request with both parties embedded
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	request, err := scanMentorshipRequest(r.db.QueryRow(ctx, r.requestSelect()+` WHERE mr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}

	return request, nil
}

// GetByIDAndMentor retrieves a request only when the given user is its
// mentor. A request owned by someone else behaves exactly like a missing
// one.
func (r *MentorshipRepository) GetByIDAndMentor(ctx context.Context, id, mentorID int64) (*models.MentorshipRequest, error) {
	request, err := scanMentorshipRequest(
		r.db.QueryRow(ctx, r.requestSelect()+` WHERE mr.id = $1 AND mr.mentor_id = $2`, id, mentorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}

	return request, nil
}

// GetForUser retrieves all requests where the user is mentor or mentee
func (r *MentorshipRepository) GetForUser(ctx context.Context, userID int64) ([]*models.MentorshipRequest, error) {
	rows, err := r.db.Query(ctx,
		r.requestSelect()+` WHERE mr.mentor_id = $1 OR mr.mentee_id = $1 ORDER BY mr.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.MentorshipRequest
	for rows.Next() {
		request, err := scanMentorshipRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus sets the status of a request
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, id int64, status models.MentorshipStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE mentorship_requests SET status = $1 WHERE id = $2`,
		status, id)

	if err != nil {
		return fmt.Errorf("error updating mentorship request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipRequestNotFound
	}

	return nil
}
