package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/app/models"
)

// RegistrationRepository handles database operations for event registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// GetOrCreate inserts a registration for (event, user) if none exists. The
// unique constraint makes the insert race-free: of two concurrent attempts
// exactly one row survives. Returns whether a new row was created.
func (r *RegistrationRepository) GetOrCreate(ctx context.Context, eventID, userID int64) (created bool, err error) {
	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO event_registrations (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT event_registrations_event_user_key DO NOTHING
		RETURNING id`,
		eventID, userID).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: the pair is already registered
			return false, nil
		}
		return false, fmt.Errorf("error creating registration: %w", err)
	}

	return true, nil
}

// GetByUserID retrieves all registrations of a user with the event (and its
// creator) and the registrant embedded
func (r *RegistrationRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.EventRegistration, error) {
	query := fmt.Sprintf(`
		SELECT er.id, er.event_id, er.user_id, er.registered_at,
			e.title, e.description, e.date, e.location, e.created_by,
			(SELECT COUNT(*) FROM event_registrations c WHERE c.event_id = e.id),
			%s,
			%s
		FROM event_registrations er
		JOIN events e ON e.id = er.event_id
		JOIN users cu ON cu.id = e.created_by
		JOIN users u ON u.id = er.user_id
		WHERE er.user_id = $1
		ORDER BY er.id`, userColumns("cu"), userColumns("u"))

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []*models.EventRegistration
	for rows.Next() {
		reg := &models.EventRegistration{
			Event: &models.Event{CreatedBy: &models.User{}},
			User:  &models.User{},
		}

		dest := []interface{}{
			&reg.ID, &reg.EventID, &reg.UserID, &reg.RegisteredAt,
			&reg.Event.Title, &reg.Event.Description, &reg.Event.Date, &reg.Event.Location,
			&reg.Event.CreatedByID, &reg.Event.RegistrationsCount,
		}
		dest = append(dest, userFields(reg.Event.CreatedBy)...)
		dest = append(dest, userFields(reg.User)...)

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		reg.Event.ID = reg.EventID
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}
