package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/db"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, description, date, location, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		event.Title, event.Description, event.Date, event.Location, event.CreatedByID).Scan(&event.ID)

	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

func (r *EventRepository) eventSelect() string {
	return fmt.Sprintf(`
		SELECT e.id, e.title, e.description, e.date, e.location, e.created_by,
			(SELECT COUNT(*) FROM event_registrations er WHERE er.event_id = e.id),
			%s
		FROM events e
		JOIN users u ON u.id = e.created_by`, userColumns("u"))
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{CreatedBy: &models.User{}}
	dest := []interface{}{
		&event.ID, &event.Title, &event.Description, &event.Date, &event.Location,
		&event.CreatedByID, &event.RegistrationsCount,
	}
	dest = append(dest, userFields(event.CreatedBy)...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID retrieves an event with its creator and registration count
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := scanEvent(r.db.QueryRow(ctx, r.eventSelect()+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// GetAll retrieves all events
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, r.eventSelect()+` ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Exists checks whether an event with the given ID exists
func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking event existence: %w", err)
	}

	return exists, nil
}

// Update updates an event's fields. The creator never changes.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, date = $3, location = $4
		WHERE id = $5`,
		event.Title, event.Description, event.Date, event.Location, event.ID)

	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event and its registrations inside one transaction
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM event_registrations WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting event registrations: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting event: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrEventNotFound
		}

		return nil
	})
}
