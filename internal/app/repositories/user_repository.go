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
	"github.com/alumniconnect/backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user and fills in its generated fields
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password, first_name, last_name, role,
			phone, linkedin, batch, department, current_org, designation, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, date_joined`,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.Role,
		user.Phone, user.LinkedIn, user.Batch, user.Department, user.CurrentOrg, user.Designation,
		user.IsActive).Scan(&user.ID, &user.DateJoined)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID without the password column
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE u.id = $1`, userColumns("u"))

	err := r.db.QueryRow(ctx, query, id).Scan(userFields(user)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username including the password hash,
// for credential checks
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, email, password, first_name, last_name, role,
			phone, linkedin, batch, department, current_org, designation,
			is_active, date_joined
		FROM users
		WHERE username = $1`,
		username).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.Role,
		&user.Phone, &user.LinkedIn, &user.Batch, &user.Department, &user.CurrentOrg, &user.Designation,
		&user.IsActive, &user.DateJoined)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u ORDER BY u.id`, userColumns("u"))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(userFields(user)...); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetByRole retrieves all users with the given role
func (r *UserRepository) GetByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE u.role = $1 ORDER BY u.id`, userColumns("u"))

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(userFields(user)...); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// EmailExists checks if an email is already taken
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// Update updates a user's profile fields. The password is left untouched.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4, role = $5,
			phone = $6, linkedin = $7, batch = $8, department = $9,
			current_org = $10, designation = $11
		WHERE id = $12`,
		user.Username, user.Email, user.FirstName, user.LastName, user.Role,
		user.Phone, user.LinkedIn, user.Batch, user.Department,
		user.CurrentOrg, user.Designation, user.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user together with everything it created or participates
// in, inside one transaction. Child rows go first since the schema carries
// no ON DELETE actions.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		statements := []string{
			`DELETE FROM donations WHERE donor_id = $1`,
			`DELETE FROM donations WHERE campaign_id IN (SELECT id FROM fundraising_campaigns WHERE created_by = $1)`,
			`DELETE FROM fundraising_campaigns WHERE created_by = $1`,
			`DELETE FROM event_registrations WHERE user_id = $1`,
			`DELETE FROM event_registrations WHERE event_id IN (SELECT id FROM events WHERE created_by = $1)`,
			`DELETE FROM events WHERE created_by = $1`,
			`DELETE FROM mentorship_requests WHERE mentor_id = $1 OR mentee_id = $1`,
			`DELETE FROM job_postings WHERE posted_by = $1`,
			`DELETE FROM auth_tokens WHERE user_id = $1`,
		}

		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return fmt.Errorf("error deleting user relations: %w", err)
			}
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}
