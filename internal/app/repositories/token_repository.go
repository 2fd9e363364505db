package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/dberrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// TokenRepository handles bearer token storage. A token is valid only while
// its row exists; logout deletes the row.
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new token for a user
func (r *TokenRepository) Create(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	sql, args, err := r.sb.Insert("auth_tokens").
		Columns("token", "user_id", "expiry_date", "created_at").
		Values(token, userID, expiryDate, time.Now()).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create token query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "auth_tokens_token_key") {
			logger.Warn().Int64("userID", userID).Msg("Attempted to store duplicate token")
			return apperrors.ErrTokenInvalid
		}
		return fmt.Errorf("error creating token: %w", err)
	}

	return nil
}

// GetByValue looks up a stored token and returns the owning user ID. A
// missing row means the token was never issued or has been revoked.
func (r *TokenRepository) GetByValue(ctx context.Context, token string) (int64, error) {
	var userID int64
	var expiryDate time.Time

	sql, args, err := r.sb.Select("user_id", "expiry_date").
		From("auth_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build get token query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&userID, &expiryDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenNotFound
		}
		return 0, fmt.Errorf("error retrieving token: %w", err)
	}

	if expiryDate.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}

	return userID, nil
}

// GetActiveByUserID returns the stored unexpired token for a user, if any.
// Login reuses this token instead of issuing a new one.
func (r *TokenRepository) GetActiveByUserID(ctx context.Context, userID int64) (string, error) {
	var token string

	sql, args, err := r.sb.Select("token").
		From("auth_tokens").
		Where(squirrel.And{
			squirrel.Eq{"user_id": userID},
			squirrel.Gt{"expiry_date": time.Now()},
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("failed to build get active token query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrTokenNotFound
		}
		return "", fmt.Errorf("error retrieving active token: %w", err)
	}

	return token, nil
}

// DeleteByUserID removes all tokens for a user. Revocation is immediate:
// the next lookup simply finds no row.
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Delete("auth_tokens").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build delete token query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting tokens: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// DeleteExpired removes expired tokens
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Delete("auth_tokens").
		Where(squirrel.Lt{"expiry_date": time.Now()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build cleanup tokens query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error cleaning up tokens: %w", err)
	}

	deletedCount := cmdTag.RowsAffected()
	if deletedCount > 0 {
		logger.Info().Int64("deletedCount", deletedCount).Msg("Cleaned up expired tokens")
	}

	return deletedCount, nil
}
