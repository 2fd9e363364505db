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

// CampaignRepository handles database operations for fundraising campaigns
type CampaignRepository struct {
	db *pgxpool.Pool
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{
		db: db,
	}
}

// Create inserts a new campaign. raised_amount always starts at zero.
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.FundraisingCampaign) error {
	campaign.RaisedAmount = 0

	err := r.db.QueryRow(ctx, `
		INSERT INTO fundraising_campaigns (title, description, goal_amount, raised_amount, start_date, end_date, created_by)
		VALUES ($1, $2, $3, 0, $4, $5, $6)
		RETURNING id`,
		campaign.Title, campaign.Description, campaign.GoalAmount,
		campaign.StartDate, campaign.EndDate, campaign.CreatedByID).Scan(&campaign.ID)

	if err != nil {
		return fmt.Errorf("error creating campaign: %w", err)
	}

	return nil
}

func (r *CampaignRepository) campaignSelect() string {
	return fmt.Sprintf(`
		SELECT c.id, c.title, c.description, c.goal_amount, c.raised_amount,
			c.start_date, c.end_date, c.created_by,
			(SELECT COUNT(*) FROM donations d WHERE d.campaign_id = c.id),
			%s
		FROM fundraising_campaigns c
		JOIN users u ON u.id = c.created_by`, userColumns("u"))
}

func scanCampaign(row pgx.Row) (*models.FundraisingCampaign, error) {
	campaign := &models.FundraisingCampaign{CreatedBy: &models.User{}}
	dest := []interface{}{
		&campaign.ID, &campaign.Title, &campaign.Description,
		&campaign.GoalAmount, &campaign.RaisedAmount,
		&campaign.StartDate, &campaign.EndDate, &campaign.CreatedByID,
		&campaign.DonationsCount,
	}
	dest = append(dest, userFields(campaign.CreatedBy)...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	campaign.ComputeProgress()
	return campaign, nil
}

// GetByID retrieves a campaign with its creator and donation count
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*models.FundraisingCampaign, error) {
	campaign, err := scanCampaign(r.db.QueryRow(ctx, r.campaignSelect()+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("error retrieving campaign: %w", err)
	}

	return campaign, nil
}

// GetAll retrieves all campaigns
func (r *CampaignRepository) GetAll(ctx context.Context) ([]*models.FundraisingCampaign, error) {
	rows, err := r.db.Query(ctx, r.campaignSelect()+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*models.FundraisingCampaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// Exists checks whether a campaign with the given ID exists
func (r *CampaignRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM fundraising_campaigns WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking campaign existence: %w", err)
	}

	return exists, nil
}

// Update updates a campaign's client-settable fields. raised_amount only
// moves through donation creation.
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.FundraisingCampaign) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE fundraising_campaigns
		SET title = $1, description = $2, goal_amount = $3, start_date = $4, end_date = $5
		WHERE id = $6`,
		campaign.Title, campaign.Description, campaign.GoalAmount,
		campaign.StartDate, campaign.EndDate, campaign.ID)

	if err != nil {
		return fmt.Errorf("error updating campaign: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}

// Delete removes a campaign and its donations inside one transaction
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM donations WHERE campaign_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting campaign donations: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM fundraising_campaigns WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting campaign: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCampaignNotFound
		}

		return nil
	})
}
