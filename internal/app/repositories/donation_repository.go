package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/db"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// DonationRepository handles database operations for donations
type DonationRepository struct {
	db *pgxpool.Pool
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{
		db: db,
	}
}

// CreateWithCampaignIncrement inserts a donation and bumps the campaign's
// raised_amount in the same transaction. The increment is a single UPDATE
// expression, so concurrent donations never lose money to a read-modify-write
// race. Rolls back both statements if the campaign row is gone.
func (r *DonationRepository) CreateWithCampaignIncrement(ctx context.Context, donation *models.Donation) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO donations (campaign_id, donor_id, amount, message)
			VALUES ($1, $2, $3, $4)
			RETURNING id, date`,
			donation.CampaignID, donation.DonorID, donation.Amount, donation.Message).
			Scan(&donation.ID, &donation.Date)

		if err != nil {
			return fmt.Errorf("error creating donation: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE fundraising_campaigns
			SET raised_amount = raised_amount + $1
			WHERE id = $2`,
			donation.Amount, donation.CampaignID)

		if err != nil {
			return fmt.Errorf("error updating campaign raised amount: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCampaignNotFound
		}

		return nil
	})
}

// GetByCampaignID retrieves all donations for a campaign with the donor and
// the campaign itself embedded
func (r *DonationRepository) GetByCampaignID(ctx context.Context, campaignID int64) ([]*models.Donation, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.campaign_id, d.donor_id, d.amount, d.message, d.date,
			c.title, c.description, c.goal_amount, c.raised_amount,
			c.start_date, c.end_date, c.created_by,
			(SELECT COUNT(*) FROM donations dc WHERE dc.campaign_id = c.id),
			%s,
			%s
		FROM donations d
		JOIN fundraising_campaigns c ON c.id = d.campaign_id
		JOIN users cu ON cu.id = c.created_by
		JOIN users u ON u.id = d.donor_id
		WHERE d.campaign_id = $1
		ORDER BY d.id`, userColumns("cu"), userColumns("u"))

	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []*models.Donation
	for rows.Next() {
		donation := &models.Donation{
			Campaign: &models.FundraisingCampaign{CreatedBy: &models.User{}},
			Donor:    &models.User{},
		}

		dest := []interface{}{
			&donation.ID, &donation.CampaignID, &donation.DonorID,
			&donation.Amount, &donation.Message, &donation.Date,
			&donation.Campaign.Title, &donation.Campaign.Description,
			&donation.Campaign.GoalAmount, &donation.Campaign.RaisedAmount,
			&donation.Campaign.StartDate, &donation.Campaign.EndDate,
			&donation.Campaign.CreatedByID, &donation.Campaign.DonationsCount,
		}
		dest = append(dest, userFields(donation.Campaign.CreatedBy)...)
		dest = append(dest, userFields(donation.Donor)...)

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		donation.Campaign.ID = donation.CampaignID
		donation.Campaign.ComputeProgress()
		donations = append(donations, donation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
