package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// FundraisingService handles campaigns and donations
type FundraisingService struct {
	campaignRepo *repositories.CampaignRepository
	donationRepo *repositories.DonationRepository
	userRepo     *repositories.UserRepository
}

// NewFundraisingService creates a new fundraising service
func NewFundraisingService(
	campaignRepo *repositories.CampaignRepository,
	donationRepo *repositories.DonationRepository,
	userRepo *repositories.UserRepository,
) *FundraisingService {
	return &FundraisingService{
		campaignRepo: campaignRepo,
		donationRepo: donationRepo,
		userRepo:     userRepo,
	}
}

// CreateCampaign adds a campaign owned by the caller. The raised amount
// always starts at zero regardless of the request body.
func (s *FundraisingService) CreateCampaign(ctx context.Context, creatorID int64, req *dto.CreateCampaignRequest) (*models.FundraisingCampaign, error) {
	campaign := &models.FundraisingCampaign{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedByID: creatorID,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return s.campaignRepo.GetByID(ctx, campaign.ID)
}

// GetAllCampaigns returns all campaigns
func (s *FundraisingService) GetAllCampaigns(ctx context.Context) ([]*models.FundraisingCampaign, error) {
	return s.campaignRepo.GetAll(ctx)
}

// GetCampaignByID returns a single campaign
func (s *FundraisingService) GetCampaignByID(ctx context.Context, id int64) (*models.FundraisingCampaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// UpdateCampaign replaces a campaign's client-settable fields
func (s *FundraisingService) UpdateCampaign(ctx context.Context, id int64, req *dto.CreateCampaignRequest) (*models.FundraisingCampaign, error) {
	campaign := &models.FundraisingCampaign{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return s.campaignRepo.GetByID(ctx, id)
}

// DeleteCampaign removes a campaign and its donations
func (s *FundraisingService) DeleteCampaign(ctx context.Context, id int64) error {
	return s.campaignRepo.Delete(ctx, id)
}

// Donate records a donation by the caller and moves the campaign's raised
// amount atomically
func (s *FundraisingService) Donate(ctx context.Context, campaignID, donorID int64, req *dto.DonateRequest) (*models.Donation, error) {
	exists, err := s.campaignRepo.Exists(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCampaignNotFound
	}

	amount, ok := parseAmount(req.Amount)
	if !ok || amount <= 0 {
		return nil, apperrors.NewValidationError("A valid donation amount is required")
	}

	donation := &models.Donation{
		CampaignID: campaignID,
		DonorID:    donorID,
		Amount:     amount,
		Message:    req.Message,
	}

	if err := s.donationRepo.CreateWithCampaignIncrement(ctx, donation); err != nil {
		return nil, err
	}

	donor, err := s.userRepo.GetByID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	donation.Donor = donor

	// Embed the campaign as it stands after the increment
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	donation.Campaign = campaign

	logger.Info().
		Int64("campaignID", campaignID).
		Int64("donorID", donorID).
		Float64("amount", amount).
		Msg("Donation recorded")

	return donation, nil
}

// ListDonations returns all donations of a campaign
func (s *FundraisingService) ListDonations(ctx context.Context, campaignID int64) ([]*models.Donation, error) {
	exists, err := s.campaignRepo.Exists(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCampaignNotFound
	}

	return s.donationRepo.GetByCampaignID(ctx, campaignID)
}

// parseAmount accepts the JSON shapes clients send for an amount: a number,
// a numeric string, or a json.Number.
func parseAmount(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
