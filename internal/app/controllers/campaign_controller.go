package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// CampaignController handles fundraising campaigns and donations
type CampaignController struct {
	fundraisingService *services.FundraisingService
}

// NewCampaignController creates a new CampaignController
func NewCampaignController(fundraisingService *services.FundraisingService) *CampaignController {
	return &CampaignController{
		fundraisingService: fundraisingService,
	}
}

// ListCampaigns retrieves all campaigns
// @Summary List fundraising campaigns
// @Tags fundraising
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FundraisingCampaign} "Campaigns retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns [get]
func (c *CampaignController) ListCampaigns(ctx *gin.Context) {
	campaigns, err := c.fundraisingService.GetAllCampaigns(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campaigns,
		Timestamp: time.Now(),
	})
}

// CreateCampaign creates a campaign
// @Summary Create a fundraising campaign
// @Description Creates a campaign owned by the caller with a zero raised amount
// @Tags fundraising
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampaignRequest true "Campaign information"
// @Success 201 {object} dto.APIResponse{data=models.FundraisingCampaign} "Campaign created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns [post]
func (c *CampaignController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	campaign, err := c.fundraisingService.CreateCampaign(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      campaign,
		Timestamp: time.Now(),
	})
}

// GetCampaign retrieves a campaign by ID
// @Summary Get campaign by ID
// @Tags fundraising
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=models.FundraisingCampaign} "Campaign retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid campaign ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns/{id} [get]
func (c *CampaignController) GetCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	campaign, err := c.fundraisingService.GetCampaignByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campaign,
		Timestamp: time.Now(),
	})
}

// UpdateCampaign updates a campaign
// @Summary Update campaign
// @Description Replaces the campaign's fields. raised_amount is untouched.
// @Tags fundraising
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.CreateCampaignRequest true "Campaign information"
// @Success 200 {object} dto.APIResponse{data=models.FundraisingCampaign} "Campaign updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns/{id} [put]
func (c *CampaignController) UpdateCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	campaign, err := c.fundraisingService.UpdateCampaign(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campaign,
		Timestamp: time.Now(),
	})
}

// DeleteCampaign removes a campaign
// @Summary Delete campaign
// @Description Deletes a campaign and its donations
// @Tags fundraising
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 204 "Campaign deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid campaign ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns/{id} [delete]
func (c *CampaignController) DeleteCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.fundraisingService.DeleteCampaign(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Donate records a donation to a campaign
// @Summary Donate to a campaign
// @Description Records a donation by the caller and updates the campaign's raised amount
// @Tags fundraising
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.DonateRequest true "Donation amount and optional message"
// @Success 201 {object} dto.APIResponse{data=models.Donation} "Donation recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing amount"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns/{id}/donate [post]
func (c *CampaignController) Donate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.DonateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	donation, err := c.fundraisingService.Donate(ctx.Request.Context(), id, middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      donation,
		Timestamp: time.Now(),
	})
}

// ListDonations retrieves all donations of a campaign
// @Summary List campaign donations
// @Tags fundraising
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Donation} "Donations retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid campaign ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campaigns/{id}/donations [get]
func (c *CampaignController) ListDonations(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	donations, err := c.fundraisingService.ListDonations(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      donations,
		Timestamp: time.Now(),
	})
}
