package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// MentorshipController handles mentorship requests
type MentorshipController struct {
	mentorshipService *services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
	}
}

// CreateRequest files a mentorship request
// @Summary Request mentorship
// @Description Files a pending request from the caller to the chosen mentor
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Mentorship request"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipRequest} "Request created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests [post]
func (c *MentorshipController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.mentorshipService.Create(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// ListRequests retrieves the caller's mentorship requests
// @Summary List my mentorship requests
// @Description Returns requests where the caller is mentor or mentee
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Requests retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests [get]
func (c *MentorshipController) ListRequests(ctx *gin.Context) {
	requests, err := c.mentorshipService.ListForUser(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// Respond lets a mentor accept or reject a request
// @Summary Respond to a mentorship request
// @Description Accepts or rejects a pending request. Only the mentor of the
// request can respond; anyone else sees a 404.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param action path string true "accept or reject"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipRequest} "Request updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID or action"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/{id}/{action} [post]
func (c *MentorshipController) Respond(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.mentorshipService.Respond(ctx.Request.Context(), id, middleware.CallerID(ctx), ctx.Param("action"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}
