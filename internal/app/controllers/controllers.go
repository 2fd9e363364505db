// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	UserController       *UserController
	EventController      *EventController
	MentorshipController *MentorshipController
	JobController        *JobController
	CampaignController   *CampaignController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		UserController:       NewUserController(svcs.UserService),
		EventController:      NewEventController(svcs.EventService),
		MentorshipController: NewMentorshipController(svcs.MentorshipService),
		JobController:        NewJobController(svcs.JobService),
		CampaignController:   NewCampaignController(svcs.FundraisingService),
	}
}

// parseIDParam reads a numeric path parameter. On failure it writes a 400
// response and reports ok=false; the handler just returns.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
