package dto

import (
	"time"
)

// CreateCampaignRequest is the payload for POST /campaigns and
// PUT /campaigns/{id}. raised_amount is not accepted from clients.
type CreateCampaignRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	GoalAmount  float64   `json:"goal_amount" binding:"min=0"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// DonateRequest is the payload for POST /campaigns/{id}/donate. Amount is
// bound as a raw JSON value so a non-numeric amount is reported as a
// validation failure rather than a binding type error.
type DonateRequest struct {
	Amount  interface{} `json:"amount"`
	Message *string     `json:"message"`
}
