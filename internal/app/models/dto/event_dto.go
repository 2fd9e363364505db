package dto

import (
	"time"
)

// CreateEventRequest is the payload for POST /events and PUT /events/{id}.
// All fields are required; created_by always comes from the caller.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
}
