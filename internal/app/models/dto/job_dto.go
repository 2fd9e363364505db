package dto

import (
	"time"
)

// CreateJobPostingRequest is the payload for POST /jobs and PUT /jobs/{id}
type CreateJobPostingRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location" binding:"required"`
	Deadline    *time.Time `json:"deadline"`
}
