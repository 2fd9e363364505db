package models

import (
	"time"
)

// JobPosting defines the job posting model based on the 'job_postings' table
type JobPosting struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Company     string     `json:"company" db:"company"`
	Location    string     `json:"location" db:"location"`
	PostedByID  int64      `json:"-" db:"posted_by"`
	PostedAt    time.Time  `json:"posted_at" db:"posted_at"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	PostedBy    *User      `json:"posted_by,omitempty"` // Relation, no db tag
}
