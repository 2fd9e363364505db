package models

import (
	"time"
)

// MentorshipRequest links a mentee to a requested mentor based on the
// 'mentorship_requests' table. Status moves from pending to accepted or
// rejected by the mentor only.
type MentorshipRequest struct {
	ID          int64            `json:"id" db:"id"`
	MentorID    int64            `json:"-" db:"mentor_id"`
	MenteeID    int64            `json:"-" db:"mentee_id"`
	Message     string           `json:"message" db:"message"`
	Status      MentorshipStatus `json:"status" db:"status"`
	RequestedAt time.Time        `json:"requested_at" db:"requested_at"`
	Mentor      *User            `json:"mentor,omitempty"` // Relation, no db tag
	Mentee      *User            `json:"mentee,omitempty"` // Relation, no db tag
}
