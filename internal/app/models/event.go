package models

import (
	"time"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	CreatedByID int64     `json:"-" db:"created_by"`
	CreatedBy   *User     `json:"created_by,omitempty"` // Relation, no db tag

	// RegistrationsCount is derived from the registrations table
	RegistrationsCount int64 `json:"registrations_count"`
}

// EventRegistration links a user to an event based on the
// 'event_registrations' table. One row per (event, user) pair.
type EventRegistration struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"-" db:"event_id"`
	UserID       int64     `json:"-" db:"user_id"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
	Event        *Event    `json:"event,omitempty"` // Relation, no db tag
	User         *User     `json:"user,omitempty"`  // Relation, no db tag
}
