package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                 // Unique identifier for the user
	Username   string    `json:"username" db:"username" example:"jdoe"`                  // Unique login name
	Email      string    `json:"email" db:"email" example:"jdoe@example.com"`            // User's email address
	Password   string    `json:"-" db:"password"`                                        // Hashed password (excluded from JSON)
	FirstName  string    `json:"first_name" db:"first_name" example:"John"`              // User's first name
	LastName   string    `json:"last_name" db:"last_name" example:"Doe"`                 // User's last name
	Role       Role      `json:"role" db:"role" example:"alumni"`                        // Account role (alumni, student or admin)
	Phone      *string   `json:"phone,omitempty" db:"phone"`                             // Contact phone (nullable)
	LinkedIn   *string   `json:"linkedin,omitempty" db:"linkedin"`                       // LinkedIn profile URL (nullable)
	Batch      *string   `json:"batch,omitempty" db:"batch"`                             // Graduation batch, e.g. "2019" (nullable)
	Department *string   `json:"department,omitempty" db:"department"`                   // Department studied in (nullable)
	CurrentOrg *string   `json:"current_org,omitempty" db:"current_org"`                 // Current organisation (nullable)
	Designation *string  `json:"designation,omitempty" db:"designation"`                 // Current job title (nullable)
	IsActive   bool      `json:"is_active" db:"is_active" example:"true"`                // Whether the account is active
	DateJoined time.Time `json:"date_joined" db:"date_joined" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
}
