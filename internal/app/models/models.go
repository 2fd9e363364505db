// Package models defines the database-backed entities of the alumni network.
package models

// Role is the account role stored on a user
type Role string

const (
	RoleAlumni  Role = "alumni"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAlumni, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

// MentorshipStatus is the lifecycle state of a mentorship request
type MentorshipStatus string

const (
	MentorshipPending  MentorshipStatus = "pending"
	MentorshipAccepted MentorshipStatus = "accepted"
	MentorshipRejected MentorshipStatus = "rejected"
)
