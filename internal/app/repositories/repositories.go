// Package repositories contains the typed data-access layer. Each entity has
// its own repository over the shared pgx pool; multi-row deletes and the
// donation balance update run inside explicit transactions.
package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	EventRepository        *EventRepository
	RegistrationRepository *RegistrationRepository
	MentorshipRepository   *MentorshipRepository
	JobRepository          *JobRepository
	CampaignRepository     *CampaignRepository
	DonationRepository     *DonationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		EventRepository:        NewEventRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		MentorshipRepository:   NewMentorshipRepository(db),
		JobRepository:          NewJobRepository(db),
		CampaignRepository:     NewCampaignRepository(db),
		DonationRepository:     NewDonationRepository(db),
	}
}

// userColumnNames is the canonical column order used whenever a user row is
// selected for serialization. The password column is deliberately absent.
var userColumnNames = []string{
	"id", "username", "email", "first_name", "last_name", "role",
	"phone", "linkedin", "batch", "department", "current_org", "designation",
	"is_active", "date_joined",
}

// userColumns renders the canonical user column list with a table alias,
// e.g. userColumns("u") => "u.id, u.username, ...".
func userColumns(alias string) string {
	cols := make([]string, len(userColumnNames))
	for i, c := range userColumnNames {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// userFields returns scan destinations matching userColumns order.
func userFields(u *models.User) []interface{} {
	return []interface{}{
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.Phone, &u.LinkedIn, &u.Batch, &u.Department, &u.CurrentOrg, &u.Designation,
		&u.IsActive, &u.DateJoined,
	}
}
