package models

import (
	"math"
	"time"
)

// FundraisingCampaign defines the campaign model based on the
// 'fundraising_campaigns' table. RaisedAmount is maintained by the server
// and only changes through donation creation.
type FundraisingCampaign struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	GoalAmount   float64   `json:"goal_amount" db:"goal_amount"`
	RaisedAmount float64   `json:"raised_amount" db:"raised_amount"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	EndDate      time.Time `json:"end_date" db:"end_date"`
	CreatedByID  int64     `json:"-" db:"created_by"`
	CreatedBy    *User     `json:"created_by,omitempty"` // Relation, no db tag

	// DonationsCount is derived from the donations table
	DonationsCount int64 `json:"donations_count"`
	// ProgressPercentage is raised/goal as a percentage, 0 when goal is 0
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ComputeProgress fills ProgressPercentage from the amounts. A zero goal
// yields 0 rather than a division error.
func (c *FundraisingCampaign) ComputeProgress() {
	c.ProgressPercentage = ProgressPercentage(c.RaisedAmount, c.GoalAmount)
}

// ProgressPercentage returns raised/goal*100 rounded to two decimals,
// or 0 when goal is not positive.
func ProgressPercentage(raised, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Round(raised/goal*100*100) / 100
}

// Donation defines the donation model based on the 'donations' table
type Donation struct {
	ID         int64                `json:"id" db:"id"`
	DonorID    int64                `json:"-" db:"donor_id"`
	CampaignID int64                `json:"-" db:"campaign_id"`
	Amount     float64              `json:"amount" db:"amount"`
	Message    *string              `json:"message,omitempty" db:"message"`
	Date       time.Time            `json:"date" db:"date"`
	Donor      *User                `json:"donor,omitempty"`    // Relation, no db tag
	Campaign   *FundraisingCampaign `json:"campaign,omitempty"` // Relation, no db tag
}
