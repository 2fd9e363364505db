package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name   string
		raised float64
		goal   float64
		want   float64
	}{
		{"half way", 500, 1000, 50},
		{"two decimals", 500.50, 1000, 50.05},
		{"over goal", 1500, 1000, 150},
		{"zero raised", 0, 1000, 0},
		{"zero goal", 500, 0, 0},
		{"negative goal", 500, -10, 0},
		{"rounding", 1, 3, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercentage(tt.raised, tt.goal))
		})
	}
}

func TestComputeProgress(t *testing.T) {
	campaign := &FundraisingCampaign{GoalAmount: 2000, RaisedAmount: 750}
	campaign.ComputeProgress()
	assert.Equal(t, 37.5, campaign.ProgressPercentage)
}

func TestDonationJSONEmbedsDonorAndCampaign(t *testing.T) {
	donation := Donation{
		ID:     1,
		Amount: 100,
		Date:   time.Now(),
		Donor:  &User{ID: 2, Username: "jdoe"},
		Campaign: &FundraisingCampaign{
			ID:           3,
			Title:        "Library Fund",
			GoalAmount:   1000,
			RaisedAmount: 100,
		},
	}

	data, err := json.Marshal(donation)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "amount")
	assert.Contains(t, decoded, "date")
	assert.Contains(t, decoded, "donor")
	assert.Contains(t, decoded, "campaign")

	campaign, ok := decoded["campaign"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Library Fund", campaign["title"])
}
