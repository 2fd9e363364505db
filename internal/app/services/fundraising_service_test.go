package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    interface{}
		want   float64
		wantOK bool
	}{
		{"json number", float64(100.50), 100.50, true},
		{"numeric string", "250.75", 250.75, true},
		{"integer string", "42", 42, true},
		{"json.Number", json.Number("13.37"), 13.37, true},
		{"int", 7, 7, true},
		{"int64", int64(9), 9, true},
		{"word", "fifty", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"object", map[string]interface{}{"value": 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
