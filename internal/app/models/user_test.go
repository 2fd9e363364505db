package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONNeverExposesPassword(t *testing.T) {
	user := User{
		ID:       1,
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "$2a$12$secret-hash",
		Role:     RoleAlumni,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret-hash")
	assert.NotContains(t, string(data), "password")
}

func TestUserJSONOmitsEmptyOptionalFields(t *testing.T) {
	user := User{ID: 1, Username: "jdoe"}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "phone")
	assert.NotContains(t, decoded, "linkedin")
	assert.NotContains(t, decoded, "batch")
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAlumni.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("teacher").IsValid())
	assert.False(t, Role("").IsValid())
}
