package handlers

import (
	"testing"

	"empiria-profile/config"

	"github.com/stretchr/testify/assert"
)

func TestRoleDestination(t *testing.T) {
	cfg := &config.Config{
		OrganizerURL: "https://organizer.example.com",
		AdminURL:     "https://admin.example.com",
	}

	dest, ok := RoleDestination("organizer", cfg)
	assert.True(t, ok)
	assert.Equal(t, "https://organizer.example.com", dest)

	dest, ok = RoleDestination("non_profit", cfg)
	assert.True(t, ok)
	assert.Equal(t, "https://organizer.example.com", dest)

	dest, ok = RoleDestination("admin", cfg)
	assert.True(t, ok)
	assert.Equal(t, "https://admin.example.com", dest)

	_, ok = RoleDestination("attendee", cfg)
	assert.False(t, ok)

	// no role yet is onboarding, not another console
	_, ok = RoleDestination("", cfg)
	assert.False(t, ok)
}
