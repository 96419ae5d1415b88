package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Location(t *testing.T) {
	online := Event{LocationType: "online", VenueName: "Ignored Hall", City: "Ignored"}
	assert.Equal(t, "Online", online.Location())

	venue := Event{LocationType: "venue", VenueName: "Grand Convention Center", City: "New York"}
	assert.Equal(t, "Grand Convention Center, New York", venue.Location())

	cityOnly := Event{LocationType: "venue", City: "Chicago"}
	assert.Equal(t, "Chicago", cityOnly.Location())

	venueOnly := Event{LocationType: "venue", VenueName: "Central Park Amphitheater"}
	assert.Equal(t, "Central Park Amphitheater", venueOnly.Location())

	empty := Event{LocationType: "venue"}
	assert.Equal(t, "", empty.Location())
}

func TestTicket_Fallbacks(t *testing.T) {
	orphan := Ticket{}
	assert.Equal(t, "Unknown Event", orphan.EventTitle())
	assert.Equal(t, "Ticket", orphan.TierName())

	linked := Ticket{
		Event: &Event{Title: "Jazz Nights Special"},
		Tier:  &TicketTier{Name: "VIP"},
	}
	assert.Equal(t, "Jazz Nights Special", linked.EventTitle())
	assert.Equal(t, "VIP", linked.TierName())
}

func TestOrder_EventTitle(t *testing.T) {
	orphan := Order{}
	assert.Equal(t, "Unknown Event", orphan.EventTitle())

	linked := Order{Event: &Event{Title: "Global Business Expo"}}
	assert.Equal(t, "Global Business Expo", linked.EventTitle())
}

func TestUser_FirstName(t *testing.T) {
	named := User{FullName: "Ada Lovelace", Email: "ada@example.com"}
	assert.Equal(t, "Ada", named.FirstName())

	emailOnly := User{Email: "grace.hopper@example.com"}
	assert.Equal(t, "grace.hopper", emailOnly.FirstName())

	empty := User{}
	assert.Equal(t, "there", empty.FirstName())
}

func TestUser_DisplayName(t *testing.T) {
	named := User{FullName: "Ada Lovelace", Email: "ada@example.com"}
	assert.Equal(t, "Ada Lovelace", named.DisplayName())

	emailOnly := User{Email: "ada@example.com"}
	assert.Equal(t, "ada@example.com", emailOnly.DisplayName())
}

func TestUser_PasswordConnection(t *testing.T) {
	password := User{Auth0ID: "auth0|abc123"}
	assert.True(t, password.PasswordConnection())

	social := User{Auth0ID: "google-oauth2|987654"}
	assert.False(t, social.PasswordConnection())

	empty := User{}
	assert.False(t, empty.PasswordConnection())
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, "light", settings.Theme)
	assert.True(t, settings.Notifications)
}
