package models

import (
	"strings"
	"time"
)

type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	LocationType  string    `json:"location_type"` // venue, online
	VenueName     string    `json:"venue_name,omitempty"`
	AddressText   string    `json:"address_text,omitempty"`
	City          string    `json:"city,omitempty"`
	Status        string    `json:"status"` // draft, published, cancelled, completed
	Currency      string    `json:"currency"`
}

// Location returns the display location: "Online" for online events,
// otherwise the non-empty of venue name and city joined with ", ".
func (e *Event) Location() string {
	if e.LocationType == "online" {
		return "Online"
	}
	parts := []string{}
	if e.VenueName != "" {
		parts = append(parts, e.VenueName)
	}
	if e.City != "" {
		parts = append(parts, e.City)
	}
	return strings.Join(parts, ", ")
}
