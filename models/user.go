package models

import (
	"strings"
	"time"
)

type User struct {
	ID              string       `json:"id"`
	Auth0ID         string       `json:"auth0_id"`
	Email           string       `json:"email"`
	FullName        string       `json:"full_name"`
	Phone           string       `json:"phone,omitempty"`
	AvatarURL       string       `json:"avatar_url,omitempty"`
	Role            string       `json:"role"` // attendee, organizer, non_profit, admin
	Interests       []string     `json:"interests"`
	Settings        UserSettings `json:"settings"`
	DefaultCurrency string       `json:"default_currency"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type UserSettings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// DefaultSettings is what a user without a stored settings blob gets.
func DefaultSettings() UserSettings {
	return UserSettings{Theme: "light", Notifications: true}
}

// DisplayName returns the name shown in the dashboard header.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// FirstName returns the greeting name: the first word of the full name,
// falling back to the email local part.
func (u *User) FirstName() string {
	if u.FullName != "" {
		return strings.Fields(u.FullName)[0]
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "there"
}

// PasswordConnection reports whether the account came from the identity
// provider's username/password connection. Subjects from social logins
// carry a different prefix (e.g. "google-oauth2|...") and manage their
// password with that provider.
func (u *User) PasswordConnection() bool {
	return strings.HasPrefix(u.Auth0ID, "auth0|")
}
