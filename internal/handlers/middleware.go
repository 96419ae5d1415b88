package handlers

import (
	"net/http"

	"empiria-profile/config"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// RoleDestination maps roles that belong to another console to that
// console's URL. Attendees stay, as do users still missing a role;
// those get steered to onboarding by the dashboard itself.
func RoleDestination(role string, cfg *config.Config) (string, bool) {
	switch role {
	case "organizer", "non_profit":
		return cfg.OrganizerURL, true
	case "admin":
		return cfg.AdminURL, true
	}
	return "", false
}

// RequireAttendee redirects tokens belonging to another console before
// any attendee handler runs. Bound on the API group after RequireAuth.
func RequireAttendee(cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return apis.NewUnauthorizedError("Unauthorized", nil)
		}
		if dest, ok := RoleDestination(e.Auth.GetString("role"), cfg); ok {
			return e.Redirect(http.StatusTemporaryRedirect, dest)
		}
		return e.Next()
	}
}
