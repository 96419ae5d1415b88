package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"empiria-profile/config"
	"empiria-profile/internal/services"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type DashboardHandler struct {
	app       *pocketbase.PocketBase
	dashboard *services.DashboardService
	cfg       *config.Config
}

func NewDashboardHandler(app *pocketbase.PocketBase, dashboard *services.DashboardService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		app:       app,
		dashboard: dashboard,
		cfg:       cfg,
	}
}

// GetDashboard - Attendee dashboard payload
func (h *DashboardHandler) GetDashboard(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	user := services.UserFromRecord(e.Auth)
	if user.Role == "" {
		// No role yet means onboarding is unfinished.
		return e.Redirect(http.StatusTemporaryRedirect, "/dashboard/settings")
	}

	ctx := e.Request.Context()
	query := e.Request.URL.Query().Get("q")

	// Only the unfiltered payload is cached; filtered views are cheap
	// and highly variable.
	if query == "" {
		if payload, ok := h.dashboard.Cached(ctx, user.ID); ok {
			return e.Blob(http.StatusOK, "application/json", payload)
		}
	}

	view := h.dashboard.Build(ctx, user, query, time.Now())

	if query == "" {
		if payload, err := json.Marshal(view); err == nil {
			h.dashboard.Store(ctx, user.ID, payload)
		} else {
			slog.Error("marshaling dashboard payload", "userID", user.ID, "error", err)
		}
	}

	return e.JSON(http.StatusOK, view)
}
