package handlers

import (
	"net/http"
	"time"

	"empiria-profile/config"
	"empiria-profile/internal/services"
	"empiria-profile/models"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type TicketHandler struct {
	app           *pocketbase.PocketBase
	ticketService *services.TicketService
	cfg           *config.Config
}

func NewTicketHandler(app *pocketbase.PocketBase, ticketService *services.TicketService, cfg *config.Config) *TicketHandler {
	return &TicketHandler{
		app:           app,
		ticketService: ticketService,
		cfg:           cfg,
	}
}

// ListTickets - Tickets bucketed into upcoming and past
func (h *TicketHandler) ListTickets(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	ctx := e.Request.Context()
	now := time.Now()

	tickets := h.ticketService.ListForUser(ctx, e.Auth.Id)
	tickets = services.FilterTickets(tickets, e.Request.URL.Query().Get("q"))
	tickets = services.FilterByStatus(tickets, e.Request.URL.Query().Get("status"))

	upcoming := services.SortSchedule(services.Upcoming(tickets, now))
	past := services.Past(tickets, now)

	return e.JSON(http.StatusOK, map[string]any{
		"upcoming": upcoming,
		"past":     past,
		"active":   len(services.Active(tickets)),
	})
}

// TicketHistory - Past tickets, newest purchase first
func (h *TicketHandler) TicketHistory(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	ctx := e.Request.Context()
	tickets := services.Past(h.ticketService.ListForUser(ctx, e.Auth.Id), time.Now())

	return e.JSON(http.StatusOK, services.BuildHistory(tickets, h.cfg.ShopURL))
}

// GetTicket - Single ticket with its entry code
func (h *TicketHandler) GetTicket(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	ticketID := e.Request.PathValue("ticketId")
	tickets := h.ticketService.ListForUser(e.Request.Context(), e.Auth.Id)

	var found *models.Ticket
	for i := range tickets {
		if tickets[i].ID == ticketID {
			found = &tickets[i]
			break
		}
	}
	if found == nil {
		return apis.NewNotFoundError("Ticket not found", nil)
	}

	return e.JSON(http.StatusOK, found)
}
