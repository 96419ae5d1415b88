package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"empiria-profile/models"
	"empiria-profile/monitoring"

	"github.com/pocketbase/pocketbase"
)

// historyLimit caps how many tickets a single fetch returns. The store
// delivers them most-recent-first, so the cap drops the oldest.
const historyLimit = 200

type TicketService struct {
	app     *pocketbase.PocketBase
	monitor *monitoring.Monitor
}

func NewTicketService(app *pocketbase.PocketBase, monitor *monitoring.Monitor) *TicketService {
	return &TicketService{app: app, monitor: monitor}
}

// ListForUser returns the user's tickets with event and tier joined,
// most recent purchase first. A failed fetch degrades to an empty list;
// the caller renders the empty state either way.
func (s *TicketService) ListForUser(ctx context.Context, userID string) []models.Ticket {
	records, err := s.app.FindRecordsByFilter(
		"tickets",
		"user_id = {:userId}",
		"-purchase_date",
		historyLimit,
		0,
		map[string]any{"userId": userID},
	)
	if err != nil {
		slog.Error("fetching tickets failed", "userID", userID, "error", err)
		s.monitor.TrackFetchFailure("tickets")
		return []models.Ticket{}
	}

	tickets := make([]models.Ticket, 0, len(records))
	for _, record := range records {
		if errs := s.app.ExpandRecord(record, []string{"event_id", "tier_id"}, nil); len(errs) > 0 {
			// Broken references render with placeholder fields.
			slog.Warn("ticket expand failed", "ticketID", record.Id, "errors", errs)
		}
		tickets = append(tickets, ticketFromRecord(record))
	}
	return tickets
}

// Upcoming returns tickets whose linked event starts at or after now,
// preserving input order. Tickets without an event are excluded.
func Upcoming(tickets []models.Ticket, now time.Time) []models.Ticket {
	result := []models.Ticket{}
	for _, t := range tickets {
		if t.Event != nil && !t.Event.StartAt.Before(now) {
			result = append(result, t)
		}
	}
	return result
}

// Past returns tickets whose linked event started before now.
func Past(tickets []models.Ticket, now time.Time) []models.Ticket {
	result := []models.Ticket{}
	for _, t := range tickets {
		if t.Event != nil && t.Event.StartAt.Before(now) {
			result = append(result, t)
		}
	}
	return result
}

// Active returns tickets with status "valid", regardless of when the
// event takes place.
func Active(tickets []models.Ticket) []models.Ticket {
	result := []models.Ticket{}
	for _, t := range tickets {
		if t.Status == "valid" {
			result = append(result, t)
		}
	}
	return result
}

// FilterTickets restricts tickets to those whose event title or display
// location contains the query, case-insensitively. An empty (or
// whitespace) query returns the input unrestricted.
func FilterTickets(tickets []models.Ticket, query string) []models.Ticket {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tickets
	}

	result := []models.Ticket{}
	for _, t := range tickets {
		title := ""
		location := ""
		if t.Event != nil {
			title = strings.ToLower(t.Event.Title)
			location = strings.ToLower(t.Event.Location())
		}
		if strings.Contains(title, q) || strings.Contains(location, q) {
			result = append(result, t)
		}
	}
	return result
}

// FilterByStatus keeps tickets matching the given status; an empty
// status keeps everything.
func FilterByStatus(tickets []models.Ticket, status string) []models.Ticket {
	if status == "" {
		return tickets
	}
	result := []models.Ticket{}
	for _, t := range tickets {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result
}

// SortSchedule orders a schedule slice ascending by event start time,
// earliest first. Returns a new slice; the input is not mutated.
func SortSchedule(tickets []models.Ticket) []models.Ticket {
	sorted := make([]models.Ticket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Event.StartAt.Before(sorted[j].Event.StartAt)
	})
	return sorted
}
