package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"empiria-profile/config"
	"empiria-profile/models"
	"empiria-profile/monitoring"
	"empiria-profile/utils"

	"github.com/redis/go-redis/v9"
)

// ticketLister and orderLister are the slices of the ticket and order
// services the dashboard needs; narrow on purpose so composition is
// testable without a live store.
type ticketLister interface {
	ListForUser(ctx context.Context, userID string) []models.Ticket
}

type orderLister interface {
	ListForUser(ctx context.Context, userID string) []models.Order
}

// DashboardService composes the attendee dashboard view and caches the
// rendered payload per user.
type DashboardService struct {
	Redis       *redis.Client
	tickets     ticketLister
	orders      orderLister
	recommended EventRecommender
	cfg         *config.Config
	monitor     *monitoring.Monitor
}

func NewDashboardService(redisClient *redis.Client, tickets ticketLister, orders orderLister, recommended EventRecommender, cfg *config.Config, monitor *monitoring.Monitor) *DashboardService {
	return &DashboardService{
		Redis:       redisClient,
		tickets:     tickets,
		orders:      orders,
		recommended: recommended,
		cfg:         cfg,
		monitor:     monitor,
	}
}

type StatCards struct {
	Upcoming   int    `json:"upcoming"`
	Attended   int    `json:"attended"`
	TotalSpent string `json:"total_spent"`
}

type TicketCard struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Location      string         `json:"location,omitempty"`
	Date          utils.MonthDay `json:"date"`
	Time          string         `json:"time"`
	StartAt       time.Time      `json:"start_at"`
	TierName      string         `json:"tier_name"`
	Price         string         `json:"price"`
	Status        string         `json:"status"`
	CoverImageURL string         `json:"cover_image_url,omitempty"`
	SeatLabel     string         `json:"seat_label,omitempty"`
}

// EmptyState is the no-items prompt with its single call to action.
type EmptyState struct {
	Message     string `json:"message"`
	ActionLabel string `json:"action_label"`
	ActionURL   string `json:"action_url"`
}

type DashboardView struct {
	Greeting    string       `json:"greeting"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	Initials    string       `json:"initials"`
	Stats       StatCards    `json:"stats"`
	Schedule    []TicketCard `json:"schedule"`
	Recommended []EventCard  `json:"recommended,omitempty"`
	EmptyState  *EmptyState  `json:"empty_state,omitempty"`
}

// HistoryView is the past-events page payload.
type HistoryView struct {
	Tickets    []models.Ticket `json:"tickets"`
	EmptyState *EmptyState     `json:"empty_state,omitempty"`
}

// BuildHistory wraps past tickets for the history page, attaching the
// empty-state prompt with its single call to action when there are
// none.
func BuildHistory(tickets []models.Ticket, shopURL string) *HistoryView {
	view := &HistoryView{Tickets: tickets}
	if len(tickets) == 0 {
		view.EmptyState = &EmptyState{
			Message:     "No past events yet. Start exploring!",
			ActionLabel: "Browse Events",
			ActionURL:   shopURL,
		}
	}
	return view
}

// Build assembles the dashboard for a user at the given instant. The
// free-text query restricts the schedule only; stats always reflect the
// full collection.
func (s *DashboardService) Build(ctx context.Context, user *models.User, query string, now time.Time) *DashboardView {
	tickets := s.tickets.ListForUser(ctx, user.ID)
	orders := s.orders.ListForUser(ctx, user.ID)

	upcoming := Upcoming(tickets, now)
	attended := 0
	for _, t := range Past(tickets, now) {
		if t.Status == "used" {
			attended++
		}
	}

	schedule := SortSchedule(FilterTickets(upcoming, query))
	cards := make([]TicketCard, 0, len(schedule))
	for _, t := range schedule {
		cards = append(cards, ticketCard(t))
	}

	view := &DashboardView{
		Greeting:  user.FirstName(),
		AvatarURL: user.AvatarURL,
		Initials:  utils.Initials(user.DisplayName()),
		Stats: StatCards{
			Upcoming:   len(upcoming),
			Attended:   attended,
			TotalSpent: utils.FormatCurrency(TotalSpent(orders).InexactFloat64(), user.DefaultCurrency),
		},
		Schedule: cards,
	}
	if s.recommended != nil {
		view.Recommended = FilterEventCards(s.recommended.Recommended(ctx), query)
	}
	if len(cards) == 0 {
		view.EmptyState = &EmptyState{
			Message:     "No upcoming events. Browse and get tickets!",
			ActionLabel: "Browse Events",
			ActionURL:   s.cfg.ShopURL,
		}
	}
	return view
}

func ticketCard(t models.Ticket) TicketCard {
	card := TicketCard{
		ID:        t.ID,
		Title:     t.EventTitle(),
		TierName:  t.TierName(),
		Price:     PriceLabel(t),
		Status:    t.Status,
		SeatLabel: t.SeatLabel,
	}
	if t.Event != nil {
		card.Location = t.Event.Location()
		card.Date = utils.FormatMonthDay(t.Event.StartAt)
		card.Time = utils.FormatTime(t.Event.StartAt)
		card.StartAt = t.Event.StartAt
		card.CoverImageURL = t.Event.CoverImageURL
	} else {
		card.Time = "TBA"
	}
	return card
}

// PriceLabel renders a ticket's tier price, with "Free" covering both
// zero-priced tiers and broken tier references.
func PriceLabel(t models.Ticket) string {
	if t.Tier == nil || t.Tier.Price == 0 {
		return "Free"
	}
	currency := t.Tier.Currency
	if currency == "" {
		currency = "CAD"
	}
	return utils.FormatCurrency(t.Tier.Price, currency)
}

func dashboardKey(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// Cached returns the stored payload for a user, if any.
func (s *DashboardService) Cached(ctx context.Context, userID string) ([]byte, bool) {
	if s.Redis == nil {
		return nil, false
	}
	payload, err := s.Redis.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("dashboard cache read failed", "userID", userID, "error", err)
		}
		s.monitor.TrackCacheMiss()
		return nil, false
	}
	s.monitor.TrackCacheHit()
	return payload, true
}

// Store caches a rendered payload with the configured TTL. Failures are
// logged and ignored; the cache is an optimization, not a dependency.
func (s *DashboardService) Store(ctx context.Context, userID string, payload []byte) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Set(ctx, dashboardKey(userID), payload, s.cfg.DashboardCacheTTL).Err(); err != nil {
		slog.Warn("dashboard cache write failed", "userID", userID, "error", err)
	}
}

// Invalidate drops the cached payload, forcing the next dashboard load
// to rebuild. Called after every successful profile mutation.
func (s *DashboardService) Invalidate(ctx context.Context, userID string) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Del(ctx, dashboardKey(userID)).Err()
}
