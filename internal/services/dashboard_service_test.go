package services

import (
	"context"
	"testing"
	"time"

	"empiria-profile/config"
	"empiria-profile/models"
	"empiria-profile/monitoring"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDashboardService() (*DashboardService, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	cfg := &config.Config{
		DashboardCacheTTL: time.Minute,
		ShopURL:           "https://shop.example.com",
	}

	service := &DashboardService{
		Redis:   db,
		cfg:     cfg,
		monitor: monitoring.NewMonitor(),
	}
	return service, mock
}

func TestDashboardService_Cached_Miss(t *testing.T) {
	service, mock := setupTestDashboardService()
	defer mock.ClearExpect()

	mock.ExpectGet("dashboard:user-1").RedisNil()

	payload, ok := service.Cached(context.Background(), "user-1")
	assert.False(t, ok)
	assert.Nil(t, payload)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardService_Cached_Hit(t *testing.T) {
	service, mock := setupTestDashboardService()
	defer mock.ClearExpect()

	mock.ExpectGet("dashboard:user-1").SetVal(`{"greeting":"Ada"}`)

	payload, ok := service.Cached(context.Background(), "user-1")
	require.True(t, ok)
	assert.Equal(t, `{"greeting":"Ada"}`, string(payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardService_StoreAndInvalidate(t *testing.T) {
	service, mock := setupTestDashboardService()
	defer mock.ClearExpect()

	payload := []byte(`{"greeting":"Ada"}`)
	mock.ExpectSet("dashboard:user-1", payload, time.Minute).SetVal("OK")
	mock.ExpectDel("dashboard:user-1").SetVal(1)

	service.Store(context.Background(), "user-1", payload)
	err := service.Invalidate(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardService_NilRedis(t *testing.T) {
	service := &DashboardService{monitor: monitoring.NewMonitor()}
	ctx := context.Background()

	_, ok := service.Cached(ctx, "user-1")
	assert.False(t, ok)
	service.Store(ctx, "user-1", []byte("payload"))
	assert.NoError(t, service.Invalidate(ctx, "user-1"))
}

func TestTicketCard_Mapping(t *testing.T) {
	start := time.Date(2025, time.August, 15, 19, 30, 0, 0, time.UTC)
	ticket := models.Ticket{
		ID:        "t1",
		Status:    "valid",
		SeatLabel: "A12",
		Event: &models.Event{
			Title:         "Jazz Nights Special",
			LocationType:  "venue",
			VenueName:     "Blue Note",
			City:          "New Orleans",
			StartAt:       start,
			CoverImageURL: "https://cdn.example.com/jazz.jpg",
		},
		Tier: &models.TicketTier{Name: "VIP", Price: 89.5, Currency: "USD"},
	}

	card := ticketCard(ticket)
	assert.Equal(t, "Jazz Nights Special", card.Title)
	assert.Equal(t, "Blue Note, New Orleans", card.Location)
	assert.Equal(t, "AUG", card.Date.Month)
	assert.Equal(t, "15", card.Date.Day)
	assert.Equal(t, "7:30 PM", card.Time)
	assert.Equal(t, "VIP", card.TierName)
	assert.Equal(t, "$89.50", card.Price)
	assert.Equal(t, "A12", card.SeatLabel)
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "Free", PriceLabel(models.Ticket{}))
	assert.Equal(t, "Free", PriceLabel(models.Ticket{Tier: &models.TicketTier{Name: "GA"}}))
	assert.Equal(t, "$25.00", PriceLabel(models.Ticket{Tier: &models.TicketTier{Price: 25, Currency: "USD"}}))

	// missing currency falls back to the store default
	assert.Equal(t, "$25.00", PriceLabel(models.Ticket{Tier: &models.TicketTier{Price: 25}}))
}

type stubTickets []models.Ticket

func (s stubTickets) ListForUser(ctx context.Context, userID string) []models.Ticket { return s }

type stubOrders []models.Order

func (s stubOrders) ListForUser(ctx context.Context, userID string) []models.Order { return s }

type stubRecommender []EventCard

func (s stubRecommender) Recommended(ctx context.Context) []EventCard { return s }

func buildTestUser() *models.User {
	return &models.User{
		ID:              "user-1",
		Email:           "ada@example.com",
		FullName:        "Ada Lovelace",
		Role:            "attendee",
		DefaultCurrency: "USD",
	}
}

func TestDashboardService_Build_EmptyState(t *testing.T) {
	service := NewDashboardService(nil, stubTickets{}, stubOrders{}, nil,
		&config.Config{ShopURL: "https://shop.example.com"}, nil)

	view := service.Build(context.Background(), buildTestUser(), "", time.Now())

	assert.Equal(t, "Ada", view.Greeting)
	assert.Equal(t, "AL", view.Initials)
	assert.Zero(t, view.Stats.Upcoming)
	assert.Zero(t, view.Stats.Attended)
	assert.Equal(t, "$0.00", view.Stats.TotalSpent)
	assert.Empty(t, view.Schedule)

	require.NotNil(t, view.EmptyState)
	assert.Equal(t, "No upcoming events. Browse and get tickets!", view.EmptyState.Message)
	assert.Equal(t, "Browse Events", view.EmptyState.ActionLabel)
	assert.Equal(t, "https://shop.example.com", view.EmptyState.ActionURL)
}

func TestDashboardService_Build_WithTickets(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	tickets := stubTickets{
		{
			ID:     "t1",
			Status: "valid",
			Event:  &models.Event{Title: "Jazz Nights", StartAt: now.Add(48 * time.Hour)},
		},
		{
			ID:     "t2",
			Status: "used",
			Event:  &models.Event{Title: "Past Show", StartAt: now.Add(-72 * time.Hour)},
		},
	}
	orders := stubOrders{
		{ID: "o1", Status: "completed", TotalAmount: 120.5},
		{ID: "o2", Status: "refunded", TotalAmount: 40},
	}

	service := NewDashboardService(nil, tickets, orders, nil,
		&config.Config{ShopURL: "https://shop.example.com"}, nil)
	view := service.Build(context.Background(), buildTestUser(), "", now)

	assert.Equal(t, 1, view.Stats.Upcoming)
	assert.Equal(t, 1, view.Stats.Attended)
	assert.Equal(t, "$120.50", view.Stats.TotalSpent)
	require.Len(t, view.Schedule, 1)
	assert.Equal(t, "Jazz Nights", view.Schedule[0].Title)
	assert.Nil(t, view.EmptyState)
}

func TestDashboardService_Build_RecommendedShareFilter(t *testing.T) {
	now := time.Now()
	recommended := stubRecommender{
		{ID: "e1", Title: "Jazz Evening", Location: "Toronto"},
		{ID: "e2", Title: "Tech Meetup", Location: "Vancouver"},
	}

	service := NewDashboardService(nil, stubTickets{}, stubOrders{}, recommended,
		&config.Config{ShopURL: "https://shop.example.com"}, nil)

	view := service.Build(context.Background(), buildTestUser(), "", now)
	assert.Len(t, view.Recommended, 2)

	view = service.Build(context.Background(), buildTestUser(), "jazz", now)
	require.Len(t, view.Recommended, 1)
	assert.Equal(t, "Jazz Evening", view.Recommended[0].Title)
}

func TestBuildHistory(t *testing.T) {
	view := BuildHistory(nil, "https://shop.example.com")
	assert.Empty(t, view.Tickets)
	require.NotNil(t, view.EmptyState)
	assert.Equal(t, "No past events yet. Start exploring!", view.EmptyState.Message)
	assert.Equal(t, "Browse Events", view.EmptyState.ActionLabel)
	assert.Equal(t, "https://shop.example.com", view.EmptyState.ActionURL)

	view = BuildHistory([]models.Ticket{{ID: "t1", Status: "used"}}, "https://shop.example.com")
	assert.Len(t, view.Tickets, 1)
	assert.Nil(t, view.EmptyState)
}

func TestTicketCard_MissingEvent(t *testing.T) {
	card := ticketCard(models.Ticket{ID: "t1", Status: "valid"})
	assert.Equal(t, "Unknown Event", card.Title)
	assert.Equal(t, "Ticket", card.TierName)
	assert.Equal(t, "Free", card.Price)
	assert.Equal(t, "TBA", card.Time)
	assert.Empty(t, card.Location)
}
