package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"empiria-profile/models"
	"empiria-profile/utils"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/tools/types"
)

// recommendedLimit matches the curated grid on the dashboard.
const recommendedLimit = 4

// EventCard is one entry in the "Curated For You" section.
type EventCard struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Location      string         `json:"location,omitempty"`
	Date          utils.MonthDay `json:"date"`
	Price         string         `json:"price"`
	CoverImageURL string         `json:"cover_image_url,omitempty"`
}

// EventRecommender supplies the curated section's entries.
type EventRecommender interface {
	Recommended(ctx context.Context) []EventCard
}

// StoreRecommender picks the next published events from the store, with
// each card priced at its cheapest tier.
type StoreRecommender struct {
	app *pocketbase.PocketBase
	now func() time.Time
}

func NewStoreRecommender(app *pocketbase.PocketBase) *StoreRecommender {
	return &StoreRecommender{app: app, now: time.Now}
}

type tierPriceRow struct {
	EventID  string  `db:"event_id"`
	Price    float64 `db:"price"`
	Currency string  `db:"currency"`
}

func (r *StoreRecommender) Recommended(ctx context.Context) []EventCard {
	records, err := r.app.FindRecordsByFilter(
		"events",
		"status = 'published' && start_at >= {:now}",
		"start_at",
		recommendedLimit,
		0,
		map[string]any{"now": types.NowDateTime()},
	)
	if err != nil {
		slog.Warn("fetching recommended events failed", "error", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	events := make([]models.Event, 0, len(records))
	eventIDs := make([]any, 0, len(records))
	for _, record := range records {
		events = append(events, *eventFromRecord(record))
		eventIDs = append(eventIDs, record.Id)
	}

	// Cheapest tier per event; events without tiers price as "Free".
	rows := []tierPriceRow{}
	err = r.app.DB().
		Select("event_id", "MIN(price) AS price", "currency").
		From("ticket_tiers").
		Where(dbx.In("event_id", eventIDs...)).
		GroupBy("event_id").
		All(&rows)
	if err != nil {
		slog.Warn("fetching tier prices failed", "error", err)
	}
	prices := make(map[string]tierPriceRow, len(rows))
	for _, row := range rows {
		prices[row.EventID] = row
	}

	cards := make([]EventCard, 0, len(events))
	for _, event := range events {
		price := "Free"
		if row, ok := prices[event.ID]; ok && row.Price > 0 {
			currency := row.Currency
			if currency == "" {
				currency = event.Currency
			}
			if currency == "" {
				currency = "CAD"
			}
			price = utils.FormatCurrency(row.Price, currency)
		}
		cards = append(cards, eventCard(event, price))
	}
	return cards
}

func eventCard(event models.Event, price string) EventCard {
	return EventCard{
		ID:            event.ID,
		Title:         event.Title,
		Location:      event.Location(),
		Date:          utils.FormatMonthDay(event.StartAt),
		Price:         price,
		CoverImageURL: event.CoverImageURL,
	}
}

// FilterEventCards restricts cards to those whose title or location
// contains the query, case-insensitively. The curated section shares
// the dashboard's free-text filter.
func FilterEventCards(cards []EventCard, query string) []EventCard {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cards
	}
	result := []EventCard{}
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Title), q) ||
			strings.Contains(strings.ToLower(card.Location), q) {
			result = append(result, card)
		}
	}
	return result
}
