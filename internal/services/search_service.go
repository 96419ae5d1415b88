package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pocketbase/pocketbase"
)

type SearchCategory string

const (
	CategoryPage  SearchCategory = "page"
	CategoryEvent SearchCategory = "event"
)

// SearchItem is one navigable destination in the search dropdown.
type SearchItem struct {
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Href        string         `json:"href"`
	Category    SearchCategory `json:"category"`
}

// EventSource supplies the event entries of the search catalog, so the
// page destinations are not coupled to any particular event inventory.
type EventSource interface {
	EventItems(ctx context.Context) []SearchItem
}

// StaticEventSource serves a fixed item list. Used as the fallback when
// the store is unavailable and in tests.
type StaticEventSource []SearchItem

func (s StaticEventSource) EventItems(_ context.Context) []SearchItem {
	return s
}

// SampleEvents mirrors the curated demo entries shipped with the
// dashboard before real inventory is wired in.
func SampleEvents() StaticEventSource {
	return StaticEventSource{
		{Label: "Innovate Tech Summit 2023", Description: "Grand Convention Center, NY", Href: "/dashboard", Category: CategoryEvent},
		{Label: "Symphony Under Stars", Description: "Central Park Amphitheater", Href: "/dashboard", Category: CategoryEvent},
		{Label: "Digital Marketing Masterclass", Description: "Online (Zoom)", Href: "/dashboard", Category: CategoryEvent},
		{Label: "Global Business Expo", Description: "Chicago, IL", Href: "/dashboard", Category: CategoryEvent},
		{Label: "Modern Art Gallery", Description: "New York, NY", Href: "/dashboard", Category: CategoryEvent},
		{Label: "Taste of Italy Workshop", Description: "Online", Href: "/dashboard", Category: CategoryEvent},
		{Label: "Jazz Nights Special", Description: "New Orleans, LA", Href: "/dashboard", Category: CategoryEvent},
	}
}

// StoreEventSource builds event entries from published events in the
// store, falling back to the sample list on fetch failure.
type StoreEventSource struct {
	app      *pocketbase.PocketBase
	fallback EventSource
}

func NewStoreEventSource(app *pocketbase.PocketBase, fallback EventSource) *StoreEventSource {
	return &StoreEventSource{app: app, fallback: fallback}
}

func (s *StoreEventSource) EventItems(ctx context.Context) []SearchItem {
	records, err := s.app.FindRecordsByFilter(
		"events",
		"status = 'published'",
		"start_at",
		historyLimit,
		0,
	)
	if err != nil || len(records) == 0 {
		if err != nil {
			slog.Warn("event search source unavailable", "error", err)
		}
		if s.fallback != nil {
			return s.fallback.EventItems(ctx)
		}
		return nil
	}

	items := make([]SearchItem, 0, len(records))
	for _, record := range records {
		event := eventFromRecord(record)
		items = append(items, SearchItem{
			Label:       event.Title,
			Description: event.Location(),
			Href:        "/dashboard",
			Category:    CategoryEvent,
		})
	}
	return items
}

// SearchIndex is the immutable catalog: fixed page destinations first,
// then whatever the event source supplies.
type SearchIndex struct {
	pages  []SearchItem
	events EventSource
}

func NewSearchIndex(events EventSource) *SearchIndex {
	return &SearchIndex{
		pages: []SearchItem{
			{Label: "Profile Settings", Description: "Navigate to Profile", Href: "/dashboard/settings", Category: CategoryPage},
			{Label: "Dashboard", Description: "Navigate to Dashboard", Href: "/dashboard", Category: CategoryPage},
			{Label: "My Bookings", Description: "Navigate to My Bookings", Href: "/dashboard", Category: CategoryPage},
		},
		events: events,
	}
}

// Matches returns catalog items whose label or description contains the
// query, case-insensitively: pages first, then events, each keeping
// catalog insertion order. A blank query matches nothing.
func (idx *SearchIndex) Matches(ctx context.Context, query string) []SearchItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []SearchItem{}
	}

	matches := []SearchItem{}
	for _, item := range idx.pages {
		if itemMatches(item, q) {
			matches = append(matches, item)
		}
	}
	if idx.events != nil {
		for _, item := range idx.events.EventItems(ctx) {
			if itemMatches(item, q) {
				matches = append(matches, item)
			}
		}
	}
	return matches
}

func itemMatches(item SearchItem, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(item.Label), loweredQuery) ||
		strings.Contains(strings.ToLower(item.Description), loweredQuery)
}

// noSelection is the cursor value when nothing is highlighted.
const noSelection = -1

// SearchSession holds the live query and highlight cursor of one open
// search surface. Single-threaded UI state; not safe for concurrent use
// and not meant to be.
type SearchSession struct {
	index   *SearchIndex
	query   string
	cursor  int
	matches []SearchItem
}

func NewSearchSession(index *SearchIndex) *SearchSession {
	return &SearchSession{index: index, cursor: noSelection, matches: []SearchItem{}}
}

func (s *SearchSession) Query() string        { return s.query }
func (s *SearchSession) Cursor() int          { return s.cursor }
func (s *SearchSession) Matches() []SearchItem { return s.matches }

// SetQuery replaces the live query, recomputes matches and drops the
// highlight.
func (s *SearchSession) SetQuery(ctx context.Context, query string) {
	s.query = query
	s.cursor = noSelection
	s.matches = s.index.Matches(ctx, query)
}

// Next advances the highlight, wrapping from the last match to the
// first. With no matches the cursor stays on no-selection.
func (s *SearchSession) Next() int {
	n := len(s.matches)
	if n == 0 {
		s.cursor = noSelection
		return s.cursor
	}
	if s.cursor < n-1 {
		s.cursor++
	} else {
		s.cursor = 0
	}
	return s.cursor
}

// Prev moves the highlight back, wrapping from the first match to the
// last.
func (s *SearchSession) Prev() int {
	n := len(s.matches)
	if n == 0 {
		s.cursor = noSelection
		return s.cursor
	}
	if s.cursor > 0 {
		s.cursor--
	} else {
		s.cursor = n - 1
	}
	return s.cursor
}

// Select confirms the highlighted match and returns its destination.
// Selecting an event replaces the query with the event's label;
// selecting a page clears it. Returns false when nothing is
// highlighted.
func (s *SearchSession) Select(ctx context.Context) (SearchItem, bool) {
	if s.cursor < 0 || s.cursor >= len(s.matches) {
		return SearchItem{}, false
	}
	item := s.matches[s.cursor]
	if item.Category == CategoryEvent {
		s.SetQuery(ctx, item.Label)
	} else {
		s.SetQuery(ctx, "")
	}
	return item, true
}

// Close dismisses the search surface: query cleared, cursor reset.
func (s *SearchSession) Close() {
	s.query = ""
	s.cursor = noSelection
	s.matches = []SearchItem{}
}

// HighlightedLabel splits a label around the emphasized query match.
// When Match is empty the label rendered unmodified is in Before.
type HighlightedLabel struct {
	Before string `json:"before"`
	Match  string `json:"match,omitempty"`
	After  string `json:"after,omitempty"`
}

// Highlight marks the first case-insensitive occurrence of the query
// inside text.
func Highlight(text, query string) HighlightedLabel {
	if query == "" {
		return HighlightedLabel{Before: text}
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return HighlightedLabel{Before: text}
	}
	return HighlightedLabel{
		Before: text[:idx],
		Match:  text[idx : idx+len(query)],
		After:  text[idx+len(query):],
	}
}
