package handlers

import (
	"net/http"

	"empiria-profile/internal/services"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type SearchHandler struct {
	index *services.SearchIndex
}

func NewSearchHandler(index *services.SearchIndex) *SearchHandler {
	return &SearchHandler{index: index}
}

type searchResult struct {
	services.SearchItem
	Highlight services.HighlightedLabel `json:"highlight"`
}

// Search - Command palette lookup across pages and events
func (h *SearchHandler) Search(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	query := e.Request.URL.Query().Get("q")
	matches := h.index.Matches(e.Request.Context(), query)

	pages := []searchResult{}
	events := []searchResult{}
	for _, item := range matches {
		result := searchResult{
			SearchItem: item,
			Highlight:  services.Highlight(item.Label, query),
		}
		if item.Category == services.CategoryPage {
			pages = append(pages, result)
		} else {
			events = append(events, result)
		}
	}

	return e.JSON(http.StatusOK, map[string]any{
		"pages":  pages,
		"events": events,
	})
}
