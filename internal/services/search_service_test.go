package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *SearchIndex {
	return NewSearchIndex(SampleEvents())
}

func TestSearchIndex_BlankQueryMatchesNothing(t *testing.T) {
	idx := testIndex()
	ctx := context.Background()

	assert.Empty(t, idx.Matches(ctx, ""))
	assert.Empty(t, idx.Matches(ctx, "   "))
}

func TestSearchIndex_CaseInsensitiveSubstring(t *testing.T) {
	idx := testIndex()
	ctx := context.Background()

	matches := idx.Matches(ctx, "JAZZ")
	require.Len(t, matches, 1)
	assert.Equal(t, "Jazz Nights Special", matches[0].Label)

	// description text is searchable too
	matches = idx.Matches(ctx, "zoom")
	require.Len(t, matches, 1)
	assert.Equal(t, "Digital Marketing Masterclass", matches[0].Label)
}

func TestSearchIndex_PagesBeforeEvents(t *testing.T) {
	idx := testIndex()

	// "s" hits pages and several events; pages keep catalog order first
	matches := idx.Matches(context.Background(), "s")
	require.NotEmpty(t, matches)
	assert.Equal(t, CategoryPage, matches[0].Category)
	assert.Equal(t, "Profile Settings", matches[0].Label)

	sawEvent := false
	for _, m := range matches {
		if m.Category == CategoryEvent {
			sawEvent = true
		} else {
			assert.False(t, sawEvent, "page listed after an event")
		}
	}
	assert.True(t, sawEvent)
}

func TestSearchSession_CursorWrapsBothDirections(t *testing.T) {
	session := NewSearchSession(testIndex())
	ctx := context.Background()

	assert.Equal(t, -1, session.Cursor())
	assert.Equal(t, -1, session.Next())

	session.SetQuery(ctx, "new")
	n := len(session.Matches())
	require.Greater(t, n, 1)
	assert.Equal(t, -1, session.Cursor(), "new query drops the highlight")

	assert.Equal(t, 0, session.Next())
	assert.Equal(t, 1, session.Next())

	// forward wrap
	for i := 2; i < n; i++ {
		session.Next()
	}
	assert.Equal(t, 0, session.Next())

	// backward wrap
	assert.Equal(t, n-1, session.Prev())
	assert.Equal(t, n-2, session.Prev())
}

func TestSearchSession_SelectEventAdoptsLabel(t *testing.T) {
	session := NewSearchSession(testIndex())
	ctx := context.Background()

	session.SetQuery(ctx, "jazz")
	require.Len(t, session.Matches(), 1)
	session.Next()

	item, ok := session.Select(ctx)
	require.True(t, ok)
	assert.Equal(t, CategoryEvent, item.Category)
	assert.Equal(t, "Jazz Nights Special", session.Query())
	assert.Equal(t, -1, session.Cursor())
}

func TestSearchSession_SelectPageClearsQuery(t *testing.T) {
	session := NewSearchSession(testIndex())
	ctx := context.Background()

	session.SetQuery(ctx, "dashboard")
	require.NotEmpty(t, session.Matches())
	session.Next()

	item, ok := session.Select(ctx)
	require.True(t, ok)
	assert.Equal(t, CategoryPage, item.Category)
	assert.Equal(t, "", session.Query())
	assert.Empty(t, session.Matches())
}

func TestSearchSession_SelectWithoutHighlight(t *testing.T) {
	session := NewSearchSession(testIndex())

	_, ok := session.Select(context.Background())
	assert.False(t, ok)
}

func TestSearchSession_Close(t *testing.T) {
	session := NewSearchSession(testIndex())
	ctx := context.Background()

	session.SetQuery(ctx, "jazz")
	session.Next()
	session.Close()

	assert.Equal(t, "", session.Query())
	assert.Equal(t, -1, session.Cursor())
	assert.Empty(t, session.Matches())
}

func TestHighlight(t *testing.T) {
	h := Highlight("Jazz Nights Special", "night")
	assert.Equal(t, "Jazz ", h.Before)
	assert.Equal(t, "Night", h.Match)
	assert.Equal(t, "s Special", h.After)

	// first occurrence only
	h = Highlight("aaa", "a")
	assert.Equal(t, "", h.Before)
	assert.Equal(t, "a", h.Match)
	assert.Equal(t, "aa", h.After)

	// no occurrence and blank query render the text unmodified
	h = Highlight("Dashboard", "zzz")
	assert.Equal(t, HighlightedLabel{Before: "Dashboard"}, h)
	assert.Equal(t, HighlightedLabel{Before: "Dashboard"}, Highlight("Dashboard", ""))
}
