package horizon

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeLabels(t *testing.T) {
	tests := []struct {
		typ   EventType
		label string
		tab   string
		color string
	}{
		{Hackathon, "Hackathon", "Hackathons", "purple"},
		{Workshop, "Workshop", "Workshops", "blue"},
		{TechTalk, "Tech Talk", "Tech Talks", "green"},
		{CareerFair, "Career Fair", "Career Fairs", "amber"},
		{Other, "Event", "Other Events", "gray"},
		{EventType("meetup"), "Event", "Other Events", "gray"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.typ.Label())
			assert.Equal(t, tt.tab, tt.typ.TabLabel())
			assert.Equal(t, tt.color, tt.typ.Color())
		})
	}
}

func TestEventTypeValid(t *testing.T) {
	for _, typ := range EventTypes {
		assert.True(t, typ.Valid(), typ)
	}
	assert.False(t, AllTypes.Valid())
	assert.False(t, EventType("").Valid())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("all")
	require.NoError(t, err)
	assert.Equal(t, AllTypes, c)

	c, err = ParseCategory("tech_talk")
	require.NoError(t, err)
	assert.Equal(t, TechTalk, c)

	_, err = ParseCategory("party")
	assert.True(t, errors.Is(err, ErrInvalidFilter))
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		parsed, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseSortKey("random")
	assert.True(t, errors.Is(err, ErrInvalidFilter))

	assert.Equal(t, "Oldest First", SortDateAsc.Label())
	assert.Equal(t, "Newest First", SortDateDesc.Label())
	assert.Equal(t, "Name (A-Z)", SortNameAsc.Label())
	assert.Equal(t, "Name (Z-A)", SortNameDesc.Label())
}

func TestParseViewMode(t *testing.T) {
	m, err := ParseViewMode("list")
	require.NoError(t, err)
	assert.Equal(t, ViewList, m)

	_, err = ParseViewMode("carousel")
	assert.True(t, errors.Is(err, ErrInvalidFilter))
}

func TestFiltersIsActive(t *testing.T) {
	f := DefaultFilters()
	assert.False(t, f.IsActive())

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.EndDate = &end
	assert.False(t, f.IsActive(), "endDate is not an applied constraint")

	virtual := false
	f.IsVirtual = &virtual
	assert.True(t, f.IsActive())

	f = DefaultFilters()
	f.College = "MIT"
	assert.True(t, f.IsActive())
}

func TestTabs(t *testing.T) {
	tabs := Tabs(CategoryCounts{AllTypes: 3, Hackathon: 2, Workshop: 1})

	require.Len(t, tabs, 5)
	assert.Equal(t, Tab{Category: AllTypes, Label: "All Events", Color: "gray", Count: 3}, tabs[0])
	assert.Equal(t, 2, tabs[1].Count)
	assert.Equal(t, 0, tabs[4].Count)
	for _, tab := range tabs {
		assert.NotEqual(t, Other, tab.Category)
	}
}

func TestEventDisplayHelpers(t *testing.T) {
	e := Event{Location: "Room 101"}
	assert.Equal(t, PlaceholderImage, e.ImageOrPlaceholder())
	assert.Equal(t, "Room 101", e.DisplayLocation())

	e.Image = "https://example.com/a.png"
	e.IsVirtual = true
	assert.Equal(t, "https://example.com/a.png", e.ImageOrPlaceholder())
	assert.Equal(t, "Virtual Event", e.DisplayLocation())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(ErrDuplicateID, FieldError{Field: "id", Reason: "duplicate"})

	assert.True(t, err.Has("id"))
	assert.False(t, err.Has("title"))
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, "validation failed: id: duplicate", err.Error())
}

func TestStatusValues(t *testing.T) {
	assert.Equal(t, Status("loading"), StatusLoading)
	assert.Equal(t, Status("ready"), StatusReady)
	assert.Equal(t, Status("empty"), StatusEmpty)
	assert.Equal(t, Status("error"), StatusError)
}
