package horizon

import (
	"fmt"
	"time"
)

// AllColleges is the college sentinel meaning "no constraint".
const AllColleges = "All Colleges"

// Filters is the conjunction of independent optional constraints.
// A nil pointer field is unconstrained.
type Filters struct {
	Search    string     `json:"search"`
	Type      EventType  `json:"type"`
	College   string     `json:"college"`
	StartDate *time.Time `json:"startDate"`
	// EndDate is accepted and reported but never applied when deriving.
	EndDate   *time.Time `json:"endDate"`
	IsVirtual *bool      `json:"isVirtual"`
}

func DefaultFilters() Filters {
	return Filters{
		Search:  "",
		Type:    AllTypes,
		College: AllColleges,
	}
}

// IsActive reports whether any applied constraint differs from the defaults.
func (f Filters) IsActive() bool {
	return f.Search != "" ||
		f.Type != AllTypes ||
		f.College != AllColleges ||
		f.StartDate != nil ||
		f.IsVirtual != nil
}

type SortKey string

const (
	SortDateAsc  SortKey = "date-asc"
	SortDateDesc SortKey = "date-desc"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
)

var SortKeys = []SortKey{SortDateDesc, SortDateAsc, SortNameAsc, SortNameDesc}

func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	switch k {
	case SortDateAsc, SortDateDesc, SortNameAsc, SortNameDesc:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidFilter, s)
}

func (k SortKey) Label() string {
	switch k {
	case SortDateDesc:
		return "Newest First"
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	default:
		return "Oldest First"
	}
}

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(s)
	if m == ViewGrid || m == ViewList {
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown view mode %q", ErrInvalidFilter, s)
}

// Status distinguishes an empty result from one not yet derived or failed.
// A session always has its catalog in hand, so View only reports
// StatusReady or StatusEmpty. StatusLoading and StatusError are for clients
// that fetch the view and need to show those states themselves.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// CategoryCounts maps each category, plus AllTypes, to a number of events.
type CategoryCounts map[EventType]int

// Tab is a quick filter shortcut annotated with its count.
type Tab struct {
	Category EventType `json:"category"`
	Label    string    `json:"label"`
	Color    string    `json:"color"`
	Count    int       `json:"count"`
}

// TabCategories are the categories with a tab, in order. Other has none.
var TabCategories = []EventType{AllTypes, Hackathon, Workshop, TechTalk, CareerFair}

func Tabs(counts CategoryCounts) []Tab {
	tabs := make([]Tab, 0, len(TabCategories))
	for _, c := range TabCategories {
		tabs = append(tabs, Tab{
			Category: c,
			Label:    c.TabLabel(),
			Color:    c.Color(),
			Count:    counts[c],
		})
	}
	return tabs
}
