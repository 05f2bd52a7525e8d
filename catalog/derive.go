package catalog

import (
	"sort"
	"strings"

	horizon "github.com/alok944/event-horizon-college-hub"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale orders titles for the name sort keys.
var Locale = language.English

type predicate func(event horizon.Event) bool

// Derive returns the events matching every constraint in f, ordered by key.
// The input slice is never modified and ties keep their input order.
func Derive(events []horizon.Event, f horizon.Filters, key horizon.SortKey) []horizon.Event {
	predicates := buildPredicates(f)

	result := make([]horizon.Event, 0, len(events))
	for _, event := range events {
		if matchesAll(event, predicates) {
			result = append(result, event)
		}
	}

	sortEvents(result, key)

	return result
}

func buildPredicates(f horizon.Filters) []predicate {
	predicates := make([]predicate, 0, 5)

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		predicates = append(predicates, func(event horizon.Event) bool {
			return strings.Contains(strings.ToLower(event.Title), term) ||
				strings.Contains(strings.ToLower(event.Description), term) ||
				strings.Contains(strings.ToLower(event.College), term)
		})
	}

	if f.Type != "" && f.Type != horizon.AllTypes {
		predicates = append(predicates, func(event horizon.Event) bool {
			return event.Type == f.Type
		})
	}

	if f.College != "" && f.College != horizon.AllColleges {
		predicates = append(predicates, func(event horizon.Event) bool {
			return event.College == f.College
		})
	}

	if f.StartDate != nil {
		bound := *f.StartDate
		predicates = append(predicates, func(event horizon.Event) bool {
			return !event.Date.Before(bound)
		})
	}

	if f.IsVirtual != nil {
		virtual := *f.IsVirtual
		predicates = append(predicates, func(event horizon.Event) bool {
			return event.IsVirtual == virtual
		})
	}

	return predicates
}

func matchesAll(event horizon.Event, predicates []predicate) bool {
	for _, p := range predicates {
		if !p(event) {
			return false
		}
	}
	return true
}

func sortEvents(events []horizon.Event, key horizon.SortKey) {
	switch key {
	case horizon.SortDateDesc:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Date.After(events[j].Date)
		})
	case horizon.SortNameAsc, horizon.SortNameDesc:
		// a Collator keeps internal buffers, one per call
		c := collate.New(Locale)
		desc := key == horizon.SortNameDesc
		sort.SliceStable(events, func(i, j int) bool {
			cmp := c.CompareString(events[i].Title, events[j].Title)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	default:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Date.Before(events[j].Date)
		})
	}
}
