package catalog

import (
	horizon "github.com/alok944/event-horizon-college-hub"
)

// CountByCategory counts the full catalog per category. Every known category
// is present, with AllTypes holding the total.
func CountByCategory(events []horizon.Event) horizon.CategoryCounts {
	counts := make(horizon.CategoryCounts, len(horizon.EventTypes)+1)
	counts[horizon.AllTypes] = 0
	for _, t := range horizon.EventTypes {
		counts[t] = 0
	}

	for _, event := range events {
		counts[horizon.AllTypes]++
		counts[event.Type]++
	}

	return counts
}
