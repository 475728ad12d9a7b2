package schedule

import "github.com/MikeSquared-Agency/magellan/internal/itinerary"

// dupKey identifies an exact duplicate. Type and description are part of the
// key on purpose: a check-in and a check-out row for the same hotel share
// title, day, and sometimes time, and both must survive.
type dupKey struct {
	title       string
	day         int
	time        string
	itemType    itinerary.ItemType
	description string
}

// Dedupe removes exact duplicates, keeping the first occurrence in input
// order. Returns the surviving items and the number removed.
func Dedupe(items []itinerary.NormalizedItem) ([]itinerary.NormalizedItem, int) {
	seen := make(map[dupKey]bool, len(items))
	out := make([]itinerary.NormalizedItem, 0, len(items))
	for _, it := range items {
		key := dupKey{
			title:       it.Title,
			day:         it.Day,
			time:        it.Time,
			itemType:    it.Type,
			description: it.Description,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out, len(items) - len(out)
}
