package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
)

// SortKey builds the composite ordering key: zero-padded day, the wall clock
// with its colon removed, and the zero-padded original index as tie-break.
// Lexicographic order on the key equals (day, time, input order) order.
//
// A literally absent clock leaves the middle component empty, which sorts the
// item ahead of timed items on the same day. A present-but-unparsable clock
// is passed through as-is; it still participates in the ordering.
func SortKey(day int, clock string, index int) string {
	return fmt.Sprintf("%03d-%s-%03d", day, strings.ReplaceAll(clock, ":", ""), index)
}

// Sort orders items by their precomputed sort key. The stable sort preserves
// input order for items whose full keys compare equal.
func Sort(items []itinerary.NormalizedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey < items[j].SortKey
	})
}
