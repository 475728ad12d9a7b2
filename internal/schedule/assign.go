package schedule

import (
	"github.com/MikeSquared-Agency/magellan/internal/dates"
	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
	"github.com/MikeSquared-Agency/magellan/internal/trip"
)

// AssignDay computes the 1-based trip day for a record. The second return
// names the rule that fired: "explicit", "date", "clamped", or "index".
//
// Priority:
//  1. An explicit positive day field always wins. It is a user decision and
//     is never second-guessed against the dates.
//  2. Day difference from the trip start, plus one. Records dated before the
//     trip start clamp into day 1 rather than going negative.
//  3. Positional fallback when dates are missing or unparsable: index+1 with
//     a known window, index/2+1 without one. Keeps some ordering instead of
//     piling everything onto day 1.
func AssignDay(rec itinerary.RawRecord, effective dates.Date, w trip.Window, index int) (int, string) {
	if rec.Day != nil && *rec.Day > 0 {
		return *rec.Day, "explicit"
	}

	if effective.Valid() && w.Valid() {
		day := dates.DaysBetween(w.Start, effective) + 1
		if day < 1 {
			return 1, "clamped"
		}
		return day, "date"
	}

	if !w.Valid() {
		return index/2 + 1, "index"
	}
	return index + 1, "index"
}
