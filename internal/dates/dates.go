// Package dates provides UTC-safe calendar arithmetic for itinerary scheduling.
// All comparisons happen on UTC-midnight-truncated instants so that a record
// entered in one timezone never drifts a day when rendered in another.
package dates

import (
	"fmt"
	"regexp"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Date is a calendar instant truncated to UTC midnight. The zero value is the
// invalid sentinel; callers branch on Valid instead of letting garbage
// propagate through day arithmetic.
type Date struct {
	t     time.Time
	valid bool
}

// fastLayouts are tried in order before falling back to the heuristic parser.
// Ordered by how often each shape shows up in stored itineraries.
var fastLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02.01.2006",
}

var clockRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// Parse turns an arbitrary date-ish string into a Date. Unparsable input
// yields the invalid sentinel, never an error and never a half-set value.
func Parse(s string) Date {
	if s == "" {
		return Date{}
	}
	for _, layout := range fastLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t)
		}
	}
	// Free-form input ("May 5th 2024" and friends) goes through the
	// heuristic parser, pinned to UTC.
	dt, err := dateparser.Parse(&dateparser.Configuration{DefaultTimezone: time.UTC}, s)
	if err != nil || dt.Time.IsZero() {
		return Date{}
	}
	return FromTime(dt.Time)
}

// FromTime truncates an arbitrary timestamp to its UTC calendar day.
func FromTime(t time.Time) Date {
	u := t.UTC()
	return Date{
		t:     time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC),
		valid: true,
	}
}

// Valid reports whether the Date holds a real calendar day.
func (d Date) Valid() bool { return d.valid }

// Time returns the underlying UTC-midnight instant. Zero time when invalid.
func (d Date) Time() time.Time { return d.t }

// AddDays returns the Date shifted by n whole days. Invalid stays invalid.
func (d Date) AddDays(n int) Date {
	if !d.valid {
		return Date{}
	}
	return Date{t: d.t.AddDate(0, 0, n), valid: true}
}

// String formats the date as ISO YYYY-MM-DD, or "" when invalid.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format("2006-01-02")
}

// Equal reports whether two dates name the same calendar day. Two invalid
// dates compare equal.
func (d Date) Equal(o Date) bool {
	return d.valid == o.valid && d.t.Equal(o.t)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// DaysBetween returns the whole-day difference b-a. Both operands are already
// UTC-midnight truncated, so the division is exact and truncation equals
// floor for negative spans too.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t) / (24 * time.Hour))
}

// ValidClock reports whether s is a usable HH:MM wall-clock string.
func ValidClock(s string) bool {
	return clockRe.MatchString(s)
}

// Combine attaches an HH:MM wall clock to a calendar day, producing a full
// UTC timestamp. A missing or malformed clock leaves the timestamp at
// midnight rather than failing.
func Combine(d Date, clock string) time.Time {
	if !d.valid {
		return time.Time{}
	}
	if !ValidClock(clock) {
		return d.t
	}
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	return d.t.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}
