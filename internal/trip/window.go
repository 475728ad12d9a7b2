// Package trip models the trip-level calendar window that day numbers are
// computed against.
package trip

import (
	"github.com/MikeSquared-Agency/magellan/internal/dates"
)

// Window is the trip's inclusive start/end calendar range. The zero value is
// the unknown window; day assignment falls back to positional numbering when
// the window is unknown.
type Window struct {
	Start dates.Date
	End   dates.Date
}

// ParseWindow builds a Window from the stored start/end date strings.
// A window with either date unparsable, or end before start, is unknown.
func ParseWindow(start, end string) Window {
	w := Window{Start: dates.Parse(start), End: dates.Parse(end)}
	if !w.Valid() {
		return Window{}
	}
	return w
}

// Valid reports whether the window names a usable range.
func (w Window) Valid() bool {
	return w.Start.Valid() && w.End.Valid() && !w.End.Before(w.Start)
}

// Duration is the trip length in days, inclusive of both ends. Matches the
// stored trips' duration rule: days difference + 1, never below 1.
func (w Window) Duration() int {
	if !w.Valid() {
		return 1
	}
	d := dates.DaysBetween(w.Start, w.End) + 1
	if d < 1 {
		return 1
	}
	return d
}

// DateOf returns the calendar date of a 1-based trip day, invalid when the
// window is unknown.
func (w Window) DateOf(day int) dates.Date {
	if !w.Valid() {
		return dates.Date{}
	}
	return w.Start.AddDays(day - 1)
}
