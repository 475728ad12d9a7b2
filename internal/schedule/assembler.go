// Package schedule turns a trip's loose itinerary records into the
// day-by-day schedule renderers consume, and serializes edited items back to
// the raw record shape for persistence.
package schedule

import (
	"log/slog"
	"strings"

	"github.com/MikeSquared-Agency/magellan/internal/classify"
	"github.com/MikeSquared-Agency/magellan/internal/dates"
	"github.com/MikeSquared-Agency/magellan/internal/flight"
	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
	"github.com/MikeSquared-Agency/magellan/internal/trip"
)

// Assembler runs the full scheduling pipeline: classify, resolve flight
// arrivals, assign days, expand hotel stays, dedupe, sort, bucket. It holds
// no state between runs; the same input always produces the same output.
type Assembler struct {
	logger *slog.Logger
}

// NewAssembler creates an assembler. Degraded records (bad dates, missing
// flight info) are reported through the logger and never abort a run.
func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger}
}

// Build computes the complete schedule: one bucket per trip day, in order,
// empty days included. Input records are never mutated.
func (a *Assembler) Build(records []itinerary.RawRecord, w trip.Window) []itinerary.DayBucket {
	items := a.Normalize(records, w)

	items, removed := Dedupe(items)
	if removed > 0 {
		a.logger.Debug("removed duplicate items", "count", removed)
	}
	Sort(items)

	numDays := 1
	if w.Valid() {
		numDays = w.Duration()
	}
	for _, it := range items {
		// Items assigned past the trip end keep their day; the bucket range
		// grows to hold them instead of silently relocating them.
		if it.Day > numDays {
			numDays = it.Day
		}
	}

	buckets := make([]itinerary.DayBucket, numDays)
	byDay := make(map[int][]itinerary.NormalizedItem, numDays)
	for _, it := range items {
		byDay[it.Day] = append(byDay[it.Day], it)
	}
	for n := 1; n <= numDays; n++ {
		bucket := itinerary.DayBucket{
			DayNumber: n,
			Date:      w.DateOf(n).String(),
			Items:     byDay[n],
		}
		if bucket.Items == nil {
			bucket.Items = []itinerary.NormalizedItem{}
		}
		buckets[n-1] = bucket
	}
	return buckets
}

// Normalize runs classification, date resolution, day assignment, and hotel
// expansion, producing the flat unsorted item list.
func (a *Assembler) Normalize(records []itinerary.RawRecord, w trip.Window) []itinerary.NormalizedItem {
	items := make([]itinerary.NormalizedItem, 0, len(records))
	for i, rec := range records {
		switch classify.Record(rec) {
		case itinerary.TypeFlight:
			items = append(items, a.normalizeFlight(rec, w, i))
		case itinerary.TypeAccommodation:
			items = append(items, a.normalizeStay(rec, w, i)...)
		default:
			items = append(items, a.normalizeActivity(rec, w, i))
		}
	}
	return items
}

func (a *Assembler) normalizeFlight(rec itinerary.RawRecord, w trip.Window, index int) itinerary.NormalizedItem {
	info, arrival := flight.ResolveArrival(rec)
	if arrival.Synthetic {
		a.logger.Warn("flight record has no flight info, using synthetic segment",
			"index", index, "title", rec.DisplayTitle())
	}

	day, via := AssignDay(rec, arrival.Date, w, index)
	a.logAssignment(via, index, rec)

	display := rec.StartTime
	if display == "" {
		display = info.Departure.Time
	}
	// Flights sort by when they land, not when they take off, so a morning
	// arrival files ahead of the day's afternoon activities.
	sortClock := arrival.Time
	if sortClock == "" {
		sortClock = display
	}

	src := rec
	return itinerary.NormalizedItem{
		ID:          stableID(rec, index, day, "flight"),
		Day:         day,
		Time:        display,
		Title:       rec.DisplayTitle(),
		Description: flightDescription(rec, info),
		Type:        itinerary.TypeFlight,
		FlightInfo:  info,
		Notes:       rec.Notes,
		UserRating:  rec.UserRating,
		SortKey:     SortKey(day, sortClock, index),
		OriginIndex: index,
		Source:      &src,
	}
}

func (a *Assembler) normalizeStay(rec itinerary.RawRecord, w trip.Window, index int) []itinerary.NormalizedItem {
	stay := a.resolveStay(rec, w, index)
	items := ExpandStay(stay, rec, index)
	for j := range items {
		items[j].SortKey = SortKey(items[j].Day, items[j].Time, index)
	}
	return items
}

// resolveStay maps an accommodation record onto trip days. The check-in date
// anchors the span; a missing or unparsable check-out collapses it to a
// single day.
func (a *Assembler) resolveStay(rec itinerary.RawRecord, w trip.Window, index int) itinerary.HotelStay {
	stay := itinerary.HotelStay{Name: rec.DisplayTitle()}
	if rec.Place != nil {
		stay.Address = rec.Place.Address
	}
	if hi := rec.HotelInfo; hi != nil {
		if hi.Name != "" {
			stay.Name = hi.Name
		}
		if hi.Address != "" {
			stay.Address = hi.Address
		}
		stay.CheckInDate = hi.CheckInDate
		stay.CheckOutDate = hi.CheckOutDate
		stay.Confirmation = hi.ConfirmationNumber
	}

	checkIn := dates.Parse(stay.CheckInDate)
	if !checkIn.Valid() {
		checkIn = dates.Parse(rec.Date)
	}
	startDay, via := AssignDay(rec, checkIn, w, index)
	a.logAssignment(via, index, rec)
	stay.StartDay = startDay

	stay.EndDay = startDay
	if out := dates.Parse(stay.CheckOutDate); out.Valid() && w.Valid() {
		endDay := dates.DaysBetween(w.Start, out) + 1
		if endDay > startDay {
			stay.EndDay = endDay
		} else if endDay < startDay {
			a.logger.Warn("stay ends before it starts, collapsing to one day",
				"index", index, "check_in", stay.CheckInDate, "check_out", stay.CheckOutDate)
		}
	}
	return stay
}

func (a *Assembler) normalizeActivity(rec itinerary.RawRecord, w trip.Window, index int) itinerary.NormalizedItem {
	day, via := AssignDay(rec, dates.Parse(rec.Date), w, index)
	a.logAssignment(via, index, rec)

	description := rec.CustomDescription
	if description == "" && rec.Place != nil {
		description = rec.Place.Address
	}

	src := rec
	return itinerary.NormalizedItem{
		ID:          stableID(rec, index, day, "activity"),
		Day:         day,
		Time:        rec.StartTime,
		Title:       rec.DisplayTitle(),
		Description: description,
		Type:        itinerary.TypeActivity,
		Notes:       rec.Notes,
		UserRating:  rec.UserRating,
		SortKey:     SortKey(day, rec.StartTime, index),
		OriginIndex: index,
		Source:      &src,
	}
}

func (a *Assembler) logAssignment(via string, index int, rec itinerary.RawRecord) {
	switch via {
	case "clamped":
		a.logger.Debug("record dated before trip start, clamped to day 1",
			"index", index, "date", rec.Date)
	case "index":
		a.logger.Debug("record has no usable date, assigned positionally",
			"index", index, "title", rec.DisplayTitle())
	}
}

func flightDescription(rec itinerary.RawRecord, info *itinerary.FlightInfo) string {
	if rec.CustomDescription != "" {
		return rec.CustomDescription
	}
	var parts []string
	if info.Airline != "" {
		parts = append(parts, info.Airline)
	}
	if info.FlightNumber != "" {
		parts = append(parts, info.FlightNumber)
	}
	if info.Departure.AirportCode != "" && info.Arrival.AirportCode != "" {
		parts = append(parts, info.Departure.AirportCode+" to "+info.Arrival.AirportCode)
	}
	return strings.Join(parts, " ")
}
