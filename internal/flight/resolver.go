// Package flight resolves the effective date/time of a flight record. Day
// numbering is trip-local, so a flight belongs to the day it arrives, not the
// day it departs.
package flight

import (
	"regexp"
	"strconv"
	"time"

	"github.com/MikeSquared-Agency/magellan/internal/dates"
	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
)

// SyntheticCode is the airport code stamped on segments invented for flight
// records that carry no flight info at all.
const SyntheticCode = "XXX"

// durationRe matches stored duration strings such as "2h 15m", "10h", "2h15m".
var durationRe = regexp.MustCompile(`(\d+)h?\s*(\d+)?m?`)

// Arrival is the resolved effective arrival used for day assignment.
type Arrival struct {
	Date dates.Date
	Time string // HH:MM wall clock, "" when nothing usable was found

	// Synthetic is set when the record had no flight info and a placeholder
	// segment was invented so downstream stages never see a nil.
	Synthetic bool

	// Source names which rule produced the arrival: "explicit", "rollover",
	// "duration", or "record". Used for diagnostics only.
	Source string
}

// ResolveArrival computes the effective arrival of a flight record and
// returns the flight info to attach to the normalized item. The returned
// info is the record's own segment, or a minimal synthetic one when absent.
//
// Resolution order:
//   - explicit arrival date+time on the segment, used directly;
//   - record date + arrival time, rolled over to the next day when the
//     arrival clock reads earlier than the departure clock (overnight
//     flights with no explicit arrival date);
//   - departure + parsed duration, preferred over the rollover guess when
//     the two disagree by more than 24 hours. This tie-break mirrors the
//     historical behavior; it papers over unreliable upstream data and is
//     not a real timezone computation.
func ResolveArrival(r itinerary.RawRecord) (*itinerary.FlightInfo, Arrival) {
	fi := r.FlightInfo
	if fi == nil {
		syn := &itinerary.FlightInfo{
			Departure: itinerary.FlightEndpoint{AirportCode: SyntheticCode, Date: r.Date, Time: r.StartTime},
			Arrival:   itinerary.FlightEndpoint{AirportCode: SyntheticCode, Date: r.Date, Time: r.StartTime},
		}
		return syn, Arrival{
			Date:      dates.Parse(r.Date),
			Time:      r.StartTime,
			Synthetic: true,
			Source:    "record",
		}
	}

	if fi.Arrival.Date != "" && fi.Arrival.Time != "" {
		if d := dates.Parse(fi.Arrival.Date); d.Valid() {
			return fi, Arrival{Date: d, Time: fi.Arrival.Time, Source: "explicit"}
		}
	}

	base := dates.Parse(r.Date)
	if !base.Valid() {
		base = dates.Parse(fi.Departure.Date)
	}
	depTime := fi.Departure.Time
	if depTime == "" {
		depTime = r.StartTime
	}
	arrTime := fi.Arrival.Time

	// Overnight rollover: landing clock earlier than takeoff clock means the
	// flight crossed midnight.
	arrDate := base
	if arrTime != "" && depTime != "" && arrTime < depTime {
		arrDate = base.AddDays(1)
	}
	display := arrTime
	if display == "" {
		display = depTime
	}
	result := Arrival{Date: arrDate, Time: display, Source: "rollover"}

	if fi.Duration != "" && base.Valid() && dates.ValidClock(depTime) {
		if dur, ok := ParseDuration(fi.Duration); ok {
			byDuration := dates.Combine(base, depTime).Add(dur)
			naive := dates.Combine(arrDate, display)
			diff := byDuration.Sub(naive)
			if diff < 0 {
				diff = -diff
			}
			if diff > 24*time.Hour {
				result = Arrival{
					Date:   dates.FromTime(byDuration),
					Time:   byDuration.Format("15:04"),
					Source: "duration",
				}
			}
		}
	}

	return fi, result
}

// ParseDuration parses a stored flight duration string ("2h 15m") into a
// time.Duration. The first number is hours, the optional second minutes.
func ParseDuration(s string) (time.Duration, bool) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	var minutes int
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, true
}
