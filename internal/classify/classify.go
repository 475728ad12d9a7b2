// Package classify decides whether a raw itinerary record is an activity, a
// flight, or an accommodation. Classification happens exactly once, up front;
// everything downstream switches on the resulting ItemType instead of
// re-sniffing fields.
package classify

import (
	"regexp"
	"strings"

	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
)

// flightNumberRe matches IATA-style flight numbers ("BA2490", "UAL123")
// embedded in a title.
var flightNumberRe = regexp.MustCompile(`\b[A-Z]{2,3}\d+\b`)

var hotelKeywords = []string{"hotel", "resort", "inn", "motel", "lodge"}

// Record classifies a raw record. Precedence, ties broken top-down:
//
//  1. An explicit canonical type field corroborated by its structured
//     sub-document (flightInfo for flights, hotelInfo or a lodging place for
//     accommodations) wins outright.
//  2. Flight-ish title: contains "airline"/"flight" or an IATA-style number.
//  3. Hotel-ish title keyword, or a place tagged lodging.
//  4. Activity.
//
// An explicit type without its corroborating sub-document does not win; the
// title heuristics may override it. Upstream data is inconsistent enough that
// a bare type string alone is not trustworthy.
func Record(r itinerary.RawRecord) itinerary.ItemType {
	switch itinerary.ItemType(r.Type) {
	case itinerary.TypeFlight:
		if r.FlightInfo != nil {
			return itinerary.TypeFlight
		}
	case itinerary.TypeAccommodation:
		if r.HotelInfo != nil || r.HasLodgingPlace() {
			return itinerary.TypeAccommodation
		}
	}

	title := r.DisplayTitle()
	lower := strings.ToLower(title)

	if strings.Contains(lower, "airline") || strings.Contains(lower, "flight") ||
		flightNumberRe.MatchString(title) {
		return itinerary.TypeFlight
	}

	for _, kw := range hotelKeywords {
		if strings.Contains(lower, kw) {
			return itinerary.TypeAccommodation
		}
	}
	if r.HasLodgingPlace() {
		return itinerary.TypeAccommodation
	}

	return itinerary.TypeActivity
}
