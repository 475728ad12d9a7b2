// Package itinerary defines the wire shapes shared across the scheduling
// pipeline: the loose raw records the persistence layer hands us, and the
// normalized per-day items we hand back to renderers.
package itinerary

// ItemType is the classification of a normalized item.
type ItemType string

const (
	TypeActivity      ItemType = "activity"
	TypeFlight        ItemType = "flight"
	TypeAccommodation ItemType = "accommodation"
)

// HotelStatus marks which leg of a hotel stay an expanded item represents.
// It is produced exactly once by the expander and never re-derived from
// description text downstream.
type HotelStatus string

const (
	StatusCheckIn  HotelStatus = "Check-in"
	StatusCheckOut HotelStatus = "Check-out"
	StatusStay     HotelStatus = "Stay"
)

// Place mirrors the stored place sub-document.
type Place struct {
	Name        string         `json:"name"`
	Address     string         `json:"address,omitempty"`
	Coordinates map[string]any `json:"coordinates,omitempty"`
	PlaceID     string         `json:"place_id,omitempty"`
	Types       []string       `json:"types,omitempty"`
	Rating      float64        `json:"rating,omitempty"`
	Photos      []string       `json:"photos,omitempty"`
}

// FlightEndpoint is one end of a flight segment.
type FlightEndpoint struct {
	Airport     string `json:"airport,omitempty"`
	AirportCode string `json:"airportCode,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Terminal    string `json:"terminal,omitempty"`
	Gate        string `json:"gate,omitempty"`
}

// FlightInfo mirrors the stored flight sub-document.
type FlightInfo struct {
	Airline          string         `json:"airline,omitempty"`
	FlightNumber     string         `json:"flightNumber,omitempty"`
	Departure        FlightEndpoint `json:"departure"`
	Arrival          FlightEndpoint `json:"arrival"`
	Duration         string         `json:"duration,omitempty"`
	Aircraft         string         `json:"aircraft,omitempty"`
	SeatNumber       string         `json:"seatNumber,omitempty"`
	BookingReference string         `json:"bookingReference,omitempty"`
	Status           string         `json:"status,omitempty"`
}

// HotelInfo mirrors the stored accommodation sub-document.
type HotelInfo struct {
	Name               string `json:"name,omitempty"`
	Address            string `json:"address,omitempty"`
	CheckInDate        string `json:"checkInDate,omitempty"`
	CheckOutDate       string `json:"checkOutDate,omitempty"`
	ConfirmationNumber string `json:"confirmationNumber,omitempty"`
}

// RawRecord is the loosely-typed itinerary record as persisted. No field is
// guaranteed present; the pipeline degrades per field rather than rejecting
// the record.
type RawRecord struct {
	ID                string      `json:"id,omitempty"`
	Day               *int        `json:"day,omitempty"`
	Date              string      `json:"date,omitempty"`
	StartTime         string      `json:"start_time,omitempty"`
	EndTime           string      `json:"end_time,omitempty"`
	Title             string      `json:"title,omitempty"`
	CustomTitle       string      `json:"custom_title,omitempty"`
	CustomDescription string      `json:"custom_description,omitempty"`
	Type              string      `json:"type,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	UserRating        *int        `json:"userRating,omitempty"`
	EstimatedDuration int         `json:"estimated_duration,omitempty"`
	Order             int         `json:"order,omitempty"`
	IsCustom          bool        `json:"is_custom,omitempty"`
	Place             *Place      `json:"place,omitempty"`
	FlightInfo        *FlightInfo `json:"flightInfo,omitempty"`
	HotelInfo         *HotelInfo  `json:"hotelInfo,omitempty"`
}

// DisplayTitle resolves the record's title with the frontend precedence:
// custom title, then title, then place name.
func (r RawRecord) DisplayTitle() string {
	switch {
	case r.CustomTitle != "":
		return r.CustomTitle
	case r.Title != "":
		return r.Title
	case r.Place != nil && r.Place.Name != "":
		return r.Place.Name
	}
	return "Untitled"
}

// HasLodgingPlace reports whether the record's place is tagged as lodging.
func (r RawRecord) HasLodgingPlace() bool {
	if r.Place == nil {
		return false
	}
	for _, t := range r.Place.Types {
		if t == "lodging" {
			return true
		}
	}
	return false
}

// NormalizedItem is one scheduled row of the itinerary. Items are transient:
// owned by the computation that produced them and rebuilt from scratch on
// every change, never patched in place.
type NormalizedItem struct {
	ID          string      `json:"id"`
	Day         int         `json:"day"` // 1-based, always >= 1
	Time        string      `json:"time"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Type        ItemType    `json:"type"`
	HotelStatus HotelStatus `json:"hotelStatus,omitempty"`
	FlightInfo  *FlightInfo `json:"flightInfo,omitempty"`
	HotelInfo   *HotelInfo  `json:"hotelInfo,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	UserRating  *int        `json:"userRating,omitempty"`
	SortKey     string      `json:"sortKey"`

	// OriginIndex is the position of the source record in the raw input
	// array. Expanded hotel items share one origin; serialization collapses
	// on it and the sorter uses it as the final tie-break.
	OriginIndex int `json:"originIndex"`

	// Source is the untouched raw record this item came from, carried so an
	// edited item can be serialized back without recomputing fields the user
	// set explicitly (the day field above all).
	Source *RawRecord `json:"source,omitempty"`
}

// HotelStay is a multi-night accommodation span resolved onto trip days.
// StartDay <= EndDay always holds.
type HotelStay struct {
	Name         string
	Address      string
	CheckInDate  string
	CheckOutDate string
	Confirmation string
	StartDay     int
	EndDay       int
}

// DayBucket groups the normalized items of one trip day. Buckets exist for
// every day of the trip, empty or not, and are rebuilt on every computation.
type DayBucket struct {
	DayNumber int              `json:"dayNumber"`
	Date      string           `json:"date,omitempty"` // ISO YYYY-MM-DD, "" when the window is unknown
	Items     []NormalizedItem `json:"items"`
}
