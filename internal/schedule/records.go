package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MikeSquared-Agency/magellan/internal/dates"
	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
)

// InvalidInputError is the only hard failure the pipeline surfaces: the
// top-level payload was not an array. Individually malformed records degrade
// instead of failing.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid itinerary input: %s", e.Reason)
}

// ParseRecords decodes a JSON itinerary payload. A non-array top level
// returns InvalidInputError; a malformed element becomes an empty record
// (which the pipeline schedules as an untitled activity) rather than sinking
// the whole payload.
func (a *Assembler) ParseRecords(data []byte) ([]itinerary.RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &InvalidInputError{Reason: "expected a JSON array of records"}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}

	records := make([]itinerary.RawRecord, len(elements))
	for i, el := range elements {
		if err := json.Unmarshal(el, &records[i]); err != nil {
			a.logger.Warn("malformed itinerary record, keeping placeholder",
				"index", i, "error", err)
			records[i] = itinerary.RawRecord{}
		}
	}
	return records, nil
}

// ToRawRecords serializes edited items back to the persisted record shape.
// Expanded hotel items collapse back onto their single source record. The
// original explicit day field is preserved verbatim, never recomputed: an
// editor's day choice must survive any number of round trips even when the
// date math would disagree with it.
func (a *Assembler) ToRawRecords(items []itinerary.NormalizedItem) []itinerary.RawRecord {
	emitted := make(map[int]bool, len(items))
	records := make([]itinerary.RawRecord, 0, len(items))

	for _, it := range items {
		if it.Source != nil && it.OriginIndex >= 0 {
			if emitted[it.OriginIndex] {
				continue
			}
			emitted[it.OriginIndex] = true
			records = append(records, applyEdits(*it.Source, it))
			continue
		}
		records = append(records, fromScratch(it))
	}
	return records
}

// applyEdits copies an item's editable fields onto its source record. Fields
// the pipeline synthesized (expanded stay times, derived descriptions) stay
// out of the stored shape.
func applyEdits(rec itinerary.RawRecord, it itinerary.NormalizedItem) itinerary.RawRecord {
	rec.Notes = it.Notes
	rec.UserRating = it.UserRating
	rec.Type = string(it.Type)

	if it.Type != itinerary.TypeAccommodation && dates.ValidClock(it.Time) {
		rec.StartTime = it.Time
	}
	if it.Title != "" && it.Title != rec.DisplayTitle() {
		rec.CustomTitle = it.Title
		rec.IsCustom = true
	}
	if it.FlightInfo != nil {
		rec.FlightInfo = it.FlightInfo
	}
	if it.HotelInfo != nil {
		rec.HotelInfo = it.HotelInfo
	}
	return rec
}

// fromScratch builds a record for an item created in the editor, with no
// stored source. Its assigned day becomes the explicit day.
func fromScratch(it itinerary.NormalizedItem) itinerary.RawRecord {
	day := it.Day
	rec := itinerary.RawRecord{
		ID:          it.ID,
		Day:         &day,
		StartTime:   it.Time,
		CustomTitle: it.Title,
		Type:        string(it.Type),
		Notes:       it.Notes,
		UserRating:  it.UserRating,
		IsCustom:    true,
		FlightInfo:  it.FlightInfo,
		HotelInfo:   it.HotelInfo,
	}
	if it.Description != "" {
		rec.CustomDescription = it.Description
	}
	return rec
}
