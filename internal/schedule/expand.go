package schedule

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
)

// Canonical wall-clock times for the legs of a stay.
const (
	checkInTime  = "15:00"
	checkOutTime = "11:00"
	interiorTime = "00:00"
)

// statusSuffixRe strips status text that upstream descriptions sometimes
// embed redundantly at the end of an address ("123 Main St - Check-in").
var statusSuffixRe = regexp.MustCompile(`\s*-\s*(Check-in|Check-out|Stay)\s*$`)

// StripStatusSuffix removes a trailing check-in/check-out/stay marker from an
// address string so the marker is never duplicated on re-expansion.
func StripStatusSuffix(s string) string {
	return statusSuffixRe.ReplaceAllString(s, "")
}

// ExpandStay turns one hotel-stay record into one normalized item per day of
// the inclusive StartDay..EndDay span:
//
//   - a single-day stay (check-in and check-out land on the same computed
//     day) emits exactly one "Stay" item;
//   - the first day of a multi-day span is the 15:00 check-in;
//   - the last day is the 11:00 check-out;
//   - interior days are midnight "Stay" rows.
//
// Every emitted item shares the source record's metadata and origin index.
func ExpandStay(stay itinerary.HotelStay, rec itinerary.RawRecord, originIndex int) []itinerary.NormalizedItem {
	address := StripStatusSuffix(stay.Address)
	info := &itinerary.HotelInfo{
		Name:               stay.Name,
		Address:            address,
		CheckInDate:        stay.CheckInDate,
		CheckOutDate:       stay.CheckOutDate,
		ConfirmationNumber: stay.Confirmation,
	}

	src := rec
	items := make([]itinerary.NormalizedItem, 0, stay.EndDay-stay.StartDay+1)
	for day := stay.StartDay; day <= stay.EndDay; day++ {
		status := itinerary.StatusStay
		clock := interiorTime
		switch {
		case stay.StartDay == stay.EndDay:
			clock = checkInTime
		case day == stay.StartDay:
			status = itinerary.StatusCheckIn
			clock = checkInTime
		case day == stay.EndDay:
			status = itinerary.StatusCheckOut
			clock = checkOutTime
		}

		items = append(items, itinerary.NormalizedItem{
			ID:          stableID(rec, originIndex, day, string(status)),
			Day:         day,
			Time:        clock,
			Title:       stay.Name,
			Description: fmt.Sprintf("%s - %s", address, status),
			Type:        itinerary.TypeAccommodation,
			HotelStatus: status,
			HotelInfo:   info,
			Notes:       rec.Notes,
			UserRating:  rec.UserRating,
			OriginIndex: originIndex,
			Source:      &src,
		})
	}
	return items
}

// stableID derives a deterministic item ID. Recomputing the schedule from the
// same input must reproduce the same IDs byte for byte, so random UUIDs are
// out; name-based ones keyed on the record identity are not.
func stableID(rec itinerary.RawRecord, originIndex, day int, discriminator string) string {
	seed := fmt.Sprintf("%s|%d|%d|%s", rec.ID, originIndex, day, discriminator)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}
