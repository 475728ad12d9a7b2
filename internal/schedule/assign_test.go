package schedule

import (
	"testing"

	"github.com/MikeSquared-Agency/magellan/internal/dates"
	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
	"github.com/MikeSquared-Agency/magellan/internal/trip"
)

func intp(n int) *int { return &n }

func TestAssignDay(t *testing.T) {
	window := trip.ParseWindow("2024-06-01", "2024-06-07")

	tests := []struct {
		name      string
		rec       itinerary.RawRecord
		effective string
		w         trip.Window
		index     int
		wantDay   int
		wantVia   string
	}{
		{
			name:      "explicit day wins over date",
			rec:       itinerary.RawRecord{Day: intp(5), Date: "2024-06-02"},
			effective: "2024-06-02",
			w:         window,
			wantDay:   5,
			wantVia:   "explicit",
		},
		{
			name:      "explicit day wins without any date",
			rec:       itinerary.RawRecord{Day: intp(2)},
			w:         window,
			wantDay:   2,
			wantVia:   "explicit",
		},
		{
			name:    "zero day does not count as explicit",
			rec:     itinerary.RawRecord{Day: intp(0)},
			w:       window,
			index:   3,
			wantDay: 4,
			wantVia: "index",
		},
		{
			name:      "date difference plus one",
			effective: "2024-06-03",
			w:         window,
			wantDay:   3,
			wantVia:   "date",
		},
		{
			name:      "trip start is day one",
			effective: "2024-06-01",
			w:         window,
			wantDay:   1,
			wantVia:   "date",
		},
		{
			name:      "before trip start clamps to day one",
			effective: "2024-05-28",
			w:         window,
			wantDay:   1,
			wantVia:   "clamped",
		},
		{
			name:    "no date with window uses index plus one",
			w:       window,
			index:   2,
			wantDay: 3,
			wantVia: "index",
		},
		{
			name:    "no date no window pairs up by index",
			index:   5,
			wantDay: 3,
			wantVia: "index",
		},
		{
			name:      "date without window is positional",
			effective: "2024-06-03",
			index:     4,
			wantDay:   3,
			wantVia:   "index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, via := AssignDay(tt.rec, dates.Parse(tt.effective), tt.w, tt.index)
			if day != tt.wantDay || via != tt.wantVia {
				t.Errorf("AssignDay() = %d via %q, want %d via %q", day, via, tt.wantDay, tt.wantVia)
			}
		})
	}
}
