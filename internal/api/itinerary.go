package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MikeSquared-Agency/magellan/internal/itinerary"
	"github.com/MikeSquared-Agency/magellan/internal/schedule"
	"github.com/MikeSquared-Agency/magellan/internal/trip"
)

// ScheduleRequest carries a trip window and the raw itinerary payload. Items
// stays a raw message so the assembler owns array validation and per-record
// degradation.
type ScheduleRequest struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Items     json.RawMessage `json:"items"`
}

// ScheduleResponse is the computed day-by-day schedule.
type ScheduleResponse struct {
	Duration int                   `json:"duration"`
	Days     []itinerary.DayBucket `json:"days"`
}

// SerializeRequest carries edited normalized items headed back to storage.
type SerializeRequest struct {
	Items []itinerary.NormalizedItem `json:"items"`
}

// SerializeResponse is the persisted record shape of those items.
type SerializeResponse struct {
	Records []itinerary.RawRecord `json:"records"`
}

// buildSchedule handles POST /api/v1/itinerary/schedule.
func (s *Server) buildSchedule(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
		return
	}

	var req ScheduleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	records, err := s.assembler.ParseRecords(req.Items)
	if err != nil {
		var invalid *schedule.InvalidInputError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalid.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	window := trip.ParseWindow(req.StartDate, req.EndDate)
	days := s.assembler.Build(records, window)
	writeJSON(w, http.StatusOK, ScheduleResponse{
		Duration: len(days),
		Days:     days,
	})
}

// serializeItems handles POST /api/v1/itinerary/serialize.
func (s *Server) serializeItems(w http.ResponseWriter, r *http.Request) {
	var req SerializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, SerializeResponse{
		Records: s.assembler.ToRawRecords(req.Items),
	})
}
