package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/magellan/internal/schedule"
)

func testServer(token string) *Server {
	asm := schedule.NewAssembler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(8760, token, asm)
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer("")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := testServer("")

	req := httptest.NewRequest("GET", "/api/v1/itinerary/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["agent"] != "magellan" {
		t.Errorf("expected agent magellan, got %q", body["agent"])
	}
}

func TestScheduleEndpoint(t *testing.T) {
	srv := testServer("")

	payload := `{
		"start_date": "2024-06-01",
		"end_date": "2024-06-03",
		"items": [
			{"title": "Louvre Museum", "date": "2024-06-02", "start_time": "10:00"}
		]
	}`
	req := httptest.NewRequest("POST", "/api/v1/itinerary/schedule", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ScheduleResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Duration != 3 || len(resp.Days) != 3 {
		t.Fatalf("expected 3 days, got duration %d with %d buckets", resp.Duration, len(resp.Days))
	}
	if len(resp.Days[1].Items) != 1 || resp.Days[1].Items[0].Title != "Louvre Museum" {
		t.Errorf("day 2 unexpected: %+v", resp.Days[1].Items)
	}
}

func TestScheduleEndpoint_NonArrayItems(t *testing.T) {
	srv := testServer("")

	payload := `{"start_date": "2024-06-01", "end_date": "2024-06-03", "items": {"title": "oops"}}`
	req := httptest.NewRequest("POST", "/api/v1/itinerary/schedule", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-array items, got %d", w.Code)
	}
}

func TestSerializeEndpoint(t *testing.T) {
	srv := testServer("")

	payload := `{"items": [{"id": "x", "day": 2, "time": "18:00", "title": "Ramen", "type": "activity", "originIndex": 0}]}`
	req := httptest.NewRequest("POST", "/api/v1/itinerary/serialize", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SerializeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}
	if resp.Records[0].Day == nil || *resp.Records[0].Day != 2 {
		t.Errorf("serialized record lost its day: %+v", resp.Records[0])
	}
}

func TestBearerAuth(t *testing.T) {
	srv := testServer("sekrit")

	body := `{"start_date": "2024-06-01", "end_date": "2024-06-02", "items": []}`

	req := httptest.NewRequest("POST", "/api/v1/itinerary/schedule", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/api/v1/itinerary/schedule", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer sekrit")
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}

	// Health and status stay open.
	req = httptest.NewRequest("GET", "/health", nil)
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("health should not require auth, got %d", w.Code)
	}
}
