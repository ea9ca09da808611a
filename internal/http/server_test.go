package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gigbook/internal/services"
	"gigbook/internal/store"
	"gigbook/internal/suggest"
)

type fakeSuggester struct {
	result  suggest.Suggestion
	err     error
	history *string
}

func (f fakeSuggester) SuggestOptimalSchedule(ctx context.Context, history string) (suggest.Suggestion, error) {
	if f.history != nil {
		*f.history = history
	}
	return f.result, f.err
}

func newTestServer(t *testing.T, suggester Suggester) *Server {
	t.Helper()
	st := store.New()
	st.Seed()
	srv := NewServer(":0", services.NewBookingService(st, nil), suggester)
	t.Cleanup(func() { srv.Shutdown(context.Background()) })
	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := do(srv, http.MethodGet, path, ""); rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t, nil)

	rr := do(srv, http.MethodGet, "/api/dashboard", "")
	if rr.Code != 200 {
		t.Fatalf("dashboard status=%d", rr.Code)
	}

	var data services.DashboardData
	if err := json.Unmarshal(rr.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if data.Stats.TotalIncome.Cents != 264000 {
		t.Fatalf("total income = %d", data.Stats.TotalIncome.Cents)
	}
	if len(data.Monthly) != 2 {
		t.Fatalf("monthly buckets = %d", len(data.Monthly))
	}
	if len(data.UpcomingShows) == 0 {
		t.Fatal("expected upcoming shows from seed data")
	}
}

func TestFinancialStats(t *testing.T) {
	srv := newTestServer(t, nil)

	rr := do(srv, http.MethodGet, "/api/finances/stats", "")
	if rr.Code != 200 {
		t.Fatalf("stats status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"netProfit"`) {
		t.Fatalf("stats body missing netProfit: %s", rr.Body.String())
	}
}

func TestComedianCRUD(t *testing.T) {
	srv := newTestServer(t, nil)

	// create
	rr := do(srv, http.MethodPost, "/api/comedians", `{"name":"Dana Wu"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}
	var created struct {
		ID       string `json:"id"`
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" || created.ImageURL == "" {
		t.Fatalf("missing defaults: %+v", created)
	}

	// validation failure
	if rr := do(srv, http.MethodPost, "/api/comedians", `{"name":"  "}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blank name status=%d", rr.Code)
	}

	// malformed body
	if rr := do(srv, http.MethodPost, "/api/comedians", `{not json`); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json status=%d", rr.Code)
	}

	// patch
	rr = do(srv, http.MethodPatch, "/api/comedians/"+created.ID, `{"introSong":"Fanfare"}`)
	if rr.Code != 200 {
		t.Fatalf("patch status=%d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Fanfare") {
		t.Fatalf("patch not applied: %s", rr.Body.String())
	}

	// patch missing id
	if rr := do(srv, http.MethodPatch, "/api/comedians/no-such-id", `{"introSong":"x"}`); rr.Code != http.StatusNotFound {
		t.Fatalf("patch missing status=%d", rr.Code)
	}

	// delete, twice: both succeed
	for i := 0; i < 2; i++ {
		if rr := do(srv, http.MethodDelete, "/api/comedians/"+created.ID, ""); rr.Code != http.StatusNoContent {
			t.Fatalf("delete #%d status=%d", i+1, rr.Code)
		}
	}
}

func TestCreateShowUnknownPerformer(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{"date":"2026-06-05T20:00:00Z","location":"The Brick Cellar","performerIds":["com-1","ghost"]}`
	rr := do(srv, http.MethodPost, "/api/shows", body)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "ghost") {
		t.Fatalf("error does not name the bad id: %s", rr.Body.String())
	}
}

func TestCreateShowWithVenueCost(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{"date":"2026-06-05T20:00:00Z","location":"The Brick Cellar","performerIds":["com-1"],"venueCost":{"cents":35000}}`
	rr := do(srv, http.MethodPost, "/api/shows", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var created struct {
		LedgerID string `json:"ledgerId"`
		Status   string `json:"status"`
		Lineup   []string
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.LedgerID == "" {
		t.Fatal("expected linked ledger id")
	}
	if created.Status != "Upcoming" {
		t.Fatalf("status = %q", created.Status)
	}
	if len(created.Lineup) != 1 || created.Lineup[0] != "Ana Reyes" {
		t.Fatalf("lineup = %v", created.Lineup)
	}
}

func TestShowListCarriesStatus(t *testing.T) {
	srv := newTestServer(t, nil)

	rr := do(srv, http.MethodGet, "/api/shows", "")
	if rr.Code != 200 {
		t.Fatalf("status=%d", rr.Code)
	}

	var shows []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &shows); err != nil {
		t.Fatalf("decode shows: %v", err)
	}
	for _, sh := range shows {
		if sh.Status == "" {
			t.Fatalf("show %s has no status", sh.ID)
		}
	}
}

func TestSuggestSchedule(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		srv := newTestServer(t, nil)
		rr := do(srv, http.MethodPost, "/api/suggest-schedule", `{"showHistory":"anything"}`)
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status=%d", rr.Code)
		}
	})

	t.Run("history too short", func(t *testing.T) {
		srv := newTestServer(t, fakeSuggester{err: suggest.ErrHistoryTooShort})
		rr := do(srv, http.MethodPost, "/api/suggest-schedule", `{"showHistory":"short"}`)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status=%d", rr.Code)
		}
	})

	t.Run("empty history built from booked shows", func(t *testing.T) {
		var got string
		srv := newTestServer(t, fakeSuggester{history: &got})
		rr := do(srv, http.MethodPost, "/api/suggest-schedule", `{"showHistory":""}`)
		if rr.Code != 200 {
			t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
		}
		if !strings.Contains(got, "The Brick Cellar") || !strings.Contains(got, "attendance: 120") {
			t.Fatalf("history not built from store: %q", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t, fakeSuggester{result: suggest.Suggestion{
			Suggestion: "Book Friday nights.",
			Reasoning:  "Fridays drew the biggest crowds.",
		}})
		rr := do(srv, http.MethodPost, "/api/suggest-schedule", `{"showHistory":"plenty of show history text for the analyzer to work with"}`)
		if rr.Code != 200 {
			t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
		}
		if !strings.Contains(rr.Body.String(), "Book Friday nights.") {
			t.Fatalf("body = %s", rr.Body.String())
		}
	})
}

func TestMutationInvalidatesDashboardCache(t *testing.T) {
	srv := newTestServer(t, nil)

	// prime the cache
	if rr := do(srv, http.MethodGet, "/api/dashboard", ""); rr.Code != 200 {
		t.Fatalf("prime status=%d", rr.Code)
	}

	body := `{"date":"2024-03-01T00:00:00Z","type":"income","category":"merchandise","amount":{"cents":5000},"description":"Shirt sales"}`
	if rr := do(srv, http.MethodPost, "/api/transactions", body); rr.Code != http.StatusCreated {
		t.Fatalf("create transaction status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr := do(srv, http.MethodGet, "/api/dashboard", "")
	var data services.DashboardData
	if err := json.Unmarshal(rr.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if data.Stats.TotalIncome.Cents != 269000 {
		t.Fatalf("total income after mutation = %d", data.Stats.TotalIncome.Cents)
	}
}
