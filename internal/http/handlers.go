package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gigbook/internal/core"
	"gigbook/internal/store"
	"gigbook/internal/suggest"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps store errors onto status codes: missing records are
// 404, everything else the store rejects is a validation problem.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// showView decorates a show with its status relative to today.
type showView struct {
	core.Show
	Status core.ShowStatus `json:"status"`
}

func showViews(shows []core.Show, now time.Time) []showView {
	views := make([]showView, len(shows))
	for i, sh := range shows {
		views[i] = showView{Show: sh, Status: core.Status(sh.Date, now)}
	}
	return views
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if data, found := s.dashboardCache.Get(dashboardCacheKey); found {
		slog.DebugContext(r.Context(), "Dashboard cache hit")
		writeJSON(w, http.StatusOK, data)
		return
	}

	data := s.svc.Dashboard(time.Now())
	s.dashboardCache.Set(dashboardCacheKey, data)
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleFinancialStats(w http.ResponseWriter, r *http.Request) {
	if stats, found := s.statsCache.Get(statsCacheKey); found {
		slog.DebugContext(r.Context(), "Stats cache hit")
		writeJSON(w, http.StatusOK, stats)
		return
	}

	stats := s.svc.FinancialStats()
	s.statsCache.Set(statsCacheKey, stats)
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleListComedians(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Store().Comedians.List())
}

func (s *Server) handleCreateComedian(w http.ResponseWriter, r *http.Request) {
	var c core.Comedian
	if !decodeBody(w, r, &c) {
		return
	}
	c.Name = sanitizeInput(c.Name)
	c.Observations = sanitizeInput(c.Observations)

	created, err := s.svc.AddComedian(r.Context(), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateComedian(w http.ResponseWriter, r *http.Request) {
	var patch store.ComedianPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := s.svc.UpdateComedian(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteComedian(w http.ResponseWriter, r *http.Request) {
	s.svc.RemoveComedian(r.Context(), r.PathValue("id"))
	s.invalidateAggregates()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Store().Venues.List())
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var v core.Venue
	if !decodeBody(w, r, &v) {
		return
	}
	v.Name = sanitizeInput(v.Name)
	v.Address = sanitizeInput(v.Address)

	created, err := s.svc.AddVenue(r.Context(), v)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	var patch store.VenuePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := s.svc.UpdateVenue(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	s.svc.RemoveVenue(r.Context(), r.PathValue("id"))
	s.invalidateAggregates()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, showViews(s.svc.Store().Shows.List(), time.Now()))
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var in store.ShowInput
	if !decodeBody(w, r, &in) {
		return
	}
	in.Location = sanitizeInput(in.Location)
	in.Notes = sanitizeInput(in.Notes)

	created, err := s.svc.AddShow(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusCreated, showView{Show: created, Status: core.Status(created.Date, time.Now())})
}

func (s *Server) handleUpdateShow(w http.ResponseWriter, r *http.Request) {
	var patch store.ShowPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := s.svc.UpdateShow(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusOK, showView{Show: updated, Status: core.Status(updated.Date, time.Now())})
}

func (s *Server) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	s.svc.RemoveShow(r.Context(), r.PathValue("id"))
	s.invalidateAggregates()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Store().Transactions.List())
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if !decodeBody(w, r, &t) {
		return
	}
	t.Description = sanitizeInput(t.Description)

	created, err := s.svc.AddTransaction(r.Context(), t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	slog.InfoContext(r.Context(), "Transaction recorded",
		"id", created.ID,
		"type", created.Type,
		"amount", formatDollars(created.Amount.Cents))
	s.invalidateAggregates()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var patch store.TransactionPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := s.svc.UpdateTransaction(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.invalidateAggregates()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	s.svc.RemoveTransaction(r.Context(), r.PathValue("id"))
	s.invalidateAggregates()
	w.WriteHeader(http.StatusNoContent)
}

type suggestRequest struct {
	ShowHistory string `json:"showHistory"`
}

// showHistoryText flattens the booked shows into the line-per-show text the
// suggestion prompt expects.
func (s *Server) showHistoryText() string {
	var b strings.Builder
	for _, sh := range s.svc.Store().Shows.List() {
		b.WriteString(sh.Date.UTC().Format("2006-01-02 15:04"))
		b.WriteString(" | ")
		b.WriteString(sh.Location)
		b.WriteString(" | lineup: ")
		b.WriteString(strings.Join(sh.Lineup, ", "))
		fmt.Fprintf(&b, " | attendance: %d\n", sh.Attendance)
	}
	return b.String()
}

func (s *Server) handleSuggestSchedule(w http.ResponseWriter, r *http.Request) {
	if s.suggester == nil {
		writeError(w, http.StatusServiceUnavailable, "schedule suggestions are not configured")
		return
	}

	var req suggestRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ShowHistory) == "" {
		req.ShowHistory = s.showHistoryText()
	}

	result, err := s.suggester.SuggestOptimalSchedule(r.Context(), req.ShowHistory)
	if err != nil {
		if errors.Is(err, suggest.ErrHistoryTooShort) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Schedule suggestion failed", "error", err)
		writeError(w, http.StatusBadGateway, "suggestion service failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
