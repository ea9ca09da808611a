// Package services orchestrates store mutations and the async mirror
// publications that follow them.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gigbook/internal/amqp"
	"gigbook/internal/core"
	"gigbook/internal/store"
)

// BookingService orchestrates agency operations across the in-memory store
// and AMQP. Every mutation publishes a snapshot sync message per touched
// collection so the worker can mirror it to SQLite.
type BookingService struct {
	store      *store.Store
	amqpClient *amqp.Client
}

func NewBookingService(s *store.Store, amqpClient *amqp.Client) *BookingService {
	return &BookingService{
		store:      s,
		amqpClient: amqpClient,
	}
}

// Store exposes the underlying collections for read paths.
func (s *BookingService) Store() *store.Store {
	return s.store
}

// DashboardData is the aggregate read model behind the dashboard page.
type DashboardData struct {
	Stats         core.FinancialStats  `json:"stats"`
	Monthly       []MonthPoint         `json:"monthly"`
	TopPerformers []core.PerformerRank `json:"topPerformers"`
	UpcomingShows []core.Show          `json:"upcomingShows"`
}

// MonthPoint is one chart point: the bucket plus its month label.
type MonthPoint struct {
	core.MonthBucket
	Label string `json:"month"`
}

// Dashboard assembles the full dashboard read model against a reference time.
func (s *BookingService) Dashboard(now time.Time) DashboardData {
	transactions := s.store.Transactions.List()
	shows := s.store.Shows.List()

	series := core.MonthlySeries(transactions)
	monthly := make([]MonthPoint, len(series))
	for i, b := range series {
		monthly[i] = MonthPoint{MonthBucket: b, Label: b.Label()}
	}

	return DashboardData{
		Stats:         core.Stats(transactions),
		Monthly:       monthly,
		TopPerformers: core.TopPerformers(shows, s.store.Comedians.List()),
		UpcomingShows: core.UpcomingShows(shows, now),
	}
}

// FinancialStats returns the all-time income/expense rollup.
func (s *BookingService) FinancialStats() core.FinancialStats {
	return core.Stats(s.store.Transactions.List())
}

func (s *BookingService) AddComedian(ctx context.Context, c core.Comedian) (core.Comedian, error) {
	created, err := s.store.Comedians.Add(c)
	if err != nil {
		return core.Comedian{}, fmt.Errorf("add comedian: %w", err)
	}
	s.publishSync(ctx, store.CollectionComedians)
	return created, nil
}

func (s *BookingService) UpdateComedian(ctx context.Context, id string, patch store.ComedianPatch) (core.Comedian, error) {
	updated, err := s.store.Comedians.Update(id, patch)
	if err != nil {
		return core.Comedian{}, err
	}
	s.publishSync(ctx, store.CollectionComedians)
	return updated, nil
}

func (s *BookingService) RemoveComedian(ctx context.Context, id string) {
	s.store.Comedians.Remove(id)
	s.publishSync(ctx, store.CollectionComedians)
}

func (s *BookingService) AddVenue(ctx context.Context, v core.Venue) (core.Venue, error) {
	created, err := s.store.Venues.Add(v)
	if err != nil {
		return core.Venue{}, fmt.Errorf("add venue: %w", err)
	}
	s.publishSync(ctx, store.CollectionVenues)
	return created, nil
}

func (s *BookingService) UpdateVenue(ctx context.Context, id string, patch store.VenuePatch) (core.Venue, error) {
	updated, err := s.store.Venues.Update(id, patch)
	if err != nil {
		return core.Venue{}, err
	}
	s.publishSync(ctx, store.CollectionVenues)
	return updated, nil
}

func (s *BookingService) RemoveVenue(ctx context.Context, id string) {
	s.store.Venues.Remove(id)
	s.publishSync(ctx, store.CollectionVenues)
}

func (s *BookingService) AddTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	created, err := s.store.Transactions.Add(t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	s.publishSync(ctx, store.CollectionTransactions)
	return created, nil
}

func (s *BookingService) UpdateTransaction(ctx context.Context, id string, patch store.TransactionPatch) (core.Transaction, error) {
	updated, err := s.store.Transactions.Update(id, patch)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publishSync(ctx, store.CollectionTransactions)
	return updated, nil
}

func (s *BookingService) RemoveTransaction(ctx context.Context, id string) {
	s.store.Transactions.Remove(id)
	s.publishSync(ctx, store.CollectionTransactions)
}

// AddShow books a show. Booking fans out across collections: the show
// itself, performer and venue histories, and the linked rental transaction
// when a venue cost is given, so every touched collection is synced.
func (s *BookingService) AddShow(ctx context.Context, in store.ShowInput) (core.Show, error) {
	created, err := s.store.AddShow(in)
	if err != nil {
		return core.Show{}, err
	}
	s.publishSync(ctx, store.CollectionShows)
	s.publishSync(ctx, store.CollectionComedians)
	s.publishSync(ctx, store.CollectionVenues)
	if created.LedgerID != "" {
		s.publishSync(ctx, store.CollectionTransactions)
	}
	return created, nil
}

func (s *BookingService) UpdateShow(ctx context.Context, id string, patch store.ShowPatch) (core.Show, error) {
	updated, err := s.store.UpdateShow(id, patch)
	if err != nil {
		return core.Show{}, err
	}
	s.publishSync(ctx, store.CollectionShows)
	return updated, nil
}

func (s *BookingService) RemoveShow(ctx context.Context, id string) {
	s.store.Shows.Remove(id)
	s.publishSync(ctx, store.CollectionShows)
}

// publishSync snapshots the collection and sends it to the mirror worker.
// The store write already succeeded, so a publish failure is logged and
// swallowed; the periodic flush catches anything lost.
func (s *BookingService) publishSync(ctx context.Context, collection string) {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping sync message",
			"collection", collection)
		return
	}
	snap, err := s.store.Snapshot(collection)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to snapshot collection for sync",
			"collection", collection, "error", err)
		return
	}
	if err := s.amqpClient.PublishSnapshotSync(ctx, collection, snap); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"collection", collection, "error", err)
	}
}

// Close releases the AMQP connection if one was configured.
func (s *BookingService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close booking service: %w", err)
		}
	}
	return nil
}
