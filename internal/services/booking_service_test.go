package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gigbook/internal/core"
	"gigbook/internal/store"
)

// A nil AMQP client means mutations succeed locally and sync is skipped.
func newTestService() *BookingService {
	s := store.New()
	s.Seed()
	return NewBookingService(s, nil)
}

func TestMutationsWorkWithoutAMQP(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.AddComedian(ctx, core.Comedian{Name: "Dana Wu"})
	if err != nil {
		t.Fatalf("add comedian: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	name := "Dana Wu Jr."
	updated, err := svc.UpdateComedian(ctx, created.ID, store.ComedianPatch{Name: &name})
	if err != nil {
		t.Fatalf("update comedian: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("name = %q", updated.Name)
	}

	svc.RemoveComedian(ctx, created.ID)
	if _, err := svc.Store().Comedians.Get(created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestUpdateMissingSurfacesNotFound(t *testing.T) {
	svc := newTestService()
	notes := "moved to the big room"
	_, err := svc.UpdateShow(context.Background(), "no-such-show", store.ShowPatch{Notes: &notes})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddShowCreatesLinkedRental(t *testing.T) {
	svc := newTestService()
	before := len(svc.Store().Transactions.List())

	show, err := svc.AddShow(context.Background(), store.ShowInput{
		Date:         time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC),
		Location:     "The Brick Cellar",
		PerformerIDs: []string{"com-1", "com-2"},
		VenueCost:    &core.Money{Cents: 35000},
	})
	if err != nil {
		t.Fatalf("add show: %v", err)
	}
	if show.LedgerID == "" {
		t.Fatal("expected linked rental transaction")
	}
	if len(svc.Store().Transactions.List()) != before+1 {
		t.Fatal("rental transaction not recorded")
	}
	if _, err := svc.Store().Transactions.Get(show.LedgerID); err != nil {
		t.Fatalf("ledger id does not resolve: %v", err)
	}
}

func TestDashboardAggregates(t *testing.T) {
	svc := newTestService()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	d := svc.Dashboard(now)

	if d.Stats.TotalIncome.Cents != 264000 {
		t.Fatalf("total income = %d", d.Stats.TotalIncome.Cents)
	}
	if d.Stats.TotalExpenses.Cents != 112000 {
		t.Fatalf("total expenses = %d", d.Stats.TotalExpenses.Cents)
	}
	if d.Stats.NetProfit.Cents != 152000 {
		t.Fatalf("net profit = %d", d.Stats.NetProfit.Cents)
	}

	if len(d.Monthly) != 2 {
		t.Fatalf("monthly buckets = %d", len(d.Monthly))
	}
	if d.Monthly[0].Label != "January" || d.Monthly[1].Label != "February" {
		t.Fatalf("labels = %q, %q", d.Monthly[0].Label, d.Monthly[1].Label)
	}

	// only show-3 is after the reference time
	if len(d.UpcomingShows) != 1 || d.UpcomingShows[0].ID != "show-3" {
		t.Fatalf("upcoming = %+v", d.UpcomingShows)
	}

	if len(d.TopPerformers) == 0 || d.TopPerformers[0].Name != "Ana Reyes" {
		t.Fatalf("top performers = %+v", d.TopPerformers)
	}
}
