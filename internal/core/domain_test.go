package core

import (
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestComedianValidate(t *testing.T) {
	if err := (Comedian{Name: "Ana Reyes"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Comedian{Name: "   "}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestShowValidate(t *testing.T) {
	good := Show{
		Date:       time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		Location:   "The Cellar",
		Attendance: 80,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Show{
		{Location: "The Cellar"},                       // zero date
		{Date: good.Date, Location: ""},                // empty location
		{Date: good.Date, Location: "x", Attendance: -1},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:        Income,
		Category:    TicketSales,
		Amount:      Money{Cents: 186000},
		Description: "door sales",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(tx *Transaction)
	}{
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }},
		{"bad type", func(tx *Transaction) { tx.Type = "refund" }},
		{"bad category", func(tx *Transaction) { tx.Category = "snacks" }},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }},
	}
	for _, tc := range cases {
		tx := good
		tc.mut(&tx)
		if err := tx.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
