package core

import (
	"testing"
	"time"
)

func tx(date string, typ TransactionType, cents int64) Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return Transaction{Date: d, Type: typ, Category: Other, Amount: Money{Cents: cents}}
}

func TestNetProfitMatchesIncomeMinusExpenses(t *testing.T) {
	transactions := []Transaction{
		tx("2024-01-10", Income, 186000),
		tx("2024-02-05", Expense, 200000),
		tx("2024-02-20", Income, 50000),
	}
	want := int64(186000 + 50000 - 200000)
	if got := NetProfit(transactions).Cents; got != want {
		t.Fatalf("net profit: got %d want %d", got, want)
	}
	s := Stats(transactions)
	if s.TotalIncome.Cents != 236000 || s.TotalExpenses.Cents != 200000 {
		t.Fatalf("stats: %+v", s)
	}
	if s.NetProfit.Cents != want {
		t.Fatalf("stats net: got %d want %d", s.NetProfit.Cents, want)
	}
}

func TestNetProfitEmpty(t *testing.T) {
	if got := NetProfit(nil).Cents; got != 0 {
		t.Fatalf("got %d", got)
	}
}

// Scenario from the finance rollup: January income 1860, February expense
// 2000, net -140, buckets labeled by month name with gaps omitted.
func TestMonthlySeriesScenario(t *testing.T) {
	transactions := []Transaction{
		tx("2024-02-05", Expense, 200000),
		tx("2024-01-10", Income, 186000),
	}
	series := MonthlySeries(transactions)
	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(series))
	}
	jan, feb := series[0], series[1]
	if jan.Label() != "January" || jan.Income.Cents != 186000 || jan.Expenses.Cents != 0 {
		t.Fatalf("january bucket: %+v", jan)
	}
	if feb.Label() != "February" || feb.Income.Cents != 0 || feb.Expenses.Cents != 200000 {
		t.Fatalf("february bucket: %+v", feb)
	}
	if got := NetProfit(transactions).Cents; got != -14000 {
		t.Fatalf("net profit: got %d want -14000", got)
	}
}

func TestMonthlySeriesKeepsLastSixBuckets(t *testing.T) {
	var transactions []Transaction
	for m := 1; m <= 9; m++ {
		transactions = append(transactions, Transaction{
			Date:     time.Date(2024, time.Month(m), 15, 0, 0, 0, 0, time.UTC),
			Type:     Income,
			Category: TicketSales,
			Amount:   Money{Cents: int64(m) * 100},
		})
	}
	series := MonthlySeries(transactions)
	if len(series) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(series))
	}
	if series[0].Month != time.April || series[5].Month != time.September {
		t.Fatalf("window: %v..%v", series[0].Month, series[5].Month)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Month < series[i-1].Month {
			t.Fatalf("series not chronological at %d", i)
		}
	}
}

func TestMonthlySeriesBucketsInUTC(t *testing.T) {
	// Jan 31 23:30 UTC stays in January even when the wall clock elsewhere
	// already reads February.
	east := time.FixedZone("east", 2*3600)
	transactions := []Transaction{{
		Date:     time.Date(2024, 2, 1, 1, 30, 0, 0, east), // 2024-01-31T23:30Z
		Type:     Income,
		Category: TicketSales,
		Amount:   Money{Cents: 100},
	}}
	series := MonthlySeries(transactions)
	if len(series) != 1 || series[0].Month != time.January {
		t.Fatalf("expected a single January bucket, got %+v", series)
	}
}

func TestTopPerformers(t *testing.T) {
	comedians := []Comedian{
		{ID: "c1", Name: "Ana"},
		{ID: "c2", Name: "Ben"},
		{ID: "c3", Name: "Cleo"},
		{ID: "c4", Name: "Dev"},
	}
	show := func(ids ...string) Show {
		s := Show{Date: time.Now(), Location: "x"}
		for _, id := range ids {
			s.Performers = append(s.Performers, Comedian{ID: id})
		}
		return s
	}
	shows := []Show{
		show("c1", "c2"),
		show("c2"),
		show("c2", "c3"),
		show("c3"),
	}

	ranks := TopPerformers(shows, comedians)
	if len(ranks) != 3 {
		t.Fatalf("expected 3 ranked performers, got %d", len(ranks))
	}
	if ranks[0].Name != "Ben" || ranks[0].Shows != 3 {
		t.Fatalf("rank 0: %+v", ranks[0])
	}
	if ranks[1].Name != "Cleo" || ranks[1].Shows != 2 {
		t.Fatalf("rank 1: %+v", ranks[1])
	}
	if ranks[2].Name != "Ana" {
		t.Fatalf("rank 2: %+v", ranks[2])
	}
	// Dev never performed and must not appear
	for _, r := range ranks {
		if r.ID == "c4" {
			t.Fatalf("zero-show comedian ranked: %+v", r)
		}
	}
}

func TestTopPerformersTiesKeepCollectionOrder(t *testing.T) {
	comedians := []Comedian{
		{ID: "c1", Name: "Ana"},
		{ID: "c2", Name: "Ben"},
	}
	shows := []Show{
		{Performers: []Comedian{{ID: "c2"}, {ID: "c1"}}},
	}
	ranks := TopPerformers(shows, comedians)
	if len(ranks) != 2 || ranks[0].Name != "Ana" || ranks[1].Name != "Ben" {
		t.Fatalf("tie order: %+v", ranks)
	}
}

func TestTopPerformersTruncatesToFive(t *testing.T) {
	var comedians []Comedian
	var performers []Comedian
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		comedians = append(comedians, Comedian{ID: id, Name: id})
		performers = append(performers, Comedian{ID: id})
	}
	ranks := TopPerformers([]Show{{Performers: performers}}, comedians)
	if len(ranks) != 5 {
		t.Fatalf("expected 5, got %d", len(ranks))
	}
}

func TestUpcomingShows(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := Show{ID: "past", Date: now.Add(-24 * time.Hour)}
	later := Show{ID: "later", Date: now.Add(72 * time.Hour)}
	soon := Show{ID: "soon", Date: now.Add(24 * time.Hour)}
	exact := Show{ID: "exact", Date: now}

	upcoming := UpcomingShows([]Show{past, later, soon, exact}, now)
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	if upcoming[0].ID != "soon" || upcoming[1].ID != "later" {
		t.Fatalf("order: %s, %s", upcoming[0].ID, upcoming[1].ID)
	}
}

func TestStatusClassification(t *testing.T) {
	today := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		date time.Time
		want ShowStatus
	}{
		{today.Add(-24 * time.Hour), StatusPast},
		{today.Add(24 * time.Hour), StatusUpcoming},
		{time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC), StatusActive},
	}
	for i, tc := range cases {
		if got := Status(tc.date, today); got != tc.want {
			t.Fatalf("case %d: got %s want %s", i, got, tc.want)
		}
	}
}
