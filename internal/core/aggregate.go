package core

import (
	"sort"
	"time"
)

const (
	StatusActive   ShowStatus = "Active"
	StatusUpcoming ShowStatus = "Upcoming"
	StatusPast     ShowStatus = "Past"
)

type (
	ShowStatus string

	// FinancialStats is the all-time rollup shown on the finances page.
	FinancialStats struct {
		TotalIncome   Money `json:"totalIncome"`
		TotalExpenses Money `json:"totalExpenses"`
		NetProfit     Money `json:"netProfit"`
	}

	// MonthBucket accumulates income and expenses for one calendar month.
	// Months are derived from transaction dates in UTC.
	MonthBucket struct {
		Year     int        `json:"year"`
		Month    time.Month `json:"-"`
		Income   Money      `json:"income"`
		Expenses Money      `json:"expenses"`
	}

	// PerformerRank counts how many shows carry a comedian in their
	// performer snapshot.
	PerformerRank struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Shows int    `json:"shows"`
	}
)

// Label returns the bucket's month name ("January").
func (b MonthBucket) Label() string {
	return b.Month.String()
}

// NetProfit folds over transactions: income adds, expense subtracts.
func NetProfit(transactions []Transaction) Money {
	var total int64
	for _, t := range transactions {
		if t.Type == Income {
			total += t.Amount.Cents
		} else {
			total -= t.Amount.Cents
		}
	}
	return Money{Cents: total}
}

// Stats computes total income, total expenses and net profit in one pass.
func Stats(transactions []Transaction) FinancialStats {
	var s FinancialStats
	for _, t := range transactions {
		if t.Type == Income {
			s.TotalIncome.Cents += t.Amount.Cents
		} else {
			s.TotalExpenses.Cents += t.Amount.Cents
		}
	}
	s.NetProfit = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// MonthlySeries groups transactions into UTC calendar-month buckets, sorted
// chronologically, and returns at most the 6 most recent buckets. Months with
// no transactions are omitted, not zero-filled.
func MonthlySeries(transactions []Transaction) []MonthBucket {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key]*MonthBucket)
	for _, t := range transactions {
		d := t.Date.UTC()
		k := key{year: d.Year(), month: d.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &MonthBucket{Year: k.year, Month: k.month}
			buckets[k] = b
		}
		if t.Type == Income {
			b.Income.Cents += t.Amount.Cents
		} else {
			b.Expenses.Cents += t.Amount.Cents
		}
	}

	series := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	if len(series) > 6 {
		series = series[len(series)-6:]
	}
	return series
}

// TopPerformers counts show appearances per comedian id over performer
// snapshots, joins the counts back to comedian names, drops comedians with
// zero shows and returns at most the top 5, descending by count. Ties keep
// the comedians' collection order.
func TopPerformers(shows []Show, comedians []Comedian) []PerformerRank {
	counts := make(map[string]int)
	for _, s := range shows {
		for _, p := range s.Performers {
			counts[p.ID]++
		}
	}

	ranks := make([]PerformerRank, 0, len(comedians))
	for _, c := range comedians {
		if n := counts[c.ID]; n > 0 {
			ranks = append(ranks, PerformerRank{ID: c.ID, Name: c.Name, Shows: n})
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Shows > ranks[j].Shows
	})
	if len(ranks) > 5 {
		ranks = ranks[:5]
	}
	return ranks
}

// UpcomingShows returns the shows dated strictly after now, soonest first.
// The reference time is a parameter so the computation stays pure.
func UpcomingShows(shows []Show, now time.Time) []Show {
	upcoming := make([]Show, 0)
	for _, s := range shows {
		if s.Date.After(now) {
			upcoming = append(upcoming, s)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming
}

// Status classifies a show date against a reference day, both truncated to
// midnight UTC: Active on the same day, Upcoming after it, Past before it.
func Status(showDate, today time.Time) ShowStatus {
	d := midnightUTC(showDate)
	t := midnightUTC(today)
	switch {
	case d.Equal(t):
		return StatusActive
	case d.After(t):
		return StatusUpcoming
	default:
		return StatusPast
	}
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
