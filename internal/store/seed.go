package store

import (
	"time"

	"gigbook/internal/core"
)

// Seed fills the collections with the static fixtures the app ships with.
// Ids are fixed so the fixtures can reference each other.
func (s *Store) Seed() {
	comedians := []core.Comedian{
		{
			ID:   "com-1",
			Name: "Ana Reyes",
			Contact: core.Contact{
				Email: "ana@laughs.example",
				Phone: "555-0101",
			},
			SocialMedia:        core.SocialMedia{Instagram: "https://instagram.com/anareyescomedy"},
			ImageURL:           PlaceholderImageURL,
			IntroSong:          "https://music.example/ana-intro",
			Observations:       "Crowd work specialist, keeps sets clean on request.",
			PerformanceHistory: []string{"show-1", "show-2"},
		},
		{
			ID:   "com-2",
			Name: "Ben Okafor",
			Contact: core.Contact{
				Email: "ben@laughs.example",
				Phone: "555-0102",
			},
			SocialMedia:        core.SocialMedia{YouTube: "https://youtube.com/@benokafor"},
			ImageURL:           PlaceholderImageURL,
			IntroSong:          "Eye of the Tiger",
			Observations:       "Needs a stool on stage.",
			PerformanceHistory: []string{"show-1"},
		},
		{
			ID:   "com-3",
			Name: "Cleo Marsh",
			Contact: core.Contact{
				Email: "cleo@laughs.example",
				Phone: "555-0103",
			},
			SocialMedia:        core.SocialMedia{X: "https://x.com/cleomarsh"},
			ImageURL:           PlaceholderImageURL,
			IntroSong:          "",
			Observations:       "Strong closer, prefers late slots.",
			PerformanceHistory: []string{"show-2", "show-3"},
		},
	}

	venues := []core.Venue{
		{
			ID:      "ven-1",
			Name:    "The Brick Cellar",
			Address: "14 Mercer St",
			Contact: core.Contact{
				Name:  "Paula Quinn",
				Email: "paula@brickcellar.example",
				Phone: "555-0201",
			},
			SocialMedia:   core.SocialMedia{Instagram: "https://instagram.com/brickcellar"},
			ImageURL:      PlaceholderImageURL,
			AvailableDays: []string{"Thursday", "Friday", "Saturday"},
			ShowHistory:   []string{"show-1", "show-3"},
		},
		{
			ID:      "ven-2",
			Name:    "Harbor Lights Club",
			Address: "220 Pier Ave",
			Contact: core.Contact{
				Name:  "Marco Deluca",
				Email: "marco@harborlights.example",
				Phone: "555-0202",
			},
			SocialMedia:   core.SocialMedia{Facebook: "https://facebook.com/harborlightsclub"},
			ImageURL:      PlaceholderImageURL,
			AvailableDays: []string{"Friday", "Saturday", "Sunday"},
			ShowHistory:   []string{"show-2"},
		},
	}

	shows := []core.Show{
		{
			ID:         "show-1",
			Date:       time.Date(2024, 1, 12, 20, 0, 0, 0, time.UTC),
			Location:   "The Brick Cellar",
			Lineup:     []string{"Ana Reyes", "Ben Okafor"},
			Performers: []core.Comedian{comedians[0], comedians[1]},
			HostID:     "com-1",
			Notes:      "Winter showcase, sold out.",
			LedgerID:   "txn-2",
			Attendance: 120,
		},
		{
			ID:         "show-2",
			Date:       time.Date(2024, 2, 9, 21, 0, 0, 0, time.UTC),
			Location:   "Harbor Lights Club",
			Lineup:     []string{"Ana Reyes", "Cleo Marsh"},
			Performers: []core.Comedian{comedians[0], comedians[2]},
			HostID:     "com-3",
			Notes:      "Half-capacity night, weather kept people home.",
			Attendance: 60,
		},
		{
			ID:         "show-3",
			Date:       time.Date(2026, 3, 20, 20, 30, 0, 0, time.UTC),
			Location:   "The Brick Cellar",
			Lineup:     []string{"Cleo Marsh"},
			Performers: []core.Comedian{comedians[2]},
			Notes:      "Spring headliner, tickets on sale.",
			Attendance: 0,
		},
	}

	transactions := []core.Transaction{
		{
			ID:          "txn-1",
			ShowID:      "show-1",
			Date:        time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			Type:        core.Income,
			Category:    core.TicketSales,
			Amount:      core.Money{Cents: 186000},
			Description: "Door sales, winter showcase",
		},
		{
			ID:          "txn-2",
			ShowID:      "show-1",
			Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Type:        core.Expense,
			Category:    core.VenueRental,
			Amount:      core.Money{Cents: 40000},
			Description: "Venue rental: The Brick Cellar",
		},
		{
			ID:          "txn-3",
			ShowID:      "show-2",
			Date:        time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
			Type:        core.Income,
			Category:    core.TicketSales,
			Amount:      core.Money{Cents: 78000},
			Description: "Door sales, Harbor Lights",
		},
		{
			ID:          "txn-4",
			ShowID:      "show-2",
			Date:        time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
			Type:        core.Expense,
			Category:    core.PerformerPayment,
			Amount:      core.Money{Cents: 60000},
			Description: "Performer payout, February lineup",
		},
		{
			ID:          "txn-5",
			Date:        time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			Type:        core.Expense,
			Category:    core.Marketing,
			Amount:      core.Money{Cents: 12000},
			Description: "Flyer printing and social ads",
		},
	}

	s.Comedians.Replace(comedians)
	s.Venues.Replace(venues)
	s.Shows.Replace(shows)
	s.Transactions.Replace(transactions)
}
