package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	TicketSales      Category = "ticket sales"
	Merchandise      Category = "merchandise"
	VenueRental      Category = "venue rental"
	Marketing        Category = "marketing"
	PerformerPayment Category = "performer payment"
	Other            Category = "other"
)

type (
	TransactionType string
	Category        string

	Money struct {
		Cents int64 `json:"cents"`
	}

	Contact struct {
		Name  string `json:"name,omitempty"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	SocialMedia struct {
		Instagram string `json:"instagram,omitempty"`
		Facebook  string `json:"facebook,omitempty"`
		YouTube   string `json:"youtube,omitempty"`
		X         string `json:"x,omitempty"`
	}

	Comedian struct {
		ID                 string      `json:"id"`
		Name               string      `json:"name"`
		Contact            Contact     `json:"contact"`
		SocialMedia        SocialMedia `json:"socialMedia"`
		ImageURL           string      `json:"imageUrl"`
		IntroSong          string      `json:"introSong"`
		Observations       string      `json:"observations"`
		PerformanceHistory []string    `json:"performanceHistory"`
	}

	Venue struct {
		ID            string      `json:"id"`
		Name          string      `json:"name"`
		Address       string      `json:"address"`
		Contact       Contact     `json:"contact"`
		SocialMedia   SocialMedia `json:"socialMedia"`
		ImageURL      string      `json:"imageUrl"`
		FlyerURL      string      `json:"flyerUrl,omitempty"`
		AvailableDays []string    `json:"availableDays"`
		ShowHistory   []string    `json:"showHistory"`
	}

	// Show embeds its performers as point-in-time snapshots. Editing a
	// Comedian after booking does not change the snapshot, and Location is
	// the venue name at booking time, not a foreign key.
	Show struct {
		ID         string     `json:"id"`
		Date       time.Time  `json:"date"`
		Location   string     `json:"location"`
		Lineup     []string   `json:"lineup"`
		Performers []Comedian `json:"performers"`
		HostID     string     `json:"hostId,omitempty"`
		Notes      string     `json:"notes"`
		LedgerID   string     `json:"ledgerId,omitempty"`
		Attendance int        `json:"attendance"`
		FlyerURL   string     `json:"flyerUrl,omitempty"`
	}

	Transaction struct {
		ID          string          `json:"id"`
		ShowID      string          `json:"showId,omitempty"`
		Date        time.Time       `json:"date"`
		Type        TransactionType `json:"type"`
		Category    Category        `json:"category"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidCategory    = errors.New("invalid transaction category")
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyLocation      = errors.New("empty location")
	ErrNegativeAttendance = errors.New("attendance cannot be negative")
	ErrNotFound           = errors.New("not found")
	ErrUnknownPerformer   = errors.New("unknown performer id")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Comedian) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	return nil
}

func (v Venue) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return ErrEmptyName
	}
	if len(v.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	return nil
}

func (s Show) Validate() error {
	if s.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(s.Location) == "" {
		return ErrEmptyLocation
	}
	if s.Attendance < 0 {
		return ErrNegativeAttendance
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	switch t.Type {
	case Income, Expense:
	default:
		return ErrInvalidType
	}
	switch t.Category {
	case TicketSales, Merchandise, VenueRental, Marketing, PerformerPayment, Other:
	default:
		return ErrInvalidCategory
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}
