package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gigbook/internal/core"
)

// ShowRepo is a mutex-guarded list of shows, newest first.
type ShowRepo struct {
	mu    sync.Mutex
	items []core.Show
}

// ShowInput is the booking payload. Performer ids are resolved into
// embedded snapshots at creation time. When VenueCost is set, the linked
// venue-rental expense transaction is created in the same operation and its
// id recorded on the show.
type ShowInput struct {
	Date         time.Time   `json:"date"`
	Location     string      `json:"location"`
	PerformerIDs []string    `json:"performerIds"`
	HostID       string      `json:"hostId"`
	Notes        string      `json:"notes"`
	Attendance   int         `json:"attendance"`
	FlyerURL     string      `json:"flyerUrl"`
	VenueCost    *core.Money `json:"venueCost"`
}

// ShowPatch is a shallow-merge payload: nil fields stay untouched. When
// PerformerIDs is present the performer snapshots and lineup are rebuilt.
type ShowPatch struct {
	Date         *time.Time `json:"date"`
	Location     *string    `json:"location"`
	PerformerIDs *[]string  `json:"performerIds"`
	HostID       *string    `json:"hostId"`
	Notes        *string    `json:"notes"`
	Attendance   *int       `json:"attendance"`
	FlyerURL     *string    `json:"flyerUrl"`
}

func (r *ShowRepo) List() []core.Show {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Show, len(r.items))
	copy(out, r.items)
	return out
}

func (r *ShowRepo) Get(id string) (core.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return core.Show{}, core.ErrNotFound
}

func (r *ShowRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, s := range r.items {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	r.items = kept
}

func (r *ShowRepo) Replace(items []core.Show) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Show(nil), items...)
}

func (r *ShowRepo) prepend(s core.Show) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Show{s}, r.items...)
}

// AddShow books a show: performer ids become embedded comedian snapshots,
// the lineup is derived from the snapshot names, and the matching venue and
// comedians get the show appended to their histories. An unresolvable
// performer id fails the whole operation.
func (s *Store) AddShow(in ShowInput) (core.Show, error) {
	performers, err := s.resolvePerformers(in.PerformerIDs)
	if err != nil {
		return core.Show{}, err
	}

	show := core.Show{
		ID:         uuid.NewString(),
		Date:       in.Date,
		Location:   in.Location,
		Lineup:     lineupOf(performers),
		Performers: performers,
		HostID:     in.HostID,
		Notes:      in.Notes,
		Attendance: in.Attendance,
		FlyerURL:   in.FlyerURL,
	}
	if err := show.Validate(); err != nil {
		return core.Show{}, err
	}

	if in.VenueCost != nil {
		rental, err := s.Transactions.Add(core.Transaction{
			ShowID:      show.ID,
			Date:        in.Date,
			Type:        core.Expense,
			Category:    core.VenueRental,
			Amount:      *in.VenueCost,
			Description: "Venue rental: " + in.Location,
		})
		if err != nil {
			return core.Show{}, fmt.Errorf("create linked rental transaction: %w", err)
		}
		show.LedgerID = rental.ID
	}

	s.Shows.prepend(show)
	for _, p := range performers {
		s.Comedians.appendHistory(p.ID, show.ID)
	}
	s.Venues.appendHistoryByName(show.Location, show.ID)
	return show, nil
}

// UpdateShow applies the patch; a present PerformerIDs field re-resolves the
// performer snapshots and lineup against the current roster.
func (s *Store) UpdateShow(id string, patch ShowPatch) (core.Show, error) {
	var performers []core.Comedian
	if patch.PerformerIDs != nil {
		resolved, err := s.resolvePerformers(*patch.PerformerIDs)
		if err != nil {
			return core.Show{}, err
		}
		performers = resolved
	}

	s.Shows.mu.Lock()
	defer s.Shows.mu.Unlock()
	for i, sh := range s.Shows.items {
		if sh.ID != id {
			continue
		}
		if patch.Date != nil {
			sh.Date = *patch.Date
		}
		if patch.Location != nil {
			sh.Location = *patch.Location
		}
		if patch.PerformerIDs != nil {
			sh.Performers = performers
			sh.Lineup = lineupOf(performers)
		}
		if patch.HostID != nil {
			sh.HostID = *patch.HostID
		}
		if patch.Notes != nil {
			sh.Notes = *patch.Notes
		}
		if patch.Attendance != nil {
			sh.Attendance = *patch.Attendance
		}
		if patch.FlyerURL != nil {
			sh.FlyerURL = *patch.FlyerURL
		}
		if err := sh.Validate(); err != nil {
			return core.Show{}, err
		}
		s.Shows.items[i] = sh
		return sh, nil
	}
	return core.Show{}, core.ErrNotFound
}

func (s *Store) resolvePerformers(ids []string) ([]core.Comedian, error) {
	performers := make([]core.Comedian, 0, len(ids))
	for _, id := range ids {
		c, err := s.Comedians.Get(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", core.ErrUnknownPerformer, id)
		}
		performers = append(performers, c)
	}
	return performers, nil
}

func lineupOf(performers []core.Comedian) []string {
	lineup := make([]string, len(performers))
	for i, p := range performers {
		lineup[i] = p.Name
	}
	return lineup
}
