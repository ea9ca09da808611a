package store

import (
	"sync"

	"github.com/google/uuid"

	"gigbook/internal/core"
)

// VenueRepo is a mutex-guarded list of venues, newest first.
type VenueRepo struct {
	mu    sync.Mutex
	items []core.Venue
}

// VenuePatch is a shallow-merge payload: nil fields stay untouched.
type VenuePatch struct {
	Name          *string           `json:"name"`
	Address       *string           `json:"address"`
	Contact       *core.Contact     `json:"contact"`
	SocialMedia   *core.SocialMedia `json:"socialMedia"`
	ImageURL      *string           `json:"imageUrl"`
	FlyerURL      *string           `json:"flyerUrl"`
	AvailableDays *[]string         `json:"availableDays"`
	ShowHistory   *[]string         `json:"showHistory"`
}

func (r *VenueRepo) List() []core.Venue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Venue, len(r.items))
	copy(out, r.items)
	return out
}

func (r *VenueRepo) Get(id string) (core.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.ID == id {
			return v, nil
		}
	}
	return core.Venue{}, core.ErrNotFound
}

func (r *VenueRepo) Add(v core.Venue) (core.Venue, error) {
	if err := v.Validate(); err != nil {
		return core.Venue{}, err
	}
	v.ID = uuid.NewString()
	if v.ImageURL == "" {
		v.ImageURL = PlaceholderImageURL
	}
	if v.AvailableDays == nil {
		v.AvailableDays = []string{}
	}
	if v.ShowHistory == nil {
		v.ShowHistory = []string{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Venue{v}, r.items...)
	return v, nil
}

func (r *VenueRepo) Update(id string, patch VenuePatch) (core.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.items {
		if v.ID != id {
			continue
		}
		if patch.Name != nil {
			v.Name = *patch.Name
		}
		if patch.Address != nil {
			v.Address = *patch.Address
		}
		if patch.Contact != nil {
			v.Contact = *patch.Contact
		}
		if patch.SocialMedia != nil {
			v.SocialMedia = *patch.SocialMedia
		}
		if patch.ImageURL != nil {
			v.ImageURL = *patch.ImageURL
		}
		if patch.FlyerURL != nil {
			v.FlyerURL = *patch.FlyerURL
		}
		if patch.AvailableDays != nil {
			v.AvailableDays = *patch.AvailableDays
		}
		if patch.ShowHistory != nil {
			v.ShowHistory = *patch.ShowHistory
		}
		if err := v.Validate(); err != nil {
			return core.Venue{}, err
		}
		r.items[i] = v
		return v, nil
	}
	return core.Venue{}, core.ErrNotFound
}

func (r *VenueRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, v := range r.items {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	r.items = kept
}

func (r *VenueRepo) Replace(items []core.Venue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Venue(nil), items...)
}

func (r *VenueRepo) appendHistoryByName(name, showID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Name == name {
			r.items[i].ShowHistory = append(r.items[i].ShowHistory, showID)
			return
		}
	}
}
