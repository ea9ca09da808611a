package store

import (
	"sync"

	"github.com/google/uuid"

	"gigbook/internal/core"
)

// ComedianRepo is a mutex-guarded roster of comedians, newest first.
type ComedianRepo struct {
	mu    sync.Mutex
	items []core.Comedian
}

// ComedianPatch is a shallow-merge payload: nil fields stay untouched.
type ComedianPatch struct {
	Name               *string           `json:"name"`
	Contact            *core.Contact     `json:"contact"`
	SocialMedia        *core.SocialMedia `json:"socialMedia"`
	ImageURL           *string           `json:"imageUrl"`
	IntroSong          *string           `json:"introSong"`
	Observations       *string           `json:"observations"`
	PerformanceHistory *[]string         `json:"performanceHistory"`
}

// List returns a copy of the collection.
func (r *ComedianRepo) List() []core.Comedian {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Comedian, len(r.items))
	copy(out, r.items)
	return out
}

func (r *ComedianRepo) Get(id string) (core.Comedian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return core.Comedian{}, core.ErrNotFound
}

// Add validates, assigns an id and defaults, and prepends the record.
func (r *ComedianRepo) Add(c core.Comedian) (core.Comedian, error) {
	if err := c.Validate(); err != nil {
		return core.Comedian{}, err
	}
	c.ID = uuid.NewString()
	if c.ImageURL == "" {
		c.ImageURL = PlaceholderImageURL
	}
	if c.PerformanceHistory == nil {
		c.PerformanceHistory = []string{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Comedian{c}, r.items...)
	return c, nil
}

// Update applies the non-nil patch fields to the record with the given id.
func (r *ComedianRepo) Update(id string, patch ComedianPatch) (core.Comedian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID != id {
			continue
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Contact != nil {
			c.Contact = *patch.Contact
		}
		if patch.SocialMedia != nil {
			c.SocialMedia = *patch.SocialMedia
		}
		if patch.ImageURL != nil {
			c.ImageURL = *patch.ImageURL
		}
		if patch.IntroSong != nil {
			c.IntroSong = *patch.IntroSong
		}
		if patch.Observations != nil {
			c.Observations = *patch.Observations
		}
		if patch.PerformanceHistory != nil {
			c.PerformanceHistory = *patch.PerformanceHistory
		}
		if err := c.Validate(); err != nil {
			return core.Comedian{}, err
		}
		r.items[i] = c
		return c, nil
	}
	return core.Comedian{}, core.ErrNotFound
}

// Remove drops the record with the given id; absent ids are a no-op.
func (r *ComedianRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, c := range r.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.items = kept
}

// Replace swaps the whole collection, used by seeding and mirror restore.
func (r *ComedianRepo) Replace(items []core.Comedian) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Comedian(nil), items...)
}

func (r *ComedianRepo) appendHistory(id, showID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].PerformanceHistory = append(r.items[i].PerformanceHistory, showID)
			return
		}
	}
}
