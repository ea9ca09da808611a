package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gigbook/internal/core"
)

// TransactionRepo is a mutex-guarded ledger, newest first.
type TransactionRepo struct {
	mu    sync.Mutex
	items []core.Transaction
}

// TransactionPatch is a shallow-merge payload: nil fields stay untouched.
type TransactionPatch struct {
	ShowID      *string               `json:"showId"`
	Date        *time.Time            `json:"date"`
	Type        *core.TransactionType `json:"type"`
	Category    *core.Category        `json:"category"`
	Amount      *core.Money           `json:"amount"`
	Description *string               `json:"description"`
}

func (r *TransactionRepo) List() []core.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Transaction, len(r.items))
	copy(out, r.items)
	return out
}

func (r *TransactionRepo) Get(id string) (core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, core.ErrNotFound
}

func (r *TransactionRepo) Add(t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Transaction{t}, r.items...)
	return t, nil
}

func (r *TransactionRepo) Update(id string, patch TransactionPatch) (core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.items {
		if t.ID != id {
			continue
		}
		if patch.ShowID != nil {
			t.ShowID = *patch.ShowID
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if err := t.Validate(); err != nil {
			return core.Transaction{}, err
		}
		r.items[i] = t
		return t, nil
	}
	return core.Transaction{}, core.ErrNotFound
}

func (r *TransactionRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, t := range r.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.items = kept
}

func (r *TransactionRepo) Replace(items []core.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Transaction(nil), items...)
}
