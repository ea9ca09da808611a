// Package store holds the in-memory entity collections behind per-entity
// repositories. The collections are the authoritative state of the
// application; the SQLite mirror in internal/storage is a cache of them.
package store

import (
	"encoding/json"
	"fmt"

	"gigbook/internal/core"
)

// Collection names, also used as mirror keys.
const (
	CollectionComedians    = "comedians"
	CollectionVenues       = "venues"
	CollectionShows        = "shows"
	CollectionTransactions = "transactions"
)

// Collections lists every mirrored collection name.
var Collections = []string{
	CollectionComedians,
	CollectionVenues,
	CollectionShows,
	CollectionTransactions,
}

// Store bundles the four entity repositories. All mutations are
// single-writer per repository; cross-entity operations (show booking)
// live on Store itself.
type Store struct {
	Comedians    *ComedianRepo
	Venues       *VenueRepo
	Shows        *ShowRepo
	Transactions *TransactionRepo
}

func New() *Store {
	return &Store{
		Comedians:    &ComedianRepo{},
		Venues:       &VenueRepo{},
		Shows:        &ShowRepo{},
		Transactions: &TransactionRepo{},
	}
}

// Snapshot returns the named collection serialized as JSON.
func (s *Store) Snapshot(collection string) ([]byte, error) {
	switch collection {
	case CollectionComedians:
		return json.Marshal(s.Comedians.List())
	case CollectionVenues:
		return json.Marshal(s.Venues.List())
	case CollectionShows:
		return json.Marshal(s.Shows.List())
	case CollectionTransactions:
		return json.Marshal(s.Transactions.List())
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}

// Restore replaces the named collection with the decoded snapshot.
func (s *Store) Restore(collection string, snapshot []byte) error {
	switch collection {
	case CollectionComedians:
		var items []core.Comedian
		if err := json.Unmarshal(snapshot, &items); err != nil {
			return fmt.Errorf("decode %s snapshot: %w", collection, err)
		}
		s.Comedians.Replace(items)
	case CollectionVenues:
		var items []core.Venue
		if err := json.Unmarshal(snapshot, &items); err != nil {
			return fmt.Errorf("decode %s snapshot: %w", collection, err)
		}
		s.Venues.Replace(items)
	case CollectionShows:
		var items []core.Show
		if err := json.Unmarshal(snapshot, &items); err != nil {
			return fmt.Errorf("decode %s snapshot: %w", collection, err)
		}
		s.Shows.Replace(items)
	case CollectionTransactions:
		var items []core.Transaction
		if err := json.Unmarshal(snapshot, &items); err != nil {
			return fmt.Errorf("decode %s snapshot: %w", collection, err)
		}
		s.Transactions.Replace(items)
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}

// PlaceholderImageURL is filled in when an entity is created without one.
const PlaceholderImageURL = "https://placehold.co/400x400.png"
