// Package storage mirrors the in-memory collections to SQLite. The mirror
// is a key/value cache of the store, one JSON snapshot per collection; the
// in-memory store stays authoritative.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gigbook/internal/store"

	_ "modernc.org/sqlite"
)

type MirrorStore struct {
	db *sql.DB
}

func NewMirrorStore(dbPath string) (*MirrorStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &MirrorStore{db: db}, nil
}

func (m *MirrorStore) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// SaveSnapshot upserts the snapshot for one collection.
func (m *MirrorStore) SaveSnapshot(ctx context.Context, collection string, data []byte) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO snapshots (collection, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(collection) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		collection, string(data))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", collection, err)
	}

	slog.DebugContext(ctx, "Snapshot mirrored", "collection", collection, "bytes", len(data))
	return nil
}

// LoadSnapshot returns the last-written snapshot for the collection, or the
// supplied fallback when the row is absent or corrupt. Corrupt rows are
// logged and overwritten with the fallback; read failures never propagate.
func (m *MirrorStore) LoadSnapshot(ctx context.Context, collection string, fallback []byte) []byte {
	var data string
	err := m.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE collection = ?`, collection).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback
	}
	if err != nil {
		slog.ErrorContext(ctx, "Snapshot read failed, using default",
			"collection", collection, "error", err)
		return fallback
	}
	if !json.Valid([]byte(data)) {
		slog.WarnContext(ctx, "Corrupt snapshot replaced with default",
			"collection", collection, "bytes", len(data))
		if err := m.SaveSnapshot(ctx, collection, fallback); err != nil {
			slog.ErrorContext(ctx, "Failed to replace corrupt snapshot",
				"collection", collection, "error", err)
		}
		return fallback
	}
	return []byte(data)
}

// SaveCollection snapshots the named collection from the store into the mirror.
func (m *MirrorStore) SaveCollection(ctx context.Context, s *store.Store, collection string) error {
	snap, err := s.Snapshot(collection)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", collection, err)
	}
	return m.SaveSnapshot(ctx, collection, snap)
}

// FlushAll mirrors every collection; the server runs it periodically as a
// backup against lost sync messages.
func (m *MirrorStore) FlushAll(ctx context.Context, s *store.Store) error {
	var errs []error
	for _, collection := range store.Collections {
		if err := m.SaveCollection(ctx, s, collection); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("flush collections: %v", errs)
	}
	return nil
}

// RestoreAll loads every mirrored collection into the store. Collections
// without a usable snapshot keep their current (seeded) state, which is also
// written back so the mirror converges.
func (m *MirrorStore) RestoreAll(ctx context.Context, s *store.Store) {
	for _, collection := range store.Collections {
		seeded, err := s.Snapshot(collection)
		if err != nil {
			slog.ErrorContext(ctx, "Snapshot of seeded collection failed",
				"collection", collection, "error", err)
			continue
		}
		data := m.LoadSnapshot(ctx, collection, seeded)
		if err := s.Restore(collection, data); err != nil {
			// Decodable JSON that doesn't match the schema: keep the seed.
			slog.WarnContext(ctx, "Mirrored snapshot not restorable, keeping seed",
				"collection", collection, "error", err)
			if err := m.SaveSnapshot(ctx, collection, seeded); err != nil {
				slog.ErrorContext(ctx, "Failed to rewrite snapshot",
					"collection", collection, "error", err)
			}
		}
	}
}
