// Package worker persists snapshot sync messages into the SQLite mirror.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"gigbook/internal/amqp"
	"gigbook/internal/storage"
	"gigbook/internal/store"
)

// MirrorWorker consumes collection snapshots published by the server and
// writes them to the mirror database.
type MirrorWorker struct {
	mirror *storage.MirrorStore
}

func NewMirrorWorker(mirror *storage.MirrorStore) *MirrorWorker {
	return &MirrorWorker{mirror: mirror}
}

// HandleSyncMessage persists one snapshot. Unknown collections and invalid
// payloads are rejected without requeueing them as the message can never
// succeed.
func (w *MirrorWorker) HandleSyncMessage(ctx context.Context, msg *amqp.SnapshotSyncMessage) error {
	slog.InfoContext(ctx, "Processing snapshot sync message",
		"collection", msg.Collection,
		"bytes", len(msg.Data),
		"published_at", msg.Timestamp)

	if !slices.Contains(store.Collections, msg.Collection) {
		slog.WarnContext(ctx, "Dropping snapshot for unknown collection",
			"collection", msg.Collection)
		return nil
	}
	if !json.Valid(msg.Data) {
		slog.WarnContext(ctx, "Dropping snapshot with invalid payload",
			"collection", msg.Collection)
		return nil
	}

	if err := w.mirror.SaveSnapshot(ctx, msg.Collection, msg.Data); err != nil {
		return fmt.Errorf("persist snapshot %s: %w", msg.Collection, err)
	}
	return nil
}
