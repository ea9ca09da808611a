package amqp

import (
	"encoding/json"
	"time"
)

// SnapshotSyncMessage asks the mirror worker to persist one collection.
// The snapshot is captured at publish time and carried in the message, so
// the worker process never needs access to the in-memory store.
type SnapshotSyncMessage struct {
	Collection string          `json:"collection"`
	Data       json.RawMessage `json:"data"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewSnapshotSyncMessage creates a sync message for the named collection.
func NewSnapshotSyncMessage(collection string, data []byte) *SnapshotSyncMessage {
	return &SnapshotSyncMessage{
		Collection: collection,
		Data:       json.RawMessage(data),
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *SnapshotSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SnapshotSyncMessageFromJSON creates a message from JSON bytes.
func SnapshotSyncMessageFromJSON(data []byte) (*SnapshotSyncMessage, error) {
	var msg SnapshotSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
