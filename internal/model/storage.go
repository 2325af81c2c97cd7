package model

import "context"

// SnapshotStore keeps serialized state records under string keys.
// Load returns ErrNotFound when nothing was saved under key.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Flusher forces buffered state to durable storage.
type Flusher interface {
	Flush(ctx context.Context) error
}
