package domain

import "context"

// SnapshotStore persists serialized cache snapshots between restarts.
// Load returns ErrNotFound when nothing is stored under namespace/key.
type SnapshotStore interface {
	Load(ctx context.Context, namespace, key string) ([]byte, error)
	Save(ctx context.Context, namespace, key string, data []byte) error
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}
