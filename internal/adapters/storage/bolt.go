// Package storage provides domain.SnapshotStore implementations.
package storage

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"rsvpportal/internal/domain"
)

const bucketSnapshots = "cache_snapshots"

// BoltStore keeps snapshots in a single bbolt bucket keyed by "namespace/key".
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSnapshots))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func boltKey(namespace, key string) []byte {
	return []byte(namespace + "/" + key)
}

func (s *BoltStore) Load(_ context.Context, namespace, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketSnapshots)).Get(boltKey(namespace, key))
		if res == nil {
			return domain.ErrNotFound
		}
		// bbolt values are only valid for the life of the transaction.
		out = append([]byte(nil), res...)
		return nil
	})
	return out, err
}

func (s *BoltStore) Save(_ context.Context, namespace, key string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).Put(boltKey(namespace, key), data)
	})
}

func (s *BoltStore) Delete(_ context.Context, namespace, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).Delete(boltKey(namespace, key))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
