package storage

import (
	"context"
	"sync"

	"rsvpportal/internal/domain"
)

// MemoryStore keeps snapshots in process memory only.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, namespace, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[namespace+"/"+key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *MemoryStore) Save(_ context.Context, namespace, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[namespace+"/"+key] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, namespace+"/"+key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
