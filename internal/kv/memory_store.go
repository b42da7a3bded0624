package kv

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps state in process memory. Nothing survives a restart,
// which matches a client with history persistence turned off.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if x, found := s.cache.Get(key); found {
		stored := x.([]byte)
		cp := make([]byte, len(stored))
		copy(cp, stored)
		return cp, true, nil
	}
	return nil, false, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.cache.Set(key, cp, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
