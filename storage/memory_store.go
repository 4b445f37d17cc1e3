// SPDX-License-Identifier: MIT
// Package: storage
//
// memory_store.go - in-process Store on top of go-cache with no expiry.

package storage

import (
	"sort"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in memory. Safe for concurrent use.
type MemoryStore struct {
	values *cache.Cache
	closed atomic.Bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: cache.New(cache.NoExpiration, 0)}
}

// Put stores a copy of value under key.
func (s *MemoryStore) Put(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.closed.Load() {
		return ErrClosed
	}
	s.values.Set(key, append([]byte(nil), value...), cache.NoExpiration)

	return nil
}

// Get returns a copy of the value under key.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}
	v, ok := s.values.Get(key)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}

	return append([]byte(nil), v.([]byte)...), nil
}

// Keys returns all stored keys in ascending order.
func (s *MemoryStore) Keys() []string {
	items := s.values.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Close drops all values.
func (s *MemoryStore) Close() error {
	s.closed.Store(true)
	s.values.Flush()

	return nil
}
