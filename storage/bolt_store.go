// SPDX-License-Identifier: MIT
// Package: storage
//
// bolt_store.go - bbolt-backed Store; all keys live in one bucket.

package storage

import (
	"time"

	"github.com/cockroachdb/errors"
	bolt "go.etcd.io/bbolt"
)

// stepsBucket holds every snapshot written through BoltStore.
var stepsBucket = []byte("steps")

// boltOpenTimeout bounds how long OpenBolt waits for the file lock.
const boltOpenTimeout = time.Second

// BoltStore keeps snapshots in a single bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database at path and ensures the bucket exists.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "storage: open bolt %q", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stepsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "storage: create bucket in %q", path)
	}

	return &BoltStore{db: db}, nil
}

// Put stores value under key.
func (s *BoltStore) Put(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stepsBucket).Put([]byte(key), value)
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}

	return errors.Wrapf(err, "storage: put %q", key)
}

// Get returns a copy of the value under key; bbolt values are only valid
// inside the transaction.
func (s *BoltStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(stepsBucket).Get([]byte(key))
		if v == nil {
			return errors.Wrapf(ErrNotFound, "key %q", key)
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return nil, ErrClosed
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Close closes the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
