// SPDX-License-Identifier: MIT
// Package: storage
//
// badger_store.go - BadgerDB-backed Store; keys are stored verbatim.

package storage

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps snapshots in a BadgerDB directory.
type BadgerStore struct {
	db     *badger.DB
	closed atomic.Bool
}

// OpenBadger opens (or creates) a BadgerDB in dir. Badger's own logging is
// silenced.
func OpenBadger(dir string) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrapf(err, "storage: open badger %q", dir)
	}

	return &BadgerStore{db: db}, nil
}

// Put stores value under key.
func (s *BadgerStore) Put(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.closed.Load() {
		return ErrClosed
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), append([]byte(nil), value...))
	})

	return errors.Wrapf(err, "storage: put %q", key)
}

// Get returns a copy of the value under key.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "storage: get %q", key)
	}

	return out, nil
}

// Close closes the database. A second Close returns ErrClosed.
func (s *BadgerStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	return s.db.Close()
}
