// SPDX-License-Identifier: MIT
// Package: storage
//
// store.go - Store contract, sentinels, and the kind-based opener.

package storage

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound is returned by Get when no value exists under the key.
	ErrNotFound = errors.New("storage: key not found")

	// ErrEmptyKey is returned when an empty key is used.
	ErrEmptyKey = errors.New("storage: empty key")

	// ErrUnknownKind is returned by Open for an unsupported store kind.
	ErrUnknownKind = errors.New("storage: unknown store kind")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("storage: store is closed")
)

// Store kinds accepted by Open.
const (
	KindFile   = "file"
	KindBolt   = "bolt"
	KindBadger = "badger"
	KindMemory = "memory"
)

// Store is a flat key/value sink for step snapshots.
type Store interface {
	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Get returns the value stored under key or ErrNotFound.
	Get(key string) ([]byte, error)

	// Close releases underlying resources. Further calls return ErrClosed.
	Close() error
}

// Open creates a store of the given kind rooted at path.
// For KindFile and KindBadger path is a directory, for KindBolt a database
// file; KindMemory ignores path.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(kind) {
	case KindFile:
		return NewFileStore(path)
	case KindBolt:
		return OpenBolt(path)
	case KindBadger:
		return OpenBadger(path)
	case KindMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.WithHintf(
			errors.Wrapf(ErrUnknownKind, "kind %q", kind),
			"use one of %q, %q, %q, %q", KindFile, KindBolt, KindBadger, KindMemory)
	}
}

// SaveLabels encodes labels as a JSON array and stores them under key.
func SaveLabels(s Store, key string, labels []int) error {
	data, err := json.Marshal(labels)
	if err != nil {
		return errors.Wrapf(err, "storage: encode labels %q", key)
	}

	return s.Put(key, data)
}

// LoadLabels reads a label vector previously written by SaveLabels.
func LoadLabels(s Store, key string) ([]int, error) {
	data, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	var labels []int
	if err = json.Unmarshal(data, &labels); err != nil {
		return nil, errors.Wrapf(err, "storage: decode labels %q", key)
	}

	return labels, nil
}
