// SPDX-License-Identifier: MIT
// Package: storage
//
// file_store.go - one file per key inside a directory.

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

const fileExt = ".json"

// keyReplacer maps path separators out of keys so every key stays a single
// file directly under the store directory.
var keyReplacer = strings.NewReplacer("/", "_", "\\", "_", string(os.PathSeparator), "_")

// FileStore writes each key to <dir>/<sanitized key>.json.
// Writes go through a temp file + rename so readers never see partial values.
type FileStore struct {
	dir    string
	closed atomic.Bool
}

// NewFileStore creates dir (and parents) if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "storage: create directory %q", dir)
	}

	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file path used for key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, keyReplacer.Replace(key)+fileExt)
}

// Put atomically replaces the file for key.
func (s *FileStore) Put(key string, value []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if key == "" {
		return ErrEmptyKey
	}

	tmp, err := os.CreateTemp(s.dir, ".put-*")
	if err != nil {
		return errors.Wrapf(err, "storage: put %q", key)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "storage: put %q", key)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "storage: put %q", key)
	}
	if err = os.Rename(tmpName, s.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "storage: put %q", key)
	}

	return nil
}

// Get reads the file for key.
func (s *FileStore) Get(key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "storage: get %q", key)
	}

	return data, nil
}

// Close marks the store closed. Files are left in place.
func (s *FileStore) Close() error {
	s.closed.Store(true)
	return nil
}
