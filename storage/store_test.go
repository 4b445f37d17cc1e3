// SPDX-License-Identifier: MIT
package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/mstcluster/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAll returns one instance of every Store kind, each rooted in a fresh temp dir.
func openAll(t *testing.T) map[string]storage.Store {
	t.Helper()
	dir := t.TempDir()

	fs, err := storage.Open(storage.KindFile, filepath.Join(dir, "files"))
	require.NoError(t, err)
	bs, err := storage.Open(storage.KindBolt, filepath.Join(dir, "steps.db"))
	require.NoError(t, err)
	ds, err := storage.Open(storage.KindBadger, filepath.Join(dir, "badger"))
	require.NoError(t, err)
	ms, err := storage.Open(storage.KindMemory, "")
	require.NoError(t, err)

	stores := map[string]storage.Store{
		storage.KindFile:   fs,
		storage.KindBolt:   bs,
		storage.KindBadger: ds,
		storage.KindMemory: ms,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})

	return stores
}

// TestStore_PutGet verifies round-trips, overwrite and missing keys for every kind.
func TestStore_PutGet(t *testing.T) {
	for kind, s := range openAll(t) {
		t.Run(kind, func(t *testing.T) {
			require.NoError(t, s.Put("step-spanning-forest#0", []byte(`{"a":1}`)))
			got, err := s.Get("step-spanning-forest#0")
			require.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, s.Put("step-spanning-forest#0", []byte(`{"a":2}`)))
			got, err = s.Get("step-spanning-forest#0")
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, string(got))

			_, err = s.Get("missing")
			assert.ErrorIs(t, err, storage.ErrNotFound)

			assert.ErrorIs(t, s.Put("", nil), storage.ErrEmptyKey)
		})
	}
}

// TestLabels_RoundTrip checks the JSON label helpers.
func TestLabels_RoundTrip(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, storage.SaveLabels(s, "run-labels#1", []int{0, 2, 2, 1}))

	labels, err := storage.LoadLabels(s, "run-labels#1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 2, 1}, labels)
	assert.Equal(t, []string{"run-labels#1"}, s.Keys())

	_, err = storage.LoadLabels(s, "run-labels#2")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// TestFileStore_SanitizesKeys keeps slashes from escaping the directory.
func TestFileStore_SanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put("a/b-labels#0", []byte("[1]")))
	_, err = os.Stat(filepath.Join(dir, "a_b-labels#0.json"))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a_b-labels#0.json"), s.Path("a/b-labels#0"))
}

// TestStore_Closed rejects use after Close.
func TestStore_Closed(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Put("k", nil), storage.ErrClosed)

	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.Close())
	_, err = fs.Get("k")
	assert.ErrorIs(t, err, storage.ErrClosed)

	bs, err := storage.OpenBolt(filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	require.NoError(t, bs.Close())
	assert.ErrorIs(t, bs.Put("k", []byte("v")), storage.ErrClosed)

	ds, err := storage.OpenBadger(filepath.Join(t.TempDir(), "badger"))
	require.NoError(t, err)
	require.NoError(t, ds.Close())
	_, err = ds.Get("k")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, ds.Close(), storage.ErrClosed)
}

// TestOpen_UnknownKind returns the sentinel.
func TestOpen_UnknownKind(t *testing.T) {
	_, err := storage.Open("s3", "bucket")
	assert.ErrorIs(t, err, storage.ErrUnknownKind)
}
