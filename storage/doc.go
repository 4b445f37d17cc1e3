// SPDX-License-Identifier: MIT

// Package storage persists per-step snapshots (spanning forests and label
// vectors) under string keys such as "step-spanning-forest#3".
//
// Four Store implementations are provided:
//
//   - FileStore   - one JSON file per key inside a directory.
//   - BoltStore   - a single bbolt database file, one bucket for all keys.
//   - BadgerStore - a BadgerDB directory.
//   - MemoryStore - in-process go-cache without expiry, for tests and dry runs.
//
// Values are opaque bytes; SaveLabels/LoadLabels encode label vectors as JSON
// arrays, and the forest package encodes forests itself.
package storage
