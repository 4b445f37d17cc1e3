// SPDX-License-Identifier: MIT
// Package pipeline: persistent cursor over the model list.

package pipeline

import "github.com/katalvlaran/mstcluster/clustering"

// sequencer hands out models in order, each exactly once over its lifetime.
type sequencer struct {
	models []clustering.Model
	next   int
}

func newSequencer(models []clustering.Model) *sequencer {
	return &sequencer{models: append([]clustering.Model(nil), models...)}
}

// Next returns the next unconsumed model and advances the cursor by one.
// ok is false once every model has been handed out.
func (s *sequencer) Next() (m clustering.Model, ok bool) {
	if s.next >= len(s.models) {
		return nil, false
	}
	m = s.models[s.next]
	s.next++

	return m, true
}

// Len is the total number of registered models.
func (s *sequencer) Len() int { return len(s.models) }

// Consumed is the number of models already handed out.
func (s *sequencer) Consumed() int { return s.next }

// Remaining is the number of models not yet handed out.
func (s *sequencer) Remaining() int { return len(s.models) - s.next }
