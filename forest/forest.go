// SPDX-License-Identifier: MIT
// Package forest: the Forest type and its queries.

package forest

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/storage"
)

// Forest is an acyclic set of edges over n points.
//
// Components are numbered 0..k-1 in order of their smallest point index, so
// for a spanning tree the single component is 0.
// A Forest is immutable after New; Attach only changes where Save writes.
type Forest struct {
	n          int
	edges      []Edge
	component  []int // point index → component id
	components int
	store      storage.Store
}

var _ SpanningForest = (*Forest)(nil)

// New validates edges over n points and returns a Forest.
//
// Error Conditions:
//   - ErrEmpty     : n <= 0.
//   - ErrEdgeRange : endpoint outside [0, n), a self-loop, or a non-finite/negative weight.
//   - ErrCycle     : the edges are not acyclic.
//
// Complexity: O(V + E·α(V)).
func New(n int, edges []Edge) (*Forest, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	ds := newDisjointSet(n)
	own := make([]Edge, len(edges))
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || e.From == e.To {
			return nil, errors.Wrapf(ErrEdgeRange, "edge %d (%d,%d) with n=%d", i, e.From, e.To, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return nil, errors.Wrapf(ErrEdgeRange, "edge %d weight %v", i, e.Weight)
		}
		if !ds.union(e.From, e.To) {
			return nil, errors.Wrapf(ErrCycle, "edge %d (%d,%d)", i, e.From, e.To)
		}
		own[i] = e
	}
	component, k := ds.labels()

	return &Forest{n: n, edges: own, component: component, components: k}, nil
}

// Attach sets the store used by Save and returns f.
func (f *Forest) Attach(s storage.Store) *Forest {
	f.store = s
	return f
}

// Len returns the number of points the forest spans.
func (f *Forest) Len() int { return f.n }

// Edges returns a copy of all edges in insertion order.
func (f *Forest) Edges() []Edge {
	return append([]Edge(nil), f.edges...)
}

// TotalWeight returns the sum of all edge weights.
func (f *Forest) TotalWeight() float64 {
	var w float64
	for _, e := range f.edges {
		w += e.Weight
	}
	return w
}

// ComponentsCount returns the number of connected components (trees).
func (f *Forest) ComponentsCount() int { return f.components }

// Component returns the component id of point v, or -1 if v is out of range.
func (f *Forest) Component(v int) int {
	if v < 0 || v >= f.n {
		return -1
	}
	return f.component[v]
}

// IsSpanningTree reports whether the forest is a single tree over all points,
// i.e. one component and exactly n-1 edges.
func (f *Forest) IsSpanningTree() bool {
	return f.components == 1 && len(f.edges) == f.n-1
}

// TreeEdges returns the edges of component c in insertion order.
// Returns ErrComponentRange for c outside [0, ComponentsCount()).
func (f *Forest) TreeEdges(c int) ([]Edge, error) {
	if c < 0 || c >= f.components {
		return nil, errors.Wrapf(ErrComponentRange, "component %d of %d", c, f.components)
	}
	out := make([]Edge, 0, len(f.edges))
	for _, e := range f.edges {
		if f.component[e.From] == c {
			out = append(out, e)
		}
	}

	return out, nil
}

// Cut removes the k heaviest edges and returns the resulting component id of
// every point (ids ordered by smallest member). Ties between equal weights
// remove the later-inserted edge first.
//
// Errors: ErrBadCut if k < 0 or k > len(Edges()).
// Complexity: O(E log E + V).
func (f *Forest) Cut(k int) ([]int, error) {
	if k < 0 || k > len(f.edges) {
		return nil, errors.Wrapf(ErrBadCut, "cut %d of %d edges", k, len(f.edges))
	}
	order := make([]int, len(f.edges))
	for i := range order {
		order[i] = i
	}
	// heaviest first; among equals, later index first
	sort.SliceStable(order, func(a, b int) bool {
		wa, wb := f.edges[order[a]].Weight, f.edges[order[b]].Weight
		if wa != wb {
			return wa > wb
		}
		return order[a] > order[b]
	})
	removed := make([]bool, len(f.edges))
	for _, idx := range order[:k] {
		removed[idx] = true
	}

	ds := newDisjointSet(f.n)
	for i, e := range f.edges {
		if !removed[i] {
			ds.union(e.From, e.To)
		}
	}
	labels, _ := ds.labels()

	return labels, nil
}

// forestJSON is the persisted form of a Forest.
type forestJSON struct {
	Points int    `json:"points"`
	Edges  []Edge `json:"edges"`
}

// MarshalJSON encodes the point count and edges.
func (f *Forest) MarshalJSON() ([]byte, error) {
	return json.Marshal(forestJSON{Points: f.n, Edges: f.edges})
}

// UnmarshalJSON decodes and re-validates a forest. The attached store is kept.
func (f *Forest) UnmarshalJSON(data []byte) error {
	var raw forestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "forest: decode")
	}
	decoded, err := New(raw.Points, raw.Edges)
	if err != nil {
		return err
	}
	decoded.store = f.store
	*f = *decoded

	return nil
}

// Save persists the forest under key in the attached store.
func (f *Forest) Save(key string) error {
	if f.store == nil {
		return errors.WithHint(ErrNoStore, "attach a store with Forest.Attach or forest.WithStore")
	}
	data, err := json.Marshal(f)
	if err != nil {
		return errors.Wrapf(err, "forest: encode %q", key)
	}
	if err = f.store.Put(key, data); err != nil {
		return errors.Wrapf(err, "forest: save %q", key)
	}

	return nil
}

// Load reads a forest saved under key and attaches s to it.
func Load(s storage.Store, key string) (*Forest, error) {
	data, err := s.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, "forest: load %q", key)
	}
	f := &Forest{}
	if err = json.Unmarshal(data, f); err != nil {
		return nil, err
	}

	return f.Attach(s), nil
}
