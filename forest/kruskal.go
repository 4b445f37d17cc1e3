// SPDX-License-Identifier: MIT
// Package forest provides an implementation of Kruskal’s Minimum Spanning Tree algorithm
// over index-addressed, float-weighted edges.
package forest

import (
	"sort"
)

// Kruskal computes the Minimum Spanning Tree of an undirected graph with n
// vertices (0..n-1) and the given edges.
//
// Error Conditions:
//   - ErrDisconnected : if n == 0, or n > 1 but the edges do not connect all vertices.
//   - ErrEdgeRange    : if an edge endpoint is outside [0, n).
//
// Steps:
//  1. n==0 → ErrDisconnected; n==1 → trivial MST (empty, weight=0).
//  2. Validate endpoints; skip self-loops.
//  3. Sort a copy of the edges by ascending Weight (stable, so ties keep input order).
//  4. Union-find: accept every edge joining two different components.
//  5. Stop at n-1 edges; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []Edge) ([]Edge, float64, error) {
	// 1. Trivial sizes.
	if n <= 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Collect candidate edges, skipping self-loops.
	candidates := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, 0, ErrEdgeRange
		}
		if e.From == e.To {
			continue
		}
		candidates = append(candidates, e)
	}

	// 3. Stable sort by weight for deterministic tie-breaking.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	// 4. Union-find sweep.
	var (
		ds          = newDisjointSet(n)
		mst         = make([]Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range candidates {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 5. MST complete.
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
