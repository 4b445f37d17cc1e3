// SPDX-License-Identifier: MIT
// Package forest provides an implementation of Prim’s Minimum Spanning Tree algorithm.
// It grows the tree from a root vertex using a min-heap of candidate edges.
package forest

import (
	"container/heap"
)

// Prim computes the Minimum Spanning Tree of an undirected graph with n
// vertices (0..n-1) and the given edges, growing outwards from root.
//
// Error Conditions:
//   - ErrDisconnected : if n == 0 or the edges do not connect all vertices.
//   - ErrEdgeRange    : if root or an edge endpoint is outside [0, n).
//
// Steps:
//  1. Validate n and root; n==1 → trivial empty MST.
//  2. Build adjacency lists (both directions, self-loops skipped).
//  3. Mark root visited; push its incident edges.
//  4. Pop the lightest edge; skip it if its far end is visited, else accept it,
//     mark the far end and push that vertex's edges to unvisited neighbors.
//  5. Fewer than n-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []Edge, root int) ([]Edge, float64, error) {
	// 1. Validate.
	if n <= 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, ErrEdgeRange
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Adjacency: every edge is stored oriented away from each endpoint.
	adj := make([][]Edge, n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, 0, ErrEdgeRange
		}
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	// 3. Seed the heap from root.
	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{}
	heap.Init(pq)

	visited[root] = true
	for _, e := range adj[root] {
		heap.Push(pq, e)
	}

	// 4. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		totalWeight += e.Weight

		for _, ne := range adj[e.To] {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 5. Connectivity check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of Edge ordered by Weight.
type edgePQ []Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an Edge; called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(Edge)) }

// Pop removes the last element; called by heap.Pop after re-heaping.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
