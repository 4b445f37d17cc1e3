// SPDX-License-Identifier: MIT
// Package forest: disjoint-set (union-find) over dense vertex indices.

package forest

// disjointSet implements union by rank with path halving.
// Vertices are 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for v := range ds.parent {
		ds.parent[v] = v
	}

	return ds
}

// find walks to the root, pointing each visited node at its grandparent.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}

// labels assigns dense component ids 0..k-1 ordered by each component's
// smallest vertex, and returns them with k.
func (ds *disjointSet) labels() ([]int, int) {
	n := len(ds.parent)
	ids := make(map[int]int, n)
	out := make([]int, n)
	for v := 0; v < n; v++ {
		root := ds.find(v)
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		out[v] = id
	}

	return out, len(ids)
}
