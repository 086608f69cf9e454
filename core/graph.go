package core

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Neighbors returns the ordered neighbors of id.
// Unknown ids and leaves yield nil; absence is not an error.
// The returned slice is owned by the graph and must not be modified.
// Complexity: O(1).
func (g Graph[N]) Neighbors(id N) []N {
	return g[id]
}

// HasNode reports whether id appears in g, either as a key or as a neighbor.
// Complexity: O(1) for keys, O(V+E) for leaves.
func (g Graph[N]) HasNode(id N) bool {
	if _, ok := g[id]; ok {
		return true
	}
	for _, nbrs := range g {
		if slices.Contains(nbrs, id) {
			return true
		}
	}

	return false
}

// Nodes returns every distinct id mentioned in g: all keys followed by
// leaf-only ids. Order is unspecified; see Sorted.
// Complexity: O(V+E).
func (g Graph[N]) Nodes() []N {
	seen := make(map[N]struct{}, len(g))
	out := make([]N, 0, len(g))
	for id := range g {
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, nbrs := range g {
		for _, nbr := range nbrs {
			if _, ok := seen[nbr]; !ok {
				seen[nbr] = struct{}{}
				out = append(out, nbr)
			}
		}
	}

	return out
}

// NumEdges counts adjacency entries across all keys.
func (g Graph[N]) NumEdges() int {
	n := 0
	for _, nbrs := range g {
		n += len(nbrs)
	}

	return n
}

// Edges returns the ordered outgoing edges of id.
// Unknown ids and leaves yield nil; absence is not an error.
// Complexity: O(1).
func (g WeightedGraph[N]) Edges(id N) []Edge[N] {
	return g[id]
}

// Neighbors returns only the neighbor ids of id, in edge order.
func (g WeightedGraph[N]) Neighbors(id N) []N {
	edges := g[id]
	if len(edges) == 0 {
		return nil
	}
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// HasNode reports whether id appears in g, either as a key or as an edge target.
func (g WeightedGraph[N]) HasNode(id N) bool {
	if _, ok := g[id]; ok {
		return true
	}
	for _, edges := range g {
		for _, e := range edges {
			if e.To == id {
				return true
			}
		}
	}

	return false
}

// Nodes returns every distinct id mentioned in g: keys followed by leaf-only ids.
// Order is unspecified; see Sorted.
func (g WeightedGraph[N]) Nodes() []N {
	return g.Unweighted().Nodes()
}

// NumEdges counts edges across all keys.
func (g WeightedGraph[N]) NumEdges() int {
	n := 0
	for _, edges := range g {
		n += len(edges)
	}

	return n
}

// Unweighted drops weights, keeping keys and edge order.
func (g WeightedGraph[N]) Unweighted() Graph[N] {
	out := make(Graph[N], len(g))
	for id := range g {
		out[id] = g.Neighbors(id)
	}

	return out
}

// Validate checks every edge weight: negative weights yield ErrNegativeWeight,
// NaN weights yield ErrInvalidWeight. +Inf is accepted and behaves as an
// impassable edge. The first offending edge is reported.
// Complexity: O(V+E).
func (g WeightedGraph[N]) Validate() error {
	for from, edges := range g {
		for _, e := range edges {
			switch {
			case math.IsNaN(e.Weight):
				return fmt.Errorf("%w: edge %v→%v", ErrInvalidWeight, from, e.To)
			case e.Weight < 0:
				return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from, e.To, e.Weight)
			}
		}
	}

	return nil
}

// Sorted returns a sorted copy of ids. Handy for deterministic output
// from Nodes when N is ordered.
func Sorted[N cmp.Ordered](ids []N) []N {
	out := slices.Clone(ids)
	slices.Sort(out)

	return out
}
