// Package core provides the read-only graph representation consumed by
// the bfs and dijkstra packages.
//
// What
//
//   - Graph[N]:         node → ordered neighbor ids (unweighted, directed).
//   - WeightedGraph[N]: node → ordered (neighbor, weight) pairs (directed).
//   - N is any comparable type; the CLI uses string labels.
//
// Leaves
//
//	An id that only appears as a neighbor is a valid node with no outgoing
//	edges. Neighbors/Edges return nil for it, and for ids the graph has never
//	seen. Neither case is an error.
//
// Immutability
//
//	Algorithms only read the maps. Build a graph once, then share it between
//	as many queries (and goroutines) as you like; do not write to it while a
//	query is running.
//
// Validation
//
//	WeightedGraph.Validate rejects negative weights (ErrNegativeWeight) and
//	NaN weights (ErrInvalidWeight). +Inf weights are legal and never relax.
//
// Usage
//
//	g := core.WeightedGraph[string]{
//	    "A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
//	    "B": {{To: "C", Weight: 1}},
//	}
//	if err := g.Validate(); err != nil {
//	    // handle ErrNegativeWeight / ErrInvalidWeight
//	}
package core
