// Package dijkstra computes the minimum-cost path between two nodes of a
// core.WeightedGraph with non-negative edge weights, and reconstructs the
// node sequence realizing that cost.
//
// Overview:
//
//   - A cost table starts at 0 for the start node and +Inf for every key of
//     the graph; nodes that only appear as edge targets are read as +Inf.
//   - Relaxation: cost[cur] + w < cost[nbr] updates cost and predecessor and
//     schedules nbr for expansion.
//   - The path is rebuilt by following predecessors back from the target.
//
// Strategies:
//
//   - PriorityQueue (default): classical Dijkstra. A min-heap keyed by
//     tentative cost, lazy decrease-key, a node is final on its first pop.
//   - FIFO: the textbook queue variant. Every improving relaxation enqueues
//     the neighbor again, so nodes may be expanded many times before
//     settling. It yields the same costs and is kept for comparison.
//
// Unreachable targets:
//
//	Not an error. Result.Cost is +Inf, Result.Path is the degenerate
//	[target] and Result.Reachable() is false. Callers must check.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeWeight:  some edge has weight < 0. Checked before any work.
//   - ErrInvalidWeight:   some edge has a NaN weight.
//   - ErrOptionViolation: invalid Option (negative MaxCost, unknown Strategy).
//   - ctx.Err():          the context passed via WithContext was cancelled.
//
// Example usage:
//
//	g := core.WeightedGraph[string]{
//	    "A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
//	    "B": {{To: "C", Weight: 1}},
//	}
//	res, err := dijkstra.ShortestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Reachable() {
//	    fmt.Println("unreachable")
//	}
//	fmt.Println(res.Path, res.Cost) // [A B C] 2
package dijkstra
