// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and expansion order.
//
// What
//
//   - Expand every vertex reachable from a start vertex exactly once, in
//     non-decreasing distance (edge count) order.
//   - Returns a Result containing:
//   - Order: expansion sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks at three stages:
//   - OnEnqueue (a vertex enters the queue)
//   - OnDequeue (a vertex leaves the queue, stale duplicates included)
//   - OnVisit   (a vertex is expanded; may stop or abort the walk)
//   - Filtering of individual edges via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Visited-on-dequeue
//
//	A vertex is marked visited when it is dequeued. Until then it can be
//	enqueued once per incoming edge; every later copy is discarded on
//	dequeue. Because the queue is FIFO, the first copy dequeued is the
//	shallowest, so Depth and Parent are true BFS distances and tree links.
//
// Determinism
//
//	Siblings are expanded in adjacency-list order, so the expansion sequence
//	is fully reproducible for a given graph value.
//
// Leaves and unknown vertices
//
//	A vertex with no adjacency entry has no outgoing edges. Starting from
//	such a vertex is not an error: the walk expands the start vertex only.
//
// Early exit
//
//	OnVisit is the evaluation hook. Return ErrStop to finish the walk as soon
//	as a vertex satisfies the caller's condition; BFS returns the partial
//	Result and a nil error.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (duplicate queue entries are bounded by E)
//
// Usage
//
//	res, err := bfs.BFS(g, "A")
//
//	res, err := bfs.BFS(
//	    g, "A",
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(id string, depth int) error {
//	        if id == "goal" {
//	            return bfs.ErrStop
//	        }
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-walk.
//   - Wrapped OnVisit errors (other than ErrStop).
//   - ErrNoPath           from Result.PathTo for unvisited destinations.
package bfs
