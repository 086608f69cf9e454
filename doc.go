// Package algolab is a small, readable collection of classic algorithms:
// graph traversal and shortest paths, plus the sorting and searching
// routines that usually sit next to them.
//
// Everything is organized under a few subpackages:
//
//	core/       — Graph[N] and WeightedGraph[N]: read-only adjacency maps
//	bfs/        — breadth-first search with hooks (OnEnqueue, OnDequeue, OnVisit)
//	dijkstra/   — single-pair shortest path, priority-queue or FIFO frontier
//	sortsearch/ — ordering check, minimum, reverse, selection sort, quicksort, binary search
//	graphio/    — YAML/JSON graph documents
//	cmd/algolab — command-line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      4   1
//	       \  │
//	         C
//
//	dijkstra.ShortestPath(g, "A", "C") → [A B C], cost 2.
//
// Graphs are plain maps, never mutated by an algorithm, and safe to share
// between concurrent queries.
//
//	go get github.com/katalvlaran/algolab
package algolab
