// Package core defines the adjacency-map graph types shared by the
// traversal and shortest-path packages.
//
// A graph is a plain Go map from node identifier to its outgoing edges.
// Nodes that only ever appear as a neighbor (implicit leaves) are allowed;
// lookups on them simply return no edges.
//
// This file declares Edge, Graph, WeightedGraph and the sentinel errors.
//
// Errors:
//
//	ErrNegativeWeight - an edge carries a weight below zero.
//	ErrInvalidWeight  - an edge carries a NaN weight.
package core

import "errors"

// Sentinel errors for core graph validation.
var (
	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInvalidWeight indicates an edge whose weight is NaN.
	ErrInvalidWeight = errors.New("core: edge weight is not a number")
)

// Edge is one outgoing, weighted connection of a node.
type Edge[N comparable] struct {
	// To is the neighbor this edge points at.
	To N `json:"to" yaml:"to"`

	// Weight is the non-negative cost of traversing the edge.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Graph is an unweighted, directed adjacency map: node → ordered neighbors.
//
// The graph is treated as immutable by every algorithm in this module,
// so a single value may be shared by concurrent readers without locking.
type Graph[N comparable] map[N][]N

// WeightedGraph is a directed adjacency map: node → ordered (neighbor, weight) pairs.
// Same sharing and leaf rules as Graph.
type WeightedGraph[N comparable] map[N][]Edge[N]
