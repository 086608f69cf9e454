// Package dijkstra defines core types and configuration options
// for the shortest-path engine on non-negative weighted graphs.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/algolab/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	// It is the same value as core.ErrNegativeWeight.
	ErrNegativeWeight = core.ErrNegativeWeight

	// ErrInvalidWeight indicates a NaN edge weight. Same value as core.ErrInvalidWeight.
	ErrInvalidWeight = core.ErrInvalidWeight

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects the frontier discipline used during relaxation.
type Strategy int

const (
	// PriorityQueue expands the cheapest tentative node first (min-heap with
	// lazy decrease-key) and finalizes a node on its first pop.
	// O((V + E) log V).
	PriorityQueue Strategy = iota

	// FIFO expands nodes in plain queue order and re-enqueues a node on every
	// strictly improving relaxation. Same costs, but a node may be expanded
	// many times before its cost settles.
	FIFO
)

// String returns the lowercase strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case PriorityQueue:
		return "priority"
	case FIFO:
		return "fifo"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "priority" / "fifo" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "priority", "heap":
		return PriorityQueue, nil
	case "fifo", "queue":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option represents a functional option for configuring ShortestPath.
// Instantiate explicitly when the argument does not mention the node type,
// e.g. WithStrategy[string](FIFO).
type Option[N comparable] func(*Options[N])

// Options configures the behavior of ShortestPath.
type Options[N comparable] struct {
	// Ctx allows cancellation; checked once per expanded node.
	Ctx context.Context

	// Strategy selects the frontier discipline. Default PriorityQueue.
	Strategy Strategy

	// MaxCost caps tentative costs: a relaxation producing a cost above it
	// is ignored. Must be >= 0. Default is +Inf (no cap).
	MaxCost float64

	// OnRelax is called on every strictly improving relaxation.
	OnRelax func(node, via N, cost float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - PriorityQueue strategy
//   - MaxCost = +Inf
//   - no-op OnRelax.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		Strategy: PriorityQueue,
		MaxCost:  math.Inf(1),
		OnRelax:  func(N, N, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the frontier discipline.
func WithStrategy[N comparable](s Strategy) Option[N] {
	return func(o *Options[N]) {
		switch s {
		case PriorityQueue, FIFO:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
		}
	}
}

// WithMaxCost caps explored costs. Negative or NaN values are recorded as
// ErrOptionViolation and surfaced by ShortestPath.
func WithMaxCost[N comparable](max float64) Option[N] {
	return func(o *Options[N]) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnRelax registers a callback fired whenever node's cost improves via.
func WithOnRelax[N comparable](fn func(node, via N, cost float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result is the outcome of a single start→target query.
type Result[N comparable] struct {
	// Path is the start→target node sequence. For an unreachable target it
	// is the degenerate [target].
	Path []N

	// Cost is the total path weight, or +Inf when the target is unreachable.
	Cost float64

	// Relaxations counts strictly improving relaxations performed.
	Relaxations int
}

// Reachable reports whether a real path was found.
func (r *Result[N]) Reachable() bool {
	return !math.IsInf(r.Cost, 1)
}
