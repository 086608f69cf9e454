// Package dijkstra implements a single-pair shortest-path engine on weighted
// graphs with non-negative edge weights.
//
// Complexity:
//
//   - PriorityQueue: O((V + E) log V) time, O(V + E) space (lazy decrease-key).
//   - FIFO:          same costs, but a node is re-expanded once per queued
//     improvement, so the worst case is well above the heap strategy.
//
// Notes on implementation choices:
//
//   - We scan all edges up front (O(E)) to reject negative and NaN weights.
//   - Cost lookups treat nodes absent from the cost table as +Inf, so
//     leaf-only nodes need no pre-population.
//   - Path reconstruction walks predecessors from the target and reverses.
package dijkstra

import (
	"container/heap"
	"math"
	"slices"

	"github.com/katalvlaran/algolab/core"
)

// ShortestPath computes the minimum-cost path from start to target in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. No edge may carry a negative (ErrNegativeWeight) or NaN (ErrInvalidWeight) weight.
//
// An unreachable target is not an error: Result.Cost is +Inf and Result.Path
// is [target]. A start node unknown to g is treated as a leaf. If
// start == target the result is [start] with cost 0.
//
// The only other error is the context error on cancellation.
func ShortestPath[N comparable](g core.WeightedGraph[N], start, target N, opts ...Option[N]) (*Result[N], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Pre-scan all edges; fail fast on negative or NaN weights.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// 3) Prepare per-query state.
	r := &runner[N]{
		g:    g,
		opts: cfg,
		cost: make(map[N]float64, len(g)+1),
		prev: make(map[N]N, len(g)),
	}
	r.init(start)

	var err error
	switch cfg.Strategy {
	case FIFO:
		err = r.runFIFO(start)
	default:
		err = r.runHeap(start)
	}
	if err != nil {
		return nil, err
	}

	return &Result[N]{
		Path:        r.pathTo(target),
		Cost:        r.costOf(target),
		Relaxations: r.relaxations,
	}, nil
}

// runner holds the mutable state for a single query.
type runner[N comparable] struct {
	g           core.WeightedGraph[N] // read-only
	opts        Options[N]
	cost        map[N]float64 // best known cost from start
	prev        map[N]N       // absent = no predecessor
	relaxations int
}

// init sets cost = +Inf for every key of the graph and 0 for start.
func (r *runner[N]) init(start N) {
	inf := math.Inf(1)
	for id := range r.g {
		r.cost[id] = inf
	}
	r.cost[start] = 0
}

// costOf returns the best known cost for id, +Inf if never seen.
func (r *runner[N]) costOf(id N) float64 {
	if c, ok := r.cost[id]; ok {
		return c
	}

	return math.Inf(1)
}

// relax tries every outgoing edge of u and calls push for each neighbor
// whose cost strictly improved.
func (r *runner[N]) relax(u N, push func(v N, cost float64)) {
	base := r.costOf(u)
	for _, e := range r.g.Edges(u) {
		candidate := base + e.Weight
		if candidate > r.opts.MaxCost {
			continue
		}
		if candidate >= r.costOf(e.To) {
			continue
		}
		r.cost[e.To] = candidate
		r.prev[e.To] = u
		r.relaxations++
		r.opts.OnRelax(e.To, u, candidate)
		push(e.To, candidate)
	}
}

// runFIFO is the plain-queue relaxation loop: any improvement re-enqueues the neighbor.
func (r *runner[N]) runFIFO(start N) error {
	queue := []N{start}
	push := func(v N, _ float64) { queue = append(queue, v) }

	for len(queue) > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		r.relax(u, push)
	}

	return nil
}

// runHeap is classical Dijkstra: pop the cheapest node, finalize it, relax its edges.
func (r *runner[N]) runHeap(start N) error {
	pq := make(nodePQ[N], 0, len(r.g)+1)
	heap.Push(&pq, &nodeItem[N]{id: start, cost: 0})
	settled := make(map[N]struct{}, len(r.g)+1)
	push := func(v N, c float64) { heap.Push(&pq, &nodeItem[N]{id: v, cost: c}) }

	for pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*nodeItem[N])
		// stale lazy-decrease-key entry
		if _, done := settled[item.id]; done {
			continue
		}
		settled[item.id] = struct{}{}
		r.relax(item.id, push)
	}

	return nil
}

// pathTo walks predecessors back from target and returns start→target order.
// Without a predecessor the result is the degenerate [target].
func (r *runner[N]) pathTo(target N) []N {
	path := []N{target}
	for cur := target; len(path) <= len(r.prev); {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

// nodeItem represents a node and its tentative cost at push time.
type nodeItem[N comparable] struct {
	id   N
	cost float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int           { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq nodePQ[N]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
