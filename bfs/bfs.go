// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and expansion order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algolab/core"
)

// queueItem pairs a vertex ID with its BFS depth and the vertex it was reached from.
type queueItem[N comparable] struct {
	id     N
	depth  int
	parent N
	root   bool // start vertex; parent is meaningless
}

// walker encapsulates mutable BFS state. One walker per call; never shared.
type walker[N comparable] struct {
	graph   core.Graph[N]
	opts    Options[N]
	queue   []queueItem[N]
	visited map[N]struct{}
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// A vertex is marked visited when it is dequeued, not when it is enqueued,
// so it may sit in the queue several times; only the first dequeue expands it.
// A start vertex unknown to g is expanded as a leaf.
//
// Returns ErrOptionViolation for bad options, the context error on
// cancellation, or a wrapped OnVisit error. An OnVisit hook returning
// ErrStop ends the walk with a nil error. The partial Result is returned
// alongside any error.
func BFS[N comparable](g core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(g) + 1
	w := &walker[N]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]struct{}, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	w.enqueue(queueItem[N]{id: start, root: true})
	if err := w.loop(); err != nil && !errors.Is(err, ErrStop) {
		return w.res, err
	}

	return w.res, nil
}

// enqueue calls OnEnqueue and appends item to the queue.
func (w *walker[N]) enqueue(item queueItem[N]) {
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if _, seen := w.visited[item.id]; seen {
			continue
		}
		w.visited[item.id] = struct{}{}

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order, Depth and Parent, then calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = item.depth
	if !item.root {
		w.res.Parent[item.id] = item.parent
	}

	err := w.opts.OnVisit(item.id, item.depth)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStop):
		return ErrStop
	default:
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// neighbor that has not been expanded yet.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.enqueue(queueItem[N]{id: nbr, depth: nextDepth, parent: item.id})
	}
}
