// SPDX-License-Identifier: MIT
package bfs

import (
	"fmt"

	"github.com/katalvlaran/ticketrail/network"
)

// queueItem pairs a city index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *network.Network
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from city index start.
func BFS(g *network.Network, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartCityNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     &Result{Order: make([]int, 0, n)},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and queues it.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors reports each edge of item and enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, e := range edges {
		w.opts.OnEdge(item.id, e.To, item.depth)
		if !w.visited[e.To] {
			w.enqueue(e.To, item.depth+1)
		}
	}

	return nil
}
