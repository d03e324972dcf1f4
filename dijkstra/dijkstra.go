// SPDX-License-Identifier: MIT
// File: dijkstra.go
// Role: array-scan Dijkstra runner and the Distance/Path/FromIndex helpers.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/ticketrail/network"
)

// Dijkstra computes shortest distances from Options.Source to every city of
// n (or until Options.Target is finalized).
//
// Returns:
//
//   - dist: per city index, the minimum distance (Infinity if unreachable).
//     After an early stop at Target, cities not yet finalized may hold
//     tentative values.
//   - prev: if ReturnPath, prev[v] is the predecessor of v on its shortest
//     path (-1 for the source and for unreached cities); nil otherwise.
//   - err:  validation errors, see package doc.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. n must be non-nil (ErrNilGraph).
//  3. Source and Target must exist (ErrUnknownCity).
//  4. No edge may have a negative length (ErrNegativeWeight).
func Dijkstra(n *network.Network, opts ...Option) ([]int64, []int, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if n == nil {
		return nil, nil, ErrNilGraph
	}
	src, err := n.Index(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: source %q", ErrUnknownCity, cfg.Source)
	}
	target := noCity
	if cfg.Target != "" {
		if target, err = n.Index(cfg.Target); err != nil {
			return nil, nil, fmt.Errorf("%w: target %q", ErrUnknownCity, cfg.Target)
		}
	}

	// 3) Run
	r := newRunner(n, src, target, cfg.ReturnPath)
	if err = r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single run.
type runner struct {
	g       *network.Network
	target  int
	current int
	dist    []int64
	prev    []int
	visited []bool
}

// newRunner initializes dist[] to Infinity except the source (0).
func newRunner(g *network.Network, src, target int, withPrev bool) *runner {
	size := g.Len()
	r := &runner{
		g:       g,
		target:  target,
		current: src,
		dist:    make([]int64, size),
		visited: make([]bool, size),
	}
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	if withPrev {
		r.prev = make([]int, size)
		for i := range r.prev {
			r.prev[i] = noCity
		}
	}
	r.dist[src] = 0

	return r
}

// process relaxes the current city, marks it visited and selects the next
// one, until the target is visited or no reachable unvisited city remains.
func (r *runner) process() error {
	for r.current != noCity {
		if r.target != noCity && r.visited[r.target] {
			break
		}
		if err := r.relax(r.current); err != nil {
			return err
		}
		r.visited[r.current] = true
		r.current = r.next()
	}

	return nil
}

// relax improves the tentative distance of every unvisited neighbor of u.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	var (
		e       network.Edge
		newDist int64
	)
	for _, e = range edges {
		if e.Length < 0 {
			return fmt.Errorf("%w: %s→%s length=%d",
				ErrNegativeWeight, r.g.City(u), r.g.City(e.To), e.Length)
		}
		if r.visited[e.To] {
			continue
		}
		newDist = r.dist[u] + int64(e.Length)
		// strict "<": the first predecessor found keeps equal-length ties
		if newDist < r.dist[e.To] {
			r.dist[e.To] = newDist
			if r.prev != nil {
				r.prev[e.To] = u
			}
		}
	}

	return nil
}

// next returns the unvisited city with the smallest finite tentative
// distance (lowest index on ties), or noCity when none is reachable.
func (r *runner) next() int {
	best := noCity
	for i, seen := range r.visited {
		if seen || r.dist[i] == Infinity {
			continue
		}
		if best == noCity || r.dist[i] < r.dist[best] {
			best = i
		}
	}

	return best
}

// Distance returns the shortest-path length between two named cities, or
// Infinity if they are not connected.
//
// Complexity: O(C² + E).
func Distance(n *network.Network, from, to string) (int64, error) {
	dist, _, err := Dijkstra(n, Source(from), Target(to))
	if err != nil {
		return Infinity, err
	}
	t, _ := n.Index(to) // validated by Dijkstra

	return dist[t], nil
}

// Path returns the city indexes of a shortest path from→to (both ends
// included) and its length. ErrUnreachable is returned when the cities are
// not connected.
//
// Complexity: O(C² + E).
func Path(n *network.Network, from, to string) ([]int, int64, error) {
	dist, prev, err := Dijkstra(n, Source(from), Target(to), WithReturnPath())
	if err != nil {
		return nil, Infinity, err
	}
	t, _ := n.Index(to)
	if dist[t] == Infinity {
		return nil, Infinity, fmt.Errorf("%w: %s → %s", ErrUnreachable, from, to)
	}

	// walk predecessors back from the target, then reverse
	path := []int{}
	for cur := t; cur != noCity; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[t], nil
}

// FromIndex returns the distances from city index src to every city.
func FromIndex(n *network.Network, src int) ([]int64, error) {
	if n == nil {
		return nil, ErrNilGraph
	}
	name := n.City(src)
	if name == "" {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownCity, src)
	}
	dist, _, err := Dijkstra(n, Source(name))

	return dist, err
}
