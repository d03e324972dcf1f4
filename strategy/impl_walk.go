// SPDX-License-Identifier: MIT
// File: impl_walk.go
// Role: Walk strategy – chains grown at both ends.

package strategy

import (
	"github.com/katalvlaran/ticketrail/rng"
)

// walkSwapChance is the probability of switching ends when both can grow.
const walkSwapChance = 0.5

// walker holds the state of the Walk strategy.
type walker struct {
	l       *list
	visited []bool
}

// genWalk grows a chain from a random start: the head moves to a random
// unvisited neighbor. When both ends can grow the ends swap with
// probability 1/2; when only the tail can grow they always swap. A chain
// ends when neither end can grow, and the next one starts at a random
// unvisited city.
func genWalk(l *list, _ Options) error {
	w := &walker{l: l, visited: make([]bool, l.net.Len())}
	for _, start := range rng.Perm(l.r, l.net.Len()) {
		if w.visited[start] {
			continue
		}
		w.visited[start] = true
		w.chain(start)
	}

	return nil
}

// chain grows one chain starting at start.
func (w *walker) chain(start int) {
	head, tail := start, start
	for {
		headNext := w.open(head)
		tailNext := w.open(tail)
		switch {
		case len(headNext) == 0 && len(tailNext) == 0:
			return
		case len(headNext) == 0:
			head, tail = tail, head
			headNext = tailNext
		case len(tailNext) > 0 && rng.Chance(w.l.r, walkSwapChance):
			head, tail = tail, head
			headNext = tailNext
		}

		next := headNext[w.l.r.Intn(len(headNext))]
		w.l.add(head, next)
		w.visited[next] = true
		head = next
	}
}

// open returns the unvisited neighbors of city u.
func (w *walker) open(u int) []int {
	nbrs := w.l.neighborSet(u)
	out := nbrs[:0]
	for _, v := range nbrs {
		if !w.visited[v] {
			out = append(out, v)
		}
	}

	return out
}
