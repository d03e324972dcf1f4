// SPDX-License-Identifier: MIT
// File: strategy.go
// Role: Generate dispatcher and the duplicate-free list collector shared by
// every strategy.

package strategy

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/rng"
	"github.com/katalvlaran/ticketrail/routes"
)

// generator is the signature of one strategy implementation.
type generator func(l *list, o Options) error

// Generate runs strategy kind over n and returns the ordered entries.
// r==nil uses rng.DefaultSeed.
func Generate(kind Kind, n *network.Network, r *rand.Rand, opts ...Option) ([]Entry, error) {
	if n == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if r == nil {
		r = rng.FromSeed(0)
	}

	var gen generator
	switch kind {
	case Random:
		gen = genRandom
	case BFS:
		gen = genBFS
	case Walk:
		gen = genWalk
	case Fill:
		gen = genFill
	case Increment:
		gen = genIncrement
	case Star:
		gen = genStar
	case Lines:
		gen = func(l *list, o Options) error { return genLines(l, o, false) }
	case LinesOpt:
		gen = func(l *list, o Options) error { return genLines(l, o, true) }
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	l := newList(n, r)
	if err := gen(l, o); err != nil {
		return nil, fmt.Errorf("strategy %s: %w", kind, err)
	}

	return l.out, nil
}

// list accumulates entries, skipping keys already added.
type list struct {
	net  *network.Network
	r    *rand.Rand
	seen routes.PairSet
	out  []Entry
}

func newList(n *network.Network, r *rand.Rand) *list {
	return &list{
		net:  n,
		r:    r,
		seen: make(routes.PairSet, n.Len()),
		out:  make([]Entry, 0, n.Len()),
	}
}

// add appends the track u–v with its minimum length; it reports whether the
// key was new. Non-adjacent cities are ignored.
func (l *list) add(u, v int) bool {
	length, ok := l.net.Length(u, v)
	if !ok {
		return false
	}
	p := l.net.PairOf(u, v)
	if l.seen.Has(p) {
		return false
	}
	l.seen.Add(p)
	l.out = append(l.out, Entry{Pair: p, Length: length})

	return true
}

// addEdges appends each EdgeRef in order.
func (l *list) addEdges(es []network.EdgeRef) {
	for _, e := range es {
		l.add(e.U, e.V)
	}
}

// neighborSet returns the distinct neighbor indexes of city u in adjacency
// order.
func (l *list) neighborSet(u int) []int {
	edges, _ := l.net.Neighbors(u)
	out := make([]int, 0, len(edges))
	seen := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out
}
