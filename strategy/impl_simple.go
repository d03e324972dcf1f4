// SPDX-License-Identifier: MIT
// File: impl_simple.go
// Role: Random, Increment and Star strategies.

package strategy

import (
	"sort"

	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/rng"
)

// genRandom shuffles every track uniformly.
func genRandom(l *list, _ Options) error {
	es := l.net.Edges()
	rng.Shuffle(l.r, es)
	l.addEdges(es)

	return nil
}

// genIncrement emits tracks by ascending length, shuffled within each length.
func genIncrement(l *list, _ Options) error {
	buckets := make(map[int][]network.EdgeRef)
	for _, e := range l.net.Edges() {
		buckets[e.Length] = append(buckets[e.Length], e)
	}
	lengths := make([]int, 0, len(buckets))
	for length := range buckets {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	for _, length := range lengths {
		b := buckets[length]
		rng.Shuffle(l.r, b)
		l.addEdges(b)
	}

	return nil
}

// genStar visits cities in random order and emits all their tracks,
// shuffled, before moving on.
func genStar(l *list, _ Options) error {
	for _, u := range rng.Perm(l.r, l.net.Len()) {
		nbrs := l.neighborSet(u)
		rng.Shuffle(l.r, nbrs)
		for _, v := range nbrs {
			l.add(u, v)
		}
	}

	return nil
}
