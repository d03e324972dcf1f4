// SPDX-License-Identifier: MIT
// File: impl_fill.go
// Role: Fill strategy – tracks ordered by distance from one start city.

package strategy

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ticketrail/dijkstra"
	"github.com/katalvlaran/ticketrail/rng"
)

// genFill takes the first city (in random order) that reaches any other
// city, computes shortest distances from it, and emits every track sorted
// by min(dist[u], dist[v]) ascending. Ties are broken randomly; tracks of
// other components sort last.
func genFill(l *list, _ Options) error {
	edges := l.net.Edges()
	if len(edges) == 0 {
		return nil
	}

	var dist []int64
	for _, start := range rng.Perm(l.r, l.net.Len()) {
		if l.net.Degree(start) == 0 {
			continue
		}
		d, err := dijkstra.FromIndex(l.net, start)
		if err != nil {
			return fmt.Errorf("fill from %s: %w", l.net.City(start), err)
		}
		dist = d
		break
	}

	key := make([]int64, len(edges))
	tie := rng.Perm(l.r, len(edges))
	for i, e := range edges {
		key[i] = min(dist[e.U], dist[e.V])
	}
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if key[i] != key[j] {
			return key[i] < key[j]
		}
		return tie[i] < tie[j]
	})

	for _, i := range order {
		l.add(edges[i].U, edges[i].V)
	}

	return nil
}
