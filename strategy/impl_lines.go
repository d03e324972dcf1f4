// SPDX-License-Identifier: MIT
// File: impl_lines.go
// Role: Lines and LinesOpt strategies – tracks along random shortest paths.

package strategy

import (
	"fmt"

	"github.com/katalvlaran/ticketrail/bfs"
	"github.com/katalvlaran/ticketrail/dijkstra"
	"github.com/katalvlaran/ticketrail/network"
)

// genLines repeatedly joins two random distinct cities of one component by
// a shortest path and appends its tracks. Only cities with at least one
// track are drawn, so every pair is connected. used sums the real lengths
// of newly added tracks; the loop ends once used exceeds
// LineBudgetFactor×CarBudget, once every track is taken, or after
// AttemptCap draws that added nothing.
//
// With reuse set, the search runs on a private clone in which every claimed
// track has length 0, so later paths prefer extending the existing network.
func genLines(l *list, o Options, reuse bool) error {
	total := len(l.net.Edges())
	if total == 0 {
		return nil
	}
	cs, err := components(l.net)
	if err != nil {
		return err
	}
	idle := o.AttemptCap
	if idle == 0 {
		idle = total
	}
	budget := LineBudgetFactor * float64(o.CarBudget)

	search := l.net
	if reuse {
		search = l.net.Clone()
	}

	used := 0
	for misses := 0; misses < idle && len(l.out) < total && float64(used) <= budget; {
		a, b := cs.pair(l.r.Intn)
		path, _, err := dijkstra.Path(search, search.City(a), search.City(b))
		if err != nil {
			return fmt.Errorf("lines %s → %s: %w", search.City(a), search.City(b), err)
		}
		gained, err := claimPath(l, search, path, reuse)
		if err != nil {
			return err
		}
		if gained == 0 {
			misses++
		}
		used += gained
	}

	return nil
}

// claimPath appends each track of path and returns the summed length of the
// tracks that were new. With zero set, those tracks become free in search.
func claimPath(l *list, search *network.Network, path []int, zero bool) (int, error) {
	gained := 0
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if !l.add(u, v) {
			continue
		}
		gained += l.out[len(l.out)-1].Length
		if zero {
			if err := search.SetLength(u, v, 0); err != nil {
				return gained, err
			}
		}
	}

	return gained, nil
}

// componentSet groups the cities that have a track by connected component.
type componentSet struct {
	groups [][]int // cities of each component, in BFS order
	of     []int   // component of each city, -1 without a track
	pos    []int   // position of each city inside its group
	active []int   // every city with a track
}

// components labels each city with a track by a BFS from it.
func components(n *network.Network) (*componentSet, error) {
	cs := &componentSet{
		of:  make([]int, n.Len()),
		pos: make([]int, n.Len()),
	}
	for i := range cs.of {
		cs.of[i] = -1
	}
	for root := 0; root < n.Len(); root++ {
		if cs.of[root] >= 0 || n.Degree(root) == 0 {
			continue
		}
		c := len(cs.groups)
		cs.groups = append(cs.groups, nil)
		_, err := bfs.BFS(n, root, bfs.WithOnEnqueue(func(id, _ int) {
			cs.of[id] = c
			cs.pos[id] = len(cs.groups[c])
			cs.groups[c] = append(cs.groups[c], id)
			cs.active = append(cs.active, id)
		}))
		if err != nil {
			return nil, fmt.Errorf("components from %s: %w", n.City(root), err)
		}
	}

	return cs, nil
}

// pair draws a city with a track and a distinct city of its component.
// Every component with a track holds at least two cities.
func (cs *componentSet) pair(intn func(int) int) (int, int) {
	a := cs.active[intn(len(cs.active))]
	g := cs.groups[cs.of[a]]
	k := intn(len(g) - 1)
	if k >= cs.pos[a] {
		k++
	}

	return a, g[k]
}
