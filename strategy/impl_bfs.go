// SPDX-License-Identifier: MIT
// File: impl_bfs.go
// Role: BFS strategy – level-ordered tracks from random roots.

package strategy

import (
	"fmt"

	"github.com/katalvlaran/ticketrail/bfs"
	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/rng"
)

// genBFS picks unvisited roots in random order. For each root the tracks
// examined at depth d form level d; levels are emitted in order, each one
// shuffled.
func genBFS(l *list, _ Options) error {
	reached := make([]bool, l.net.Len())
	for _, root := range rng.Perm(l.r, l.net.Len()) {
		if reached[root] || l.net.Degree(root) == 0 {
			continue
		}

		var levels [][]network.EdgeRef
		_, err := bfs.BFS(l.net, root,
			bfs.WithOnVisit(func(id, _ int) error {
				reached[id] = true
				return nil
			}),
			bfs.WithOnEdge(func(from, to, depth int) {
				for len(levels) <= depth {
					levels = append(levels, nil)
				}
				levels[depth] = append(levels[depth], network.EdgeRef{U: from, V: to})
			}))
		if err != nil {
			return fmt.Errorf("bfs from %s: %w", l.net.City(root), err)
		}

		for _, level := range levels {
			rng.Shuffle(l.r, level)
			l.addEdges(level)
		}
	}

	return nil
}
