// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a network.Network,
// reporting visit order and per-edge depth through hooks.
//
// What
//
//   - Explore cities in non-decreasing hop count from a start city.
//   - Returns a Result holding the visit sequence (city indexes).
//   - Hooks:
//   - OnEnqueue (when a city is first reached)
//   - OnVisit   (when visiting; may abort with an error)
//   - OnEdge    (for every edge leaving a visited city, tree edge or not)
//
// Why
//
//   - The neutral player's BFS strategy groups routes by the level at which
//     they are first seen; OnEdge reports each edge together with the depth
//     of the city it leaves, which is exactly that level.
//   - The Lines strategies label connected components with OnEnqueue.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order (route order of the map), so
//	the visit sequence is reproducible for a given map.
//
// Complexity (C = cities, E = edges)
//
//   - Time:   O(C + E)
//   - Memory: O(C)
//
// Usage
//
//	res, err := bfs.BFS(n, start,
//	    bfs.WithOnEdge(func(from, to, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartCityNotFound    if the start index is out of range.
//   - ErrOptionViolation      if an Option is invalid (a nil hook).
//   - Wrapped hook errors from OnVisit.
package bfs
