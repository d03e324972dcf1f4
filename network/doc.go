// SPDX-License-Identifier: MIT
// Package network turns a route list into the index-based adjacency used by
// every algorithm in ticketrail.
//
// Cities are numbered 0..N-1 in alphabetical order (see routes.Cities) and
// every route is stored twice, once per direction, as an Edge{To, Length}.
//
// Two variants are derived from one route list:
//
//   - the full graph: all routes, parallel tracks kept as distinct edges.
//     Shortest-path queries and ticket distances run here.
//   - the restricted graph: only "double neighbor" pairs (two or more
//     parallel routes), with parallel edges collapsed into one edge per
//     direction carrying the minimum length. The neutral player's
//     strategies run here by default because a double route still leaves
//     spare capacity for the human players.
//
// Options:
//
//	– WithCollapsedParallel()
//	    Keep a single edge per direction (minimum length).
//
// Snapshot bundles both graphs with the cities and key lists and is the unit
// that the game machine swaps in wholesale when a map is loaded or a save is
// restored. A Network is never patched in place by the engine; the only
// mutator, SetLength, is meant for private clones (see strategy LinesOpt).
//
// Errors:
//
//	ErrUnknownCity – a city name is absent from the graph.
//	ErrBadIndex    – a city index is outside 0..N-1.
package network
