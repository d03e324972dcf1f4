// SPDX-License-Identifier: MIT
// Package routes defines the raw route records of a board map and the
// derived city indexes built from them.
//
// A board map is a flat list of Route records. Each Route joins two cities
// with a track of a given length (number of train cars). Several Routes may
// join the same two cities ("parallel tracks", possibly of different colors
// and lengths).
//
// Everything else in ticketrail is derived from that list:
//
//   - Cities(rs)             – sorted, duplicate-free list of city names.
//   - NeighborKeys(rs)       – every city pair joined by at least one route.
//   - DoubleNeighborKeys(rs) – city pairs joined by two or more routes.
//   - Count(rs)              – number of parallel routes per city pair.
//
// City pairs are identified by Pair, an order-independent key: NewPair("Wien",
// "Berlin") and NewPair("Berlin", "Wien") are the same value, so "A – B" and
// "B – A" can never coexist as distinct tickets.
//
// All functions are pure; they never mutate their input and do not
// revalidate map data (see package mapdata for ingestion checks).
//
// Complexity:
//
//   - Cities:             O(R + C log C)
//   - NeighborKeys:       O(R)
//   - DoubleNeighborKeys: O(R)
//
// where R is the number of routes and C the number of cities.
package routes
