// SPDX-License-Identifier: MIT
// File: types.go
// Role: Network, Edge, EdgeRef, options and sentinel errors.

package network

import (
	"errors"

	"github.com/katalvlaran/ticketrail/routes"
)

// Sentinel errors for network queries.
var (
	// ErrUnknownCity indicates a city name absent from the graph.
	ErrUnknownCity = errors.New("network: unknown city")

	// ErrBadIndex indicates a city index outside 0..N-1.
	ErrBadIndex = errors.New("network: city index out of range")
)

// Edge is one direction of a route, stored in the adjacency list of its
// source city.
type Edge struct {
	// To is the destination city index.
	To int

	// Length is the number of cars needed to claim the route.
	Length int
}

// EdgeRef identifies an undirected edge by both endpoint indexes (U < V).
type EdgeRef struct {
	U      int
	V      int
	Length int
}

// Option configures a Network before edges are added.
type Option func(n *Network)

// WithCollapsedParallel keeps one edge per direction between two cities,
// with the minimum length of the parallel routes.
func WithCollapsedParallel() Option {
	return func(n *Network) { n.collapse = true }
}

// Network is an undirected adjacency list over cities indexed 0..N-1.
//
// Cities are sorted alphabetically; adj[i] lists every edge leaving city i.
// Parallel routes appear as separate edges unless the network was built
// WithCollapsedParallel.
type Network struct {
	collapse bool

	cities []routes.City
	index  map[routes.City]int
	adj    [][]Edge
}
