// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Immutable bundle of every structure derived from one route list.

package network

import "github.com/katalvlaran/ticketrail/routes"

// Snapshot holds every structure derived from one route list. It is built
// once per map load or save restore and then only read.
type Snapshot struct {
	// Routes is the route list the snapshot was built from.
	Routes []routes.Route

	// Cities is the sorted city list (index order of both graphs).
	Cities []routes.City

	// Neighbors lists every pair joined by at least one route.
	Neighbors []routes.Pair

	// Doubles lists every pair joined by two or more routes.
	Doubles []routes.Pair

	// Full is the graph over all routes with parallel edges kept.
	Full *Network

	// Restricted is the graph over double pairs with parallel edges collapsed.
	Restricted *Network
}

// NewSnapshot derives all indexes and both graph variants from rs.
//
// Complexity: O(R + C log C).
func NewSnapshot(rs []routes.Route) *Snapshot {
	s := &Snapshot{
		Routes:    append([]routes.Route(nil), rs...),
		Cities:    routes.Cities(rs),
		Neighbors: routes.NeighborKeys(rs),
		Doubles:   routes.DoubleNeighborKeys(rs),
	}
	s.Full = Build(rs, s.Neighbors)
	s.Restricted = Build(rs, s.Doubles, WithCollapsedParallel())

	return s
}
