// SPDX-License-Identifier: MIT
// File: network.go
// Role: Construction (Build) and read-only queries over a Network.
// Determinism:
//   - City indexes follow routes.Cities order; adjacency follows route order.
//   - Edges() is sorted by (U, V).

package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ticketrail/routes"
)

// Build creates a Network over every city of rs and adds both directions of
// each route whose pair key is in allowed.
//
// Cities joined only by disallowed routes are still indexed (they simply
// have no edges), so city indexes agree between the full and restricted
// graphs of one map.
//
// Complexity: O(R + C log C).
func Build(rs []routes.Route, allowed []routes.Pair, opts ...Option) *Network {
	n := newNetwork(routes.Cities(rs), opts...)
	keep := routes.NewPairSet(allowed)

	var (
		r        routes.Route
		from, to int
	)
	for _, r = range rs {
		if !keep.Has(r.Key()) {
			continue
		}
		from = n.index[r.From]
		to = n.index[r.To]
		n.addEdge(from, to, r.Length)
		n.addEdge(to, from, r.Length)
	}

	return n
}

// newNetwork allocates an edgeless network over the given sorted cities.
func newNetwork(cities []routes.City, opts ...Option) *Network {
	n := &Network{
		cities: cities,
		index:  make(map[routes.City]int, len(cities)),
		adj:    make([][]Edge, len(cities)),
	}
	for i, c := range cities {
		n.index[c] = i
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// addEdge appends from→to; in collapsed mode an existing edge to the same
// destination is shortened instead.
func (n *Network) addEdge(from, to, length int) {
	if n.collapse {
		for i := range n.adj[from] {
			if n.adj[from][i].To != to {
				continue
			}
			if length < n.adj[from][i].Length {
				n.adj[from][i].Length = length
			}
			return
		}
	}
	n.adj[from] = append(n.adj[from], Edge{To: to, Length: length})
}

// Len returns the number of cities.
func (n *Network) Len() int {
	return len(n.cities)
}

// Collapsed reports whether parallel edges were merged at build time.
func (n *Network) Collapsed() bool {
	return n.collapse
}

// Cities returns a copy of the sorted city list.
func (n *Network) Cities() []routes.City {
	out := make([]routes.City, len(n.cities))
	copy(out, n.cities)

	return out
}

// City returns the name of city i, or "" if i is out of range.
func (n *Network) City(i int) routes.City {
	if i < 0 || i >= len(n.cities) {
		return ""
	}

	return n.cities[i]
}

// Index returns the index of the named city.
func (n *Network) Index(name routes.City) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return i, nil
}

// Neighbors returns the edges leaving city i. The slice is shared; callers
// must not modify it.
func (n *Network) Neighbors(i int) ([]Edge, error) {
	if i < 0 || i >= len(n.adj) {
		return nil, fmt.Errorf("%w: %d", ErrBadIndex, i)
	}

	return n.adj[i], nil
}

// Degree returns the number of edges leaving city i (parallel edges counted).
func (n *Network) Degree(i int) int {
	if i < 0 || i >= len(n.adj) {
		return 0
	}

	return len(n.adj[i])
}

// Edges returns each connected city pair once as an EdgeRef with U < V and
// the minimum length among parallel edges, sorted by (U, V).
//
// Complexity: O(E log E).
func (n *Network) Edges() []EdgeRef {
	best := make(map[[2]int]int)
	var (
		u int
		e Edge
	)
	for u = range n.adj {
		for _, e = range n.adj[u] {
			if e.To <= u {
				continue
			}
			k := [2]int{u, e.To}
			if l, ok := best[k]; !ok || e.Length < l {
				best[k] = e.Length
			}
		}
	}
	out := make([]EdgeRef, 0, len(best))
	for k, l := range best {
		out = append(out, EdgeRef{U: k[0], V: k[1], Length: l})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// PairOf returns the canonical pair key of cities u and v.
func (n *Network) PairOf(u, v int) routes.Pair {
	return routes.NewPair(n.City(u), n.City(v))
}

// Pair returns the canonical pair key of an EdgeRef.
func (n *Network) Pair(e EdgeRef) routes.Pair {
	return n.PairOf(e.U, e.V)
}

// Length returns the minimum length of the edges joining u and v and
// whether any edge joins them.
func (n *Network) Length(u, v int) (int, bool) {
	if u < 0 || u >= len(n.adj) {
		return 0, false
	}
	best, found := 0, false
	for _, e := range n.adj[u] {
		if e.To != v {
			continue
		}
		if !found || e.Length < best {
			best, found = e.Length, true
		}
	}

	return best, found
}
