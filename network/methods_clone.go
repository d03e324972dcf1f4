// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy and in-place weight changes for private working copies.
// Concurrency:
//   - A Network shared through a Snapshot is read-only; mutate clones only.

package network

import "fmt"

// Clone returns a deep copy of the network: cities, index and adjacency.
// The copy shares no slices with n, so SetLength on the clone leaves n intact.
//
// Complexity: O(C + E).
func (n *Network) Clone() *Network {
	clone := newNetwork(n.Cities())
	clone.collapse = n.collapse
	for i := range n.adj {
		clone.adj[i] = make([]Edge, len(n.adj[i]))
		copy(clone.adj[i], n.adj[i])
	}

	return clone
}

// SetLength sets the length of every edge joining u and v, in both
// directions. It returns ErrBadIndex for invalid indexes; when u and v are
// not adjacent nothing changes.
func (n *Network) SetLength(u, v, length int) error {
	if u < 0 || u >= len(n.adj) {
		return fmt.Errorf("%w: %d", ErrBadIndex, u)
	}
	if v < 0 || v >= len(n.adj) {
		return fmt.Errorf("%w: %d", ErrBadIndex, v)
	}
	for i := range n.adj[u] {
		if n.adj[u][i].To == v {
			n.adj[u][i].Length = length
		}
	}
	for i := range n.adj[v] {
		if n.adj[v][i].To == u {
			n.adj[v][i].Length = length
		}
	}

	return nil
}
