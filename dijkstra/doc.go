// SPDX-License-Identifier: MIT
// Package dijkstra computes shortest route distances between cities of a
// network.Network.
//
// The board graphs are small (tens of cities), so the implementation is the
// plain array form of Dijkstra's algorithm: a visited[] and a dist[] slice,
// and at every step a linear scan for the unvisited city with the smallest
// tentative distance. No priority queue is needed at this scale.
//
// Tie-break:
//
//	When several unvisited cities share the minimum tentative distance, the
//	one with the LOWEST index (alphabetically first city) is taken. Only the
//	distance is part of the public contract of Distance; Path returns the
//	path produced by this tie-break.
//
// Complexity:
//
//   - Time:  O(C² + E)
//   - Space: O(C)
//
// Options:
//
//	– Source(name)      starting city (required).
//	– Target(name)      stop as soon as this city is finalized.
//	– WithReturnPath()  also return the predecessor slice.
//
// Unreachable cities keep distance Infinity (math.MaxInt64). Callers that
// need a concrete number must reject Infinity themselves (see tickets).
//
// Errors (sentinel):
//
//	– ErrEmptySource   no Source option was given.
//	– ErrNilGraph      the network pointer is nil.
//	– ErrUnknownCity   Source or Target is not a city of the network
//	                   (wraps network.ErrUnknownCity).
//	– ErrNegativeWeight an edge carries a negative length.
//	– ErrUnreachable   Path was asked for two disconnected cities.
//
// Example usage:
//
//	d, err := dijkstra.Distance(full, "Wien", "Berlin")
//	if err != nil {
//	    return err
//	}
//	if d == dijkstra.Infinity {
//	    // not connected
//	}
package dijkstra
