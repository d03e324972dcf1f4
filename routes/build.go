// SPDX-License-Identifier: MIT
// File: build.go
// Role: Derived indexes over a route list: cities, neighbor keys, double neighbor keys.
// Determinism:
//   - Cities() is sorted; key lists keep first-seen order.

package routes

import "sort"

// doubleThreshold is the number of parallel routes that makes a pair a
// "double neighbor". Three or more parallel routes also count.
const doubleThreshold = 2

// Cities returns every From/To value of rs, deduplicated and sorted.
//
// Complexity: O(R + C log C).
func Cities(rs []Route) []City {
	seen := make(map[City]struct{}, len(rs))
	out := make([]City, 0, len(rs))
	for _, r := range rs {
		for _, c := range [2]City{r.From, r.To} {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Strings(out)

	return out
}

// NeighborKeys returns the pair key of every route, each key once, in
// first-seen order.
//
// Complexity: O(R).
func NeighborKeys(rs []Route) []Pair {
	seen := make(PairSet, len(rs))
	out := make([]Pair, 0, len(rs))
	for _, r := range rs {
		k := r.Key()
		if seen.Has(k) {
			continue
		}
		seen.Add(k)
		out = append(out, k)
	}

	return out
}

// DoubleNeighborKeys returns the keys joined by at least two parallel routes,
// in the order in which each key reached its second route.
//
// Complexity: O(R).
func DoubleNeighborKeys(rs []Route) []Pair {
	counts := make(map[Pair]int, len(rs))
	out := make([]Pair, 0)
	for _, r := range rs {
		k := r.Key()
		counts[k]++
		if counts[k] == doubleThreshold {
			out = append(out, k)
		}
	}

	return out
}

// Count returns the number of parallel routes per pair key.
func Count(rs []Route) map[Pair]int {
	counts := make(map[Pair]int, len(rs))
	for _, r := range rs {
		counts[r.Key()]++
	}

	return counts
}

// ShortestLength returns the minimum length among the routes joining p,
// or 0 if no route joins p.
func ShortestLength(rs []Route, p Pair) int {
	best := 0
	for _, r := range rs {
		if r.Key() != p {
			continue
		}
		if best == 0 || r.Length < best {
			best = r.Length
		}
	}

	return best
}
