// SPDX-License-Identifier: MIT
// File: types.go
// Role: Route record, City name, order-independent Pair key and PairSet.

package routes

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pair parsing.
var (
	// ErrBadPair indicates a string that is not of the form "A – B".
	ErrBadPair = errors.New("routes: malformed city pair")

	// ErrSameCity indicates a pair whose two cities are equal.
	ErrSameCity = errors.New("routes: pair joins a city to itself")
)

// pairSeparator is the dash placed between the two cities of a rendered pair.
const pairSeparator = "–"

// City is a city name. Its identity is the name itself.
type City = string

// Route is one raw track of a board map.
//
// Orientation of From/To is not meaningful; use Key() to compare routes.
type Route struct {
	From   City   `json:"from"`
	To     City   `json:"to"`
	Length int    `json:"length"`
	Color  string `json:"color"`
	Joker  int    `json:"joker"`
	Tunnel bool   `json:"tunnel"`
}

// Key returns the canonical pair key of the route.
func (r Route) Key() Pair {
	return NewPair(r.From, r.To)
}

// Pair is the canonical, order-independent key of two cities.
// A is always lexicographically smaller than B.
type Pair struct {
	A City
	B City
}

// NewPair returns the pair of x and y in canonical (alphabetical) order.
func NewPair(x, y City) Pair {
	if x > y {
		x, y = y, x
	}

	return Pair{A: x, B: y}
}

// String renders the pair as "A – B".
func (p Pair) String() string {
	return p.A + " " + pairSeparator + " " + p.B
}

// Has reports whether c is one of the two cities of the pair.
func (p Pair) Has(c City) bool {
	return p.A == c || p.B == c
}

// IsZero reports whether the pair is the zero value.
func (p Pair) IsZero() bool {
	return p.A == "" && p.B == ""
}

// ParsePair parses a rendered "A – B" pair. Surrounding blanks are trimmed
// and the result is canonicalized, so "B – A" parses to the same key.
func ParsePair(s string) (Pair, error) {
	center := strings.Index(s, pairSeparator)
	if center < 0 {
		return Pair{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	from := strings.TrimSpace(s[:center])
	to := strings.TrimSpace(s[center+len(pairSeparator):])
	if from == "" || to == "" {
		return Pair{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	if from == to {
		return Pair{}, fmt.Errorf("%w: %q", ErrSameCity, s)
	}

	return NewPair(from, to), nil
}

// MarshalText encodes the pair in its rendered form.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a rendered pair.
func (p *Pair) UnmarshalText(text []byte) error {
	parsed, err := ParsePair(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// PairSet is a membership set of pair keys.
type PairSet map[Pair]struct{}

// NewPairSet builds a set from any number of pair lists.
func NewPairSet(lists ...[]Pair) PairSet {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	s := make(PairSet, size)
	for _, l := range lists {
		s.Add(l...)
	}

	return s
}

// Add inserts pairs into the set.
func (s PairSet) Add(ps ...Pair) {
	for _, p := range ps {
		s[p] = struct{}{}
	}
}

// Has reports membership.
func (s PairSet) Has(p Pair) bool {
	_, ok := s[p]

	return ok
}
