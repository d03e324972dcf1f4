// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Structural validation of route lists at the ingestion boundary.

package routes

import (
	"errors"
	"fmt"
)

// ErrInvalidRoute indicates a route that cannot be part of a board.
var ErrInvalidRoute = errors.New("routes: invalid route")

// ErrNoRoutes indicates an empty route list.
var ErrNoRoutes = errors.New("routes: route list is empty")

// Validate checks that rs is non-empty and that every route joins two
// distinct, non-empty city names with a positive length and a non-negative
// joker count. The first offending route is reported with its position.
func Validate(rs []Route) error {
	if len(rs) == 0 {
		return ErrNoRoutes
	}
	for i, r := range rs {
		switch {
		case r.From == "" || r.To == "":
			return fmt.Errorf("%w: #%d has an empty city name", ErrInvalidRoute, i)
		case r.From == r.To:
			return fmt.Errorf("%w: #%d joins %q to itself", ErrInvalidRoute, i, r.From)
		case r.Length <= 0:
			return fmt.Errorf("%w: #%d %s has length %d", ErrInvalidRoute, i, r.Key(), r.Length)
		case r.Joker < 0:
			return fmt.Errorf("%w: #%d %s has joker %d", ErrInvalidRoute, i, r.Key(), r.Joker)
		}
	}

	return nil
}

// Normalize returns a copy of rs with every route oriented alphabetically
// (From < To).
func Normalize(rs []Route) []Route {
	out := make([]Route, len(rs))
	for i, r := range rs {
		if r.From > r.To {
			r.From, r.To = r.To, r.From
		}
		out[i] = r
	}

	return out
}
