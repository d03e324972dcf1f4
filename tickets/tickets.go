// SPDX-License-Identifier: MIT
// Package tickets deals random city-pair tickets.
//
// A ticket is an objective "connect city A with city B", scored by the
// shortest-path distance between the two cities over the full graph. Draw
// picks distinct random pairs of distinct cities while avoiding a caller
// supplied set of keys; the game passes every existing direct route and
// every already committed ticket, so an offer is never for a pair that a
// single route already joins nor for a pair the player already holds.
//
// Random draws are retried up to a fixed budget (WithMaxAttempts). On a
// small or nearly exhausted board the exclusion set may make the request
// impossible; Draw then fails with ErrNotEnoughTickets instead of looping
// forever. Pairs that are not connected at all (distance Infinity) are
// rejected like excluded ones.
package tickets

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ticketrail/dijkstra"
	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/rng"
)

// DefaultMaxAttempts is the default number of random pair draws per Draw call.
const DefaultMaxAttempts = 1000

// Sentinel errors.
var (
	// ErrNotEnoughTickets indicates the retry budget ran out before enough
	// acceptable pairs were found.
	ErrNotEnoughTickets = errors.New("tickets: not enough distinct tickets")

	// ErrTooFewCities indicates a graph with fewer than two cities.
	ErrTooFewCities = errors.New("tickets: graph needs at least two cities")
)

// Keep is the tri-state keep flag of an offered ticket.
type Keep int

const (
	// KeepUnset means the player has not decided yet.
	KeepUnset Keep = iota
	// KeepYes marks a ticket the player keeps.
	KeepYes
	// KeepNo marks a ticket the player discards.
	KeepNo
)

// Toggle returns the next flag: a kept ticket becomes discarded, anything
// else becomes kept.
func (k Keep) Toggle() Keep {
	if k == KeepYes {
		return KeepNo
	}

	return KeepYes
}

// String returns a short label.
func (k Keep) String() string {
	switch k {
	case KeepYes:
		return "keep"
	case KeepNo:
		return "discard"
	default:
		return "undecided"
	}
}

// Ticket is one offered city pair with its distance.
type Ticket struct {
	Pair     routes.Pair `json:"pair"`
	Distance int         `json:"distance"`
	Keep     Keep        `json:"keep"`
}

// String renders "A – B 12".
func (t Ticket) String() string {
	return fmt.Sprintf("%s %d", t.Pair, t.Distance)
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts sets the number of random draws allowed per Draw call.
// Panics on n <= 0.
func WithMaxAttempts(n int) Option {
	if n <= 0 {
		panic("tickets: WithMaxAttempts(n<=0)")
	}
	return func(g *Generator) { g.maxAttempts = n }
}

// Generator draws tickets over one full graph.
type Generator struct {
	full        *network.Network
	r           *rand.Rand
	maxAttempts int
}

// NewGenerator returns a Generator over full using random stream r
// (nil ⇒ rng.FromSeed(0)).
func NewGenerator(full *network.Network, r *rand.Rand, opts ...Option) *Generator {
	if r == nil {
		r = rng.FromSeed(0)
	}
	g := &Generator{full: full, r: r, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RandomPair returns a random pair of two distinct cities.
func (g *Generator) RandomPair() (routes.Pair, error) {
	n := g.full.Len()
	if n < 2 {
		return routes.Pair{}, ErrTooFewCities
	}
	a := g.r.Intn(n)
	b := g.r.Intn(n - 1)
	if b >= a {
		b++
	}

	return g.full.PairOf(a, b), nil
}

// Draw returns count distinct tickets whose pairs are not in avoid and whose
// cities are connected. Distances are full-graph shortest paths.
//
// Complexity: O(attempts · (C² + E)) in the worst case.
func (g *Generator) Draw(count int, avoid routes.PairSet) ([]Ticket, error) {
	if g.full == nil || g.full.Len() < 2 {
		return nil, ErrTooFewCities
	}
	out := make([]Ticket, 0, count)
	chosen := make(routes.PairSet, count)

	for attempt := 0; len(out) < count; attempt++ {
		if attempt >= g.maxAttempts {
			return nil, fmt.Errorf("%w: found %d of %d after %d draws",
				ErrNotEnoughTickets, len(out), count, g.maxAttempts)
		}
		p, err := g.RandomPair()
		if err != nil {
			return nil, err
		}
		if chosen.Has(p) || avoid.Has(p) {
			continue
		}
		d, err := dijkstra.Distance(g.full, p.A, p.B)
		if err != nil {
			return nil, err
		}
		if d == dijkstra.Infinity {
			continue
		}
		chosen.Add(p)
		out = append(out, Ticket{Pair: p, Distance: int(d), Keep: KeepUnset})
	}

	return out, nil
}
