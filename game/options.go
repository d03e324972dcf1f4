// SPDX-License-Identifier: MIT
// File: options.go
// Role: Machine options, defaults and the Store contract.

package game

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ticketrail/rng"
	"github.com/katalvlaran/ticketrail/tickets"
)

// TicketOffer is the number of tickets drawn per request.
const TicketOffer = 3

// DefaultSkipChance is the probability that a neutral turn yields nothing
// once any route has been built.
const DefaultSkipChance = 0.2

// Store persists one encoded save blob.
//
// Load must return an error when no save exists; Clear on a missing save
// is not an error.
type Store interface {
	Save(blob []byte) error
	Load() ([]byte, error)
	Clear() error
}

// Options configures a Machine.
type Options struct {
	Rand           *rand.Rand
	Store          Store
	Logger         logrus.FieldLogger
	SkipChance     float64
	TicketAttempts int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a default-seeded RNG, no store, a discarding
// logger, DefaultSkipChance and tickets.DefaultMaxAttempts.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Rand:           rng.FromSeed(0),
		Store:          nil,
		Logger:         silent,
		SkipChance:     DefaultSkipChance,
		TicketAttempts: tickets.DefaultMaxAttempts,
	}
}

// WithRand injects the random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("game: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed uses rng.FromSeed(seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithStore enables persistence. Panics on nil.
func WithStore(s Store) Option {
	if s == nil {
		panic("game: WithStore(nil)")
	}
	return func(o *Options) { o.Store = s }
}

// WithLogger sets the transition logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("game: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithSkipChance sets the neutral skip probability. Panics outside [0,1].
func WithSkipChance(p float64) Option {
	if p < 0 || p > 1 {
		panic("game: WithSkipChance(p∉[0,1])")
	}
	return func(o *Options) { o.SkipChance = p }
}

// WithTicketAttempts sets the random draw budget per ticket request.
// Panics on n <= 0.
func WithTicketAttempts(n int) Option {
	if n <= 0 {
		panic("game: WithTicketAttempts(n<=0)")
	}
	return func(o *Options) { o.TicketAttempts = n }
}
