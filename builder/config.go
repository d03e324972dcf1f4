// SPDX-License-Identifier: MIT
// Package: ticketrail/builder
//
// config.go — builder configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • nameFn     = "C%02d"
//   • rng        = nil (no randomness)
//   • lengthFn   = constant defaultLength
//   • doubleProb = 0

package builder

import (
	"fmt"
	"math/rand"
)

const (
	defaultLength     = 2
	defaultDoubleProb = 0.0
)

// palette is the set of track colors handed out to generated routes.
var palette = []string{"red", "blue", "green", "yellow", "black", "white", "orange", "pink", "gray"}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	nameFn     func(int) string
	rng        *rand.Rand
	lengthFn   func(*rand.Rand) int
	doubleProb float64
}

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies options over deterministic defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:     defaultName,
		rng:        nil,
		lengthFn:   func(*rand.Rand) int { return defaultLength },
		doubleProb: defaultDoubleProb,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultName renders index i as "C00", "C01", …; zero padding keeps
// alphabetical order equal to index order below 100 cities.
func defaultName(i int) string {
	return fmt.Sprintf("C%02d", i)
}

// WithNameScheme sets the index → city name function. Panics on nil.
func WithNameScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLengthFn overrides the route length generator. Generated lengths must
// be positive. Panics on nil.
func WithLengthFn(fn func(*rand.Rand) int) BuilderOption {
	if fn == nil {
		panic("builder: WithLengthFn(nil)")
	}
	return func(c *builderConfig) { c.lengthFn = fn }
}

// WithDoubleProb sets the probability that a route gets a parallel twin.
// Panics outside [0,1].
func WithDoubleProb(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithDoubleProb(p∉[0,1])")
	}
	return func(c *builderConfig) { c.doubleProb = p }
}

// UniformLength returns a length generator drawing uniformly from
// [lo, hi]. It falls back to lo when the RNG is nil. Panics unless
// 1 ≤ lo ≤ hi.
func UniformLength(lo, hi int) func(*rand.Rand) int {
	if lo < 1 || hi < lo {
		panic("builder: UniformLength needs 1 ≤ lo ≤ hi")
	}
	return func(r *rand.Rand) int {
		if r == nil || hi == lo {
			return lo
		}
		return lo + r.Intn(hi-lo+1)
	}
}
