// SPDX-License-Identifier: MIT
// Package: ticketrail/builder
//
// api.go — the Build orchestrator and the shared route emitter.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ticketrail/routes"
)

// Constructor appends routes for one topology to a board. Constructors
// validate their parameters first and return sentinel errors; they never
// panic.
type Constructor func(b *board, cfg builderConfig) error

// board accumulates generated routes.
type board struct {
	routes []routes.Route
}

// Build resolves options and runs the constructor, returning the generated
// route list.
//
// Errors are wrapped as "Build: %w"; branch with errors.Is against the
// package sentinels.
func Build(cons Constructor, opts ...BuilderOption) ([]routes.Route, error) {
	if cons == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	b := &board{}
	if err := cons(b, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return b.routes, nil
}

// emit appends the route i–j and, with probability cfg.doubleProb, a
// parallel twin of the same length in another color.
func (b *board) emit(method string, cfg builderConfig, i, j int) error {
	length := cfg.lengthFn(cfg.rng)
	if length < 1 {
		return wrapf(method, "length %d for %d–%d", ErrConstructFailed, length, i, j)
	}
	color := cfg.color(len(b.routes))
	r := routes.Route{From: cfg.nameFn(i), To: cfg.nameFn(j), Length: length, Color: color}
	if r.From == r.To {
		return wrapf(method, "name scheme maps %d and %d to %q", ErrConstructFailed, i, j, r.From)
	}
	b.routes = append(b.routes, r)

	double, err := cfg.chance(method, cfg.doubleProb)
	if err != nil {
		return err
	}
	if double {
		twin := r
		twin.Color = cfg.color(len(b.routes))
		b.routes = append(b.routes, twin)
	}

	return nil
}

// color picks a palette color, randomly when an RNG is configured.
func (c builderConfig) color(k int) string {
	if c.rng != nil {
		return palette[c.rng.Intn(len(palette))]
	}

	return palette[k%len(palette)]
}

// chance draws a Bernoulli(p) outcome; 0 and 1 need no RNG.
func (c builderConfig) chance(method string, p float64) (bool, error) {
	switch {
	case p <= 0:
		return false, nil
	case p >= 1:
		return true, nil
	case c.rng == nil:
		return false, wrapf(method, "p=%.3f", ErrNeedRandSource, p)
	}

	return c.rng.Float64() < p, nil
}
