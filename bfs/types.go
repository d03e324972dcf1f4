// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth‐first search over a network.Network.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCityNotFound is returned when the start index is out of range.
	ErrStartCityNotFound = errors.New("bfs: start city not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (a nil hook) is recorded and surfaced as
// ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a city is enqueued, before visiting.
	OnEnqueue func(id, depth int)

	// OnVisit is called when visiting a city. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// OnEdge is called for every edge from→to leaving a visited city;
	// depth is the depth of from. Parallel edges are reported once per edge.
	OnEdge func(from, to, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		OnEdge:    func(int, int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnEnqueue hook", ErrOptionViolation)
			return
		}
		o.OnEnqueue = fn
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnVisit hook", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// WithOnEdge registers a callback for every examined edge.
func WithOnEdge(fn func(from, to, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnEdge hook", ErrOptionViolation)
			return
		}
		o.OnEdge = fn
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order is the visit sequence (city indexes).
	Order []int
}
