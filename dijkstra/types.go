// SPDX-License-Identifier: MIT
// File: types.go
// Role: sentinel errors, Infinity, Options and functional options.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ticketrail/network"
)

// Infinity is the distance of an unreachable city.
const Infinity int64 = math.MaxInt64

// noCity marks an absent index (no target, no predecessor).
const noCity = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source city was provided.
	ErrEmptySource = errors.New("dijkstra: source city is empty")

	// ErrNilGraph indicates that a nil *network.Network was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownCity indicates a source or target absent from the graph.
	ErrUnknownCity = fmt.Errorf("dijkstra: %w", network.ErrUnknownCity)

	// ErrNegativeWeight indicates an edge with negative length.
	ErrNegativeWeight = errors.New("dijkstra: negative edge length encountered")

	// ErrUnreachable indicates that no path joins the two cities.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Options configures one Dijkstra run.
//
// Source     – starting city name (must be non-empty and present).
// Target     – optional city name; the run stops once it is finalized.
// ReturnPath – if true, the predecessor slice is returned.
type Options struct {
	Source     string
	Target     string
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting city.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// Target sets a city at which the scan may stop early.
func Target(name string) Option {
	return func(o *Options) {
		o.Target = name
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options for the given source with no target and no
// predecessor slice.
func DefaultOptions(source string) Options {
	return Options{
		Source:     source,
		Target:     "",
		ReturnPath: false,
	}
}
