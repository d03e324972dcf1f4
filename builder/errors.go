// SPDX-License-Identifier: MIT
// Package: ticketrail/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCities indicates that a size parameter is below the minimum of
// the requested generator.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic choice was requested without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an inconsistent result.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches the generator name to an error.
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
