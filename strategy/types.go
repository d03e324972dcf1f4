// SPDX-License-Identifier: MIT
// File: types.go
// Role: Kind and GraphKind enums, Entry, Options and sentinel errors.

package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/ticketrail/routes"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *network.Network.
	ErrNilGraph = errors.New("strategy: graph is nil")

	// ErrUnknownKind indicates a strategy name or value that does not exist.
	ErrUnknownKind = errors.New("strategy: unknown strategy")

	// ErrUnknownGraph indicates a graph selector that does not exist.
	ErrUnknownGraph = errors.New("strategy: unknown graph kind")

	// ErrNoBuildableRoute indicates that no queued entry satisfies the
	// caller's predicate (or the queue is empty).
	ErrNoBuildableRoute = errors.New("strategy: no buildable route")
)

// Kind selects a strategy algorithm.
type Kind int

const (
	Random Kind = iota
	BFS
	Walk
	Fill
	Increment
	Star
	Lines
	LinesOpt
)

var kindNames = [...]string{"random", "bfs", "walk", "fill", "increment", "star", "lines", "linesopt"}

// Kinds returns every strategy in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// Valid reports whether k names a strategy.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// String returns the lower-case name of the strategy.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind parses a strategy name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return Random, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Pick returns a uniformly random strategy.
func Pick(r *rand.Rand) Kind {
	return Kind(r.Intn(len(kindNames)))
}

// GraphKind selects the graph a strategy runs on.
type GraphKind int

const (
	// Restricted is the double-track graph (parallel routes only).
	Restricted GraphKind = iota
	// Full is the graph of every route.
	Full
)

var graphNames = [...]string{"restricted", "full"}

// String returns "restricted" or "full".
func (g GraphKind) String() string {
	if g < 0 || int(g) >= len(graphNames) {
		return fmt.Sprintf("GraphKind(%d)", int(g))
	}

	return graphNames[g]
}

// ParseGraphKind parses "restricted"/"double" or "full" (case-insensitive).
func ParseGraphKind(s string) (GraphKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restricted", "double", "":
		return Restricted, nil
	case "full":
		return Full, nil
	}

	return Restricted, fmt.Errorf("%w: %q", ErrUnknownGraph, s)
}

// MarshalText implements encoding.TextMarshaler.
func (g GraphKind) MarshalText() ([]byte, error) {
	if g < 0 || int(g) >= len(graphNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGraph, int(g))
	}

	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GraphKind) UnmarshalText(text []byte) error {
	parsed, err := ParseGraphKind(string(text))
	if err != nil {
		return err
	}
	*g = parsed

	return nil
}

// Entry is one candidate track: a pair key and the number of cars it needs.
type Entry struct {
	Pair   routes.Pair `json:"pair"`
	Length int         `json:"length"`
}

// LineBudgetFactor scales the car budget into the Lines length budget.
const LineBudgetFactor = 1.2

// DefaultCarBudget is the car budget assumed when none is given.
const DefaultCarBudget = 45

// Options configures Generate.
//
// CarBudget  – cars of the neutral player; Lines stops past 1.2× this.
// AttemptCap – draws Lines may make that add no new track; 0 means
//              "number of tracks".
type Options struct {
	CarBudget  int
	AttemptCap int
}

// Option is a functional option for Generate.
type Option func(*Options)

// DefaultOptions returns DefaultCarBudget and the automatic attempt cap.
func DefaultOptions() Options {
	return Options{CarBudget: DefaultCarBudget, AttemptCap: 0}
}

// WithCarBudget sets the car budget. Panics on n < 0.
func WithCarBudget(n int) Option {
	if n < 0 {
		panic("strategy: WithCarBudget(n<0)")
	}
	return func(o *Options) { o.CarBudget = n }
}

// WithAttemptCap sets how many fruitless draws Lines tolerates.
// Panics on n <= 0.
func WithAttemptCap(n int) Option {
	if n <= 0 {
		panic("strategy: WithAttemptCap(n<=0)")
	}
	return func(o *Options) { o.AttemptCap = n }
}
