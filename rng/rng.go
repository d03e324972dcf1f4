// SPDX-License-Identifier: MIT
// Package rng centralizes deterministic random generation for ticket draws,
// neutral-player strategies and turn skipping.
//
// Goals:
//   - Determinism: same seed ⇒ identical tickets, strategy queues and skips.
//   - Injection: every consumer receives a *rand.Rand; no hidden time seeds.
//   - Performance: O(1) helpers, O(n) shuffles, no hidden allocations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The game engine is single-actor,
//     so one stream per Machine is enough; use Derive for independent streams.
package rng

import (
	"math/rand"
	"time"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// FromClock returns a stream seeded from the wall clock, for interactive
// sessions where reproducibility is not wanted.
func FromClock() *rand.Rand {
	return FromSeed(time.Now().UnixNano())
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream
// identifier. base.Int63() is consumed once; base==nil uses DefaultSeed.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// If r==nil, a DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](r *rand.Rand, a []T) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a shuffled permutation of 0..n-1 (empty for n<=0).
//
// Complexity: O(n).
func Perm(r *rand.Rand, n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(r, p)

	return p
}

// Chance reports true with probability p (clamped to [0,1]).
func Chance(r *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	if r == nil {
		r = FromSeed(0)
	}

	return r.Float64() < p
}
