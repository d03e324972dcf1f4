// SPDX-License-Identifier: MIT
// Package builder generates synthetic board maps as route lists.
//
// Real maps come from package mapdata; builder produces small, fully
// controlled boards for tests, examples and the "generated" map of the CLI.
// Every generator is a Constructor closure applied by Build, which resolves
// functional options into an immutable builderConfig first.
//
// Generators:
//
//	Path(n)            – C0–C1–…–C(n-1)            (n ≥ 2)
//	Cycle(n)           – path plus C(n-1)–C0        (n ≥ 3)
//	Star(n)            – hub C0 joined to n-1 leaves (n ≥ 2)
//	Complete(n)        – every pair joined           (n ≥ 2)
//	Grid(rows, cols)   – 4-neighborhood grid, row-major names (rows,cols ≥ 1, ≥ 2 cities)
//	RandomSparse(n, p) – each pair joined with probability p (n ≥ 2)
//
// Options:
//
//	WithSeed / WithRand  – RNG for stochastic choices (lengths, colors, doubles).
//	WithNameScheme(fn)   – index → city name (default "C00", "C01", …).
//	WithLengthFn(fn)     – route length generator (default constant 2).
//	WithDoubleProb(p)    – probability that a route gets a parallel twin.
//
// Determinism: same constructor, options and seed ⇒ identical route lists.
// Validation errors are sentinels (ErrTooFewCities, ErrInvalidProbability,
// ErrNeedRandSource); option constructors panic on meaningless arguments.
package builder
