// SPDX-License-Identifier: MIT
// Package: ticketrail/builder
//
// impl_random_sparse.go — Erdős–Rényi-like random board.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewCities).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (else ErrNeedRandSource).
//   - Pairs are tried in order i asc, j asc (j > i).
//   - Isolated cities do not appear in the result: a city exists only
//     through its routes.

package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
)

// RandomSparse joins each pair of n cities independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *board, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return wrapf(methodRandomSparse, "n=%d < min=%d", ErrTooFewCities, n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return wrapf(methodRandomSparse, "p=%.6f not in [0,1]", ErrInvalidProbability, p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return wrapf(methodRandomSparse, "p=%.6f", ErrNeedRandSource, p)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				hit, err := cfg.chance(methodRandomSparse, p)
				if err != nil {
					return err
				}
				if !hit {
					continue
				}
				if err = b.emit(methodRandomSparse, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
