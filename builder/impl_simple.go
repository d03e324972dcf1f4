// SPDX-License-Identifier: MIT
// Package: ticketrail/builder
//
// impl_simple.go — Path, Cycle, Star and Complete generators.
//
// Edge order is stable: ascending i, then ascending j.

package builder

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathCities     = 2
	minCycleCities    = 3
	minStarCities     = 2
	minCompleteCities = 2
)

// Path joins C0–C1–…–C(n-1).
func Path(n int) Constructor {
	return func(b *board, cfg builderConfig) error {
		if n < minPathCities {
			return wrapf(methodPath, "n=%d < min=%d", ErrTooFewCities, n, minPathCities)
		}
		for i := 0; i+1 < n; i++ {
			if err := b.emit(methodPath, cfg, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle is Path(n) closed by C(n-1)–C0.
func Cycle(n int) Constructor {
	return func(b *board, cfg builderConfig) error {
		if n < minCycleCities {
			return wrapf(methodCycle, "n=%d < min=%d", ErrTooFewCities, n, minCycleCities)
		}
		for i := 0; i < n; i++ {
			if err := b.emit(methodCycle, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star joins hub C0 to every other city.
func Star(n int) Constructor {
	return func(b *board, cfg builderConfig) error {
		if n < minStarCities {
			return wrapf(methodStar, "n=%d < min=%d", ErrTooFewCities, n, minStarCities)
		}
		for i := 1; i < n; i++ {
			if err := b.emit(methodStar, cfg, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete joins every pair of n cities.
func Complete(n int) Constructor {
	return func(b *board, cfg builderConfig) error {
		if n < minCompleteCities {
			return wrapf(methodComplete, "n=%d < min=%d", ErrTooFewCities, n, minCompleteCities)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.emit(methodComplete, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
