// SPDX-License-Identifier: MIT
// Package: ticketrail/builder
//
// impl_grid.go — rows×cols 4-neighborhood grid.
//
// City (r,c) has index r*cols+c. Edges are emitted row-major: for each city
// the right neighbor first, then the one below.

package builder

const (
	methodGrid    = "Grid"
	minGridSide   = 1
	minGridCities = 2
)

// Grid builds a rows×cols grid board.
func Grid(rows, cols int) Constructor {
	return func(b *board, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return wrapf(methodGrid, "rows=%d cols=%d < min=%d", ErrTooFewCities, rows, cols, minGridSide)
		}
		if rows*cols < minGridCities {
			return wrapf(methodGrid, "%d cities < min=%d", ErrTooFewCities, rows*cols, minGridCities)
		}
		var r, c, id int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = r*cols + c
				if c+1 < cols {
					if err := b.emit(methodGrid, cfg, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := b.emit(methodGrid, cfg, id, id+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
