package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrNegativeCellCount is returned when an explicit cell count is negative.
	ErrNegativeCellCount = errors.New("grid: cell count must not be negative")

	// ErrInvalidCellSize is returned for negative cell dimensions.
	ErrInvalidCellSize = errors.New("grid: cell size must not be negative")
)
