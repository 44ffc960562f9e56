package neighborhood

import "errors"

// Sentinel errors for neighborhood calculations. A nil or degenerate
// grid is reported as grid.ErrInvalidDimensions, matching the
// construction-time sentinel.
var (
	// ErrNegativeThreshold is returned when the distance threshold is below zero.
	ErrNegativeThreshold = errors.New("neighborhood: distance threshold must be non-negative")

	// ErrPositionOutOfBounds is returned when a stored positive cell lies
	// outside the grid's bounds.
	ErrPositionOutOfBounds = errors.New("neighborhood: positive cell outside grid bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("neighborhood: invalid option supplied")
)
