package grid

import "errors"

var (
	// ErrInvalidDimensions indicates height or width is not strictly positive.
	ErrInvalidDimensions = errors.New("grid: height and width must be strictly positive")
)
