package neighborhood

import (
	"fmt"

	"github.com/katalvlaran/gridhood/core"
)

// Option configures a calculation via functional arguments.
// If an Option is invalid (e.g. a negative expected size), it is
// recorded internally and surfaced as ErrOptionViolation when Cells or
// Count is invoked.
type Option func(*calcOptions)

// calcOptions holds parameters and callbacks for one calculation.
type calcOptions struct {
	// onCell is called once per cell newly added to the result set,
	// in insertion order, on both the general and saturation paths.
	onCell func(core.Position)

	// expectedCells pre-sizes the result set when > 0.
	expectedCells int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns calcOptions with sane defaults:
//   - no-op OnCell hook
//   - automatic result-set sizing (expectedCells == 0)
//   - error channel clear.
func defaultOptions() calcOptions {
	return calcOptions{
		onCell:        func(core.Position) {},
		expectedCells: 0,
		err:           nil,
	}
}

// WithOnCell registers a callback invoked once for each distinct cell
// as it enters the result set.
func WithOnCell(fn func(core.Position)) Option {
	return func(o *calcOptions) {
		if fn != nil {
			o.onCell = fn
		}
	}
}

// WithExpectedCells pre-sizes the result set for n cells.
//
//	n > 0: reserve capacity for n cells
//	n == 0: explicit automatic sizing
//	n < 0: invalid option → ErrOptionViolation
func WithExpectedCells(n int) Option {
	return func(o *calcOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: ExpectedCells cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "size automatically"
			o.expectedCells = 0
		default:
			o.expectedCells = n
		}
	}
}
