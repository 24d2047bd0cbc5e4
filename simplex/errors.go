package simplex

import "errors"

var (
	// ErrInvalidDimension is returned when a tableau is requested for a
	// matrix with no rows or no columns.
	ErrInvalidDimension = errors.New("simplex: matrix dimensions must be > 0")

	// ErrUnbounded is returned when the entering column has no positive
	// entry, so the ratio test cannot bound the entering variable.
	ErrUnbounded = errors.New("simplex: unbounded linear program")

	// ErrMalformedTableau is returned by FromRows for grids that do not
	// have the (m+1) x (n+m+1) layout.
	ErrMalformedTableau = errors.New("simplex: malformed tableau")
)
