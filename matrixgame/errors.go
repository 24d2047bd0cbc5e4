package matrixgame

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMatrix is returned when a matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("matrixgame: matrix must have at least one row and one column")

	// ErrBadDimensions is returned for a requested shape with m <= 0 or n <= 0.
	ErrBadDimensions = errors.New("matrixgame: dimensions must be > 0")

	// ErrStrategyLength is returned when a mixed strategy does not match
	// the number of rows or columns it is applied to.
	ErrStrategyLength = errors.New("matrixgame: strategy length does not match matrix")
)

// RowLengthError reports a row with the wrong number of entries.
type RowLengthError struct {
	Row      int
	Expected int
	Got      int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("matrixgame: row %d: expected %d entries, got %d",
		e.Row, e.Expected, e.Got)
}

// EntryError reports a payoff that could not be parsed as a rational.
type EntryError struct {
	Row, Col int
	Text     string
	Err      error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("matrixgame: row %d, column %d: invalid entry %q: %v",
		e.Row, e.Col, e.Text, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
