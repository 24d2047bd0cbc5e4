// Package simplex solves zero-sum matrix games with the simplex method
// over exact rationals.
//
// For an m x n payoff matrix the tableau has m+1 rows and n+m+1 columns:
//
//	columns [0, n)      decision variables, one per column strategy
//	columns [n, n+m)    slack variables, one per row strategy
//	column  n+m         right-hand side
//	row     m           objective row
//
// Payoffs are shifted by a constant k so every entry is at least 1, which
// makes the value of the shifted game strictly positive.
package simplex

import (
	"fmt"
	"strings"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/rational"
)

// Tableau is the working state of the solver.
type Tableau struct {
	m     [][]rational.Rat
	shift rational.Rat
	// Number of decision (column strategy) and constraint (row strategy) variables.
	nStrategies  int
	nConstraints int
}

var minusOne = rational.FromInt(-1)

// Build constructs the initial tableau for the given payoff matrix.
func Build(payoff *matrixgame.PayoffMatrix) (*Tableau, error) {
	if payoff == nil || payoff.Rows() <= 0 || payoff.Cols() <= 0 {
		return nil, ErrInvalidDimension
	}

	m, n := payoff.Rows(), payoff.Cols()
	// Smallest non-negative k with every shifted payoff >= 1.
	k := rational.Max(rational.Zero, rational.One.Sub(payoff.Min()))

	t := newTableau(n, m, k)
	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.Cols(); col++ {
			var v rational.Rat
			switch {
			case col < n:
				if row < m {
					v = payoff.At(row, col).Add(k)
				} else {
					v = minusOne
				}
			case col < n+m:
				if row < m && row == col-n {
					v = rational.One
				}
			default:
				if row < m {
					v = rational.One
				}
			}
			t.m[row][col] = v
		}
	}

	return t, nil
}

// FromRows wraps an explicit grid as a tableau for a game with
// nStrategies decision columns. The grid must have the layout described
// in the package documentation. Mostly useful for tests and for replaying
// a saved tableau.
func FromRows(rows [][]rational.Rat, nStrategies int, shift rational.Rat) (*Tableau, error) {
	nConstraints := len(rows) - 1
	if nStrategies <= 0 || nConstraints <= 0 {
		return nil, ErrInvalidDimension
	}

	t := newTableau(nStrategies, nConstraints, shift)
	for i, row := range rows {
		if len(row) != t.Cols() {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrMalformedTableau, i, len(row), t.Cols())
		}
		copy(t.m[i], row)
	}

	return t, nil
}

func newTableau(nStrategies, nConstraints int, shift rational.Rat) *Tableau {
	t := &Tableau{
		shift:        shift,
		nStrategies:  nStrategies,
		nConstraints: nConstraints,
	}
	t.m = make([][]rational.Rat, t.Rows())
	for i := range t.m {
		t.m[i] = make([]rational.Rat, t.Cols())
	}

	return t
}

// Rows is m+1.
func (t *Tableau) Rows() int { return t.nConstraints + 1 }

// Cols is n+m+1.
func (t *Tableau) Cols() int { return t.nStrategies + t.nConstraints + 1 }

// NumStrategies is n, the number of decision-variable columns.
func (t *Tableau) NumStrategies() int { return t.nStrategies }

// NumConstraints is m, the number of constraint rows.
func (t *Tableau) NumConstraints() int { return t.nConstraints }

// Shift is the constant k added to every payoff.
func (t *Tableau) Shift() rational.Rat { return t.shift }

func (t *Tableau) At(row, col int) rational.Rat { return t.m[row][col] }

// RHS returns the right-hand-side entry of the given row.
func (t *Tableau) RHS(row int) rational.Rat { return t.m[row][t.Cols()-1] }

// Row returns a copy of the given row.
func (t *Tableau) Row(row int) []rational.Rat {
	return append([]rational.Rat(nil), t.m[row]...)
}

// ObjectiveMin returns the smallest objective-row coefficient, excluding
// the right-hand side, and the first column where it occurs.
func (t *Tableau) ObjectiveMin() (rational.Rat, int) {
	obj := t.m[t.Rows()-1]
	best, bestCol := obj[0], 0
	for col := 1; col < t.Cols()-1; col++ {
		if obj[col].Less(best) {
			best, bestCol = obj[col], col
		}
	}

	return best, bestCol
}

// IsOptimal reports whether no objective-row coefficient is negative.
func (t *Tableau) IsOptimal() bool {
	v, _ := t.ObjectiveMin()
	return v.Sign() >= 0
}

// Clone returns a deep copy of t.
func (t *Tableau) Clone() *Tableau {
	c := newTableau(t.nStrategies, t.nConstraints, t.shift)
	for i := range t.m {
		copy(c.m[i], t.m[i])
	}

	return c
}

// Equal reports whether t and other hold exactly the same state.
func (t *Tableau) Equal(other *Tableau) bool {
	if t.nStrategies != other.nStrategies || t.nConstraints != other.nConstraints ||
		!t.shift.Equal(other.shift) {
		return false
	}

	for i := range t.m {
		for j := range t.m[i] {
			if !t.m[i][j].Equal(other.m[i][j]) {
				return false
			}
		}
	}

	return true
}

// Key is a canonical encoding of the grid. Two tableaus of the same game
// have equal keys iff they are in the same state.
func (t *Tableau) Key() string {
	var sb strings.Builder
	for i, row := range t.m {
		if i > 0 {
			sb.WriteByte(';')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(v.String())
		}
	}

	return sb.String()
}

const cellWidth = 8

// String renders the tableau as a fixed-width grid. A dashed line
// separates the constraint rows from the objective row, and bars mark
// the start of the slack block and of the right-hand side.
func (t *Tableau) String() string {
	var sb strings.Builder
	for row := 0; row < t.Rows(); row++ {
		if row == t.nConstraints {
			sb.WriteString(strings.Repeat("-", cellWidth*t.Cols()+2))
			sb.WriteByte('\n')
		}
		for col := 0; col < t.Cols(); col++ {
			if col == t.nStrategies || col == t.nStrategies+t.nConstraints {
				sb.WriteByte('|')
			}
			sb.WriteString(center(t.m[row][col].String(), cellWidth))
		}
		if row < t.Rows()-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
