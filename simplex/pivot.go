package simplex

import (
	"github.com/golang/glog"

	"github.com/timpalpant/zerosum/rational"
)

// Outcome is the result of a single call to Step.
type Outcome int

const (
	// Continued means a pivot was performed and the tableau is not yet optimal.
	Continued Outcome = iota
	// Optimal means the objective row has no negative coefficient.
	Optimal
	// Unbounded means the entering column had no positive entry.
	Unbounded
)

var outcomeStr = [...]string{
	"Continued",
	"Optimal",
	"Unbounded",
}

func (o Outcome) String() string {
	return outcomeStr[o]
}

// Pivot identifies the entry used for one elimination step.
type Pivot struct {
	Row, Col int
	// Value of the pivot entry before the row was normalized.
	Value rational.Rat
}

// History records, for each decision column, the constraint row in which
// that variable is currently basic, or -1 if it is non-basic.
type History []int

// NewHistory returns a history for n decision columns with no basic variables.
func NewHistory(n int) History {
	h := make(History, n)
	for i := range h {
		h[i] = -1
	}

	return h
}

// BasicRow returns the row in which decision column j is basic.
func (h History) BasicRow(j int) (int, bool) {
	return h[j], h[j] >= 0
}

func (h History) record(p Pivot) {
	// The variable previously basic in this row leaves the basis.
	for j, row := range h {
		if row == p.Row {
			h[j] = -1
		}
	}

	if p.Col < len(h) {
		h[p.Col] = p.Row
	}
}

// PivotColumn selects the entering column: the most negative objective
// coefficient, first occurrence on ties.
func PivotColumn(t *Tableau) int {
	_, col := t.ObjectiveMin()
	return col
}

// PivotRow runs the ratio test on the given column. Only rows with a
// positive entry are candidates. The first candidate with a zero ratio
// rhs/entry wins; failing that, the smallest strictly positive ratio,
// first occurrence on ties. ok is false when there is no candidate.
func PivotRow(t *Tableau, col int) (row int, ok bool) {
	best := rational.Zero
	row, zeroRow := -1, -1
	for r := 0; r < t.Rows()-1; r++ {
		entry := t.m[r][col]
		if entry.Sign() <= 0 {
			continue
		}

		ratio := t.RHS(r).Quo(entry)
		switch {
		case ratio.Sign() == 0:
			if zeroRow < 0 {
				zeroRow = r
			}
		case row < 0 || ratio.Less(best):
			best, row = ratio, r
		}
	}

	// A zero ratio is smaller than any positive one; skipping it would
	// drive that row's right-hand side negative.
	if zeroRow >= 0 {
		return zeroRow, true
	}

	return row, row >= 0
}

// Step performs one simplex pivot on t in place and records the entering
// variable in h. iteration is the zero-based pivot count, used for logging.
//
// If t is already optimal, Step returns Optimal without pivoting. If the
// ratio test finds no candidate row, Step returns Unbounded and leaves t
// unchanged. Otherwise it pivots and returns Optimal or Continued
// according to the new objective row.
func Step(t *Tableau, h History, iteration int) (Pivot, Outcome) {
	if t.IsOptimal() {
		return Pivot{Row: -1, Col: -1}, Optimal
	}

	col := PivotColumn(t)
	row, ok := PivotRow(t, col)
	if !ok {
		glog.V(1).Infof("Iteration %d: column %d has no positive entry", iteration, col)
		return Pivot{Row: -1, Col: col}, Unbounded
	}

	p := Pivot{Row: row, Col: col, Value: t.m[row][col]}
	eliminate(t, p)
	h.record(p)
	glog.V(2).Infof("Iteration %d: pivot (%d, %d) on %v", iteration, row, col, p.Value)

	if t.IsOptimal() {
		return p, Optimal
	}
	return p, Continued
}

// eliminate performs the Gauss-Jordan step around the pivot entry.
func eliminate(t *Tableau, p Pivot) {
	// Snapshot the pivot column before any row is modified.
	factors := allocRatSlice(t.Rows())
	defer func() { freeRatSlice(factors) }()
	for r := range t.m {
		factors = append(factors, t.m[r][p.Col])
	}

	pivotRow := t.m[p.Row]
	for c := range pivotRow {
		pivotRow[c] = pivotRow[c].Quo(p.Value)
	}

	for r, row := range t.m {
		if r == p.Row || factors[r].IsZero() {
			continue
		}
		for c := range row {
			row[c] = row[c].Sub(factors[r].Mul(pivotRow[c]))
		}
	}
}
