package zerosum

import (
	"encoding/gob"
	"io"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/rational"
	"github.com/timpalpant/zerosum/simplex"
)

// Snapshot is the tableau after one pivot.
type Snapshot struct {
	Iteration int
	Pivot     simplex.Pivot
	Outcome   simplex.Outcome
	Rows      [][]rational.Rat
}

// Trace is the full sequence of tableaus visited during a solve.
type Trace struct {
	Payoff        [][]rational.Rat
	NumStrategies int
	Shift         rational.Rat
	Initial       [][]rational.Rat
	Snapshots     []Snapshot
}

func newTrace(payoff *matrixgame.PayoffMatrix, t *simplex.Tableau) *Trace {
	trace := &Trace{
		NumStrategies: t.NumStrategies(),
		Shift:         t.Shift(),
		Initial:       tableauRows(t),
	}

	if payoff != nil {
		for i := 0; i < payoff.Rows(); i++ {
			trace.Payoff = append(trace.Payoff, payoff.Row(i))
		}
	}

	return trace
}

func (tr *Trace) record(iteration int, p simplex.Pivot, outcome simplex.Outcome, t *simplex.Tableau) {
	tr.Snapshots = append(tr.Snapshots, Snapshot{
		Iteration: iteration,
		Pivot:     p,
		Outcome:   outcome,
		Rows:      tableauRows(t),
	})
}

func tableauRows(t *simplex.Tableau) [][]rational.Rat {
	rows := make([][]rational.Rat, t.Rows())
	for i := range rows {
		rows[i] = t.Row(i)
	}

	return rows
}

// Tableau rebuilds the tableau after the i'th pivot. i = -1 gives the
// initial tableau.
func (tr *Trace) Tableau(i int) (*simplex.Tableau, error) {
	rows := tr.Initial
	if i >= 0 {
		if i >= len(tr.Snapshots) {
			return nil, errors.Errorf("trace has %d snapshots, requested %d", len(tr.Snapshots), i)
		}
		rows = tr.Snapshots[i].Rows
	}

	return simplex.FromRows(rows, tr.NumStrategies, tr.Shift)
}

// SaveTrace writes a gzip-compressed gob encoding of tr.
func SaveTrace(w io.Writer, tr *Trace) error {
	gz := gzip.NewWriter(w)
	if err := gob.NewEncoder(gz).Encode(tr); err != nil {
		gz.Close()
		return errors.Wrap(err, "encoding trace")
	}

	return gz.Close()
}

// LoadTrace reads a trace written by SaveTrace.
func LoadTrace(r io.Reader) (*Trace, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening trace")
	}
	defer gz.Close()

	var tr Trace
	if err := gob.NewDecoder(gz).Decode(&tr); err != nil {
		return nil, errors.Wrap(err, "decoding trace")
	}

	return &tr, nil
}
