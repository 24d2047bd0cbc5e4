package simplex

import (
	"github.com/golang/glog"

	"github.com/timpalpant/zerosum/rational"
)

// Solution holds both players' optimal mixed strategies and the value of
// the game to player 1.
type Solution struct {
	// Player1[i] is the probability that player 1 plays row i.
	Player1 []rational.Rat
	// Player2[j] is the probability that player 2 plays column j.
	Player2 []rational.Rat
	Value   rational.Rat
	// Degenerate is set when the objective value was zero and the value
	// fell back to -k.
	Degenerate bool
}

// Extract reads the strategies and value out of a terminal tableau.
// It does not modify t or h, so repeated calls give identical results.
func Extract(t *Tableau, h History) Solution {
	n, m := t.NumStrategies(), t.NumConstraints()
	objective := t.m[t.Rows()-1]
	v := objective[t.Cols()-1]

	s := Solution{
		Player1: make([]rational.Rat, m),
		Player2: make([]rational.Rat, n),
	}

	if v.IsZero() {
		glog.Warningf("Objective value is zero, falling back to value = -k = %v", t.shift.Neg())
		s.Value = t.shift.Neg()
		s.Degenerate = true
		return s
	}

	s.Value = v.Inv().Sub(t.shift)
	for i := range s.Player1 {
		s.Player1[i] = objective[n+i].Quo(v)
	}

	for j := range s.Player2 {
		if row, ok := h.BasicRow(j); ok {
			s.Player2[j] = t.RHS(row).Quo(v)
		}
	}

	return s
}
