package zerosum

import (
	"fmt"
	"strings"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/rational"
	"github.com/timpalpant/zerosum/simplex"
)

// Result is the solution of a zero-sum matrix game.
type Result struct {
	// Player1[i] is the probability that the row player plays row i.
	Player1 []rational.Rat
	// Player2[j] is the probability that the column player plays column j.
	Player2 []rational.Rat
	// Value is the expected payoff to player 1 under optimal play.
	Value rational.Rat
	// Pivots is the number of simplex pivots performed.
	Pivots int
	// Degenerate is set when the value came from the -k fallback.
	Degenerate bool
}

func newResult(s simplex.Solution, nPivots int) *Result {
	return &Result{
		Player1:    s.Player1,
		Player2:    s.Player2,
		Value:      s.Value,
		Pivots:     nPivots,
		Degenerate: s.Degenerate,
	}
}

// Clone returns a copy of r that shares no slices with it.
func (r *Result) Clone() *Result {
	c := *r
	c.Player1 = append([]rational.Rat(nil), r.Player1...)
	c.Player2 = append([]rational.Rat(nil), r.Player2...)
	return &c
}

// Validate checks that both strategies are probability distributions:
// every entry non-negative, summing to exactly one.
func (r *Result) Validate() error {
	if err := validateDistribution(r.Player1); err != nil {
		return fmt.Errorf("player 1: %w", err)
	}

	if err := validateDistribution(r.Player2); err != nil {
		return fmt.Errorf("player 2: %w", err)
	}

	return nil
}

func validateDistribution(p []rational.Rat) error {
	for i, x := range p {
		if x.Sign() < 0 {
			return fmt.Errorf("%w: probability %v at index %d is negative",
				ErrInvalidStrategy, x, i)
		}
	}

	if total := rational.Sum(p); !total.Equal(rational.One) {
		return fmt.Errorf("%w: probabilities sum to %v", ErrInvalidStrategy, total)
	}

	return nil
}

// Verify checks that r is an equilibrium of the given game: player 1's
// strategy earns at least Value against every column, and player 2's
// strategy concedes at most Value against every row.
func (r *Result) Verify(payoff *matrixgame.PayoffMatrix) error {
	colPayoffs, err := payoff.ColPayoffs(r.Player1)
	if err != nil {
		return err
	}
	for j, v := range colPayoffs {
		if v.Less(r.Value) {
			return fmt.Errorf("%w: column %d holds player 1 to %v < %v",
				ErrNotEquilibrium, j, v, r.Value)
		}
	}

	rowPayoffs, err := payoff.RowPayoffs(r.Player2)
	if err != nil {
		return err
	}
	for i, v := range rowPayoffs {
		if r.Value.Less(v) {
			return fmt.Errorf("%w: row %d earns player 1 %v > %v",
				ErrNotEquilibrium, i, v, r.Value)
		}
	}

	return nil
}

func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Player 1 Optimal Strategy: ( %s )\n", joinRats(r.Player1))
	fmt.Fprintf(&sb, "Player 2 Optimal Strategy: ( %s )\n", joinRats(r.Player2))
	fmt.Fprintf(&sb, "Value: %v", r.Value)
	return sb.String()
}

func joinRats(xs []rational.Rat) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}

	return strings.Join(parts, ", ")
}
