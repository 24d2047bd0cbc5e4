package zerosum

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr/sampling"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/rational"
)

// SampleRow draws a pure strategy for player 1 from the optimal mix.
func (r *Result) SampleRow(rng *rand.Rand) int {
	return sampling.SampleOne(float32s(r.Player1), rng.Float32())
}

// SampleCol draws a pure strategy for player 2 from the optimal mix.
func (r *Result) SampleCol(rng *rand.Rand) int {
	return sampling.SampleOne(float32s(r.Player2), rng.Float32())
}

func float32s(p []rational.Rat) []float32 {
	result := make([]float32, len(p))
	for i, x := range p {
		result[i] = float32(x.Float64())
	}

	return result
}

// PlayStats summarizes a simulated match.
type PlayStats struct {
	Rounds int
	// Total payoff to player 1, exact.
	Total rational.Rat
	// How often each row and column was played.
	RowCounts []int
	ColCounts []int
}

// Mean is the average payoff to player 1 per round.
func (s PlayStats) Mean() rational.Rat {
	if s.Rounds == 0 {
		return rational.Zero
	}

	return s.Total.Quo(rational.FromInt(int64(s.Rounds)))
}

// Simulate plays the given number of rounds in which both players sample
// from their optimal strategies. The mean payoff approaches r.Value.
func Simulate(r *Result, payoff *matrixgame.PayoffMatrix, rounds int, rng *rand.Rand) PlayStats {
	stats := PlayStats{
		Rounds:    rounds,
		RowCounts: make([]int, payoff.Rows()),
		ColCounts: make([]int, payoff.Cols()),
	}

	for i := 0; i < rounds; i++ {
		row, col := r.SampleRow(rng), r.SampleCol(rng)
		stats.RowCounts[row]++
		stats.ColCounts[col]++
		stats.Total = stats.Total.Add(payoff.At(row, col))
	}

	glog.V(1).Infof("Simulated %d rounds: mean payoff %.4f (value %v)",
		rounds, stats.Mean().Float64(), r.Value)
	return stats
}
