package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// FictitiousPlay approximates the equilibrium of the game by letting each
// player repeatedly best-respond to the empirical mix of the other.
// With probability mixingLambda a player instead picks uniformly at random.
//
// The result is floating point and only converges slowly; it serves as an
// independent sanity check of an exact solution.
func FictitiousPlay(m *PayoffMatrix, nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64) {
	payoffs := m.float64s()
	p0PlayCounts := make([]int, m.rows)
	p1PlayCounts := make([]int, m.cols)
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(payoffs, p1PlayCounts, rng)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(payoffs, p0PlayCounts, rng)
		}
		p0PlayCounts[p0Selected]++
		p1PlayCounts[p1Selected]++

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(2).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(2).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts)
}

func (m *PayoffMatrix) float64s() [][]float64 {
	result := make([][]float64, m.rows)
	for i := range result {
		result[i] = make([]float64, m.cols)
		for j := range result[i] {
			result[i][j] = m.At(i, j).Float64()
		}
	}

	return result
}

func getP0BestResponse(payoffs [][]float64, p1PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func getP1BestResponse(payoffs [][]float64, p0PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	if total == 0 {
		return result
	}

	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && rng.Intn(2) == 1 {
			bestIdx = i
		}
	}

	return best, bestIdx
}
