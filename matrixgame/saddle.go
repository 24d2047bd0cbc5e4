package matrixgame

import (
	"github.com/timpalpant/zerosum/rational"
)

// SaddlePoint finds an entry that is both the minimum of its row and the
// maximum of its column. Such an entry is a pure-strategy equilibrium.
// The first one in row-major order is returned.
func (m *PayoffMatrix) SaddlePoint() (row, col int, ok bool) {
	rowMins := make([]rational.Rat, m.rows)
	for i := range rowMins {
		rowMins[i] = rational.Min(m.Row(i)...)
	}

	colMaxs := make([]rational.Rat, m.cols)
	for j := range colMaxs {
		colMaxs[j] = m.At(0, j)
		for i := 1; i < m.rows; i++ {
			colMaxs[j] = rational.Max(colMaxs[j], m.At(i, j))
		}
	}

	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := m.At(i, j)
			if v.Equal(rowMins[i]) && v.Equal(colMaxs[j]) {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}

// RowPayoffs returns, for each row, player 1's expected payoff against
// player 2's mixed strategy q.
func (m *PayoffMatrix) RowPayoffs(q []rational.Rat) ([]rational.Rat, error) {
	if len(q) != m.cols {
		return nil, ErrStrategyLength
	}

	result := make([]rational.Rat, m.rows)
	for i := range result {
		for j, qj := range q {
			result[i] = result[i].Add(m.At(i, j).Mul(qj))
		}
	}

	return result, nil
}

// ColPayoffs returns, for each column, player 1's expected payoff when
// player 1 uses the mixed strategy p.
func (m *PayoffMatrix) ColPayoffs(p []rational.Rat) ([]rational.Rat, error) {
	if len(p) != m.rows {
		return nil, ErrStrategyLength
	}

	result := make([]rational.Rat, m.cols)
	for j := range result {
		for i, pi := range p {
			result[j] = result[j].Add(m.At(i, j).Mul(pi))
		}
	}

	return result, nil
}

// ExpectedPayoff is the payoff to player 1 when both players mix.
func (m *PayoffMatrix) ExpectedPayoff(p, q []rational.Rat) (rational.Rat, error) {
	rowPayoffs, err := m.RowPayoffs(q)
	if err != nil {
		return rational.Zero, err
	}
	if len(p) != m.rows {
		return rational.Zero, ErrStrategyLength
	}

	var total rational.Rat
	for i, pi := range p {
		total = total.Add(pi.Mul(rowPayoffs[i]))
	}

	return total, nil
}
