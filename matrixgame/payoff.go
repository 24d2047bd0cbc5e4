// Package matrixgame describes two-player zero-sum games in normal form.
//
// Player 1 picks a row, player 2 picks a column, and the entry of the
// PayoffMatrix is what player 2 pays player 1.
package matrixgame

import (
	"fmt"
	"strings"

	"github.com/timpalpant/zerosum/rational"
)

// PayoffMatrix is an immutable m x n grid of exact payoffs.
type PayoffMatrix struct {
	rows, cols int
	entries    []rational.Rat // row-major
}

// NewPayoffMatrix copies the given rows into a new PayoffMatrix.
// Every row must have the same, non-zero, length.
func NewPayoffMatrix(rows [][]rational.Rat) (*PayoffMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	n := len(rows[0])
	entries := make([]rational.Rat, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, &RowLengthError{Row: i, Expected: n, Got: len(row)}
		}
		entries = append(entries, row...)
	}

	return &PayoffMatrix{rows: len(rows), cols: n, entries: entries}, nil
}

// FromInts builds a PayoffMatrix from integer payoffs.
func FromInts(rows [][]int64) (*PayoffMatrix, error) {
	rats := make([][]rational.Rat, len(rows))
	for i, row := range rows {
		rats[i] = make([]rational.Rat, len(row))
		for j, v := range row {
			rats[i][j] = rational.FromInt(v)
		}
	}

	return NewPayoffMatrix(rats)
}

// MustFromInts is like FromInts but panics on a malformed matrix.
func MustFromInts(rows [][]int64) *PayoffMatrix {
	m, err := FromInts(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows is the number of pure strategies available to player 1.
func (m *PayoffMatrix) Rows() int { return m.rows }

// Cols is the number of pure strategies available to player 2.
func (m *PayoffMatrix) Cols() int { return m.cols }

// At returns the payoff when player 1 plays row i and player 2 plays column j.
func (m *PayoffMatrix) At(i, j int) rational.Rat {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Errorf("matrixgame: index (%d, %d) out of range for %dx%d matrix",
			i, j, m.rows, m.cols))
	}

	return m.entries[i*m.cols+j]
}

// Row returns a copy of row i.
func (m *PayoffMatrix) Row(i int) []rational.Rat {
	result := make([]rational.Rat, m.cols)
	for j := range result {
		result[j] = m.At(i, j)
	}

	return result
}

// Min returns the smallest payoff in the matrix.
func (m *PayoffMatrix) Min() rational.Rat {
	return rational.Min(m.entries...)
}

// Equal reports whether m and other have the same shape and entries.
func (m *PayoffMatrix) Equal(other *PayoffMatrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}

	for i, v := range m.entries {
		if !v.Equal(other.entries[i]) {
			return false
		}
	}

	return true
}

// Key is a canonical string identifying the matrix, suitable as a map key.
func (m *PayoffMatrix) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d:", m.rows, m.cols)
	for i, v := range m.entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.String())
	}

	return sb.String()
}

func (m *PayoffMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.At(i, j).String())
		}
		if i < m.rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
