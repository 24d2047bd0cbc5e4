package zerosum

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/rational"
	"github.com/timpalpant/zerosum/simplex"
)

func strs(xs []rational.Rat) []string {
	result := make([]string, len(xs))
	for i, x := range xs {
		result[i] = x.String()
	}
	return result
}

func TestSolve(t *testing.T) {
	testCases := []struct {
		name    string
		payoff  [][]int64
		value   string
		player1 []string
		player2 []string
	}{
		{
			name:    "matching pennies",
			payoff:  [][]int64{{1, -1}, {-1, 1}},
			value:   "0",
			player1: []string{"1/2", "1/2"},
			player2: []string{"1/2", "1/2"},
		},
		{
			name:    "saddle point",
			payoff:  [][]int64{{2, 1}, {3, 4}},
			value:   "3",
			player1: []string{"0", "1"},
			player2: []string{"1", "0"},
		},
		{
			name:    "trivial",
			payoff:  [][]int64{{5}},
			value:   "5",
			player1: []string{"1"},
			player2: []string{"1"},
		},
		{
			name:    "negative trivial",
			payoff:  [][]int64{{-2}},
			value:   "-2",
			player1: []string{"1"},
			player2: []string{"1"},
		},
		{
			name:    "rock paper scissors",
			payoff:  [][]int64{{0, 1, -1}, {-1, 0, 1}, {1, -1, 0}},
			value:   "0",
			player1: []string{"1/3", "1/3", "1/3"},
			player2: []string{"1/3", "1/3", "1/3"},
		},
		{
			name:    "asymmetric mixed",
			payoff:  [][]int64{{3, -1}, {-2, 1}},
			value:   "1/7",
			player1: []string{"3/7", "4/7"},
			player2: []string{"2/7", "5/7"},
		},
		{
			name:    "single row",
			payoff:  [][]int64{{1, 2, 3}},
			value:   "1",
			player1: []string{"1"},
			player2: []string{"1", "0", "0"},
		},
		{
			name:    "single column",
			payoff:  [][]int64{{1}, {2}, {3}},
			value:   "3",
			player1: []string{"0", "0", "1"},
			player2: []string{"1"},
		},
		{
			name:    "all zero",
			payoff:  [][]int64{{0, 0}, {0, 0}},
			value:   "0",
			player1: []string{"1", "0"},
			player2: []string{"1", "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payoff := matrixgame.MustFromInts(tc.payoff)
			result, err := Solve(payoff)
			require.NoError(t, err)
			assert.Equal(t, tc.value, result.Value.String())
			assert.Equal(t, tc.player1, strs(result.Player1))
			assert.Equal(t, tc.player2, strs(result.Player2))
			assert.NoError(t, result.Validate())
			assert.NoError(t, result.Verify(payoff))
			assert.False(t, result.Degenerate)
		})
	}
}

func TestSolveSaddlePointAgreesWithMatrix(t *testing.T) {
	payoff := matrixgame.MustFromInts([][]int64{{2, 1}, {3, 4}})
	row, col, ok := payoff.SaddlePoint()
	require.True(t, ok)

	result, err := Solve(payoff)
	require.NoError(t, err)
	assert.True(t, result.Value.Equal(payoff.At(row, col)))
	assert.True(t, result.Player1[row].Equal(rational.One))
	assert.True(t, result.Player2[col].Equal(rational.One))
}

func TestSolveFractionalPayoffs(t *testing.T) {
	payoff, err := matrixgame.ReadPayoffMatrix(
		strings.NewReader("1/2 -3/4\n-1/3 2/5\n"), 2, 2)
	require.NoError(t, err)

	result, err := Solve(payoff)
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	require.NoError(t, result.Verify(payoff))

	expected, err := payoff.ExpectedPayoff(result.Player1, result.Player2)
	require.NoError(t, err)
	assert.True(t, expected.Equal(result.Value), "expected payoff %v, value %v", expected, result.Value)
}

func TestSolveRandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		m, n := 1+rng.Intn(4), 1+rng.Intn(4)
		rows := make([][]rational.Rat, m)
		for i := range rows {
			rows[i] = make([]rational.Rat, n)
			for j := range rows[i] {
				rows[i][j] = rational.New(int64(rng.Intn(11)-5), int64(1+rng.Intn(3)))
			}
		}

		payoff, err := matrixgame.NewPayoffMatrix(rows)
		require.NoError(t, err)
		result, err := Solve(payoff)
		require.NoError(t, err, "game:\n%v", payoff)
		assert.NoError(t, result.Validate(), "game:\n%v", payoff)
		assert.NoError(t, result.Verify(payoff), "game:\n%v", payoff)
		assert.LessOrEqual(t, result.Pivots, m+n, "game:\n%v", payoff)
	}
}

func TestSolveInvalidDimension(t *testing.T) {
	_, err := Solve(nil)
	assert.True(t, errors.Is(err, simplex.ErrInvalidDimension), "got %v", err)

	_, err = NewSession(&matrixgame.PayoffMatrix{})
	assert.True(t, errors.Is(err, simplex.ErrInvalidDimension), "got %v", err)
}

func TestSessionStepByStep(t *testing.T) {
	payoff := matrixgame.MustFromInts([][]int64{{1, -1}, {-1, 1}})
	s, err := NewSession(payoff)
	require.NoError(t, err)

	_, err = s.Result()
	assert.True(t, errors.Is(err, ErrNotFinished))
	assert.True(t, s.Payoff().Equal(payoff))
	assert.Equal(t, "3", s.Tableau().At(0, 0).String())

	p, outcome, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, simplex.Continued, outcome)
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, 0, p.Col)
	assert.False(t, s.Done())
	assert.Equal(t, "1/3", s.Tableau().At(2, 4).String())

	p, outcome, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, simplex.Optimal, outcome)
	assert.Equal(t, 1, p.Row)
	assert.Equal(t, 1, p.Col)
	assert.True(t, s.Done())
	assert.Len(t, s.Pivots(), 2)
	assert.Equal(t, simplex.History{0, 1}, s.History())

	// Further steps are no-ops.
	key := s.Tableau().Key()
	p, outcome, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, simplex.Optimal, outcome)
	assert.Equal(t, -1, p.Row)
	assert.Equal(t, key, s.Tableau().Key())

	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, "0", result.Value.String())
	assert.Equal(t, 2, result.Pivots)
}

func TestSessionResultIsIdempotent(t *testing.T) {
	s, err := NewSession(matrixgame.MustFromInts([][]int64{{3, -1}, {-2, 1}}))
	require.NoError(t, err)
	first, err := s.Run()
	require.NoError(t, err)

	// Mutating a returned result does not affect later ones.
	first.Player1[0] = rational.FromInt(99)
	second, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, "3/7", second.Player1[0].String())
	assert.Equal(t, "1/7", second.Value.String())
}

func TestSessionUnbounded(t *testing.T) {
	tab, err := simplex.FromRows([][]rational.Rat{
		{rational.FromInt(-2), rational.One, rational.One},
		{rational.FromInt(-1), rational.Zero, rational.Zero},
	}, 1, rational.Zero)
	require.NoError(t, err)

	s := newSession(nil, tab, DefaultOptions())
	_, outcome, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, simplex.Unbounded, outcome)
	assert.True(t, s.Done())

	_, err = s.Result()
	assert.True(t, errors.Is(err, simplex.ErrUnbounded), "got %v", err)
	_, err = s.Run()
	assert.True(t, errors.Is(err, simplex.ErrUnbounded), "got %v", err)
}

// cyclingTableau is a classic degenerate linear program on which the
// most-negative-coefficient rule with first-row tie breaking returns to
// the initial tableau after six pivots.
func cyclingTableau(t *testing.T) *simplex.Tableau {
	r := rational.New
	i := rational.FromInt
	tab, err := simplex.FromRows([][]rational.Rat{
		{r(1, 2), r(-11, 2), r(-5, 2), i(9), i(1), i(0), i(0), i(0)},
		{r(1, 2), r(-3, 2), r(-1, 2), i(1), i(0), i(1), i(0), i(0)},
		{i(1), i(0), i(0), i(0), i(0), i(0), i(1), i(1)},
		{i(-10), i(57), i(9), i(24), i(0), i(0), i(0), i(0)},
	}, 4, rational.Zero)
	require.NoError(t, err)
	return tab
}

func TestSessionDetectsCycling(t *testing.T) {
	s := newSession(nil, cyclingTableau(t), DefaultOptions())
	_, err := s.Run()
	assert.True(t, errors.Is(err, ErrCycling), "got %v", err)
	assert.Len(t, s.Pivots(), 6)
	assert.True(t, s.Done())

	_, _, err = s.Step()
	assert.True(t, errors.Is(err, ErrCycling))
}

func TestSessionIterationLimit(t *testing.T) {
	opts := buildOptions([]Option{WithCycleDetection(false), WithMaxPivots(20)})
	s := newSession(nil, cyclingTableau(t), opts)
	_, err := s.Run()
	assert.True(t, errors.Is(err, ErrIterationLimit), "got %v", err)
	assert.Len(t, s.Pivots(), 20)

	s, err = NewSession(matrixgame.MustFromInts([][]int64{{1, -1}, {-1, 1}}), WithMaxPivots(1))
	require.NoError(t, err)
	_, err = s.Run()
	assert.True(t, errors.Is(err, ErrIterationLimit), "got %v", err)
}

func TestOptions(t *testing.T) {
	o := buildOptions(nil)
	assert.Equal(t, DefaultMaxPivots, o.MaxPivots)
	assert.True(t, o.DetectCycles)
	assert.False(t, o.RecordTrace)

	o = buildOptions([]Option{WithMaxPivots(-3), WithTrace(true)})
	assert.Equal(t, DefaultMaxPivots, o.MaxPivots)
	assert.True(t, o.RecordTrace)
}

func TestValidate(t *testing.T) {
	r := &Result{
		Player1: []rational.Rat{rational.New(1, 2), rational.New(1, 2)},
		Player2: []rational.Rat{rational.One},
	}
	assert.NoError(t, r.Validate())

	r.Player1 = []rational.Rat{rational.New(3, 2), rational.New(-1, 2)}
	assert.True(t, errors.Is(r.Validate(), ErrInvalidStrategy))

	r.Player1 = []rational.Rat{rational.New(1, 2), rational.New(1, 3)}
	assert.True(t, errors.Is(r.Validate(), ErrInvalidStrategy))
}

func TestVerifyRejectsNonEquilibrium(t *testing.T) {
	payoff := matrixgame.MustFromInts([][]int64{{1, -1}, {-1, 1}})
	r := &Result{
		Player1: []rational.Rat{rational.One, rational.Zero},
		Player2: []rational.Rat{rational.New(1, 2), rational.New(1, 2)},
		Value:   rational.Zero,
	}
	assert.True(t, errors.Is(r.Verify(payoff), ErrNotEquilibrium))
}

func TestResultString(t *testing.T) {
	result, err := Solve(matrixgame.MustFromInts([][]int64{{3, -1}, {-2, 1}}))
	require.NoError(t, err)
	assert.Equal(t, "Player 1 Optimal Strategy: ( 3/7, 4/7 )\n"+
		"Player 2 Optimal Strategy: ( 2/7, 5/7 )\n"+
		"Value: 1/7", result.String())
}

func BenchmarkSolve(b *testing.B) {
	payoff := matrixgame.MustFromInts([][]int64{
		{0, 1, -1, 2},
		{-1, 0, 1, -2},
		{1, -1, 0, 3},
		{2, -3, 1, 0},
	})
	for i := 0; i < b.N; i++ {
		if _, err := Solve(payoff); err != nil {
			b.Fatal(err)
		}
	}
}
