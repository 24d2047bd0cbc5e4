package zerosum

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/simplex"
)

func TestTraceRecordsEveryPivot(t *testing.T) {
	payoff := matrixgame.MustFromInts([][]int64{{1, -1}, {-1, 1}})
	s, err := NewSession(payoff, WithTrace(true))
	require.NoError(t, err)
	_, err = s.Run()
	require.NoError(t, err)

	tr := s.Trace()
	require.NotNil(t, tr)
	require.Len(t, tr.Snapshots, 2)
	assert.Equal(t, simplex.Continued, tr.Snapshots[0].Outcome)
	assert.Equal(t, simplex.Optimal, tr.Snapshots[1].Outcome)
	assert.Equal(t, 1, tr.Snapshots[1].Pivot.Row)
	assert.Equal(t, "2", tr.Shift.String())

	initial, err := tr.Tableau(-1)
	require.NoError(t, err)
	assert.Equal(t, "3", initial.At(0, 0).String())

	last, err := tr.Tableau(1)
	require.NoError(t, err)
	assert.True(t, last.Equal(s.Tableau()))

	_, err = tr.Tableau(2)
	assert.Error(t, err)
}

func TestTraceDisabledByDefault(t *testing.T) {
	s, err := NewSession(matrixgame.MustFromInts([][]int64{{5}}))
	require.NoError(t, err)
	assert.Nil(t, s.Trace())
}

func TestSaveLoadTrace(t *testing.T) {
	payoff := matrixgame.MustFromInts([][]int64{{3, -1}, {-2, 1}})
	s, err := NewSession(payoff, WithTrace(true))
	require.NoError(t, err)
	_, err = s.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SaveTrace(&buf, s.Trace()))

	loaded, err := LoadTrace(&buf)
	require.NoError(t, err)
	require.Len(t, loaded.Snapshots, len(s.Trace().Snapshots))
	assert.Equal(t, "-1", loaded.Payoff[0][1].String())
	for i, snapshot := range loaded.Snapshots {
		original := s.Trace().Snapshots[i]
		assert.Equal(t, original.Iteration, snapshot.Iteration)
		assert.Equal(t, original.Pivot.Row, snapshot.Pivot.Row)
		assert.Equal(t, original.Pivot.Col, snapshot.Pivot.Col)
		assert.True(t, original.Pivot.Value.Equal(snapshot.Pivot.Value))
	}

	// Replaying the final tableau gives the same solution.
	last, err := loaded.Tableau(len(loaded.Snapshots) - 1)
	require.NoError(t, err)
	solution := simplex.Extract(last, s.History())
	assert.Equal(t, "1/7", solution.Value.String())
}

func TestLoadTraceRejectsGarbage(t *testing.T) {
	_, err := LoadTrace(bytes.NewReader([]byte("not a trace")))
	assert.Error(t, err)
}
