// Package zerosum computes optimal mixed strategies and the value of
// two-player zero-sum games using the simplex method in exact arithmetic.
//
// Solve runs a game to completion. Session exposes the same computation
// one pivot at a time, so an interactive front end can display every
// intermediate tableau.
package zerosum

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/simplex"
)

// Session owns the tableau for a single solve.
type Session struct {
	payoff  *matrixgame.PayoffMatrix
	opts    Options
	tableau *simplex.Tableau
	history simplex.History
	pivots  []simplex.Pivot
	seen    map[string]int
	trace   *Trace

	done    bool
	outcome simplex.Outcome
	err     error
	result  *Result
}

// NewSession builds the initial tableau for the given game.
func NewSession(payoff *matrixgame.PayoffMatrix, opts ...Option) (*Session, error) {
	tableau, err := simplex.Build(payoff)
	if err != nil {
		return nil, errors.Wrap(err, "building initial tableau")
	}

	glog.V(1).Infof("Solving %dx%d game with shift k = %v",
		payoff.Rows(), payoff.Cols(), tableau.Shift())
	return newSession(payoff, tableau, buildOptions(opts)), nil
}

// newSession drives an existing tableau. payoff may be nil when the
// tableau did not come from a game.
func newSession(payoff *matrixgame.PayoffMatrix, tableau *simplex.Tableau, opts Options) *Session {
	s := &Session{
		payoff:  payoff,
		opts:    opts,
		tableau: tableau,
		history: simplex.NewHistory(tableau.NumStrategies()),
	}

	if s.opts.DetectCycles {
		s.seen = map[string]int{tableau.Key(): 0}
	}

	if s.opts.RecordTrace {
		s.trace = newTrace(payoff, tableau)
	}

	return s
}

// Payoff returns the game being solved, or nil for a bare tableau.
func (s *Session) Payoff() *matrixgame.PayoffMatrix { return s.payoff }

// Tableau returns the current tableau. Callers must not modify it.
func (s *Session) Tableau() *simplex.Tableau { return s.tableau }

// History returns the basis of the decision columns.
func (s *Session) History() simplex.History { return s.history }

// Pivots returns the pivots performed so far, in order.
func (s *Session) Pivots() []simplex.Pivot { return s.pivots }

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool { return s.done }

// Outcome is the outcome of the most recent step.
func (s *Session) Outcome() simplex.Outcome { return s.outcome }

// Trace returns the recorded trace, or nil if tracing is disabled.
func (s *Session) Trace() *Trace { return s.trace }

// Step performs a single pivot. Once the session is done, Step keeps
// returning the terminal outcome without touching the tableau.
//
// The returned error is non-nil only when the pivot budget is exhausted
// or a tableau state repeats; Unbounded is reported as an outcome.
func (s *Session) Step() (simplex.Pivot, simplex.Outcome, error) {
	noPivot := simplex.Pivot{Row: -1, Col: -1}
	if s.done {
		return noPivot, s.outcome, s.err
	}

	iteration := len(s.pivots)
	if iteration >= s.opts.MaxPivots && !s.tableau.IsOptimal() {
		budgetHits.Add(1)
		s.finish(simplex.Continued, errors.Wrapf(ErrIterationLimit,
			"no optimal tableau after %d pivots", iteration))
		return noPivot, s.outcome, s.err
	}

	p, outcome := simplex.Step(s.tableau, s.history, iteration)
	s.outcome = outcome
	if p.Row >= 0 {
		s.pivots = append(s.pivots, p)
		pivots.Add(1)
		if s.trace != nil {
			s.trace.record(iteration, p, outcome, s.tableau)
		}
	}

	switch outcome {
	case simplex.Unbounded:
		unboundedRuns.Add(1)
		glog.Warningf("Game is unbounded: column %d has no positive entry after %d pivots",
			p.Col, iteration)
		s.finish(outcome, nil)
	case simplex.Optimal:
		s.finish(outcome, nil)
	case simplex.Continued:
		if s.seen != nil {
			key := s.tableau.Key()
			if prev, ok := s.seen[key]; ok {
				cycles.Add(1)
				s.finish(outcome, errors.Wrapf(ErrCycling,
					"tableau after pivot %d repeats the one after pivot %d", iteration+1, prev))
				return p, outcome, s.err
			}
			s.seen[key] = iteration + 1
		}
	}

	return p, outcome, s.err
}

func (s *Session) finish(outcome simplex.Outcome, err error) {
	s.done = true
	s.outcome = outcome
	s.err = err
	s.seen = nil
}

// Run steps until the session is done and returns the result.
func (s *Session) Run() (*Result, error) {
	for !s.done {
		if _, _, err := s.Step(); err != nil {
			return nil, err
		}
	}

	return s.Result()
}

// Result extracts the solution from the terminal tableau.
func (s *Session) Result() (*Result, error) {
	switch {
	case !s.done:
		return nil, ErrNotFinished
	case s.err != nil:
		return nil, s.err
	case s.outcome == simplex.Unbounded:
		return nil, errors.Wrapf(simplex.ErrUnbounded, "after %d pivots", len(s.pivots))
	}

	if s.result == nil {
		solves.Add(1)
		s.result = newResult(simplex.Extract(s.tableau, s.history), len(s.pivots))
		glog.V(1).Infof("Solved %dx%d game in %d pivots, value = %v",
			s.tableau.NumConstraints(), s.tableau.NumStrategies(), len(s.pivots), s.result.Value)
	}

	return s.result.Clone(), nil
}

// Solve computes both players' optimal strategies and the game value.
func Solve(payoff *matrixgame.PayoffMatrix, opts ...Option) (*Result, error) {
	s, err := NewSession(payoff, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}
