package zerosum

import "errors"

var (
	// ErrIterationLimit is returned when the pivot budget runs out before
	// the tableau becomes optimal.
	ErrIterationLimit = errors.New("zerosum: pivot budget exhausted")

	// ErrCycling is returned when a tableau state recurs.
	ErrCycling = errors.New("zerosum: simplex is cycling")

	// ErrNotFinished is returned by Session.Result before the session
	// has reached a terminal state.
	ErrNotFinished = errors.New("zerosum: session has not finished")

	// ErrInvalidStrategy is returned by Result.Validate when a strategy is
	// not a probability distribution.
	ErrInvalidStrategy = errors.New("zerosum: strategy is not a probability distribution")

	// ErrNotEquilibrium is returned by Result.Verify when a player can do
	// better than the reported value by deviating.
	ErrNotEquilibrium = errors.New("zerosum: strategies are not in equilibrium")
)
