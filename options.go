package zerosum

// DefaultMaxPivots bounds the number of pivots a Session will perform.
// Non-degenerate games finish in at most m+n pivots.
const DefaultMaxPivots = 1000

// Options control how a Session drives the simplex method.
type Options struct {
	// MaxPivots is the pivot budget. Reaching it without an optimal
	// tableau fails the solve with ErrIterationLimit.
	MaxPivots int
	// DetectCycles fails the solve with ErrCycling as soon as a tableau
	// state recurs.
	DetectCycles bool
	// RecordTrace keeps a snapshot of every tableau for later inspection.
	RecordTrace bool
}

// Option modifies Options.
type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		MaxPivots:    DefaultMaxPivots,
		DetectCycles: true,
	}
}

func WithMaxPivots(n int) Option {
	return func(o *Options) { o.MaxPivots = n }
}

func WithCycleDetection(enabled bool) Option {
	return func(o *Options) { o.DetectCycles = enabled }
}

func WithTrace(enabled bool) Option {
	return func(o *Options) { o.RecordTrace = enabled }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.MaxPivots <= 0 {
		o.MaxPivots = DefaultMaxPivots
	}

	return o
}
