package zerosum

import "expvar"

var (
	solves        = expvar.NewInt("solver/solves")
	pivots        = expvar.NewInt("solver/pivots")
	unboundedRuns = expvar.NewInt("solver/unbounded")
	cycles        = expvar.NewInt("solver/cycles")
	budgetHits    = expvar.NewInt("solver/iteration_limit")

	cacheHits    = expvar.NewInt("cache/hits")
	cacheMisses  = expvar.NewInt("cache/misses")
	cacheHitRate = expvar.NewFloat("cache/hit_rate")
)

func updateCacheHitRate() {
	total := cacheHits.Value() + cacheMisses.Value()
	if total > 0 {
		cacheHitRate.Set(float64(cacheHits.Value()) / float64(total))
	}
}
