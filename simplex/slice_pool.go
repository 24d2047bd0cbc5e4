package simplex

import (
	"sync"

	"github.com/timpalpant/zerosum/rational"
)

var ratSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]rational.Rat, 0)
	},
}

// allocRatSlice returns an empty slice with at least the given capacity.
func allocRatSlice(capacity int) []rational.Rat {
	s := ratSlicePool.Get().([]rational.Rat)
	if cap(s) < capacity {
		return make([]rational.Rat, 0, capacity)
	}

	return s
}

func freeRatSlice(s []rational.Rat) {
	if cap(s) > 0 {
		for i := range s {
			s[i] = rational.Zero
		}
		ratSlicePool.Put(s[:0])
	}
}
