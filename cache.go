package zerosum

import (
	"github.com/hashicorp/golang-lru"

	"github.com/timpalpant/zerosum/matrixgame"
)

// Cache memoizes solved games, keyed by their payoff matrix.
// It is safe for concurrent use.
type Cache struct {
	cache *lru.Cache
	opts  []Option
}

// NewCache returns a Cache holding up to size results. The given options
// are used for every solve it performs.
func NewCache(size int, opts ...Option) (*Cache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &Cache{cache: cache, opts: opts}, nil
}

// Solve returns the cached result for payoff, solving it on a miss.
// Failed solves are not cached.
func (c *Cache) Solve(payoff *matrixgame.PayoffMatrix) (*Result, error) {
	if payoff == nil {
		return Solve(payoff, c.opts...)
	}

	key := payoff.Key()
	if cached, ok := c.cache.Get(key); ok {
		cacheHits.Add(1)
		updateCacheHitRate()
		return cached.(*Result).Clone(), nil
	}

	cacheMisses.Add(1)
	updateCacheHitRate()
	result, err := Solve(payoff, c.opts...)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, result.Clone())
	return result, nil
}

// Len is the number of cached results.
func (c *Cache) Len() int {
	return c.cache.Len()
}
