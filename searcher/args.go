package searcher

import (
	"time"

	"github.com/coder/quartz"
	"golang.org/x/exp/rand"
)

type Option func(c *config)

type config struct {
	rng       *rand.Rand
	clock     quartz.Clock
	metrics   bool
	poolLimit int
}

// WithRand sets the source used for the random strategy and tie-breaks.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithMetrics records node counts and durations for every search.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// WithClock replaces the wall clock used for search durations.
func WithClock(clock quartz.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPoolLimit caps the number of cached slots in each internal pool.
func WithPoolLimit(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.poolLimit = limit
		}
	}
}

func defaultConfig() config {
	return config{
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		clock: quartz.NewReal(),
	}
}
