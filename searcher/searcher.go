package searcher

import (
	"math"

	"splendor/pool"

	"golang.org/x/exp/rand"
)

// Searcher picks actions for states of type S. Each searcher owns the pools
// its recursion draws from, so it must not be shared between goroutines;
// concurrent searches need separate searchers.
type Searcher[S State[S, A], A any] struct {
	rng     *rand.Rand
	metrics MetricsCollector
	last    SearchMetrics

	actions *pool.Pool[*[]A]
	states  *pool.Pool[S]
	vectors *pool.Pool[*[]float64]
	ties    *pool.Pool[*[]int]
}

// New returns a searcher. clone allocates a fresh state for the pool; it is
// usually the state's Clone method applied to any existing state.
func New[S State[S, A], A any](clone func() S, options ...Option) *Searcher[S, A] {
	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}

	s := &Searcher[S, A]{
		rng:     cfg.rng,
		metrics: NewNoMetricsCollector(),
		actions: pool.NewSlices[A](64),
		states:  pool.NewObjects(clone),
		vectors: pool.NewSlices[float64](4),
		ties:    pool.NewSlices[int](8),
	}
	if cfg.metrics {
		s.metrics = NewMetricsCollector(cfg.clock)
	}
	if cfg.poolLimit > 0 {
		s.actions.SetLimit(cfg.poolLimit)
		s.states.SetLimit(cfg.poolLimit)
		s.vectors.SetLimit(cfg.poolLimit)
		s.ties.SetLimit(cfg.poolLimit)
	}
	return s
}

// Last returns the metrics of the most recent search. It is empty unless the
// searcher was built WithMetrics.
func (s *Searcher[S, A]) Last() SearchMetrics {
	return s.last
}

// Random picks a legal action uniformly.
func (s *Searcher[S, A]) Random(state S) (A, bool) {
	var zero A
	s.metrics.Start("random", 0)
	defer s.complete()

	s.enter()
	defer s.leave()

	actions := s.legal(state)
	if len(actions) == 0 {
		return zero, false
	}
	return actions[s.rng.Intn(len(actions))], true
}

func (s *Searcher[S, A]) complete() {
	s.last = s.metrics.Complete()
}

func (s *Searcher[S, A]) enter() {
	s.actions.Start()
	s.states.Start()
	s.vectors.Start()
	s.ties.Start()
}

func (s *Searcher[S, A]) leave() {
	s.ties.End()
	s.vectors.End()
	s.states.End()
	s.actions.End()
}

// legal returns the actions of state in a pooled slice valid until leave.
func (s *Searcher[S, A]) legal(state S) []A {
	buf := s.actions.Get()
	*buf = state.AppendActions(*buf)
	return *buf
}

// replay overwrites the pooled state dst with parent followed by a.
func replay[S State[S, A], A any](dst, parent S, a A) S {
	dst.CopyFrom(parent)
	dst.Play(a)
	return dst
}

// tieBreaker collects the indexes of equally best actions.
type tieBreaker struct {
	best    float64
	indexes *[]int
}

func (s *Searcher[S, A]) newTieBreaker() tieBreaker {
	return tieBreaker{best: math.Inf(-1), indexes: s.ties.Get()}
}

func (t *tieBreaker) offer(i int, v float64) {
	switch {
	case v > t.best:
		t.best = v
		*t.indexes = append((*t.indexes)[:0], i)
	case v == t.best:
		*t.indexes = append(*t.indexes, i)
	}
}

// pick chooses uniformly among the best indexes.
func (t *tieBreaker) pick(rng *rand.Rand) int {
	ties := *t.indexes
	if len(ties) <= 1 {
		return firstOr(ties, 0)
	}
	return ties[rng.Intn(len(ties))]
}

func firstOr(s []int, fallback int) int {
	if len(s) == 0 {
		return fallback
	}
	return s[0]
}
