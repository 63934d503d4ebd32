package searcher

// MaxN searches depth plies where every mover maximizes its own coordinate of
// the evaluation vector. There is no pruning, so the cost is roughly
// branching^depth evaluations of every player.
func (s *Searcher[S, A]) MaxN(state S, depth int, eval EvaluateAll[S]) (A, bool) {
	var zero A
	depth = max(depth, 1)
	s.metrics.Start("maxn", depth)
	defer s.complete()

	s.enter()
	defer s.leave()

	actions := s.legal(state)
	if len(actions) == 0 {
		return zero, false
	}

	next := s.states.Get()
	mover := state.Player()
	scores := s.vectors.Get()
	ties := s.newTieBreaker()
	for i, a := range actions {
		s.maxN(replay(next, state, a), depth-1, eval, scores)
		ties.offer(i, (*scores)[mover])
	}
	return actions[ties.pick(s.rng)], true
}

// maxN stores the backed-up score vector of state in out.
func (s *Searcher[S, A]) maxN(state S, depth int, eval EvaluateAll[S], out *[]float64) {
	s.metrics.AddNode()
	if depth == 0 || state.Terminal() {
		*out = eval(state, (*out)[:0])
		return
	}

	s.enter()
	defer s.leave()

	actions := s.legal(state)
	if len(actions) == 0 {
		*out = eval(state, (*out)[:0])
		return
	}

	next := s.states.Get()
	mover := state.Player()
	best := s.vectors.Get()
	scores := s.vectors.Get()
	for i, a := range actions {
		s.maxN(replay(next, state, a), depth-1, eval, scores)
		if i == 0 || (*scores)[mover] > (*best)[mover] {
			*best = append((*best)[:0], *scores...)
		}
	}
	*out = append((*out)[:0], *best...)
}
