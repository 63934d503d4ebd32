package searcher

import "math"

// AlphaBeta searches depth plies with alpha-beta pruning in a two-sided
// framing: plies where the root player moves maximize, every other ply
// minimizes. Leaves are scored by eval from the root player's point of view.
// Equally good root actions are broken uniformly at random.
func (s *Searcher[S, A]) AlphaBeta(state S, depth int, eval Evaluate[S]) (A, bool) {
	var zero A
	depth = max(depth, 1)
	s.metrics.Start("alphabeta", depth)
	defer s.complete()

	s.enter()
	defer s.leave()

	actions := s.legal(state)
	if len(actions) == 0 {
		return zero, false
	}

	next := s.states.Get()
	root := state.Player()
	ties := s.newTieBreaker()
	for i, a := range actions {
		// Search just below the best value so far so that a child equal to it
		// comes back exact and is recorded as a tie.
		alpha := math.Nextafter(ties.best, math.Inf(-1))
		v := s.alphaBeta(replay(next, state, a), depth-1, alpha, math.Inf(1), root, eval)
		ties.offer(i, v)
	}
	return actions[ties.pick(s.rng)], true
}

func (s *Searcher[S, A]) alphaBeta(state S, depth int, alpha, beta float64, root int, eval Evaluate[S]) float64 {
	s.metrics.AddNode()
	if depth == 0 || state.Terminal() {
		return eval(state, root)
	}

	s.enter()
	defer s.leave()

	actions := s.legal(state)
	if len(actions) == 0 {
		return eval(state, root)
	}

	next := s.states.Get()
	if state.Player() == root {
		best := math.Inf(-1)
		for _, a := range actions {
			best = max(best, s.alphaBeta(replay(next, state, a), depth-1, alpha, beta, root, eval))
			alpha = max(alpha, best)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, a := range actions {
		best = min(best, s.alphaBeta(replay(next, state, a), depth-1, alpha, beta, root, eval))
		beta = min(beta, best)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
