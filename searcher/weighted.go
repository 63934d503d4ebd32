package searcher

import "math"

// Weighted searches depth plies for the root player. Root plies take the best
// child. At an opponent ply the value is the average of the children weighted
// by the mover's own eval of each child, so replies the opponent likes count
// more. Weights are raw scores, not probabilities: they may be negative, and a
// zero total falls back to the plain mean.
func (s *Searcher[S, A]) Weighted(state S, depth int, eval Evaluate[S]) (A, bool) {
	var zero A
	depth = max(depth, 1)
	s.metrics.Start("weighted", depth)
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
		ties.offer(i, s.weighted(replay(next, state, a), depth-1, root, eval))
	}
	return actions[ties.pick(s.rng)], true
}

func (s *Searcher[S, A]) weighted(state S, depth int, root int, eval Evaluate[S]) float64 {
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
	mover := state.Player()
	if mover == root {
		best := math.Inf(-1)
		for _, a := range actions {
			best = max(best, s.weighted(replay(next, state, a), depth-1, root, eval))
		}
		return best
	}

	var sum, weightedSum, totalWeight float64
	for _, a := range actions {
		child := replay(next, state, a)
		weight := eval(child, mover)
		v := s.weighted(child, depth-1, root, eval)
		sum += v
		weightedSum += weight * v
		totalWeight += weight
	}
	if totalWeight == 0 {
		return sum / float64(len(actions))
	}
	return weightedSum / totalWeight
}
