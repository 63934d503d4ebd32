package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// mockState is a uniform game tree: every node has width actions until the
// path reaches height.
type mockState struct {
	players int
	width   int
	height  int
	turn    int
	path    []int
	played  int // Number of Play calls on this value
}

func newMockState(players, width, height int) *mockState {
	return &mockState{players: players, width: width, height: height}
}

func (m *mockState) Player() int     { return m.turn % m.players }
func (m *mockState) NumPlayers() int { return m.players }
func (m *mockState) Terminal() bool  { return len(m.path) >= m.height }

func (m *mockState) AppendActions(dst []int) []int {
	if m.Terminal() {
		return dst
	}
	for i := 0; i < m.width; i++ {
		dst = append(dst, i)
	}
	return dst
}

func (m *mockState) Play(a int) {
	m.path = append(m.path, a)
	m.turn++
	m.played++
}

func (m *mockState) Clone() *mockState {
	c := &mockState{}
	c.CopyFrom(m)
	return c
}

func (m *mockState) CopyFrom(src *mockState) {
	m.players, m.width, m.height, m.turn, m.played = src.players, src.width, src.height, src.turn, src.played
	m.path = append(m.path[:0], src.path...)
}

func (m *mockState) key() string {
	return fmt.Sprint(m.path)
}

// scores assigns a vector of per-player scores to every path of a tree.
type scores map[string][]float64

func randomScores(rng *rand.Rand, players, width, height int) scores {
	sc := scores{}
	var walk func(path []int)
	walk = func(path []int) {
		v := make([]float64, players)
		for i := range v {
			v[i] = float64(rng.Intn(21) - 10)
		}
		sc[fmt.Sprint(path)] = v
		if len(path) == height {
			return
		}
		for a := 0; a < width; a++ {
			walk(append(append([]int(nil), path...), a))
		}
	}
	walk([]int{})
	return sc
}

// zeroSum scores player 0's entry for player 0 and its negation for others.
func (sc scores) zeroSum(s *mockState, player int) float64 {
	v := sc[s.key()][0]
	if player == 0 {
		return v
	}
	return -v
}

func (sc scores) own(s *mockState, player int) float64 {
	return sc[s.key()][player]
}

func (sc scores) all(s *mockState, dst []float64) []float64 {
	return append(dst, sc[s.key()]...)
}

func newMockSearcher(seed uint64, options ...Option) *Searcher[*mockState, int] {
	options = append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, options...)
	return New[*mockState, int](func() *mockState { return &mockState{} }, options...)
}

func play(s *mockState, actions ...int) *mockState {
	c := s.Clone()
	for _, a := range actions {
		c.Play(a)
	}
	return c
}

// bruteMinimax is plain minimax without pruning, anchored on root.
func bruteMinimax(s *mockState, depth, root int, eval Evaluate[*mockState]) float64 {
	if depth == 0 || s.Terminal() {
		return eval(s, root)
	}
	best := math.Inf(-1)
	if s.Player() != root {
		best = math.Inf(1)
	}
	for _, a := range s.AppendActions(nil) {
		v := bruteMinimax(play(s, a), depth-1, root, eval)
		if s.Player() == root {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

// bruteMaxN returns the backed-up vector without pooling.
func bruteMaxN(s *mockState, depth int, eval EvaluateAll[*mockState]) []float64 {
	if depth == 0 || s.Terminal() {
		return eval(s, nil)
	}
	var best []float64
	for _, a := range s.AppendActions(nil) {
		v := bruteMaxN(play(s, a), depth-1, eval)
		if best == nil || v[s.Player()] > best[s.Player()] {
			best = v
		}
	}
	return best
}
