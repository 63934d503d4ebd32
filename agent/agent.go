// Package agent binds the generic searcher to the game rules and heuristics.
package agent

import (
	"errors"
	"fmt"

	"splendor/game"
	"splendor/searcher"
)

// Strategy names accepted by New.
const (
	StrategyRandom    = "random"
	StrategyAlphaBeta = "alphabeta"
	StrategyMaxN      = "maxn"
	StrategyWeighted  = "weighted"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Agent chooses the next action for the player to move. It returns false when
// that player has no legal action.
type Agent interface {
	Name() string
	FindMove(g *game.Game) (game.Action, bool)
}

// Metered is implemented by agents that record search metrics. Not every
// agent does; use a type assertion to check.
type Metered interface {
	Last() searcher.SearchMetrics
}

// Spec selects a strategy and its look-ahead depth.
type Spec struct {
	Strategy string `hcl:"strategy" json:"strategy"`
	Depth    int    `hcl:"depth,optional" json:"depth,omitempty"`
}

func (s Spec) String() string {
	if s.Strategy == StrategyRandom {
		return s.Strategy
	}
	return fmt.Sprintf("%s-%d", s.Strategy, s.Depth)
}

// New builds the agent described by spec. Each agent owns its searcher, so
// agents must not be shared between concurrent games.
func New(spec Spec, options ...searcher.Option) (Agent, error) {
	switch spec.Strategy {
	case StrategyRandom:
		return NewRandom(options...), nil
	case StrategyAlphaBeta:
		return NewAlphaBeta(spec.Depth, options...), nil
	case StrategyMaxN:
		return NewMaxN(spec.Depth, options...), nil
	case StrategyWeighted:
		return NewWeighted(spec.Depth, options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec.Strategy)
	}
}

func newSearcher(options ...searcher.Option) *searcher.Searcher[*game.Game, game.Action] {
	return searcher.New[*game.Game, game.Action](func() *game.Game { return &game.Game{} }, options...)
}

// Value scores g for player as a search evaluation.
func Value(g *game.Game, player int) float64 {
	return float64(game.GameValueFor(g, player))
}

// Values appends the score of every player of g to dst.
func Values(g *game.Game, dst []float64) []float64 {
	var buf [game.MaxPlayers]int
	for _, v := range game.GameValueForAllPlayers(g, buf[:0]) {
		dst = append(dst, float64(v))
	}
	return dst
}
