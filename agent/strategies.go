package agent

import (
	"splendor/game"
	"splendor/searcher"
)

// Random plays a uniformly chosen legal action.
type Random struct {
	search *searcher.Searcher[*game.Game, game.Action]
}

func NewRandom(options ...searcher.Option) *Random {
	return &Random{search: newSearcher(options...)}
}

func (a *Random) Name() string { return StrategyRandom }

func (a *Random) FindMove(g *game.Game) (game.Action, bool) {
	return a.search.Random(g)
}

func (a *Random) Last() searcher.SearchMetrics { return a.search.Last() }

// AlphaBeta plays the minimax action against the combined opposition.
type AlphaBeta struct {
	Depth  int
	search *searcher.Searcher[*game.Game, game.Action]
}

func NewAlphaBeta(depth int, options ...searcher.Option) *AlphaBeta {
	return &AlphaBeta{Depth: depth, search: newSearcher(options...)}
}

func (a *AlphaBeta) Name() string { return StrategyAlphaBeta }

func (a *AlphaBeta) FindMove(g *game.Game) (game.Action, bool) {
	return a.search.AlphaBeta(g, a.Depth, Value)
}

func (a *AlphaBeta) Last() searcher.SearchMetrics { return a.search.Last() }

// MaxN assumes every player maximizes their own score.
type MaxN struct {
	Depth  int
	search *searcher.Searcher[*game.Game, game.Action]
}

func NewMaxN(depth int, options ...searcher.Option) *MaxN {
	return &MaxN{Depth: depth, search: newSearcher(options...)}
}

func (a *MaxN) Name() string { return StrategyMaxN }

func (a *MaxN) FindMove(g *game.Game) (game.Action, bool) {
	return a.search.MaxN(g, a.Depth, Values)
}

func (a *MaxN) Last() searcher.SearchMetrics { return a.search.Last() }

// Weighted expects opponents to favour replies that score well for them.
type Weighted struct {
	Depth  int
	search *searcher.Searcher[*game.Game, game.Action]
}

func NewWeighted(depth int, options ...searcher.Option) *Weighted {
	return &Weighted{Depth: depth, search: newSearcher(options...)}
}

func (a *Weighted) Name() string { return StrategyWeighted }

func (a *Weighted) FindMove(g *game.Game) (game.Action, bool) {
	return a.search.Weighted(g, a.Depth, Value)
}

func (a *Weighted) Last() searcher.SearchMetrics { return a.search.Last() }
