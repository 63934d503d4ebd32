// Package engine runs games between agents and validates moves from outside
// players.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"splendor/agent"
	"splendor/game"
	"splendor/meta"
	"splendor/searcher"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrCoinLeak    = errors.New("coin totals changed")
)

// MoveRecord describes one turn. Passed turns have Found false.
type MoveRecord struct {
	Turn      int                    `json:"turn"`
	Player    int                    `json:"player"`
	Action    game.Action            `json:"action"`
	Found     bool                   `json:"found"`
	Discarded game.CoinSet           `json:"discarded"`
	Metrics   searcher.SearchMetrics `json:"metrics"`
}

type Result struct {
	Winner    int             `json:"winner"` // -1 when halted
	Turns     int             `json:"turns"`
	Points    []int           `json:"points"`
	Halted    bool            `json:"halted"`
	History   [][]game.Action `json:"history"` // Per player
	Moves     []MoveRecord    `json:"moves"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Duration  time.Duration   `json:"duration"`
}

type Option func(e *Engine)

// WithMaxTurns overrides meta.MaxTurns.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithVerify checks after every turn that no coins were created or lost.
func WithVerify() Option {
	return func(e *Engine) {
		e.verify = true
	}
}

func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

type Engine struct {
	Game     *game.Game
	agents   []agent.Agent
	maxTurns int
	verify   bool
	clock    quartz.Clock
}

// New seats one agent per player of g.
func New(g *game.Game, agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != g.NumPlayers() {
		panic("number of players does not match number of agents")
	}

	e := &Engine{
		Game:     g,
		agents:   agents,
		maxTurns: meta.MaxTurns,
		clock:    quartz.NewReal(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until a player reaches the winning score, every player is stuck,
// or the turn limit is hit. The last two halt the game without a winner.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	g := e.Game
	totals := g.CoinTotals()
	res := Result{
		Winner:    -1,
		History:   make([][]game.Action, g.NumPlayers()),
		StartTime: e.clock.Now(),
	}

	log.Debug().Int("players", g.NumPlayers()).Msg("starting game")

	passes := 0
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return e.finish(res), err
		}
		if res.Turns >= e.maxTurns {
			log.Warn().Int("turns", res.Turns).Msg("turn limit reached, halting game")
			res.Halted = true
			break
		}
		if passes >= g.NumPlayers() {
			log.Warn().Int("turns", res.Turns).Msg("no player can move, halting game")
			res.Halted = true
			break
		}

		record := e.turn()
		res.Moves = append(res.Moves, record)
		res.Turns++
		if !record.Found {
			passes++
			continue
		}
		passes = 0
		res.History[record.Player] = append(res.History[record.Player], record.Action)

		if e.verify && g.CoinTotals() != totals {
			return e.finish(res), fmt.Errorf("%w: turn %d, %s became %s", ErrCoinLeak, record.Turn, totals, g.CoinTotals())
		}
	}

	res = e.finish(res)
	if !res.Halted {
		res.Winner = g.Leader()
		log.Debug().Int("winner", res.Winner).Int("turns", res.Turns).Msg("game over")
	}
	return res, nil
}

// turn asks the active agent for a move and applies it.
func (e *Engine) turn() MoveRecord {
	g := e.Game
	player := g.Player()
	record := MoveRecord{Turn: g.Turn, Player: player}

	a := e.agents[player]
	record.Action, record.Found = a.FindMove(g)
	if m, ok := a.(agent.Metered); ok {
		record.Metrics = m.Last()
	}

	if !record.Found {
		log.Debug().Int("player", player).Str("agent", a.Name()).Msg("no legal action, passing")
		g.Pass()
		return record
	}

	g.Play(record.Action)
	record.Discarded = DiscardExcess(g, player)
	log.Trace().Int("player", player).Stringer("action", record.Action).Msg("played")
	return record
}

func (e *Engine) finish(res Result) Result {
	res.EndTime = e.clock.Now()
	res.Duration = res.EndTime.Sub(res.StartTime)
	res.Points = make([]int, e.Game.NumPlayers())
	for i := range e.Game.Players {
		res.Points[i] = e.Game.Players[i].Points
	}
	return res
}
