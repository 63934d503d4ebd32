package metrics

import (
	"sort"
	"sync"
	"time"

	"splendor/engine"
	"splendor/game"
)

type GameRecord struct {
	ID        int
	Seed      uint64
	Seats     []string // Seat name per player
	Winner    int      // Player index, -1 when halted
	Halted    bool
	Turns     int
	Points    []int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// WinnerSeat is the seat name of the winner, or empty when halted.
func (r GameRecord) WinnerSeat() string {
	if r.Winner < 0 {
		return ""
	}
	return r.Seats[r.Winner]
}

type MoveRecord struct {
	Game     int // GameRecord.ID
	Turn     int
	Player   int
	Seat     string
	Found    bool
	Action   game.Action
	Strategy string
	Depth    int
	Duration time.Duration
	Nodes    int64
	Cutoffs  int64
}

// Collector gathers finished games from concurrent runners.
type Collector interface {
	Add(id int, seed uint64, seats []string, res engine.Result)
	Games() []GameRecord
	Moves() []MoveRecord
	// Winners returns the winning action sequence of every game that had a winner.
	Winners() map[int][]game.Action
}

type collector struct {
	mu      sync.Mutex
	games   []GameRecord
	moves   []MoveRecord
	winners map[int][]game.Action
}

func NewCollector() Collector {
	return &collector{winners: map[int][]game.Action{}}
}

func (c *collector) Add(id int, seed uint64, seats []string, res engine.Result) {
	record := GameRecord{
		ID:        id,
		Seed:      seed,
		Seats:     seats,
		Winner:    res.Winner,
		Halted:    res.Halted,
		Turns:     res.Turns,
		Points:    res.Points,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Duration:  res.Duration,
	}

	moves := make([]MoveRecord, 0, len(res.Moves))
	for _, m := range res.Moves {
		moves = append(moves, MoveRecord{
			Game:     id,
			Turn:     m.Turn,
			Player:   m.Player,
			Seat:     seats[m.Player],
			Found:    m.Found,
			Action:   m.Action,
			Strategy: m.Metrics.Strategy,
			Depth:    m.Metrics.Depth,
			Duration: m.Metrics.Duration,
			Nodes:    m.Metrics.Nodes,
			Cutoffs:  m.Metrics.Cutoffs,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.games = append(c.games, record)
	c.moves = append(c.moves, moves...)
	if res.Winner >= 0 {
		c.winners[id] = res.History[res.Winner]
	}
}

// Games returns the records ordered by game ID.
func (c *collector) Games() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	games := append([]GameRecord(nil), c.games...)
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Moves returns the records ordered by game, then turn.
func (c *collector) Moves() []MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	moves := append([]MoveRecord(nil), c.moves...)
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].Game != moves[j].Game {
			return moves[i].Game < moves[j].Game
		}
		return moves[i].Turn < moves[j].Turn
	})
	return moves
}

func (c *collector) Winners() map[int][]game.Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	winners := make(map[int][]game.Action, len(c.winners))
	for id, actions := range c.winners {
		winners[id] = actions
	}
	return winners
}

type dummyCollector struct{}

// NewDummyCollector discards everything, for runs that keep no records.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Add(int, uint64, []string, engine.Result) {}
func (c *dummyCollector) Games() []GameRecord                      { return nil }
func (c *dummyCollector) Moves() []MoveRecord                      { return nil }
func (c *dummyCollector) Winners() map[int][]game.Action           { return nil }
