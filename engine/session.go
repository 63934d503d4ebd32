package engine

import (
	"fmt"
	"slices"
	"sync"

	"splendor/game"
	"splendor/meta"

	"github.com/rs/zerolog/log"
)

// Update is published after every accepted move. Game is a snapshot owned by
// the receiver.
type Update struct {
	Player    int          `json:"player"`
	Move      game.Action  `json:"move"`
	Discarded game.CoinSet `json:"discarded"`
	Game      *game.Game   `json:"game"`
}

// Session referees a game whose moves come from outside, such as a human at a
// terminal or a remote client. It is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	game     *game.Game
	updates  chan Update
	gameOver bool
}

func NewSession(g *game.Game) *Session {
	s := &Session{
		game:    g,
		updates: make(chan Update, meta.SessionBuffer),
	}
	s.skipStuckPlayers()
	if s.gameOver {
		close(s.updates)
	}
	return s
}

// Game returns a copy of the current state.
func (s *Session) Game() *game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// Updates is closed once the game is over. When the reader falls behind the
// oldest unread update is dropped.
func (s *Session) Updates() <-chan Update {
	return s.updates
}

// Legal lists the moves the active player may make.
func (s *Session) Legal() []game.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver {
		return nil
	}
	return game.PossibleActions(s.game)
}

// Play applies a move for the active player if it is legal.
func (s *Session) Play(a game.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ErrGameOver
	}
	if !slices.Contains(game.PossibleActions(s.game), a) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, a)
	}

	player := s.game.Player()
	s.game.Play(a)
	discarded := DiscardExcess(s.game, player)
	s.skipStuckPlayers()

	s.publish(Update{Player: player, Move: a, Discarded: discarded, Game: s.game.Clone()})
	if s.gameOver {
		close(s.updates)
	}
	return nil
}

// skipStuckPlayers passes for players without a legal action. The game ends
// when someone has won or nobody can move.
func (s *Session) skipStuckPlayers() {
	for passes := 0; !s.game.Over(); passes++ {
		if passes == s.game.NumPlayers() {
			log.Warn().Int("turn", s.game.Turn).Msg("no player can move, ending session")
			s.gameOver = true
			return
		}
		if len(game.PossibleActions(s.game)) > 0 {
			return
		}
		s.game.Pass()
	}
	s.gameOver = true
}

func (s *Session) publish(u Update) {
	for {
		select {
		case s.updates <- u:
			return
		default:
		}
		select {
		case dropped := <-s.updates:
			log.Debug().Int("player", dropped.Player).Msg("dropping unread session update")
		default:
		}
	}
}
