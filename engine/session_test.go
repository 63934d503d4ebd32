package engine

import (
	"sync"
	"testing"

	"splendor/game"
	"splendor/meta"

	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	t.Run("accepting a legal move", func(t *testing.T) {
		s := NewSession(newGame(2, 1))
		move := s.Legal()[0]

		require.NoError(t, s.Play(move))

		u := <-s.Updates()
		require.Equal(t, 0, u.Player)
		require.Equal(t, move, u.Move)
		require.Equal(t, 1, u.Game.Turn)
		require.Equal(t, 1, s.Game().Player())
	})

	t.Run("rejecting an illegal move", func(t *testing.T) {
		s := NewSession(newGame(2, 1))
		var tooMany game.CoinSet
		tooMany[game.White] = 3

		err := s.Play(game.Action{Type: game.TakeCoins, Coins: tooMany})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Zero(t, s.Game().Turn)
	})

	t.Run("snapshots are independent", func(t *testing.T) {
		s := NewSession(newGame(2, 1))
		g := s.Game()
		g.Players[0].Points = game.WinningPoints

		require.NotEmpty(t, s.Legal())
		require.Zero(t, s.Game().Players[0].Points)
	})

	t.Run("ending the game", func(t *testing.T) {
		g := stuckGame()
		g.Bank = game.CoinSet{4, 4, 4, 4, 4, 5}
		g.Players[0].Points = game.WinningPoints - 1
		g.Table[0] = []game.Card{{ID: 1, Tier: 1, Color: game.Red, Points: 1}}
		s := NewSession(g)

		require.NoError(t, s.Play(game.Action{Type: game.Buy, CardID: 1, Tier: 1}))

		u, ok := <-s.Updates()
		require.True(t, ok)
		require.True(t, u.Game.Over())
		_, ok = <-s.Updates()
		require.False(t, ok, "Updates should close after the final move")
		require.ErrorIs(t, s.Play(game.Action{}), ErrGameOver)
	})

	t.Run("skipping players without a move", func(t *testing.T) {
		g := stuckGame()
		g.Players[0].Reserved = []game.Card{{ID: 4, Tier: 2, Color: game.Blue}}
		s := NewSession(g)

		require.NoError(t, s.Play(game.Action{Type: game.BuyReserve, CardID: 4, Tier: 2}))

		u := <-s.Updates()
		require.Equal(t, 3, u.Game.Turn, "Both players should have passed once")
		_, ok := <-s.Updates()
		require.False(t, ok, "Nobody can move afterwards, so the session should end")
		require.Empty(t, s.Legal())
	})

	t.Run("dropping the oldest unread update", func(t *testing.T) {
		s := NewSession(newGame(2, 1))
		moves := meta.SessionBuffer + 4
		for i := 0; i < moves; i++ {
			require.NoError(t, s.Play(s.Legal()[0]))
		}

		var turns []int
		for len(s.Updates()) > 0 {
			turns = append(turns, (<-s.Updates()).Game.Turn)
		}
		require.Len(t, turns, meta.SessionBuffer)
		require.IsIncreasing(t, turns)
		require.Equal(t, s.Game().Turn, turns[len(turns)-1])
		requireSane(t, s.Game())
	})

	t.Run("concurrent players", func(t *testing.T) {
		s := NewSession(newGame(3, 2))
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if legal := s.Legal(); len(legal) > 0 {
					_ = s.Play(legal[0])
				}
			}()
		}
		wg.Wait()

		requireSane(t, s.Game())
		require.Equal(t, len(s.Updates()), s.Game().Turn)
	})
}
