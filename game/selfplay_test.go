package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSelfPlayConservesCoins(t *testing.T) {
	for players := MinPlayers; players <= MaxPlayers; players++ {
		rng := newRand(uint64(players))
		g := NewGame(players, rng)
		totals := g.CoinTotals()
		var buf []Action

		for step := 0; step < 2000 && !g.Over(); step++ {
			buf = g.AppendActions(buf[:0])
			if len(buf) == 0 {
				g.Turn++
				continue
			}
			a := buf[rng.Intn(len(buf))]
			TakeAction(g, a)

			require.Equal(t, totals, g.CoinTotals(), "coin totals changed after %s", a)
			require.True(t, g.Bank.NonNegative(), "bank went negative after %s", a)
			for i := range g.Players {
				p := &g.Players[i]
				require.True(t, p.Coins.NonNegative(), "player %d went negative after %s", i, a)
				require.LessOrEqual(t, len(p.Reserved), MaxReserved)
			}
		}
	}
}
