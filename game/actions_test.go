package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreeCoinCombinations(t *testing.T) {
	t.Run("five stocked colors", func(t *testing.T) {
		combos := ThreeCoinCombinations(fullBank(2))

		require.Len(t, combos, 10, "C(5,3) combinations expected")
		seen := map[CoinSet]bool{}
		for _, c := range combos {
			require.Equal(t, 3, c.Total())
			require.Zero(t, c[Gold])
			require.False(t, seen[c], "Combinations should be distinct")
			seen[c] = true
		}
	})

	t.Run("four stocked colors", func(t *testing.T) {
		bank := fullBank(2)
		bank[Green] = 0

		combos := ThreeCoinCombinations(bank)

		require.Len(t, combos, 4, "C(4,3) combinations expected")
		for _, c := range combos {
			require.Zero(t, c[Green])
		}
	})

	t.Run("gold is never offered", func(t *testing.T) {
		require.Empty(t, ThreeCoinCombinations(coins(int(Gold), 5, int(Red), 3)))
	})
}

func TestCoinActions(t *testing.T) {
	t.Run("take two needs a stack of four", func(t *testing.T) {
		bank := coins(int(White), 4, int(Blue), 3, int(Green), 1)

		actions := appendCoinActions(nil, bank)

		require.Len(t, actions, 2)
		require.Equal(t, coins(int(White), 1, int(Blue), 1, int(Green), 1), actions[0].Coins)
		require.Equal(t, coins(int(White), 2), actions[1].Coins)
	})

	t.Run("fewer than three stacks are taken together", func(t *testing.T) {
		bank := coins(int(Red), 2, int(Black), 1, int(Gold), 5)

		actions := appendCoinActions(nil, bank)

		require.Equal(t, []Action{{Type: TakeCoins, Coins: coins(int(Red), 1, int(Black), 1)}}, actions)
	})

	t.Run("empty bank offers nothing", func(t *testing.T) {
		require.Empty(t, appendCoinActions(nil, coins(int(Gold), 5)))
	})
}

func TestBuyActions(t *testing.T) {
	affordable := Card{ID: 11, Tier: 1, Color: Red, Cost: coins(int(White), 2)}
	tooExpensive := Card{ID: 12, Tier: 2, Color: Blue, Cost: coins(int(Black), 5)}

	t.Run("one affordable table card", func(t *testing.T) {
		g := emptyGame(2)
		g.Table[0] = []Card{affordable}
		g.Table[1] = []Card{tooExpensive}
		g.Players[0].Coins = coins(int(White), 2)

		buys := g.appendBuyActions(nil)

		require.Equal(t, []Action{{Type: Buy, Coins: coins(int(White), -2), CardID: 11, Tier: 1}}, buys)
	})

	t.Run("the same card only in the reserved list", func(t *testing.T) {
		g := emptyGame(2)
		g.Table[1] = []Card{tooExpensive}
		g.Players[0].Coins = coins(int(White), 2)
		g.Players[0].Reserved = []Card{affordable}

		buys := g.appendBuyActions(nil)

		require.Equal(t, []Action{{Type: BuyReserve, Coins: coins(int(White), -2), CardID: 11, Tier: 1}}, buys)
	})

	t.Run("only the active player's coins count", func(t *testing.T) {
		g := emptyGame(2)
		g.Table[0] = []Card{affordable}
		g.Players[1].Coins = coins(int(White), 2)

		require.Empty(t, g.appendBuyActions(nil))
	})
}

func TestReserveActions(t *testing.T) {
	card := Card{ID: 3, Tier: 3, Color: Green, Cost: coins(int(Red), 7)}

	t.Run("grants gold while the bank has some", func(t *testing.T) {
		g := emptyGame(2)
		g.Table[2] = []Card{card}

		actions := g.appendReserveActions(nil)

		require.Equal(t, []Action{{Type: Reserve, Coins: coins(int(Gold), 1), CardID: 3, Tier: 3}}, actions)
	})

	t.Run("no gold left", func(t *testing.T) {
		g := emptyGame(2)
		g.Table[2] = []Card{card}
		g.Bank[Gold] = 0

		actions := g.appendReserveActions(nil)

		require.Len(t, actions, 1)
		require.True(t, actions[0].Coins.IsZero())
	})

	t.Run("three reserved cards block reserving", func(t *testing.T) {
		g := emptyGame(2)
		g.Table[2] = []Card{card}
		g.Players[0].Reserved = make([]Card, MaxReserved)

		require.Empty(t, g.appendReserveActions(nil))
	})
}

func TestPossibleActions(t *testing.T) {
	t.Run("fixed two-card scenario", func(t *testing.T) {
		cardA := Card{ID: 1, Tier: 1, Color: Black, Cost: coins(int(White), 1, int(Blue), 1)}
		cardB := Card{ID: 2, Tier: 1, Color: White, Cost: coins(int(Black), 3)}
		g := emptyGame(2)
		g.Table[0] = []Card{cardA, cardB}
		g.Players[0].Coins = coins(int(White), 1, int(Blue), 1, int(Green), 1, int(Red), 1)

		actions := PossibleActions(g)

		require.Len(t, actions, 18)
		counts := countByType(actions)
		require.Equal(t, 15, counts[TakeCoins])
		require.Equal(t, 1, counts[Buy])
		require.Equal(t, 2, counts[Reserve])
		require.Equal(t, 0, counts[BuyReserve])
		for _, a := range actions {
			if a.Type == Buy {
				require.Equal(t, cardA.ID, a.CardID)
			}
		}
	})

	t.Run("nothing to do", func(t *testing.T) {
		g := emptyGame(2)
		g.Bank = CoinSet{}
		expensive := Card{ID: 9, Tier: 3, Cost: coins(int(Red), 7)}
		g.Players[0].Reserved = []Card{expensive, expensive, expensive}

		require.Empty(t, PossibleActions(g))
	})
}
