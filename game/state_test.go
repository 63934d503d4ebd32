package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	decks := Catalog()
	require.Len(t, decks[0], 40)
	require.Len(t, decks[1], 30)
	require.Len(t, decks[2], 20)
	require.Len(t, NobleCatalog(), 10)

	ids := map[int]bool{}
	for tier, deck := range decks {
		for _, c := range deck {
			require.Equal(t, tier+1, c.Tier)
			require.False(t, ids[c.ID], "Card ids should be unique")
			ids[c.ID] = true
			require.Zero(t, c.Cost[Gold], "Cards never cost gold")
		}
	}
}

func TestNewGame(t *testing.T) {
	for _, tc := range []struct {
		players  int
		perColor int
	}{
		{2, 4},
		{3, 5},
		{4, 7},
	} {
		g := NewGame(tc.players, newRand(1))

		require.Len(t, g.Players, tc.players)
		require.Len(t, g.Nobles, tc.players+1)
		for tier := range g.Table {
			require.Len(t, g.Table[tier], TableSlots)
		}
		require.Len(t, g.Decks[0], 36)
		require.Len(t, g.Decks[1], 26)
		require.Len(t, g.Decks[2], 16)
		for c := Color(0); c < NumRealColors; c++ {
			require.Equal(t, tc.perColor, g.Bank[c])
		}
		require.Equal(t, GoldCoins, g.Bank[Gold])
		for _, p := range g.Players {
			require.True(t, p.Coins.IsZero())
			require.Zero(t, p.Points)
			require.Empty(t, p.Cards)
		}
		require.Equal(t, 0, g.Turn)
	}

	t.Run("same seed deals the same table", func(t *testing.T) {
		require.Equal(t, NewGame(3, newRand(7)), NewGame(3, newRand(7)))
	})

	t.Run("unsupported player count panics", func(t *testing.T) {
		require.Panics(t, func() { NewGame(1, newRand(1)) })
		require.Panics(t, func() { NewGame(5, newRand(1)) })
	})
}

func TestClone(t *testing.T) {
	g := NewGame(2, newRand(3))
	g.Players[0].Reserved = append(g.Players[0].Reserved, g.Table[0][0])

	c := g.Clone()
	require.Equal(t, g, c)

	c.Players[0].Reserved[0].Points = 99
	c.Table[1][0].ID = -1
	c.Bank[Red] = 0
	c.Play(PossibleActions(c)[0])

	require.NotEqual(t, 99, g.Players[0].Reserved[0].Points, "Clone should not share player slices")
	require.NotEqual(t, -1, g.Table[1][0].ID, "Clone should not share table slices")
	require.Equal(t, 4, g.Bank[Red])
	require.Equal(t, 0, g.Turn)
}

func TestCopyFromReusesBuffers(t *testing.T) {
	src := NewGame(3, newRand(5))
	dst := NewGame(2, newRand(6))

	dst.CopyFrom(src)

	require.Equal(t, src, dst)
}

func TestGameSerializes(t *testing.T) {
	g := NewGame(2, newRand(9))
	g.Play(PossibleActions(g)[0])

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded Game
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, g.Bank, decoded.Bank)
	require.Equal(t, g.Table, decoded.Table)
	require.Equal(t, g.Turn, decoded.Turn)
	require.Equal(t, g.Players[0].Coins, decoded.Players[0].Coins)
}

func TestLeader(t *testing.T) {
	g := emptyGame(3)
	g.Players[1].Points = 15
	g.Players[2].Points = 15
	g.Players[1].Cards = make([]Card, 6)
	g.Players[2].Cards = make([]Card, 5)

	require.True(t, g.Over())
	require.Equal(t, 2, g.Leader(), "Fewer bought cards should break a points tie")
}
