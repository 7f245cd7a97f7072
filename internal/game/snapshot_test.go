package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_PlayerProjection(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 3))
	require.True(t, g.BuyProperty(0, 1))
	require.True(t, g.MortgageProperty(0, 3))
	g.Players[1].GetOutOfJailCards = 1

	s := g.Snapshot()
	require.Len(t, s.Players, 3)

	p0 := s.Players[0]
	require.Len(t, p0.Properties, 2)
	// Properties come out in board order regardless of purchase order.
	assert.Equal(t, 1, p0.Properties[0].Position)
	assert.Equal(t, "Baltic Avenue", p0.Properties[1].Name)
	assert.True(t, p0.Properties[1].Mortgaged)
	assert.Equal(t, 1380+30, p0.Cash)

	assert.Equal(t, 1, s.Players[1].JailCards)
}

func TestSnapshot_HidesDeckOrder(t *testing.T) {
	g := newTestGame(t)
	g.DrawCard(DeckChance, 0)

	s := g.Snapshot()
	assert.Equal(t, g.Chance.Remaining(), s.Decks.ChanceDraw)
	assert.Equal(t, g.Chance.DiscardCount(), s.Decks.ChanceDiscard)
	assert.Equal(t, 17, s.Decks.CommunityChestDraw)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Description",
		"serialized snapshots never carry card contents")
}

func TestSnapshot_AuctionView(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.StartAuction(5, 0))
	require.True(t, g.ActiveAuction.PlaceBid(1, 40))

	s := g.Snapshot()
	require.NotNil(t, s.Auction)
	assert.Equal(t, 5, s.Auction.Position)
	assert.Equal(t, "Reading Railroad", s.Auction.PropertyName)
	assert.Equal(t, 40, s.Auction.CurrentBid)
	assert.Equal(t, 1, s.Auction.HighBidder)
	assert.ElementsMatch(t, []int{0, 1, 2}, s.Auction.ActiveBidders)

	g.ActiveAuction = nil
	assert.Nil(t, g.Snapshot().Auction)
}

func TestSnapshot_RollCopyIsDetached(t *testing.T) {
	g := newTestGame(t)
	g.RollDice()

	s := g.Snapshot()
	require.NotNil(t, s.LastRoll)
	assert.NotSame(t, g.LastRoll, s.LastRoll)
	assert.Equal(t, *g.LastRoll, *s.LastRoll)
}
