package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTradeProperty_GroupBuildingsBlock(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))
	require.True(t, g.BuyProperty(0, 3))

	assert.True(t, g.CanTradeProperty(0, 1))

	// A house on Baltic freezes the whole brown group out of trades.
	g.Ownership[3].Houses = 1
	assert.False(t, g.CanTradeProperty(0, 1))
	assert.False(t, g.CanTradeProperty(0, 3))

	assert.False(t, g.CanTradeProperty(1, 1), "not the owner")
}

func TestCanTradeProperty_MortgagedStillTradable(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 5)) // Reading Railroad
	require.True(t, g.MortgageProperty(0, 5))

	assert.True(t, g.CanTradeProperty(0, 5))
}

func TestProposeTrade_Validation(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))

	assert.Nil(t, g.ProposeTrade(0, 0, TradeOffer{Cash: 10}, TradeOffer{}), "self-trade")
	assert.Nil(t, g.ProposeTrade(0, 1, TradeOffer{Cash: 9999}, TradeOffer{}), "more cash than held")
	assert.Nil(t, g.ProposeTrade(0, 1, TradeOffer{Properties: []int{3}}, TradeOffer{}), "unowned property")

	tr := g.ProposeTrade(0, 1, TradeOffer{Properties: []int{1}}, TradeOffer{Cash: 100})
	require.NotNil(t, tr)
	assert.Equal(t, TradePending, tr.Status)
	assert.Equal(t, 1, g.Trades.ActiveCount())
}

func TestExecuteTrade_FullSwap(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))
	g.Players[1].GetOutOfJailCards = 1

	tr := g.ProposeTrade(0, 1,
		TradeOffer{Cash: 50, Properties: []int{1}},
		TradeOffer{Cash: 200, JailCards: 1})
	require.NotNil(t, tr)
	require.NotNil(t, g.Trades.Accept(tr.ID))

	require.True(t, g.ExecuteTrade(tr))
	assert.Equal(t, 1440-50+200, g.Players[0].Cash)
	assert.Equal(t, 1500+50-200, g.Players[1].Cash)
	assert.Equal(t, 1, g.Ownership[1].OwnerID)
	assert.True(t, g.Players[1].OwnsProperty(1))
	assert.False(t, g.Players[0].OwnsProperty(1))
	assert.Equal(t, 1, g.Players[0].GetOutOfJailCards)
	assert.Equal(t, 0, g.Players[1].GetOutOfJailCards)
}

func TestExecuteTrade_AbortsOnStateDrift(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))

	tr := g.ProposeTrade(0, 1, TradeOffer{Cash: 100}, TradeOffer{Properties: nil})
	require.NotNil(t, tr)
	require.NotNil(t, g.Trades.Accept(tr.ID))

	// The proposer spends down below the promised cash before execution.
	g.Players[0].Cash = 50

	assert.False(t, g.ExecuteTrade(tr))
	assert.Equal(t, 50, g.Players[0].Cash, "no partial transfer")
	assert.Equal(t, 1500, g.Players[1].Cash)

	assert.Equal(t, TradeFailed, tr.Status)

	events := g.Events.Events()
	assert.Equal(t, EventTradeFailed, events[len(events)-1].Type)
}

func TestExecuteTrade_RequiresAcceptance(t *testing.T) {
	g := newTestGame(t)
	tr := g.ProposeTrade(0, 1, TradeOffer{Cash: 10}, TradeOffer{})
	require.NotNil(t, tr)

	assert.False(t, g.ExecuteTrade(tr), "pending trade cannot execute")
	require.NotNil(t, g.Trades.Reject(tr.ID))
	assert.False(t, g.ExecuteTrade(tr))
}

func TestExecuteTrade_MortgagedTransferFee(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 39)) // Boardwalk
	require.True(t, g.MortgageProperty(0, 39))

	tr := g.ProposeTrade(0, 1, TradeOffer{Properties: []int{39}}, TradeOffer{Cash: 300})
	require.NotNil(t, tr)
	require.NotNil(t, g.Trades.Accept(tr.ID))
	require.True(t, g.ExecuteTrade(tr))

	// Receiver pays 10% of the 200 mortgage value on top of the cash side.
	assert.Equal(t, 1500-300-20, g.Players[1].Cash)
	assert.Equal(t, 1100+200+300, g.Players[0].Cash)
	assert.True(t, g.Ownership[39].Mortgaged)
	assert.Equal(t, 1, g.Ownership[39].OwnerID)
}

func TestTradeManager_Lifecycle(t *testing.T) {
	g := newTestGame(t)
	tr := g.ProposeTrade(0, 1, TradeOffer{Cash: 10}, TradeOffer{})
	require.NotNil(t, tr)

	assert.Len(t, g.Trades.ActiveFor(0), 1)
	assert.Len(t, g.Trades.ActiveFor(1), 1)
	assert.Empty(t, g.Trades.ActiveFor(2))

	require.NotNil(t, g.Trades.Cancel(tr.ID))
	assert.Equal(t, TradeCancelled, tr.Status)
	assert.Equal(t, 0, g.Trades.ActiveCount())
	assert.Nil(t, g.Trades.Cancel(tr.ID), "already settled")

	fetched := g.Trades.Get(tr.ID)
	require.NotNil(t, fetched, "settled trades remain queryable")
	assert.Equal(t, TradeCancelled, fetched.Status)
}
