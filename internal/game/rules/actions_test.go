package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
)

func newTestGame(t *testing.T) *game.GameState {
	t.Helper()
	return game.NewGameState([]string{"Alice", "Bob", "Carol"}, game.DefaultOptions(), 42, nil)
}

func actionTypes(actions []Action) []ActionType {
	out := make([]ActionType, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Type)
	}
	return out
}

func hasAction(actions []Action, kind ActionType) bool {
	for _, a := range actions {
		if a.Type == kind {
			return true
		}
	}
	return false
}

func TestGetLegalActions_FinishedGame(t *testing.T) {
	g := newTestGame(t)
	g.GameOver = true

	for id := range g.Players {
		assert.Nil(t, GetLegalActions(g, id))
	}
}

func TestGetLegalActions_PreRollTier(t *testing.T) {
	g := newTestGame(t)

	actions := GetLegalActions(g, 0)
	require.NotEmpty(t, actions)
	assert.Equal(t, ActionRollDice, actions[0].Type)
	assert.False(t, hasAction(actions, ActionEndTurn))

	assert.Nil(t, GetLegalActions(g, 1), "not their turn")
}

func TestGetLegalActions_AuctionOverridesTurnOrder(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.StartAuction(1, 0))

	// Every eligible player may act, including off-turn ones.
	for id := 0; id < 3; id++ {
		actions := GetLegalActions(g, id)
		assert.ElementsMatch(t, []ActionType{ActionBid, ActionPassAuction}, actionTypes(actions))
	}

	g.ActiveAuction.PassTurn(1)
	assert.Nil(t, GetLegalActions(g, 1), "passed bidders wait")

	// The suggested bid tops the standing one.
	actions := GetLegalActions(g, 2)
	assert.Equal(t, g.ActiveAuction.CurrentBid+1, actions[0].Amount)
}

func TestGetLegalActions_JailTier(t *testing.T) {
	g := newTestGame(t)
	g.SendToJail(0)

	actions := GetLegalActions(g, 0)
	assert.ElementsMatch(t, []ActionType{ActionRollDice, ActionPayJailFine}, actionTypes(actions))

	g.Players[0].GetOutOfJailCards = 1
	assert.True(t, hasAction(GetLegalActions(g, 0), ActionUseJailCard))

	// Attempts spent and broke: nothing but bankruptcy.
	g.Players[0].JailTurns = 3
	g.Players[0].Cash = 10
	g.Players[0].GetOutOfJailCards = 0
	actions = GetLegalActions(g, 0)
	assert.Equal(t, []ActionType{ActionDeclareBankruptcy}, actionTypes(actions))
}

func TestGetLegalActions_PendingPaymentRestricts(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))
	g.Players[0].Cash = 10
	require.False(t, g.PayTax(0, 200))

	actions := GetLegalActions(g, 0)
	assert.True(t, hasAction(actions, ActionMortgage))
	assert.True(t, hasAction(actions, ActionDeclareBankruptcy))
	assert.False(t, hasAction(actions, ActionRollDice))
	assert.False(t, hasAction(actions, ActionEndTurn))
	assert.False(t, hasAction(actions, ActionBuyProperty))
}

func TestGetLegalActions_PurchaseTier(t *testing.T) {
	g := newTestGame(t)
	g.RollDice()
	g.Players[0].Position = 39 // Boardwalk, unowned

	actions := GetLegalActions(g, 0)
	assert.ElementsMatch(t, []ActionType{ActionBuyProperty, ActionDeclinePurchase}, actionTypes(actions))

	// Buying is off the table without the cash; declining never is.
	g.Players[0].Cash = 100
	actions = GetLegalActions(g, 0)
	assert.Equal(t, []ActionType{ActionDeclinePurchase}, actionTypes(actions))
}

func TestGetLegalActions_EndTurnTier(t *testing.T) {
	g := newTestGame(t)
	g.RollDice()
	g.PendingDiceRoll = false
	g.Players[0].Position = 0 // GO, nothing to buy

	actions := GetLegalActions(g, 0)
	assert.Equal(t, ActionEndTurn, actions[0].Type)
	// A proposal slot per living opponent.
	proposals := 0
	for _, a := range actions {
		if a.Type == ActionProposeTrade {
			proposals++
		}
	}
	assert.Equal(t, 2, proposals)
}

func TestGetLegalActions_TradeResponses(t *testing.T) {
	g := newTestGame(t)
	tr := g.ProposeTrade(1, 0, game.TradeOffer{Cash: 50}, game.TradeOffer{})
	require.NotNil(t, tr)
	g.RollDice()
	g.PendingDiceRoll = false

	actions := GetLegalActions(g, 0)
	assert.True(t, hasAction(actions, ActionAcceptTrade))
	assert.True(t, hasAction(actions, ActionRejectTrade))
	assert.False(t, hasAction(actions, ActionCancelTrade), "recipient cannot cancel")
}

func TestGetLegalActions_ManagementOptions(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))
	require.True(t, g.BuyProperty(0, 3))
	require.True(t, g.MortgageProperty(0, 3))
	g.RollDice()
	g.PendingDiceRoll = false

	actions := GetLegalActions(g, 0)
	assert.True(t, hasAction(actions, ActionMortgage))
	assert.True(t, hasAction(actions, ActionUnmortgage))
	assert.False(t, hasAction(actions, ActionBuildHouse), "mortgage in group blocks building")

	require.True(t, g.UnmortgageProperty(0, 3))
	actions = GetLegalActions(g, 0)
	assert.True(t, hasAction(actions, ActionBuildHouse))
}

func TestGetLegalActions_NegativeCashOffersBankruptcy(t *testing.T) {
	g := newTestGame(t)
	g.RollDice()
	g.PendingDiceRoll = false
	g.Players[0].Position = 0
	g.Players[0].Cash = -20

	actions := GetLegalActions(g, 0)
	assert.True(t, hasAction(actions, ActionDeclareBankruptcy))
}

func TestGetLegalActions_BankruptPlayer(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Bankrupt = true

	assert.Nil(t, GetLegalActions(g, 0))
}
