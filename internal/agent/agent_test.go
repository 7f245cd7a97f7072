package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/game/rules"
)

func newTestGame(t *testing.T) *game.GameState {
	t.Helper()
	return game.NewGameState([]string{"Alice", "Bob"}, game.DefaultOptions(), 7, nil)
}

func TestGreedyAgent_BuysCheapProperties(t *testing.T) {
	g := newTestGame(t)
	a := NewGreedyAgent(0, "Alice")
	actions := []rules.Action{
		{Type: rules.ActionBuyProperty, Position: 1},
		{Type: rules.ActionDeclinePurchase, Position: 1},
	}

	// Mediterranean at 60 against 1500 cash is always a buy.
	choice := a.ChooseAction(g, actions)
	assert.Equal(t, rules.ActionBuyProperty, choice.Type)
}

func TestGreedyAgent_DeclinesExpensiveProperties(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Cash = 500
	a := NewGreedyAgent(0, "Alice")
	actions := []rules.Action{
		{Type: rules.ActionBuyProperty, Position: 39},
		{Type: rules.ActionDeclinePurchase, Position: 39},
	}

	// Boardwalk at 400 is 80% of cash on hand.
	choice := a.ChooseAction(g, actions)
	assert.Equal(t, rules.ActionDeclinePurchase, choice.Type)
}

func TestGreedyAgent_RejectsTrades(t *testing.T) {
	g := newTestGame(t)
	a := NewGreedyAgent(0, "Alice")
	actions := []rules.Action{
		{Type: rules.ActionEndTurn},
		{Type: rules.ActionAcceptTrade, TradeID: 1},
		{Type: rules.ActionRejectTrade, TradeID: 1},
	}

	choice := a.ChooseAction(g, actions)
	assert.Equal(t, rules.ActionRejectTrade, choice.Type)
}

func TestGreedyAgent_BidsWithinReserve(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.StartAuction(1, 1))
	a := NewGreedyAgent(0, "Alice")
	actions := []rules.Action{
		{Type: rules.ActionBid, Position: 1, Amount: g.ActiveAuction.CurrentBid + 1},
		{Type: rules.ActionPassAuction, Position: 1},
	}

	choice := a.ChooseAction(g, actions)
	assert.Equal(t, rules.ActionBid, choice.Type)
	assert.Equal(t, g.ActiveAuction.CurrentBid+10, choice.Amount)

	// With a thin wallet the reserve rule forces a pass.
	g.Players[0].Cash = 20
	choice = a.ChooseAction(g, actions)
	assert.Equal(t, rules.ActionPassAuction, choice.Type)
}

func TestRandomAgent_ChoosesFromLegalActions(t *testing.T) {
	g := newTestGame(t)
	a := NewRandomAgent(0, "Alice", 99)
	actions := []rules.Action{
		{Type: rules.ActionEndTurn},
		{Type: rules.ActionMortgage, Position: 1},
		{Type: rules.ActionProposeTrade, RecipientID: 1},
	}

	allowed := map[rules.ActionType]bool{
		rules.ActionEndTurn:      true,
		rules.ActionMortgage:     true,
		rules.ActionProposeTrade: true,
	}
	for i := 0; i < 50; i++ {
		choice := a.ChooseAction(g, actions)
		assert.True(t, allowed[choice.Type])
	}
}

func TestRandomAgent_BidNeverExceedsCash(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.StartAuction(39, 1))
	g.Players[0].Cash = 60
	a := NewRandomAgent(0, "Alice", 3)
	actions := []rules.Action{
		{Type: rules.ActionBid, Position: 39, Amount: g.ActiveAuction.CurrentBid + 1},
		{Type: rules.ActionPassAuction, Position: 39},
	}

	for i := 0; i < 100; i++ {
		choice := a.ChooseAction(g, actions)
		if choice.Type == rules.ActionBid {
			assert.LessOrEqual(t, choice.Amount, 60)
			assert.Greater(t, choice.Amount, g.ActiveAuction.CurrentBid)
		}
	}
}

func TestAgents_StableIdentity(t *testing.T) {
	greedy := NewGreedyAgent(2, "Carol")
	assert.Equal(t, 2, greedy.PlayerID())
	assert.Equal(t, "Carol", greedy.Name())

	random := NewRandomAgent(1, "Bob", 5)
	assert.Equal(t, 1, random.PlayerID())
	assert.Equal(t, "Bob", random.Name())
}
