package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCard_CollectAndPay(t *testing.T) {
	g := newTestGame(t)
	p := g.Players[0]

	g.ExecuteCard(Card{Description: "Bank Dividend", Kind: CardCollect, Value: 50}, 0, g.Chance)
	assert.Equal(t, 1550, p.Cash)

	g.ExecuteCard(Card{Description: "Doctor's Fee", Kind: CardPay, Value: 50}, 0, g.CommunityChest)
	assert.Equal(t, 1500, p.Cash)
}

func TestExecuteCard_MoveToAdvancesToGo(t *testing.T) {
	g := newTestGame(t)
	p := g.Players[0]
	p.Position = 7

	g.ExecuteCard(Card{Description: "Advance to GO", Kind: CardMoveTo, TargetPosition: 0, CollectGo: true}, 0, g.Chance)
	assert.Equal(t, 0, p.Position)
	assert.Equal(t, 1700, p.Cash)
}

func TestExecuteCard_GoBackThreeNoSalary(t *testing.T) {
	g := newTestGame(t)
	p := g.Players[0]
	p.Position = 2

	g.ExecuteCard(Card{Description: "Go Back 3 Spaces", Kind: CardMoveSpaces, Value: -3}, 0, g.Chance)
	assert.Equal(t, 39, p.Position)
	assert.Equal(t, 1500, p.Cash, "moving backward past GO pays nothing")
}

func TestExecuteCard_NearestRailroadSetsMultiplier(t *testing.T) {
	g := newTestGame(t)
	p := g.Players[0]
	p.Position = 7

	card := Card{
		Description:    "Advance to the nearest Railroad",
		Kind:           CardMoveToNearest,
		TargetKind:     SpaceRailroad,
		RentMultiplier: 2,
		CollectGo:      true,
	}
	g.ExecuteCard(card, 0, g.Chance)
	assert.Equal(t, 15, p.Position)
	assert.Equal(t, float64(2), g.NextRentMultiplier)
}

func TestExecuteCard_NearestUtilityWraps(t *testing.T) {
	g := newTestGame(t)
	p := g.Players[0]
	p.Position = 36

	card := Card{
		Description:    "Advance to the nearest Utility",
		Kind:           CardMoveToNearest,
		TargetKind:     SpaceUtility,
		RentMultiplier: 10,
		CollectGo:      true,
	}
	g.ExecuteCard(card, 0, g.Chance)
	assert.Equal(t, 12, p.Position)
	assert.Equal(t, float64(10), g.NextRentMultiplier)
	assert.Equal(t, 1700, p.Cash, "wrapping past GO collects the salary")
}

func TestExecuteCard_PayPerHouseBillsHotelAtFourTimes(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))
	require.True(t, g.BuyProperty(0, 3))
	g.Ownership[1].Houses = 3
	g.Ownership[3].Houses = 5
	cash := g.Players[0].Cash

	g.ExecuteCard(Card{Description: "Street Repairs", Kind: CardPayPerHouse, Value: 40}, 0, g.CommunityChest)
	// 3 houses at 40 plus one hotel at 160.
	assert.Equal(t, cash-280, g.Players[0].Cash)
}

func TestExecuteCard_PayPerBuildingSeparateRates(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.BuyProperty(0, 1))
	require.True(t, g.BuyProperty(0, 3))
	g.Ownership[1].Houses = 2
	g.Ownership[3].Houses = 5
	cash := g.Players[0].Cash

	g.ExecuteCard(Card{Description: "General Repairs", Kind: CardPayPerBuilding, Value: 25, HotelValue: 100}, 0, g.Chance)
	assert.Equal(t, cash-150, g.Players[0].Cash)
}

func TestExecuteCard_CollectFromPlayersCapped(t *testing.T) {
	g := newTestGame(t)
	g.Players[1].Cash = 30
	g.Players[2].Bankrupt = true
	g.Players[2].Cash = 0

	g.ExecuteCard(Card{Description: "It's your birthday", Kind: CardCollectFromPlayers, Value: 50}, 0, g.CommunityChest)
	assert.Equal(t, 1530, g.Players[0].Cash, "a broke payer pays only what they have")
	assert.Equal(t, 0, g.Players[1].Cash)
	assert.Equal(t, 0, g.Players[2].Cash, "bankrupt players are skipped")
}

func TestExecuteCard_PayToPlayersCapped(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Cash = 40

	g.ExecuteCard(Card{Description: "Pay each player", Kind: CardPayToPlayers, Value: 50}, 0, g.Chance)
	assert.Equal(t, 0, g.Players[0].Cash)
	assert.Equal(t, 1540, g.Players[1].Cash)
	assert.Equal(t, 1500, g.Players[2].Cash, "nothing left for the second recipient")
}

func TestExecuteCard_GoToJail(t *testing.T) {
	g := newTestGame(t)

	g.ExecuteCard(Card{Description: "Go to Jail", Kind: CardGoToJail}, 0, g.Chance)
	assert.True(t, g.Players[0].InJail)
	assert.Equal(t, JailPosition, g.Players[0].Position)
}

func TestExecuteCard_GetOutOfJailHeld(t *testing.T) {
	g := newTestGame(t)
	discards := g.Chance.DiscardCount()

	g.ExecuteCard(Card{Description: "Get Out of Jail Free", Kind: CardGetOutOfJail}, 0, g.Chance)
	assert.Equal(t, 1, g.Players[0].GetOutOfJailCards)
	assert.Equal(t, 1, g.Chance.HeldCount())
	assert.Equal(t, discards, g.Chance.DiscardCount(), "the card is held, not discarded")
}

func TestDrawCard_LogsAndExecutes(t *testing.T) {
	g := newTestGame(t)
	before := g.Chance.Remaining()

	card := g.DrawCard(DeckChance, 0)
	assert.NotEmpty(t, card.Description)
	assert.Equal(t, before-1, g.Chance.Remaining())

	events := g.Events.Events()
	var sawDrawn, sawEffect bool
	for _, e := range events {
		switch e.Type {
		case EventCardDrawn:
			sawDrawn = true
		case EventCardEffect:
			sawEffect = true
		}
	}
	assert.True(t, sawDrawn)
	assert.True(t, sawEffect)
}
