package rules

import (
	"github.com/openmonopoly/monopoly-server-go/internal/game"
)

// ApplyAction executes a player's chosen action against the state.
// Callers are expected to choose from GetLegalActions; a false return
// means the action was not applicable, with no state change beyond
// whatever the underlying method already validated away.
func ApplyAction(g *game.GameState, a Action, playerID int) bool {
	if g.GameOver {
		return false
	}

	switch a.Type {
	case ActionRollDice:
		return applyRollDice(g, playerID)

	case ActionBid:
		auction := g.ActiveAuction
		if auction == nil {
			return false
		}
		ok := auction.PlaceBid(playerID, a.Amount)
		settleAuctionIfComplete(g)
		return ok

	case ActionPassAuction:
		auction := g.ActiveAuction
		if auction == nil {
			return false
		}
		auction.PassTurn(playerID)
		settleAuctionIfComplete(g)
		return true

	case ActionBuyProperty:
		return g.BuyProperty(playerID, a.Position)

	case ActionDeclinePurchase:
		return declinePurchase(g, playerID, a.Position)

	case ActionPayJailFine:
		return g.PayJailFine(playerID)

	case ActionUseJailCard:
		return g.UseJailCard(playerID)

	case ActionMortgage:
		ok := g.MortgageProperty(playerID, a.Position)
		if ok {
			tryResolvePendingPayment(g, playerID)
		}
		return ok

	case ActionUnmortgage:
		return g.UnmortgageProperty(playerID, a.Position)

	case ActionBuildHouse:
		return g.BuildHouse(playerID, a.Position)

	case ActionBuildHotel:
		return g.BuildHotel(playerID, a.Position)

	case ActionSellBuilding:
		ok := g.SellBuilding(playerID, a.Position)
		if ok {
			tryResolvePendingPayment(g, playerID)
		}
		return ok

	case ActionDowngradeHotel:
		ok := g.DowngradeHotel(playerID, a.Position)
		if ok {
			tryResolvePendingPayment(g, playerID)
		}
		return ok

	case ActionProposeTrade:
		return g.ProposeTrade(playerID, a.RecipientID, a.Offer, a.Want) != nil

	case ActionAcceptTrade:
		return acceptTrade(g, playerID, a.TradeID)

	case ActionRejectTrade:
		return rejectTrade(g, playerID, a.TradeID)

	case ActionCancelTrade:
		return cancelTrade(g, playerID, a.TradeID)

	case ActionDeclareBankruptcy:
		return declareBankruptcy(g, playerID, a.CreditorID)

	case ActionEndTurn:
		if playerID != g.CurrentPlayerIndex || g.PendingDiceRoll {
			return false
		}
		g.EndTurn()
		return true
	}
	return false
}

// applyRollDice branches on jail status. In jail the roll is a release
// attempt; a failed attempt ends the turn. Outside jail the roll drives
// movement, doubles bookkeeping, and landing resolution.
func applyRollDice(g *game.GameState, playerID int) bool {
	if playerID != g.CurrentPlayerIndex || !g.PendingDiceRoll {
		return false
	}
	p := g.Player(playerID)
	if p == nil || p.Bankrupt {
		return false
	}

	roll := g.RollDice()
	if p.InJail {
		applyJailRoll(g, playerID, roll.Die1, roll.Die2)
	} else {
		applyRoll(g, playerID, roll.Die1, roll.Die2)
	}
	return true
}

// applyJailRoll resolves a jail-release attempt for known dice. A failed
// attempt ends the turn. A release moves the player, and the reached
// space resolves like any other landing.
func applyJailRoll(g *game.GameState, playerID, die1, die2 int) {
	if !g.ResolveJailAttempt(playerID, die1, die2) {
		g.EndTurn()
		return
	}
	resolveLanding(g, playerID, die1+die2)
}

// applyRoll applies movement and landing for known dice. Three
// consecutive doubles send the player to jail after the move and end the
// turn, with the landing unresolved; otherwise doubles grant another
// roll once the landing settles.
func applyRoll(g *game.GameState, playerID, die1, die2 int) {
	p := g.Player(playerID)

	if die1 == die2 {
		p.ConsecutiveDoubles++
	} else {
		p.ConsecutiveDoubles = 0
	}

	g.MovePlayer(playerID, die1+die2, true)

	if p.ConsecutiveDoubles >= 3 {
		g.SendToJail(playerID)
		g.EndTurn()
		return
	}

	resolveLanding(g, playerID, die1+die2)

	if die1 == die2 && !p.InJail && !g.GameOver {
		g.PendingDiceRoll = true
	}
}

// resolveLanding applies the side effect of the space the player now
// occupies. Cards that move the player resolve the new landing in turn.
func resolveLanding(g *game.GameState, playerID, diceTotal int) {
	p := g.Player(playerID)
	space := g.Board.Space(p.Position)

	switch space.Kind {
	case game.SpaceProperty, game.SpaceRailroad, game.SpaceUtility:
		own := g.Ownership[p.Position]
		if !own.Owned() || own.OwnerID == playerID {
			return
		}
		rent := g.CalculateRent(p.Position, diceTotal)
		if rent > 0 {
			g.PayRent(playerID, own.OwnerID, rent)
		}

	case game.SpaceTax:
		g.PayTax(playerID, space.TaxAmount)

	case game.SpaceChance:
		card := g.DrawCard(game.DeckChance, playerID)
		resolveCardLanding(g, playerID, card, diceTotal)

	case game.SpaceCommunityChest:
		card := g.DrawCard(game.DeckCommunityChest, playerID)
		resolveCardLanding(g, playerID, card, diceTotal)

	case game.SpaceGoToJail:
		g.SendToJail(playerID)
	}
}

// resolveCardLanding settles the space a movement card delivered the
// player to.
func resolveCardLanding(g *game.GameState, playerID int, card game.Card, diceTotal int) {
	switch card.Kind {
	case game.CardMoveTo, game.CardMoveSpaces, game.CardMoveToNearest:
		resolveLanding(g, playerID, diceTotal)
	}
}

func declinePurchase(g *game.GameState, playerID, position int) bool {
	p := g.Player(playerID)
	if p == nil || p.Position != position {
		return false
	}
	own := g.Ownership[position]
	if own == nil || own.Owned() {
		return false
	}
	g.Events.Log(game.EventPurchaseDeclined, playerID, map[string]any{
		"property": g.Board.Space(position).Name,
		"position": position,
	})
	return g.StartAuction(position, playerID)
}

func settleAuctionIfComplete(g *game.GameState) {
	if a := g.ActiveAuction; a != nil && a.Complete {
		g.ResolveAuction()
		// A doubles bonus roll does not survive the auction.
		g.PendingDiceRoll = false
	}
}

// tryResolvePendingPayment retries an outstanding rent or tax payment
// after a fund-raising action.
func tryResolvePendingPayment(g *game.GameState, playerID int) {
	pending := g.PendingPaymentFor(playerID)
	if pending == nil {
		return
	}
	p := g.Player(playerID)
	if p.Cash < pending.Amount {
		return
	}
	if pending.OwnerID == game.NoPlayer {
		g.PayTax(playerID, pending.Amount)
	} else {
		g.PayRent(playerID, pending.OwnerID, pending.Amount)
	}
}

func acceptTrade(g *game.GameState, playerID, tradeID int) bool {
	t := g.Trades.Get(tradeID)
	if t == nil || t.Status != game.TradePending || t.RecipientID != playerID {
		return false
	}
	if g.Trades.Accept(tradeID) == nil {
		return false
	}
	g.Events.Log(game.EventTradeAccepted, playerID, map[string]any{
		"trade_id": tradeID,
	})
	return g.ExecuteTrade(t)
}

func rejectTrade(g *game.GameState, playerID, tradeID int) bool {
	t := g.Trades.Get(tradeID)
	if t == nil || t.Status != game.TradePending || t.RecipientID != playerID {
		return false
	}
	if g.Trades.Reject(tradeID) == nil {
		return false
	}
	g.Events.Log(game.EventTradeRejected, playerID, map[string]any{
		"trade_id": tradeID,
	})
	return true
}

func cancelTrade(g *game.GameState, playerID, tradeID int) bool {
	t := g.Trades.Get(tradeID)
	if t == nil || t.Status != game.TradePending || t.ProposerID != playerID {
		return false
	}
	if g.Trades.Cancel(tradeID) == nil {
		return false
	}
	g.Events.Log(game.EventTradeCancelled, playerID, map[string]any{
		"trade_id": tradeID,
	})
	return true
}

// declareBankruptcy settles the estate, clears any debt records, and
// passes the turn unless the game just ended.
func declareBankruptcy(g *game.GameState, playerID, creditorID int) bool {
	if pending := g.PendingPaymentFor(playerID); pending != nil {
		if creditorID == game.NoPlayer {
			creditorID = pending.OwnerID
		}
		g.PendingRent = nil
		g.PendingTax = nil
	}
	if !g.DeclareBankruptcy(playerID, creditorID) {
		return false
	}
	if !g.GameOver && g.CurrentPlayerIndex == playerID {
		g.EndTurn()
	}
	return true
}
