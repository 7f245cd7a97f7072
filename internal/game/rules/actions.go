package rules

import (
	"github.com/openmonopoly/monopoly-server-go/internal/game"
)

// ActionType identifies a player action submitted to the dispatcher.
type ActionType string

const (
	ActionRollDice          ActionType = "roll_dice"
	ActionBuyProperty       ActionType = "buy_property"
	ActionDeclinePurchase   ActionType = "decline_purchase"
	ActionBid               ActionType = "bid"
	ActionPassAuction       ActionType = "pass_auction"
	ActionPayJailFine       ActionType = "pay_jail_fine"
	ActionUseJailCard       ActionType = "use_jail_card"
	ActionMortgage          ActionType = "mortgage"
	ActionUnmortgage        ActionType = "unmortgage"
	ActionBuildHouse        ActionType = "build_house"
	ActionBuildHotel        ActionType = "build_hotel"
	ActionSellBuilding      ActionType = "sell_building"
	ActionDowngradeHotel    ActionType = "downgrade_hotel"
	ActionProposeTrade      ActionType = "propose_trade"
	ActionAcceptTrade       ActionType = "accept_trade"
	ActionRejectTrade       ActionType = "reject_trade"
	ActionCancelTrade       ActionType = "cancel_trade"
	ActionDeclareBankruptcy ActionType = "declare_bankruptcy"
	ActionEndTurn           ActionType = "end_turn"
)

// Action is one player choice. Which fields matter depends on Type:
// Position for property actions, Amount for bids, TradeID and the offers
// for trade actions, CreditorID for bankruptcy.
type Action struct {
	Type        ActionType      `json:"type"`
	Position    int             `json:"position,omitempty"`
	Amount      int             `json:"amount,omitempty"`
	TradeID     int             `json:"trade_id,omitempty"`
	RecipientID int             `json:"recipient_id,omitempty"`
	CreditorID  int             `json:"creditor_id,omitempty"`
	Offer       game.TradeOffer `json:"offer,omitempty"`
	Want        game.TradeOffer `json:"want,omitempty"`
}

// GetLegalActions enumerates the actions a player may take right now. It
// is a pure read over the state, re-derived on every call. Precedence,
// first match governing:
//
//  1. Finished game: nothing for anyone.
//  2. Running auction: active bidders may bid or pass regardless of whose
//     turn it is; everyone else waits.
//  3. Only the current player acts outside auctions.
//  4. Jail: roll for doubles, pay the fine, or play a card; a player with
//     none of those left may only declare bankruptcy.
//  5. Pending rent or tax: fund-raising and bankruptcy only.
//  6. Standing on an unowned purchasable space: buy or decline, nothing
//     else, even when doubles would grant another roll.
//  7. Roll still owed: roll plus property management.
//  8. Otherwise: end turn, trade responses, proposals, and management.
func GetLegalActions(g *game.GameState, playerID int) []Action {
	if g.GameOver {
		return nil
	}

	if a := g.ActiveAuction; a != nil && !a.Complete {
		if !a.IsActiveBidder(playerID) {
			return nil
		}
		return []Action{
			{Type: ActionBid, Position: a.PropertyPosition, Amount: a.CurrentBid + 1},
			{Type: ActionPassAuction, Position: a.PropertyPosition},
		}
	}

	if playerID != g.CurrentPlayerIndex {
		return nil
	}
	p := g.Player(playerID)
	if p == nil || p.Bankrupt {
		return nil
	}

	if p.InJail {
		return jailActions(g, p)
	}

	if pending := g.PendingPaymentFor(playerID); pending != nil {
		actions := fundRaisingActions(g, p)
		actions = append(actions, Action{
			Type:       ActionDeclareBankruptcy,
			CreditorID: pending.OwnerID,
		})
		return actions
	}

	// The purchase window opens only after this turn's roll. A property
	// released under a standing player by a bankruptcy settlement is not
	// offered until someone lands on it again.
	if g.LastRoll != nil {
		space := g.Board.Space(p.Position)
		if own := g.Ownership[p.Position]; own != nil && !own.Owned() && space.Purchasable() {
			actions := []Action{{Type: ActionDeclinePurchase, Position: p.Position}}
			if p.Cash >= space.Price {
				actions = append([]Action{{Type: ActionBuyProperty, Position: p.Position}}, actions...)
			}
			return actions
		}
	}

	if g.PendingDiceRoll {
		actions := []Action{{Type: ActionRollDice}}
		return append(actions, managementActions(g, p)...)
	}

	actions := []Action{{Type: ActionEndTurn}}
	actions = append(actions, tradeActions(g, p)...)
	actions = append(actions, managementActions(g, p)...)
	if p.Cash < 0 {
		actions = append(actions, Action{Type: ActionDeclareBankruptcy, CreditorID: game.NoPlayer})
	}
	return actions
}

func jailActions(g *game.GameState, p *game.PlayerState) []Action {
	var actions []Action
	if g.PendingDiceRoll && p.JailTurns < g.Options.MaxJailTurns {
		actions = append(actions, Action{Type: ActionRollDice})
	}
	if p.Cash >= g.Options.JailFine {
		actions = append(actions, Action{Type: ActionPayJailFine})
	}
	if p.GetOutOfJailCards > 0 {
		actions = append(actions, Action{Type: ActionUseJailCard})
	}
	if len(actions) == 0 {
		// Broke with attempts exhausted. The forced fine payment normally
		// prevents this, but the escape hatch stays.
		actions = append(actions, Action{Type: ActionDeclareBankruptcy, CreditorID: game.NoPlayer})
	}
	return actions
}

// fundRaisingActions lists only the moves that raise cash: mortgaging and
// selling buildings.
func fundRaisingActions(g *game.GameState, p *game.PlayerState) []Action {
	var actions []Action
	for _, pos := range p.PropertyPositions() {
		own := g.Ownership[pos]
		if !own.Mortgaged && own.Houses == 0 {
			actions = append(actions, Action{Type: ActionMortgage, Position: pos})
		}
		if own.Houses > 0 && own.Houses < 5 {
			if canSellBuilding(g, p.ID, pos) {
				actions = append(actions, Action{Type: ActionSellBuilding, Position: pos})
			}
		}
		if own.Houses == 5 && g.Bank.Houses >= 4 {
			actions = append(actions, Action{Type: ActionDowngradeHotel, Position: pos})
		}
	}
	return actions
}

func managementActions(g *game.GameState, p *game.PlayerState) []Action {
	actions := fundRaisingActions(g, p)
	for _, pos := range p.PropertyPositions() {
		own := g.Ownership[pos]
		space := g.Board.Space(pos)
		if own.Mortgaged {
			cost := int(float64(space.MortgageValue) * (1 + g.Options.MortgageFeeRate))
			if p.Cash >= cost {
				actions = append(actions, Action{Type: ActionUnmortgage, Position: pos})
			}
		}
		if g.CanBuildHouse(p.ID, pos) {
			actions = append(actions, Action{Type: ActionBuildHouse, Position: pos})
		}
		if g.CanBuildHotel(p.ID, pos) {
			actions = append(actions, Action{Type: ActionBuildHotel, Position: pos})
		}
	}
	return actions
}

func tradeActions(g *game.GameState, p *game.PlayerState) []Action {
	var actions []Action
	for _, t := range g.Trades.ActiveFor(p.ID) {
		if t.RecipientID == p.ID {
			actions = append(actions,
				Action{Type: ActionAcceptTrade, TradeID: t.ID},
				Action{Type: ActionRejectTrade, TradeID: t.ID},
			)
		} else {
			actions = append(actions, Action{Type: ActionCancelTrade, TradeID: t.ID})
		}
	}
	for _, other := range g.Players {
		if other.ID == p.ID || other.Bankrupt {
			continue
		}
		actions = append(actions, Action{Type: ActionProposeTrade, RecipientID: other.ID})
	}
	return actions
}

func canSellBuilding(g *game.GameState, playerID, position int) bool {
	own := g.Ownership[position]
	space := g.Board.PropertySpace(position)
	if space == nil || own.Houses == 0 || own.Houses == 5 {
		return false
	}
	for _, pos := range g.Board.ColorGroup(space.ColorGroup) {
		if pos == position {
			continue
		}
		if g.Ownership[pos].Houses > own.Houses {
			return false
		}
	}
	return true
}
