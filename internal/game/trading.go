package game

// CanTradeProperty reports whether a player may include a property in a
// trade: they must own it, and neither it nor any sibling in its color
// group may carry buildings. Trading half of a built-up monopoly would
// sidestep the even-build rule.
func (g *GameState) CanTradeProperty(playerID, position int) bool {
	own := g.Ownership[position]
	if own == nil || own.OwnerID != playerID {
		return false
	}
	if own.Houses > 0 {
		return false
	}
	space := g.Board.Space(position)
	if space.Kind == SpaceProperty {
		for _, pos := range g.Board.ColorGroup(space.ColorGroup) {
			if g.Ownership[pos].Houses > 0 {
				return false
			}
		}
	}
	return true
}

// ValidateTradeOffer checks that a player can currently deliver an offer:
// enough cash, enough jail cards, and every property tradable and owned.
func (g *GameState) ValidateTradeOffer(playerID int, offer TradeOffer) bool {
	p := g.Player(playerID)
	if p == nil || p.Bankrupt {
		return false
	}
	if offer.Cash < 0 || offer.Cash > p.Cash {
		return false
	}
	if offer.JailCards < 0 || offer.JailCards > p.GetOutOfJailCards {
		return false
	}
	for _, pos := range offer.Properties {
		if !g.CanTradeProperty(playerID, pos) {
			return false
		}
	}
	return true
}

// ProposeTrade validates both sides and registers a pending trade.
// Returns the trade, or nil when either offer is undeliverable.
func (g *GameState) ProposeTrade(proposerID, recipientID int, offer, want TradeOffer) *Trade {
	recipient := g.Player(recipientID)
	if recipient == nil || recipient.Bankrupt || proposerID == recipientID {
		return nil
	}
	if !g.ValidateTradeOffer(proposerID, offer) || !g.ValidateTradeOffer(recipientID, want) {
		return nil
	}

	t := g.Trades.Create(proposerID, recipientID, offer, want, g.TurnNumber)
	g.Events.Log(EventTradeProposed, proposerID, map[string]any{
		"trade_id":  t.ID,
		"recipient": recipientID,
		"offer":     offerDetails(offer),
		"want":      offerDetails(want),
	})
	return t
}

// ExecuteTrade applies an accepted trade. Both offers are re-validated
// against current state before anything moves; state may have drifted
// since proposal. On any validation failure the trade moves to the
// terminal failed status with a failure event and zero state change.
// Receiving a mortgaged property costs the receiver an immediate 10%
// mortgage fee, on both sides alike.
func (g *GameState) ExecuteTrade(t *Trade) bool {
	if t == nil || t.Status != TradeAccepted {
		return false
	}
	if !g.ValidateTradeOffer(t.ProposerID, t.Offer) || !g.ValidateTradeOffer(t.RecipientID, t.Want) {
		t.Status = TradeFailed
		g.Events.Log(EventTradeFailed, t.ProposerID, map[string]any{
			"trade_id": t.ID,
			"reason":   "validation_failed",
		})
		return false
	}

	proposer := g.Player(t.ProposerID)
	recipient := g.Player(t.RecipientID)

	proposer.Cash -= t.Offer.Cash
	recipient.Cash += t.Offer.Cash
	recipient.Cash -= t.Want.Cash
	proposer.Cash += t.Want.Cash

	g.transferTradeProperties(proposer, recipient, t.Offer.Properties)
	g.transferTradeProperties(recipient, proposer, t.Want.Properties)

	proposer.GetOutOfJailCards -= t.Offer.JailCards
	recipient.GetOutOfJailCards += t.Offer.JailCards
	recipient.GetOutOfJailCards -= t.Want.JailCards
	proposer.GetOutOfJailCards += t.Want.JailCards

	g.Events.Log(EventTradeExecuted, t.ProposerID, map[string]any{
		"trade_id":  t.ID,
		"recipient": t.RecipientID,
	})
	return true
}

func (g *GameState) transferTradeProperties(from, to *PlayerState, positions []int) {
	for _, pos := range positions {
		own := g.Ownership[pos]
		delete(from.Properties, pos)
		to.Properties[pos] = struct{}{}
		own.OwnerID = to.ID
		if own.Mortgaged {
			fee := int(float64(g.Board.Space(pos).MortgageValue) * g.Options.MortgageFeeRate)
			to.Cash -= fee
		}
	}
}

func offerDetails(o TradeOffer) map[string]any {
	return map[string]any{
		"cash":       o.Cash,
		"properties": append([]int(nil), o.Properties...),
		"jail_cards": o.JailCards,
	}
}
