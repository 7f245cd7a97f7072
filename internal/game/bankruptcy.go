package game

import "go.uber.org/zap"

// DeclareBankruptcy removes a player from the game and settles their
// estate. Buildings are sold to the bank at half cost and credited to the
// player first. Properties then transfer to the creditor, who pays an
// immediate 10% mortgage fee on each mortgaged property received; with no
// creditor (bank bankruptcy) ownership simply clears and the properties
// return to the market. Residual cash and jail cards go to the creditor,
// or the cards back to deck discard. Pass NoPlayer as creditorID for a
// bank bankruptcy.
func (g *GameState) DeclareBankruptcy(playerID, creditorID int) bool {
	p := g.Player(playerID)
	if p == nil || p.Bankrupt {
		return false
	}
	creditor := g.Player(creditorID)
	if creditor != nil && creditor.Bankrupt {
		creditor = nil
	}

	p.Bankrupt = true

	// Sell buildings back to the bank at half the house cost per unit; a
	// hotel sells for the half-cost of one unit, its four houses having
	// been returned to supply at build time.
	for _, pos := range p.PropertyPositions() {
		own := g.Ownership[pos]
		space := g.Board.Space(pos)
		if own.Houses == 0 {
			continue
		}
		if own.HasHotel() {
			g.Bank.ReturnHotel()
			p.Cash += space.HouseCost / 2
		} else {
			g.Bank.ReturnHouses(own.Houses)
			p.Cash += own.Houses * space.HouseCost / 2
		}
		own.Houses = 0
	}

	// Transfer or release properties.
	var mortgageFees int
	for _, pos := range p.PropertyPositions() {
		own := g.Ownership[pos]
		delete(p.Properties, pos)
		if creditor != nil {
			own.OwnerID = creditor.ID
			creditor.Properties[pos] = struct{}{}
			if own.Mortgaged {
				fee := int(float64(g.Board.Space(pos).MortgageValue) * g.Options.MortgageFeeRate)
				mortgageFees += fee
			}
		} else {
			own.OwnerID = NoPlayer
			own.Mortgaged = false
		}
	}

	transferredCash := p.Cash
	if creditor != nil {
		creditor.Cash += transferredCash
		creditor.Cash -= mortgageFees
		creditor.GetOutOfJailCards += p.GetOutOfJailCards
	} else {
		for i := 0; i < p.GetOutOfJailCards; i++ {
			if !g.Chance.ReturnHeld() {
				g.CommunityChest.ReturnHeld()
			}
		}
	}
	p.Cash = 0
	p.GetOutOfJailCards = 0

	details := map[string]any{
		"transferred_cash": transferredCash,
	}
	if creditor != nil {
		details["creditor"] = creditor.ID
		details["mortgage_fees"] = mortgageFees
	}
	g.Events.Log(EventBankruptcy, playerID, details)
	if g.logger != nil {
		g.logger.Info("player bankrupt",
			zap.Int("player", playerID),
			zap.Int("creditor", creditorID))
	}

	g.checkGameOver()
	return true
}
