package game

// HasMonopoly reports whether the player owns every property in the color
// group with none mortgaged.
func (g *GameState) HasMonopoly(playerID int, colorGroup string) bool {
	positions := g.Board.ColorGroup(colorGroup)
	if len(positions) == 0 {
		return false
	}
	for _, pos := range positions {
		own := g.Ownership[pos]
		if own == nil || own.OwnerID != playerID || own.Mortgaged {
			return false
		}
	}
	return true
}

// CalculateRent returns the rent owed for landing on position with the
// given dice total. Unowned and mortgaged properties charge nothing. The
// calculation is a pure read: NextRentMultiplier influences the result
// but is only cleared by PayRent.
func (g *GameState) CalculateRent(position, diceTotal int) int {
	own := g.Ownership[position]
	if own == nil || !own.Owned() || own.Mortgaged {
		return 0
	}
	space := g.Board.Space(position)

	switch space.Kind {
	case SpaceProperty:
		monopoly := g.HasMonopoly(own.OwnerID, space.ColorGroup)
		return space.PropertyRent(own.Houses, monopoly)
	case SpaceRailroad:
		// The nearest-railroad card charges a multiple of normal rent.
		rent := RailroadRent(g.railroadsOwned(own.OwnerID))
		if g.NextRentMultiplier > 0 {
			rent = int(float64(rent) * g.NextRentMultiplier)
		}
		return rent
	case SpaceUtility:
		if g.NextRentMultiplier > 0 {
			return int(float64(diceTotal) * g.NextRentMultiplier)
		}
		return UtilityRent(diceTotal, g.utilitiesOwned(own.OwnerID))
	default:
		return 0
	}
}

func (g *GameState) railroadsOwned(playerID int) int {
	n := 0
	for _, pos := range g.Board.Railroads() {
		if own := g.Ownership[pos]; own != nil && own.OwnerID == playerID {
			n++
		}
	}
	return n
}

func (g *GameState) utilitiesOwned(playerID int) int {
	n := 0
	for _, pos := range g.Board.Utilities() {
		if own := g.Ownership[pos]; own != nil && own.OwnerID == playerID {
			n++
		}
	}
	return n
}

// PayRent transfers rent from payer to owner. If the payer cannot cover
// the amount, a pending payment is recorded and false is returned; the
// payer must raise funds or go bankrupt before acting normally again.
// The one-shot rent multiplier is consumed here on either path.
func (g *GameState) PayRent(payerID, ownerID, amount int) bool {
	g.NextRentMultiplier = 0
	payer := g.Player(payerID)
	owner := g.Player(ownerID)
	if payer == nil || owner == nil || amount <= 0 {
		g.PendingRent = nil
		return true
	}

	if payer.Cash < amount {
		g.PendingRent = &PendingPayment{PayerID: payerID, OwnerID: ownerID, Amount: amount}
		return false
	}

	payer.Cash -= amount
	owner.Cash += amount
	g.PendingRent = nil
	g.Events.Log(EventRentPayment, payerID, map[string]any{
		"owner":    ownerID,
		"amount":   amount,
		"position": payer.Position,
	})
	return true
}

// PayTax debits a tax amount to the bank, with the same pending-payment
// behavior as PayRent when funds are short.
func (g *GameState) PayTax(payerID, amount int) bool {
	payer := g.Player(payerID)
	if payer == nil || amount <= 0 {
		g.PendingTax = nil
		return true
	}

	if payer.Cash < amount {
		g.PendingTax = &PendingPayment{PayerID: payerID, OwnerID: NoPlayer, Amount: amount}
		return false
	}

	payer.Cash -= amount
	g.PendingTax = nil
	g.Events.Log(EventTaxPayment, payerID, map[string]any{
		"amount":   amount,
		"position": payer.Position,
	})
	return true
}

// PendingPaymentFor returns the outstanding rent or tax record for the
// player, or nil.
func (g *GameState) PendingPaymentFor(playerID int) *PendingPayment {
	if g.PendingRent != nil && g.PendingRent.PayerID == playerID {
		return g.PendingRent
	}
	if g.PendingTax != nil && g.PendingTax.PayerID == playerID {
		return g.PendingTax
	}
	return nil
}
