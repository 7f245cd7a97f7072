package game

// BuyProperty sells an unowned purchasable space to a player at list
// price.
func (g *GameState) BuyProperty(playerID, position int) bool {
	p := g.Player(playerID)
	space := g.Board.Space(position)
	own := g.Ownership[position]
	if p == nil || own == nil || !space.Purchasable() {
		return false
	}
	if own.Owned() || p.Cash < space.Price {
		return false
	}

	p.Cash -= space.Price
	p.Properties[position] = struct{}{}
	own.OwnerID = playerID
	g.Events.Log(EventPurchase, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"price":    space.Price,
	})
	return true
}

// MortgageProperty mortgages an owned, building-free property, crediting
// the fixed mortgage value.
func (g *GameState) MortgageProperty(playerID, position int) bool {
	p := g.Player(playerID)
	own := g.Ownership[position]
	if p == nil || own == nil || own.OwnerID != playerID {
		return false
	}
	if own.Mortgaged || own.Houses > 0 {
		return false
	}

	space := g.Board.Space(position)
	own.Mortgaged = true
	p.Cash += space.MortgageValue
	g.Events.Log(EventMortgage, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"value":    space.MortgageValue,
	})
	return true
}

// UnmortgageProperty lifts a mortgage for the mortgage value plus
// interest, truncated to whole dollars.
func (g *GameState) UnmortgageProperty(playerID, position int) bool {
	p := g.Player(playerID)
	own := g.Ownership[position]
	if p == nil || own == nil || own.OwnerID != playerID || !own.Mortgaged {
		return false
	}

	space := g.Board.Space(position)
	cost := int(float64(space.MortgageValue) * (1 + g.Options.MortgageFeeRate))
	if p.Cash < cost {
		return false
	}

	p.Cash -= cost
	own.Mortgaged = false
	g.Events.Log(EventUnmortgage, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"cost":     cost,
	})
	return true
}

// CanBuildHouse checks every precondition for adding one house at
// position: ownership, no mortgage anywhere in the group, a full
// monopoly, the even-build rule, bank supply, and affordability.
func (g *GameState) CanBuildHouse(playerID, position int) bool {
	p := g.Player(playerID)
	space := g.Board.PropertySpace(position)
	own := g.Ownership[position]
	if p == nil || space == nil || own == nil || own.OwnerID != playerID {
		return false
	}
	if own.Mortgaged || own.Houses >= 4 {
		return false
	}
	if !g.HasMonopoly(playerID, space.ColorGroup) {
		return false
	}
	// Even-build: only a property at the group's minimum house count may
	// add. A mortgage anywhere in the group also blocks building.
	for _, pos := range g.Board.ColorGroup(space.ColorGroup) {
		if pos == position {
			continue
		}
		sibling := g.Ownership[pos]
		if sibling.Mortgaged || sibling.Houses < own.Houses {
			return false
		}
	}
	return g.Bank.Houses > 0 && p.Cash >= space.HouseCost
}

// BuildHouse adds one house at position after re-validation.
func (g *GameState) BuildHouse(playerID, position int) bool {
	if !g.CanBuildHouse(playerID, position) {
		return false
	}
	p := g.Player(playerID)
	space := g.Board.Space(position)
	own := g.Ownership[position]

	g.Bank.TakeHouse()
	p.Cash -= space.HouseCost
	own.Houses++
	g.Events.Log(EventHouseBuilt, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"houses":   own.Houses,
		"cost":     space.HouseCost,
	})
	return true
}

// CanBuildHotel checks the hotel upgrade preconditions: four houses here
// and on every group sibling, hotel supply, and affordability.
func (g *GameState) CanBuildHotel(playerID, position int) bool {
	p := g.Player(playerID)
	space := g.Board.PropertySpace(position)
	own := g.Ownership[position]
	if p == nil || space == nil || own == nil || own.OwnerID != playerID {
		return false
	}
	if own.Mortgaged || own.Houses != 4 {
		return false
	}
	if !g.HasMonopoly(playerID, space.ColorGroup) {
		return false
	}
	for _, pos := range g.Board.ColorGroup(space.ColorGroup) {
		if g.Ownership[pos].Houses < 4 {
			return false
		}
	}
	return g.Bank.Hotels > 0 && p.Cash >= space.HouseCost
}

// BuildHotel upgrades four houses to a hotel, returning the houses to the
// bank supply.
func (g *GameState) BuildHotel(playerID, position int) bool {
	if !g.CanBuildHotel(playerID, position) {
		return false
	}
	p := g.Player(playerID)
	space := g.Board.Space(position)
	own := g.Ownership[position]

	g.Bank.TakeHotel()
	g.Bank.ReturnHouses(4)
	p.Cash -= space.HouseCost
	own.Houses = 5
	g.Events.Log(EventHotelBuilt, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"cost":     space.HouseCost,
	})
	return true
}

// SellBuilding removes one house at position under the even-sell rule.
// The bank pays half the house cost regardless of improvement level.
func (g *GameState) SellBuilding(playerID, position int) bool {
	p := g.Player(playerID)
	space := g.Board.PropertySpace(position)
	own := g.Ownership[position]
	if p == nil || space == nil || own == nil || own.OwnerID != playerID {
		return false
	}
	if own.Houses == 0 || own.Houses == 5 {
		return false
	}
	// Even-sell: only a property at the group's maximum house count may
	// sell.
	for _, pos := range g.Board.ColorGroup(space.ColorGroup) {
		if pos == position {
			continue
		}
		if sibling := g.Ownership[pos]; sibling.Houses > own.Houses {
			return false
		}
	}

	own.Houses--
	g.Bank.ReturnHouses(1)
	proceeds := space.HouseCost / 2
	p.Cash += proceeds
	g.Events.Log(EventHouseSold, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"houses":   own.Houses,
		"proceeds": proceeds,
	})
	return true
}

// DowngradeHotel converts a hotel back to four houses, requiring four
// houses available in the bank. The bank pays half the house cost.
func (g *GameState) DowngradeHotel(playerID, position int) bool {
	p := g.Player(playerID)
	space := g.Board.PropertySpace(position)
	own := g.Ownership[position]
	if p == nil || space == nil || own == nil || own.OwnerID != playerID {
		return false
	}
	if own.Houses != 5 || g.Bank.Houses < 4 {
		return false
	}

	g.Bank.ReturnHotel()
	for i := 0; i < 4; i++ {
		g.Bank.TakeHouse()
	}
	own.Houses = 4
	proceeds := space.HouseCost / 2
	p.Cash += proceeds
	g.Events.Log(EventHotelSold, playerID, map[string]any{
		"property": space.Name,
		"position": position,
		"proceeds": proceeds,
	})
	return true
}
