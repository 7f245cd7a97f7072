package game

// DrawCard draws the top card of the named deck for a player and executes
// its effect immediately. Cards are never queued. Returns the drawn card.
func (g *GameState) DrawCard(deck DeckKind, playerID int) Card {
	d := g.deck(deck)
	card := d.Draw()
	g.Events.Log(EventCardDrawn, playerID, map[string]any{
		"deck": string(deck),
		"card": card.Description,
	})
	g.ExecuteCard(card, playerID, d)
	return card
}

func (g *GameState) deck(kind DeckKind) *Deck {
	if kind == DeckChance {
		return g.Chance
	}
	return g.CommunityChest
}

// ExecuteCard applies a card's effect to the player and returns the card
// to the deck, except Get Out of Jail Free which moves to the held pool.
func (g *GameState) ExecuteCard(card Card, playerID int, deck *Deck) {
	p := g.Player(playerID)
	if p == nil {
		return
	}

	switch card.Kind {
	case CardMoveTo:
		g.MovePlayerTo(playerID, card.TargetPosition, card.CollectGo)

	case CardMoveSpaces:
		g.MovePlayer(playerID, card.Value, card.CollectGo)

	case CardMoveToNearest:
		target := g.nearestOfKind(p.Position, card.TargetKind)
		if card.RentMultiplier > 0 {
			g.NextRentMultiplier = card.RentMultiplier
		}
		g.MovePlayerTo(playerID, target, card.CollectGo)

	case CardCollect:
		p.Cash += card.Value

	case CardPay:
		p.Cash -= card.Value

	case CardPayPerHouse:
		g.payPerBuilding(p, card.Value, card.Value*4)

	case CardPayPerBuilding:
		g.payPerBuilding(p, card.Value, card.HotelValue)

	case CardCollectFromPlayers:
		for _, other := range g.Players {
			if other.ID == playerID || other.Bankrupt {
				continue
			}
			amount := min(card.Value, other.Cash)
			other.Cash -= amount
			p.Cash += amount
		}

	case CardPayToPlayers:
		for _, other := range g.Players {
			if other.ID == playerID || other.Bankrupt {
				continue
			}
			amount := min(card.Value, p.Cash)
			p.Cash -= amount
			other.Cash += amount
		}

	case CardGoToJail:
		g.SendToJail(playerID)

	case CardGetOutOfJail:
		p.GetOutOfJailCards++
		deck.Hold(card)
	}

	if card.Kind != CardGetOutOfJail {
		deck.Discard(card)
	}

	g.Events.Log(EventCardEffect, playerID, map[string]any{
		"card":   card.Description,
		"effect": card.Kind.String(),
	})
}

// payPerBuilding charges repair-style cards: a hotel (5 houses) is billed
// at the hotel rate, anything else per house.
func (g *GameState) payPerBuilding(p *PlayerState, perHouse, perHotel int) {
	total := 0
	for pos := range p.Properties {
		own := g.Ownership[pos]
		if own.HasHotel() {
			total += perHotel
		} else {
			total += own.Houses * perHouse
		}
	}
	p.Cash -= total
}

func (g *GameState) nearestOfKind(from int, kind SpaceKind) int {
	if kind == SpaceUtility {
		return g.Board.NearestUtility(from)
	}
	return g.Board.NearestRailroad(from)
}
