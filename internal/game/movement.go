package game

// MovePlayer moves a player forward (or backward, for negative spaces) on
// the board. Passing GO on a forward move credits the salary before the
// move is logged.
func (g *GameState) MovePlayer(playerID, spaces int, collectGo bool) {
	p := g.Player(playerID)
	if p == nil {
		return
	}
	old := p.Position
	newPos := ((old+spaces)%BoardSize + BoardSize) % BoardSize

	if collectGo && spaces > 0 && newPos < old {
		g.collectGoSalary(p)
	}

	p.Position = newPos
	g.Events.Log(EventMove, playerID, map[string]any{
		"from":   old,
		"to":     newPos,
		"spaces": spaces,
	})
}

// MovePlayerTo places a player directly on a position, as card effects do.
// GO is credited when the destination index is numerically behind the
// origin (a wrap), unless collectGo is false.
func (g *GameState) MovePlayerTo(playerID, position int, collectGo bool) {
	p := g.Player(playerID)
	if p == nil {
		return
	}
	old := p.Position
	position = ((position % BoardSize) + BoardSize) % BoardSize

	if collectGo && position < old {
		g.collectGoSalary(p)
	}

	p.Position = position
	g.Events.Log(EventMove, playerID, map[string]any{
		"from":   old,
		"to":     position,
		"direct": true,
	})
}

func (g *GameState) collectGoSalary(p *PlayerState) {
	p.Cash += g.Options.GoSalary
	g.Events.Log(EventPassGo, p.ID, map[string]any{
		"salary": g.Options.GoSalary,
	})
}

// SendToJail puts a player in jail. No salary is credited even when the
// jail position is behind the player.
func (g *GameState) SendToJail(playerID int) {
	p := g.Player(playerID)
	if p == nil {
		return
	}
	p.Position = JailPosition
	p.InJail = true
	p.JailTurns = 0
	p.ConsecutiveDoubles = 0
	g.Events.Log(EventGoToJail, playerID, nil)
}

// ResolveJailAttempt applies a jail-release roll. Doubles release the
// player and move them by the roll total; the roll does not grant another
// turn. A non-doubles roll on the final permitted attempt auto-pays the
// fine if affordable (then moves by the roll), otherwise the player stays
// in jail until they raise the fine or go bankrupt. Returns whether the
// player got out.
func (g *GameState) ResolveJailAttempt(playerID, die1, die2 int) bool {
	p := g.Player(playerID)
	if p == nil || !p.InJail {
		return false
	}
	p.JailTurns++

	if die1 == die2 {
		p.InJail = false
		p.JailTurns = 0
		g.Events.Log(EventJailRelease, playerID, map[string]any{
			"method": "doubles",
		})
		g.MovePlayer(playerID, die1+die2, true)
		return true
	}

	if p.JailTurns >= g.Options.MaxJailTurns {
		if p.Cash >= g.Options.JailFine {
			p.Cash -= g.Options.JailFine
			p.InJail = false
			p.JailTurns = 0
			g.Events.Log(EventJailRelease, playerID, map[string]any{
				"method": "forced_fine",
				"fine":   g.Options.JailFine,
			})
			g.MovePlayer(playerID, die1+die2, true)
			return true
		}
		// Broke on the final attempt: stays in jail until funds are
		// raised or bankruptcy is declared.
	}
	return false
}

// PayJailFine pays the fine voluntarily before rolling. The player is
// released in place and still owes this turn's dice roll.
func (g *GameState) PayJailFine(playerID int) bool {
	p := g.Player(playerID)
	if p == nil || !p.InJail || p.Cash < g.Options.JailFine {
		return false
	}
	p.Cash -= g.Options.JailFine
	p.InJail = false
	p.JailTurns = 0
	g.Events.Log(EventJailRelease, playerID, map[string]any{
		"method": "fine",
		"fine":   g.Options.JailFine,
	})
	return true
}

// UseJailCard spends a Get Out of Jail Free card. The physical card
// returns to the discard pile of whichever deck still holds one.
func (g *GameState) UseJailCard(playerID int) bool {
	p := g.Player(playerID)
	if p == nil || !p.InJail || p.GetOutOfJailCards <= 0 {
		return false
	}
	p.GetOutOfJailCards--
	p.InJail = false
	p.JailTurns = 0
	if !g.Chance.ReturnHeld() {
		g.CommunityChest.ReturnHeld()
	}
	g.Events.Log(EventJailRelease, playerID, map[string]any{
		"method": "card",
	})
	return true
}
