package game

import (
	"math/rand"

	"go.uber.org/zap"
)

// DiceRoll is the result of rolling two dice.
type DiceRoll struct {
	Die1 int `json:"die1"`
	Die2 int `json:"die2"`
}

// Total returns the sum of both dice.
func (r DiceRoll) Total() int { return r.Die1 + r.Die2 }

// IsDoubles reports whether both dice show the same value.
func (r DiceRoll) IsDoubles() bool { return r.Die1 == r.Die2 }

// PendingPayment records an owed rent or tax amount the payer could not
// cover. OwnerID is NoPlayer for taxes. While set, the payer's legal
// actions are restricted to fund-raising and bankruptcy.
type PendingPayment struct {
	PayerID int
	OwnerID int
	Amount  int
}

// GameState is the aggregate root of one game. It owns the board, bank,
// event log, card decks, player states, the ownership table, and the
// transient auction and trade machinery. All mutation goes through its
// methods; each method validates, mutates, appends at most one event, and
// returns success or failure without panicking on rule violations.
//
// GameState itself is not safe for concurrent use. Callers must serialize
// mutating calls externally.
type GameState struct {
	Board          *Board
	Bank           *Bank
	Events         *EventLog
	Trades         *TradeManager
	Chance         *Deck
	CommunityChest *Deck

	Players   []*PlayerState
	Ownership map[int]*PropertyOwnership

	CurrentPlayerIndex int
	TurnNumber         int
	ActiveAuction      *Auction
	PendingRent        *PendingPayment
	PendingTax         *PendingPayment
	GameOver           bool
	Winner             int
	LastRoll           *DiceRoll
	PendingDiceRoll    bool

	// NextRentMultiplier is a one-shot rent override set by "advance to
	// nearest railroad/utility" cards. Zero means unset. It is read by
	// CalculateRent and consumed by PayRent.
	NextRentMultiplier float64

	Options Options
	Seed    int64

	rng    *rand.Rand
	logger *zap.Logger
}

// NewGameState creates a game with the given player names, options, and
// RNG seed. The seed drives dice rolls and deck shuffles; the same seed
// and action sequence reproduce the same event log. logger may be nil.
func NewGameState(playerNames []string, opts Options, seed int64, logger *zap.Logger) *GameState {
	rng := rand.New(rand.NewSource(seed))
	g := &GameState{
		Board:           NewBoard(),
		Bank:            NewBank(opts.HouseSupply, opts.HotelSupply),
		Events:          NewEventLog(),
		Trades:          NewTradeManager(),
		Chance:          NewChanceDeck(rng),
		CommunityChest:  NewCommunityChestDeck(rng),
		Ownership:       make(map[int]*PropertyOwnership),
		TurnNumber:      1,
		Winner:          NoPlayer,
		PendingDiceRoll: true,
		Options:         opts,
		Seed:            seed,
		rng:             rng,
		logger:          logger,
	}

	for i, name := range playerNames {
		g.Players = append(g.Players, NewPlayerState(i, name, opts.StartingCash))
	}
	for pos := 0; pos < BoardSize; pos++ {
		if g.Board.Spaces[pos].Purchasable() {
			g.Ownership[pos] = &PropertyOwnership{OwnerID: NoPlayer}
		}
	}

	names := append([]string(nil), playerNames...)
	g.Events.Log(EventGameStart, NoPlayer, map[string]any{
		"players":       names,
		"starting_cash": opts.StartingCash,
		"seed":          seed,
	})
	if logger != nil {
		logger.Info("game created",
			zap.Int("players", len(playerNames)),
			zap.Int64("seed", seed))
	}
	return g
}

// Player returns the player with the given id, or nil.
func (g *GameState) Player(id int) *PlayerState {
	if id < 0 || id >= len(g.Players) {
		return nil
	}
	return g.Players[id]
}

// CurrentPlayer returns the player whose turn it is.
func (g *GameState) CurrentPlayer() *PlayerState {
	return g.Players[g.CurrentPlayerIndex]
}

// ActivePlayers returns the ids of all non-bankrupt players in turn order.
func (g *GameState) ActivePlayers() []int {
	var out []int
	for _, p := range g.Players {
		if !p.Bankrupt {
			out = append(out, p.ID)
		}
	}
	return out
}

// RollDice draws two dice values from the game RNG, records the roll, and
// clears the pending-roll flag. Always succeeds.
func (g *GameState) RollDice() DiceRoll {
	roll := DiceRoll{
		Die1: g.rng.Intn(6) + 1,
		Die2: g.rng.Intn(6) + 1,
	}
	g.LastRoll = &roll
	g.PendingDiceRoll = false
	g.Events.Log(EventDiceRoll, g.CurrentPlayerIndex, map[string]any{
		"die1":    roll.Die1,
		"die2":    roll.Die2,
		"total":   roll.Total(),
		"doubles": roll.IsDoubles(),
	})
	return roll
}

// EndTurn finishes the current player's turn: resets the doubles streak
// and dice state, advances to the next non-bankrupt player, and bumps the
// turn counter. When a turn limit is configured and reached, the game ends
// with the highest-net-worth player as winner.
func (g *GameState) EndTurn() {
	if g.GameOver {
		return
	}

	g.CurrentPlayer().ConsecutiveDoubles = 0
	g.LastRoll = nil
	g.PendingDiceRoll = true

	for i := 1; i <= len(g.Players); i++ {
		next := (g.CurrentPlayerIndex + i) % len(g.Players)
		if !g.Players[next].Bankrupt {
			g.CurrentPlayerIndex = next
			break
		}
	}
	g.TurnNumber++

	if g.Options.TimeLimitTurns > 0 && g.TurnNumber > g.Options.TimeLimitTurns {
		g.endByTimeLimit()
		return
	}

	g.Events.Log(EventTurnStart, g.CurrentPlayerIndex, map[string]any{
		"turn": g.TurnNumber,
	})
}

func (g *GameState) endByTimeLimit() {
	winner := NoPlayer
	best := 0
	for _, p := range g.Players {
		if p.Bankrupt {
			continue
		}
		worth := g.NetWorth(p.ID)
		if winner == NoPlayer || worth > best {
			winner = p.ID
			best = worth
		}
	}
	g.GameOver = true
	g.Winner = winner
	g.Events.Log(EventGameEnd, winner, map[string]any{
		"reason":    "time_limit",
		"turn":      g.TurnNumber,
		"net_worth": best,
	})
	if g.logger != nil {
		g.logger.Info("game ended at turn limit",
			zap.Int("winner", winner),
			zap.Int("turn", g.TurnNumber))
	}
}

// NetWorth computes a player's net worth: cash plus list price of owned
// properties (mortgage value deducted while mortgaged) plus building
// value at house cost.
func (g *GameState) NetWorth(playerID int) int {
	p := g.Player(playerID)
	if p == nil {
		return 0
	}
	worth := p.Cash
	for pos := range p.Properties {
		space := g.Board.Space(pos)
		own := g.Ownership[pos]
		worth += space.Price
		if own.Mortgaged {
			worth -= space.MortgageValue
		}
		worth += own.Houses * space.HouseCost
	}
	return worth
}

// StartAuction opens an auction for the property at position after the
// initiator declined to buy it. All non-bankrupt players are eligible;
// the initiator is pre-registered at the 10% floor bid.
func (g *GameState) StartAuction(position, initiatorID int) bool {
	if g.ActiveAuction != nil {
		return false
	}
	space := g.Board.Space(position)
	if !space.Purchasable() {
		return false
	}
	if own := g.Ownership[position]; own == nil || own.Owned() {
		return false
	}
	g.ActiveAuction = NewAuction(
		position, space.Name, g.ActivePlayers(), g.Events,
		initiatorID, space.Price, g.Options.MaxBidsPerPlayer,
	)
	return true
}

// ResolveAuction settles a completed auction: the winner pays the
// standing bid and takes the property, and the auction is cleared.
// Reports whether settlement happened.
func (g *GameState) ResolveAuction() bool {
	a := g.ActiveAuction
	if a == nil || !a.Complete {
		return false
	}
	winner := a.Winner()
	if winner != NoPlayer {
		p := g.Player(winner)
		p.Cash -= a.WinningBid()
		p.Properties[a.PropertyPosition] = struct{}{}
		g.Ownership[a.PropertyPosition].OwnerID = winner
	}
	g.ActiveAuction = nil
	return true
}

// checkGameOver ends the game when at most one non-bankrupt player
// remains.
func (g *GameState) checkGameOver() {
	if g.GameOver {
		return
	}
	active := g.ActivePlayers()
	if len(active) > 1 {
		return
	}
	g.GameOver = true
	if len(active) == 1 {
		g.Winner = active[0]
	}
	g.Events.Log(EventGameEnd, g.Winner, map[string]any{
		"reason": "last_player_standing",
		"turn":   g.TurnNumber,
	})
	if g.logger != nil {
		g.logger.Info("game over", zap.Int("winner", g.Winner), zap.Int("turn", g.TurnNumber))
	}
}
