package agent

import (
	"math/rand"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/game/rules"
)

// greedyPriority is the fixed preference order for actions outside the
// purchase decision. Trading actions are deliberately absent; greedy
// agents do not initiate trades and reject all incoming ones.
var greedyPriority = []rules.ActionType{
	rules.ActionRollDice,
	rules.ActionBuyProperty,
	rules.ActionBuildHotel,
	rules.ActionBuildHouse,
	rules.ActionUnmortgage,
	rules.ActionPayJailFine,
	rules.ActionUseJailCard,
	rules.ActionBid,
	rules.ActionEndTurn,
	rules.ActionDeclinePurchase,
	rules.ActionPassAuction,
}

// GreedyAgent buys and builds whenever it can, declining only purchases
// that would eat too much of its cash reserve. The occasional decline on
// moderately priced properties keeps auctions in play.
type GreedyAgent struct {
	playerID int
	name     string
	rng      *rand.Rand
}

// NewGreedyAgent creates a greedy agent. The RNG is seeded from the
// player id so the agent's choices are reproducible per seat.
func NewGreedyAgent(playerID int, name string) *GreedyAgent {
	return &GreedyAgent{
		playerID: playerID,
		name:     name,
		rng:      rand.New(rand.NewSource(int64(playerID))),
	}
}

func (a *GreedyAgent) PlayerID() int { return a.playerID }
func (a *GreedyAgent) Name() string  { return a.name }

// ChooseAction applies the greedy policy: buy affordable properties,
// reject incoming trades, then walk the fixed priority order.
func (a *GreedyAgent) ChooseAction(g *game.GameState, legalActions []rules.Action) rules.Action {
	player := g.Player(a.playerID)

	var buy, decline *rules.Action
	for i := range legalActions {
		switch legalActions[i].Type {
		case rules.ActionBuyProperty:
			buy = &legalActions[i]
		case rules.ActionDeclinePurchase:
			decline = &legalActions[i]
		}
	}
	if buy != nil && decline != nil && player.Cash > 0 {
		space := g.Board.Space(buy.Position)
		priceRatio := float64(space.Price) / float64(player.Cash)
		switch {
		case priceRatio > 0.4:
			return *decline
		case priceRatio > 0.2 && a.rng.Float64() < 0.3:
			return *decline
		default:
			return *buy
		}
	}

	for _, act := range legalActions {
		if act.Type == rules.ActionRejectTrade {
			return act
		}
	}

	for _, wanted := range greedyPriority {
		for _, act := range legalActions {
			if act.Type != wanted {
				continue
			}
			if wanted == rules.ActionBid && g.ActiveAuction != nil {
				currentBid := g.ActiveAuction.CurrentBid
				maxBid := player.Cash / 2
				if currentBid+10 > maxBid {
					continue
				}
				act.Amount = currentBid + 10
			}
			return act
		}
	}
	return legalActions[0]
}
