package agent

import (
	"math/rand"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/game/rules"
)

// RandomAgent picks uniformly among legal actions, with a strong bias
// toward rolling and ending the turn so games keep moving.
type RandomAgent struct {
	playerID int
	name     string
	rng      *rand.Rand
}

// NewRandomAgent creates a random agent with its own seeded RNG, kept
// separate from the game RNG so agent choices never perturb dice or
// shuffles.
func NewRandomAgent(playerID int, name string, seed int64) *RandomAgent {
	return &RandomAgent{
		playerID: playerID,
		name:     name,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) PlayerID() int { return a.playerID }
func (a *RandomAgent) Name() string  { return a.name }

// ChooseAction picks an action, preferring roll and end-turn, and fills
// in a random affordable bid amount when bidding.
func (a *RandomAgent) ChooseAction(g *game.GameState, legalActions []rules.Action) rules.Action {
	for _, act := range legalActions {
		if act.Type == rules.ActionRollDice && a.rng.Float64() < 0.8 {
			return act
		}
	}
	for _, act := range legalActions {
		if act.Type == rules.ActionEndTurn && a.rng.Float64() < 0.7 {
			return act
		}
	}

	action := legalActions[a.rng.Intn(len(legalActions))]

	if action.Type == rules.ActionBid && g.ActiveAuction != nil {
		currentBid := g.ActiveAuction.CurrentBid
		cash := g.Player(a.playerID).Cash
		maxBid := currentBid + 100
		if cash < maxBid {
			maxBid = cash
		}
		if maxBid > currentBid {
			action.Amount = currentBid + 1 + a.rng.Intn(maxBid-currentBid)
			return action
		}
		for _, act := range legalActions {
			if act.Type == rules.ActionPassAuction {
				return act
			}
		}
	}
	return action
}
