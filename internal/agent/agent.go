// Package agent provides pluggable decision strategies that drive players
// through a game. An agent only ever picks from the legal-action list the
// engine produced; it never mutates state itself.
package agent

import (
	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/game/rules"
)

// Agent chooses one action from the legal actions offered to its player.
// The returned action must come from the offered list, though agents may
// fill in free fields such as a bid amount.
type Agent interface {
	PlayerID() int
	Name() string
	ChooseAction(g *game.GameState, legalActions []rules.Action) rules.Action
}
