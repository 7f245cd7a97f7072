// Package runner drives a game to completion: it polls the rules engine
// for whoever may act, asks that player's agent to choose, and applies the
// choice. The engine itself never blocks; all pacing and serialization
// live here.
package runner

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openmonopoly/monopoly-server-go/internal/agent"
	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/game/rules"
)

// DefaultMaxSteps bounds runaway games that never reach a terminal state.
const DefaultMaxSteps = 100000

// Result summarizes a finished run.
type Result struct {
	GameID   uuid.UUID
	Winner   int
	Turns    int
	Steps    int
	Finished bool
	Events   []game.Event
}

// Runner owns one game and its agents. All mutating access to the game
// goes through the runner's mutex, which is the exclusion domain the
// engine requires.
type Runner struct {
	GameID   uuid.UUID
	MaxSteps int

	mu     sync.Mutex
	game   *game.GameState
	agents map[int]agent.Agent
	logger *zap.Logger
}

// New creates a runner for a game and its agents. logger may be nil.
func New(g *game.GameState, agents []agent.Agent, logger *zap.Logger) *Runner {
	byID := make(map[int]agent.Agent, len(agents))
	for _, a := range agents {
		byID[a.PlayerID()] = a
	}
	return &Runner{
		GameID:   uuid.New(),
		MaxSteps: DefaultMaxSteps,
		game:     g,
		agents:   byID,
		logger:   logger,
	}
}

// Run steps the game until it ends, the step cap is hit, or the context
// is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	steps := 0
	for steps < r.MaxSteps {
		if err := ctx.Err(); err != nil {
			return r.result(steps), err
		}
		if !r.Step() {
			break
		}
		steps++
	}

	res := r.result(steps)
	if r.logger != nil {
		r.logger.Info("run finished",
			zap.String("game_id", r.GameID.String()),
			zap.Bool("finished", res.Finished),
			zap.Int("winner", res.Winner),
			zap.Int("turns", res.Turns),
			zap.Int("steps", res.Steps))
	}
	return res, nil
}

// Step lets the next entitled player act once. Returns false when the
// game is over or nobody can act.
func (r *Runner) Step() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game.GameOver {
		return false
	}

	// Rotate from the current player so auction bidders each get a shot.
	n := len(r.game.Players)
	for i := 0; i < n; i++ {
		playerID := (r.game.CurrentPlayerIndex + i) % n
		actions := rules.GetLegalActions(r.game, playerID)
		if len(actions) == 0 {
			continue
		}
		a, ok := r.agents[playerID]
		if !ok {
			continue
		}
		choice := a.ChooseAction(r.game, actions)
		if !rules.ApplyAction(r.game, choice, playerID) && r.logger != nil {
			r.logger.Warn("agent action rejected",
				zap.String("game_id", r.GameID.String()),
				zap.Int("player", playerID),
				zap.String("action", string(choice.Type)))
		}
		return true
	}
	return false
}

// Snapshot returns the public game projection under the runner's lock.
func (r *Runner) Snapshot() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// LegalActions returns the player's current legal actions under the
// runner's lock.
func (r *Runner) LegalActions(playerID int) []rules.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rules.GetLegalActions(r.game, playerID)
}

// Events returns a copy of the event log under the runner's lock.
func (r *Runner) Events() []game.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Events.Events()
}

// Apply submits one externally chosen action under the runner's lock.
func (r *Runner) Apply(playerID int, action rules.Action) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rules.ApplyAction(r.game, action, playerID)
}

func (r *Runner) result(steps int) Result {
	return Result{
		GameID:   r.GameID,
		Winner:   r.game.Winner,
		Turns:    r.game.TurnNumber,
		Steps:    steps,
		Finished: r.game.GameOver,
		Events:   r.game.Events.Events(),
	}
}
