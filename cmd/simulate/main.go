// Command simulate runs bot-only games locally and prints the results.
// Useful for balance experiments and for checking that a seed reproduces
// the same game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openmonopoly/monopoly-server-go/internal/agent"
	"github.com/openmonopoly/monopoly-server-go/internal/config"
	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/runner"
)

var (
	configPath = flag.String("config", "", "optional path to configuration file")
	players    = flag.String("players", "Alice,Bob,Carol,Dave", "comma-separated player names")
	strategy   = flag.String("strategy", "greedy", "agent strategy: greedy or random")
	seed       = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	games      = flag.Int("games", 1, "number of games to run")
	turnLimit  = flag.Int("turn-limit", 500, "turn limit per game (0 = unlimited)")
	verbose    = flag.Bool("verbose", false, "log every event at the end of each game")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	names := strings.Split(*players, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	if len(names) < 2 {
		fmt.Fprintln(os.Stderr, "at least two players required")
		os.Exit(1)
	}

	opts := cfg.Game.ToOptions()
	if *turnLimit > 0 {
		opts.TimeLimitTurns = *turnLimit
	}

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	wins := make(map[int]int)
	for n := 0; n < *games; n++ {
		gameSeed := baseSeed + int64(n)
		g := game.NewGameState(names, opts, gameSeed, logger)

		agents := make([]agent.Agent, 0, len(names))
		for i, name := range names {
			if *strategy == "random" {
				agents = append(agents, agent.NewRandomAgent(i, name, gameSeed+int64(i)+1))
			} else {
				agents = append(agents, agent.NewGreedyAgent(i, name))
			}
		}

		r := runner.New(g, agents, logger)
		result, err := r.Run(context.Background())
		if err != nil {
			logger.Fatal("run failed", zap.Error(err))
		}

		winnerName := "none"
		if result.Winner != game.NoPlayer {
			winnerName = names[result.Winner]
			wins[result.Winner]++
		}
		fmt.Printf("game %d (seed %d): winner=%s turns=%d steps=%d events=%d\n",
			n+1, gameSeed, winnerName, result.Turns, result.Steps, len(result.Events))

		if *verbose {
			for _, ev := range result.Events {
				fmt.Printf("  %5d %-20s player=%d %v\n", ev.Seq, ev.Type, ev.PlayerID, ev.Details)
			}
		}
	}

	if *games > 1 {
		fmt.Println("win totals:")
		for i, name := range names {
			fmt.Printf("  %s: %d\n", name, wins[i])
		}
	}
}
