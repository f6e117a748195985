package main

import (
	"flag"
	"fmt"
	"os"

	"connectfour/agent"
	"connectfour/cli"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/experiments/metrics"
	"connectfour/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play or bench")
	playerA := flag.String("a", "human", "PlayerA agent: human, minimax, mcts or random")
	playerB := flag.String("b", "minimax", "PlayerB agent: human, minimax, mcts or random")
	depth := flag.Int("depth", 5, "minimax search depth")
	sims := flag.Int("sims", 1000, "mcts simulation budget")
	games := flag.Int("games", 0, "benchmark games per matchup, 0 = config value")
	configPath := flag.String("config", "", "benchmark config file (yaml)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *mode {
	case "play":
		runPlay(*playerA, *playerB, *depth, *sims)
	case "bench":
		runBench(*configPath, *games)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runPlay(kindA, kindB string, depth, sims int) {
	agentA, err := makeAgent(kindA, depth, sims)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid PlayerA agent")
	}
	agentB, err := makeAgent(kindB, depth, sims)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid PlayerB agent")
	}

	renderer := cli.NewRenderer()
	e := engine.NewLocalEngine(agentA, agentB)
	fmt.Printf("%s (A) vs %s (B)\n%s", kindA, kindB, renderer.Render(e.State))
	e.Observer = func(state *game.GameState, move engine.MoveRecord) {
		fmt.Printf("%s plays column %d\n%s", move.Player, move.Column, renderer.Render(state))
	}

	record, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	fmt.Println(renderer.Banner(record.Result))
}

func runBench(configPath string, games int) {
	cfg := experiments.DefaultConfig()
	if configPath != "" {
		loaded, err := experiments.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load benchmark config")
		}
		cfg = loaded
	}
	if games > 0 {
		cfg.Games = games
	}
	if err := experiments.Run("benchmark", cfg); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func makeAgent(kind string, depth, sims int) (agent.Agent, error) {
	if kind == "human" {
		return agent.NewHuman(os.Stdin, os.Stdout), nil
	}
	return experiments.BuildAgent(metrics.AgentConfig{
		Kind:        kind,
		Depth:       depth,
		Simulations: sims,
	})
}
