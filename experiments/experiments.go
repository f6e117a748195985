package experiments

import (
	"fmt"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
)

// tally accumulates one agent's results across a run.
type tally struct {
	wins, draws, losses int
}

// Run plays every matchup in cfg, logs a per-agent summary and stores the
// raw records as CSV under experiments/<name>/<timestamp>.
func Run(name string, cfg Config) error {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	tallies := map[int]*tally{}
	for _, a := range cfg.Agents {
		tallies[a.ID] = &tally{}
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games each",
		name, len(cfg.Matchups), cfg.Games)

	count := 0
	for mi, matchup := range cfg.Matchups {
		config1, err := cfg.agentByID(matchup[0])
		if err != nil {
			return err
		}
		config2, err := cfg.agentByID(matchup[1])
		if err != nil {
			return err
		}

		log.Info().Msgf("matchup %d of %d: agent %d vs agent %d",
			mi+1, len(cfg.Matchups), config1.ID, config2.ID)

		for i := 0; i < cfg.Games; i++ {
			// Alternate who sits as PlayerA for a fair comparison.
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}
			record, err := runGame(first, second)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:       count,
				Agent1:   config1.ID,
				Agent2:   config2.ID,
				Starting: first.ID,
				Result:   record.Result,
				Moves:    len(record.Moves),
				Duration: record.Duration,
			})
			for _, m := range record.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:     count,
					Step:     m.Step,
					Player:   m.Player,
					Column:   m.Column,
					Duration: m.Duration,
				})
			}
			score(tallies, first.ID, second.ID, record.Result)
		}
	}

	for _, a := range cfg.Agents {
		t := tallies[a.ID]
		log.Info().Msgf("agent %d (%s): %d wins, %d draws, %d losses",
			a.ID, a.Kind, t.wins, t.draws, t.losses)
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())
	return nil
}

// runGame plays one game with first seated as PlayerA.
func runGame(first, second metrics.AgentConfig) (engine.GameRecord, error) {
	agentA, err := BuildAgent(first)
	if err != nil {
		return engine.GameRecord{}, err
	}
	agentB, err := BuildAgent(second)
	if err != nil {
		return engine.GameRecord{}, err
	}
	return engine.NewLocalEngine(agentA, agentB).Run()
}

func score(tallies map[int]*tally, firstID, secondID int, result game.Result) {
	switch result {
	case game.WinA:
		tallies[firstID].wins++
		tallies[secondID].losses++
	case game.WinB:
		tallies[secondID].wins++
		tallies[firstID].losses++
	case game.Draw:
		tallies[firstID].draws++
		tallies[secondID].draws++
	}
}

// BuildAgent constructs the agent an AgentConfig describes.
func BuildAgent(cfg metrics.AgentConfig) (agent.Agent, error) {
	switch cfg.Kind {
	case "minimax":
		options := []searcher.MinimaxOption{}
		if cfg.NoPruning {
			options = append(options, searcher.WithoutPruning())
		}
		name := fmt.Sprintf("minimax-%d", cfg.Depth)
		return agent.NewSearchAgent(name, searcher.NewMinimax(cfg.Depth, options...)), nil
	case "mcts":
		options := []searcher.MCTSOption{}
		if cfg.Exploration > 0 {
			options = append(options, searcher.WithExploration(cfg.Exploration))
		}
		if cfg.Seed != 0 {
			options = append(options, searcher.WithSeed(cfg.Seed))
		}
		name := fmt.Sprintf("mcts-%d", cfg.Simulations)
		return agent.NewSearchAgent(name, searcher.NewMCTS(cfg.Simulations, options...)), nil
	case "random":
		return agent.NewRandom(cfg.Seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", cfg.Kind)
	}
}
