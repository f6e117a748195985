package experiments

import (
	"fmt"
	"os"

	"connectfour/experiments/metrics"

	"gopkg.in/yaml.v3"
)

// DefaultGames is the number of games per matchup when a config does not say
// otherwise.
const DefaultGames = 20

// Config declares the agents and matchups for one benchmark run. Matchups
// reference agents by ID; the starting seat alternates per game.
type Config struct {
	Games    int                   `yaml:"games"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][2]int              `yaml:"matchups"`
}

// LoadConfig reads a YAML benchmark config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Games <= 0 {
		cfg.Games = DefaultGames
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig pits both engines against each other and the random
// baseline at a few budgets.
func DefaultConfig() Config {
	return Config{
		Games: DefaultGames,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: "mcts", Simulations: 200},
			{ID: 2, Kind: "mcts", Simulations: 500},
			{ID: 3, Kind: "minimax", Depth: 3},
			{ID: 4, Kind: "minimax", Depth: 4},
			{ID: 5, Kind: "random"},
		},
		Matchups: [][2]int{
			{1, 5}, {3, 5}, // engines vs baseline
			{1, 3}, {2, 4}, // mcts vs minimax
		},
	}
}

func (c Config) validate() error {
	byID := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if byID[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		byID[a.ID] = true
	}
	for _, m := range c.Matchups {
		for _, id := range m {
			if !byID[id] {
				return fmt.Errorf("matchup references unknown agent id %d", id)
			}
		}
	}
	return nil
}

func (c Config) agentByID(id int) (metrics.AgentConfig, error) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, nil
		}
	}
	return metrics.AgentConfig{}, fmt.Errorf("unknown agent id %d", id)
}
