package metrics

import (
	"time"

	"connectfour/game"
)

// AgentConfig describes one benchmark agent. Kind selects the engine:
// "minimax", "mcts" or "random".
type AgentConfig struct {
	ID          int     `yaml:"id"`
	Kind        string  `yaml:"kind"`
	Depth       int     `yaml:"depth"`        // minimax search depth
	NoPruning   bool    `yaml:"no_pruning"`   // minimax: disable alpha-beta
	Simulations int     `yaml:"simulations"`  // mcts iteration budget
	Exploration float64 `yaml:"exploration"`  // mcts UCB1 constant, 0 = default
	Seed        uint64  `yaml:"seed"`         // 0 seeds from the clock
}

// GameRecord ties one finished game to the configs that played it. Starting
// holds the config ID of the agent seated as PlayerA.
type GameRecord struct {
	ID       int
	Agent1   int
	Agent2   int
	Starting int
	Result   game.Result
	Moves    int
	Duration time.Duration
}

// MoveRecord is one move of one benchmark game.
type MoveRecord struct {
	Game     int
	Step     int
	Player   game.Player
	Column   int
	Duration time.Duration
}
