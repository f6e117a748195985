package engine

import (
	"time"

	"connectfour/game"
)

// MoveRecord describes one applied move.
type MoveRecord struct {
	Step     int
	Player   game.Player
	Column   int
	Row      int
	Duration time.Duration // time the agent spent deciding
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	Result    game.Result
	Moves     []MoveRecord
	StartTime time.Time
	Duration  time.Duration
}
