package engine

import (
	"fmt"
	"time"

	"connectfour/agent"
	"connectfour/game"

	"github.com/rs/zerolog/log"
)

// LocalEngine drives one game between two agents on a single authoritative
// state. Agents only see the state through the core primitives; an illegal
// proposal is replaced by the first legal column instead of corrupting the
// board.
type LocalEngine struct {
	State *game.GameState
	// Observer, when set, is called after every applied move with the
	// updated state.
	Observer func(state *game.GameState, move MoveRecord)

	agents map[game.Player]agent.Agent
}

// NewLocalEngine starts a game on a fresh default board. PlayerA moves
// first.
func NewLocalEngine(agentA, agentB agent.Agent) *LocalEngine {
	return NewLocalEngineState(game.NewGameState(), agentA, agentB)
}

// NewLocalEngineState starts a game from an arbitrary position.
func NewLocalEngineState(state *game.GameState, agentA, agentB agent.Agent) *LocalEngine {
	return &LocalEngine{
		State: state,
		agents: map[game.Player]agent.Agent{
			game.PlayerA: agentA,
			game.PlayerB: agentB,
		},
	}
}

// Run plays the game to completion and returns its record. It stops early
// with an error only when an agent fails to produce any move.
func (e *LocalEngine) Run() (GameRecord, error) {
	record := GameRecord{StartTime: time.Now()}

	for e.State.Result() == game.Ongoing {
		mover := e.State.Mover()
		moveStart := time.Now()
		col, err := e.agents[mover].FindMove(e.State, mover)
		if err != nil {
			record.Result = e.State.Result()
			record.Duration = time.Since(record.StartTime)
			return record, fmt.Errorf("agent for %s: %w", mover, err)
		}

		moves := e.State.ValidMoves()
		if !legal(moves, col) {
			log.Warn().Str("player", mover.String()).Int("column", col).
				Msg("agent proposed an illegal column, using first legal move")
			col = moves[0]
		}

		row, err := e.State.Apply(col, mover)
		if err != nil {
			record.Result = e.State.Result()
			record.Duration = time.Since(record.StartTime)
			return record, err
		}

		move := MoveRecord{
			Step:     len(record.Moves) + 1,
			Player:   mover,
			Column:   col,
			Row:      row,
			Duration: time.Since(moveStart),
		}
		record.Moves = append(record.Moves, move)
		log.Debug().Int("step", move.Step).Str("player", mover.String()).
			Int("column", col).Int("row", row).Msg("move applied")

		if e.Observer != nil {
			e.Observer(e.State, move)
		}

		// Cheap single-cell check before paying for the full scan at the
		// top of the loop.
		if e.State.JustWon(row, col) {
			break
		}
		e.State.SwitchMover()
	}

	record.Result = e.State.Result()
	record.Duration = time.Since(record.StartTime)
	log.Info().Str("result", record.Result.String()).
		Int("moves", len(record.Moves)).Msg("game over")
	return record, nil
}

func legal(moves []int, col int) bool {
	for _, m := range moves {
		if m == col {
			return true
		}
	}
	return false
}
