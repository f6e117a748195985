package engine

import (
	"testing"

	"connectfour/agent"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays a fixed move sequence. A negative column simulates a
// misbehaving agent.
type scriptedAgent struct {
	moves []int
	next  int
}

func (s *scriptedAgent) FindMove(state *game.GameState, player game.Player) (int, error) {
	move := s.moves[s.next%len(s.moves)]
	s.next++
	return move, nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("plays a full game to a resolved result", func(t *testing.T) {
		a := agent.NewSearchAgent("mcts", searcher.NewMCTS(50, searcher.WithSeed(1)))
		b := agent.NewRandom(2)
		e := NewLocalEngine(a, b)

		record, err := e.Run()

		require.NoError(t, err)
		require.NotEqual(t, game.Ongoing, record.Result)
		require.NotEmpty(t, record.Moves)
		require.LessOrEqual(t, len(record.Moves), 42, "a 6x7 board holds 42 tokens")
	})

	t.Run("alternates movers starting with PlayerA", func(t *testing.T) {
		a := &scriptedAgent{moves: []int{0}}
		b := &scriptedAgent{moves: []int{1}}
		e := NewLocalEngine(a, b)

		record, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.WinA, record.Result, "PlayerA stacks column 0 unopposed")
		for i, move := range record.Moves {
			if i%2 == 0 {
				require.Equal(t, game.PlayerA, move.Player)
			} else {
				require.Equal(t, game.PlayerB, move.Player)
			}
		}
	})

	t.Run("replaces an illegal proposal with the first legal column", func(t *testing.T) {
		a := &scriptedAgent{moves: []int{-1}} // always illegal
		b := &scriptedAgent{moves: []int{6}}
		e := NewLocalEngine(a, b)

		record, err := e.Run()

		require.NoError(t, err)
		for _, move := range record.Moves {
			if move.Player == game.PlayerA {
				require.Equal(t, 0, move.Column)
			}
		}
	})

	t.Run("observer sees every applied move", func(t *testing.T) {
		a := &scriptedAgent{moves: []int{2}}
		b := &scriptedAgent{moves: []int{3}}
		e := NewLocalEngine(a, b)

		var seen []int
		e.Observer = func(state *game.GameState, move MoveRecord) {
			seen = append(seen, move.Column)
		}

		record, err := e.Run()

		require.NoError(t, err)
		require.Len(t, seen, len(record.Moves))
	})

	t.Run("starts from an arbitrary position", func(t *testing.T) {
		state := game.NewGameState()
		for _, col := range []int{0, 1, 2} {
			_, err := state.Apply(col, game.PlayerA)
			require.NoError(t, err)
		}
		a := agent.NewSearchAgent("minimax", searcher.NewMinimax(2))
		b := agent.NewRandom(3)
		e := NewLocalEngineState(state, a, b)

		record, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.WinA, record.Result, "minimax completes the bottom row")
		require.Len(t, record.Moves, 1)
	})
}
