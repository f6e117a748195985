package searcher

import (
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewNode(t *testing.T) {
	t.Run("root starts with all legal moves untried", func(t *testing.T) {
		state := game.NewGameState()
		root := newNode(state, noMove, nil, game.PlayerB)

		require.Len(t, root.untried, 7)
		require.Empty(t, root.children)
		require.Zero(t, root.visits)
		require.Equal(t, game.PlayerA, root.nextMover(),
			"PlayerA acts from a root produced by PlayerB")
	})

	t.Run("terminal node is recognized", func(t *testing.T) {
		state := game.NewGameState()
		for _, col := range []int{0, 1, 2, 3} {
			_, err := state.Apply(col, game.PlayerA)
			require.NoError(t, err)
		}
		node := newNode(state, 3, nil, game.PlayerA)

		require.True(t, node.terminal())
	})
}

func TestExpand(t *testing.T) {
	t.Run("pops untried moves from the back", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)

		child := root.expand()

		require.Equal(t, 6, child.move, "Highest column expands first")
		require.Len(t, root.untried, 6)
		require.Len(t, root.children, 1)
		require.Equal(t, root, child.parent)
		require.Equal(t, game.PlayerA, child.mover)
	})

	t.Run("child owns an independent snapshot", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)

		child := root.expand()

		require.Equal(t, game.PlayerA, child.state.Cell(5, child.move))
		require.Equal(t, game.None, root.state.Cell(5, child.move),
			"Expanding must not mutate the parent's snapshot")
	})

	t.Run("fully expanded after all moves popped", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		for i := 0; i < 7; i++ {
			root.expand()
		}

		require.True(t, root.fullyExpanded())
		require.Len(t, root.children, 7)
	})
}

func TestSelectChild(t *testing.T) {
	t.Run("prefers an unvisited child", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		root.visits = 3
		visited := root.expand()
		visited.visits = 2
		visited.wins = 2
		fresh := root.expand()

		require.Equal(t, fresh, root.selectChild(DefaultExploration, testRand()),
			"Unvisited child scores +Inf and wins selection")
	})

	t.Run("picks the max UCB1 child once all are visited", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		strong := root.expand()
		weak := root.expand()
		root.visits = 10
		strong.visits = 5
		strong.wins = 4
		weak.visits = 5
		weak.wins = 1

		require.Equal(t, strong, root.selectChild(DefaultExploration, testRand()))
	})

	t.Run("no children yields nil", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)

		require.Nil(t, root.selectChild(DefaultExploration, testRand()))
	})
}

func TestRollout(t *testing.T) {
	t.Run("always reaches a resolved result", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		rng := testRand()

		for i := 0; i < 50; i++ {
			result := root.rollout(rng)
			require.NotEqual(t, game.Ongoing, result)
		}
	})

	t.Run("terminal node returns its own result", func(t *testing.T) {
		state := game.NewGameState()
		for _, col := range []int{0, 1, 2, 3} {
			_, err := state.Apply(col, game.PlayerA)
			require.NoError(t, err)
		}
		node := newNode(state, 3, nil, game.PlayerA)

		require.Equal(t, game.WinA, node.rollout(testRand()))
	})

	t.Run("does not mutate the node's snapshot", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		before := root.state.Clone()

		root.rollout(testRand())

		require.True(t, root.state.Equal(before))
	})
}

func TestBackpropagate(t *testing.T) {
	t.Run("credits each node by the mover who produced it", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		child := root.expand()  // produced by PlayerA
		grand := child.expand() // produced by PlayerB

		grand.backpropagate(game.WinA)

		require.Equal(t, 1, root.visits)
		require.Equal(t, 1, child.visits)
		require.Equal(t, 1, grand.visits)
		require.Equal(t, 0.0, grand.wins, "PlayerB's node earns nothing from a PlayerA win")
		require.Equal(t, 1.0, child.wins, "PlayerA's node earns the win")
		require.Equal(t, 0.0, root.wins, "root was produced by PlayerB")
	})

	t.Run("draw credits half everywhere", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		child := root.expand()

		child.backpropagate(game.Draw)

		require.Equal(t, 0.5, child.wins)
		require.Equal(t, 0.5, root.wins)
	})

	t.Run("every walk reaches the root", func(t *testing.T) {
		root := newNode(game.NewGameState(), noMove, nil, game.PlayerB)
		child := root.expand()
		grand := child.expand()

		grand.backpropagate(game.WinB)
		child.backpropagate(game.WinA)
		root.backpropagate(game.Draw)

		require.Equal(t, 3, root.visits,
			"Root visits equal the number of backpropagated outcomes")
	})
}
