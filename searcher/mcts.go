package searcher

import (
	"time"

	"connectfour/game"

	"golang.org/x/exp/rand"
)

// MCTS estimates move quality with random playouts instead of a heuristic.
// Every FindMove call builds a fresh tree of private state snapshots and
// tears it down with the decision; trees are never reused between turns.
type MCTS struct {
	simulations int
	exploration float64
	rng         *rand.Rand
	metric      SearchMetric
}

type MCTSOption func(*MCTS)

// WithExploration overrides the UCB1 exploration constant.
func WithExploration(c float64) MCTSOption {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithSeed makes the engine deterministic for tests and benchmarks.
func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func NewMCTS(simulations int, options ...MCTSOption) *MCTS {
	m := &MCTS{
		simulations: simulations,
		exploration: DefaultExploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove runs the full simulation budget against a tree rooted at state
// and returns the most-visited root move, ties going to the lowest column.
// state itself is never mutated; the root owns its own clone. With a zero
// budget, or a terminal root, it falls back to a uniform random legal move.
func (m *MCTS) FindMove(state *game.GameState, player game.Player) int {
	m.metric = SearchMetric{}
	start := time.Now()
	root := newNode(state.Clone(), noMove, nil, player.Opponent())

	for i := 0; i < m.simulations; i++ {
		node := m.selectNode(root)
		if !node.terminal() && !node.fullyExpanded() {
			node = node.expand()
			m.metric.Expansions++
		}
		result := node.rollout(m.rng)
		node.backpropagate(result)
		m.metric.Simulations++
	}
	m.metric.Duration = time.Since(start)

	if len(root.children) == 0 {
		moves := state.ValidMoves()
		if len(moves) == 0 {
			return fallbackColumn
		}
		return moves[m.rng.Intn(len(moves))]
	}

	best := root.children[0]
	for _, child := range root.children[1:] {
		if child.visits > best.visits ||
			(child.visits == best.visits && child.move < best.move) {
			best = child
		}
	}
	return best.move
}

// selectNode descends from the root while nodes are fully expanded and
// non-terminal, following UCB1 at each layer.
func (m *MCTS) selectNode(root *node) *node {
	node := root
	for !node.terminal() && node.fullyExpanded() {
		child := node.selectChild(m.exploration, m.rng)
		if child == nil {
			break
		}
		node = child
	}
	return node
}

// Metrics reports the work performed by the most recent FindMove call.
func (m *MCTS) Metrics() SearchMetric { return m.metric }
