package searcher

import (
	"fmt"
	"math"
	"time"

	"connectfour/game"
)

// Minimax is a depth-bounded adversarial search with optional alpha-beta
// pruning. It explores by mutating the caller's state in place and undoing
// every move in strict reverse order, so a state is exclusive to one ongoing
// FindMove call.
type Minimax struct {
	depth     int
	pruning   bool
	evaluator *game.Evaluator
	metric    SearchMetric
}

type MinimaxOption func(*Minimax)

// WithoutPruning disables alpha-beta cuts, searching the full game tree to
// the configured depth. Useful for benchmarking the pruning gain.
func WithoutPruning() MinimaxOption {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithEvaluator swaps the leaf heuristic.
func WithEvaluator(evaluator *game.Evaluator) MinimaxOption {
	return func(m *Minimax) {
		if evaluator != nil {
			m.evaluator = evaluator
		}
	}
}

func NewMinimax(depth int, options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth:     depth,
		pruning:   true,
		evaluator: game.NewEvaluator(game.DefaultWeights()),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best column for player after searching depth plies.
// A depth of zero or less means no lookahead: the first legal column is
// returned. Callers must not request a move for a terminal state.
func (m *Minimax) FindMove(state *game.GameState, player game.Player) int {
	m.metric = SearchMetric{}
	start := time.Now()
	_, move := m.search(state, m.depth, math.MinInt, math.MaxInt, true, player)
	m.metric.Duration = time.Since(start)

	if move == noMove {
		moves := state.ValidMoves()
		if len(moves) == 0 {
			return fallbackColumn
		}
		return moves[0]
	}
	return move
}

// search returns the score of state from player's perspective and the column
// achieving it, or noMove at a leaf. The first column reaching a new best
// score wins ties: later equal scores never replace it.
func (m *Minimax) search(state *game.GameState, depth, alpha, beta int, maximizing bool, player game.Player) (int, int) {
	m.metric.Nodes++

	if depth <= 0 || state.Result() != game.Ongoing {
		return m.evaluator.Evaluate(state, player), noMove
	}

	moves := state.ValidMoves()
	if len(moves) == 0 {
		// Full board that Result has not flagged yet: score it, no move.
		return m.evaluator.Evaluate(state, player), noMove
	}

	if maximizing {
		bestScore := math.MinInt
		bestMove := moves[0]
		for _, move := range moves {
			row := m.apply(state, move, player)
			score, _ := m.search(state, depth-1, alpha, beta, false, player)
			state.Undo(row, move)
			if score > bestScore {
				bestScore = score
				bestMove = move
			}
			if m.pruning {
				if bestScore > alpha {
					alpha = bestScore
				}
				if beta <= alpha {
					m.metric.Cutoffs++
					break
				}
			}
		}
		return bestScore, bestMove
	}

	bestScore := math.MaxInt
	bestMove := moves[0]
	for _, move := range moves {
		row := m.apply(state, move, player.Opponent())
		score, _ := m.search(state, depth-1, alpha, beta, true, player)
		state.Undo(row, move)
		if score < bestScore {
			bestScore = score
			bestMove = move
		}
		if m.pruning {
			if bestScore < beta {
				beta = bestScore
			}
			if beta <= alpha {
				m.metric.Cutoffs++
				break
			}
		}
	}
	return bestScore, bestMove
}

func (m *Minimax) apply(state *game.GameState, move int, mover game.Player) int {
	row, err := state.Apply(move, mover)
	if err != nil {
		panic(fmt.Sprintf("search applied illegal move %d: %v", move, err))
	}
	return row
}

// Metrics reports the work performed by the most recent FindMove call.
func (m *Minimax) Metrics() SearchMetric { return m.metric }
