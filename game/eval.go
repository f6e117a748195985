package game

// Weights configures the positional heuristic. Passing them as a value
// object keeps the weights testable and swappable without global state.
type Weights struct {
	Win         int // saturating terminal score, must dominate any positional sum
	ThreeInRow  int
	TwoInRow    int
	CenterBonus int // per-token bonus at the center column, decaying by distance
}

func DefaultWeights() Weights {
	return Weights{Win: 1000, ThreeInRow: 100, TwoInRow: 10, CenterBonus: 3}
}

// Evaluator scores positions from one player's perspective by scanning every
// contiguous four-cell window on the board.
type Evaluator struct {
	weights Weights
}

func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Evaluate returns a score for player. Resolved positions saturate at
// ±Win (0 for a draw) so a proven result always outranks any positional
// score. Otherwise each window contributes ThreeInRow for three own tokens
// plus one empty, TwoInRow for two own tokens plus two empties, the mirrored
// penalties for the opponent, and zero when both players are present.
func (e *Evaluator) Evaluate(gs *GameState, player Player) int {
	switch result := gs.Result(); {
	case result.Winner() == player:
		return e.weights.Win
	case result.Winner() == player.Opponent():
		return -e.weights.Win
	case result == Draw:
		return 0
	}

	score := 0
	for row := 0; row < gs.rows; row++ {
		for col := 0; col+3 < gs.cols; col++ {
			score += e.scoreWindow(gs, row, col, 0, 1, player)
		}
	}
	for col := 0; col < gs.cols; col++ {
		for row := 0; row+3 < gs.rows; row++ {
			score += e.scoreWindow(gs, row, col, 1, 0, player)
		}
	}
	for row := 0; row+3 < gs.rows; row++ {
		for col := 0; col+3 < gs.cols; col++ {
			score += e.scoreWindow(gs, row, col, 1, 1, player)
		}
	}
	for row := 3; row < gs.rows; row++ {
		for col := 0; col+3 < gs.cols; col++ {
			score += e.scoreWindow(gs, row, col, -1, 1, player)
		}
	}
	return score + e.centerBonus(gs, player)
}

func (e *Evaluator) scoreWindow(gs *GameState, row, col, dr, dc int, player Player) int {
	var own, opp, empty int
	for i := 0; i < 4; i++ {
		switch gs.board[row+i*dr][col+i*dc] {
		case player:
			own++
		case None:
			empty++
		default:
			opp++
		}
	}
	score := 0
	if own == 3 && empty == 1 {
		score += e.weights.ThreeInRow
	} else if own == 2 && empty == 2 {
		score += e.weights.TwoInRow
	}
	if opp == 3 && empty == 1 {
		score -= e.weights.ThreeInRow
	} else if opp == 2 && empty == 2 {
		score -= e.weights.TwoInRow
	}
	return score
}

// centerBonus rewards central occupancy for player's own tokens only. The
// asymmetry (no penalty for opponent centrality) is intentional.
func (e *Evaluator) centerBonus(gs *GameState, player Player) int {
	bonus := 0
	center := gs.cols / 2
	for row := 0; row < gs.rows; row++ {
		for col := 0; col < gs.cols; col++ {
			if gs.board[row][col] != player {
				continue
			}
			distance := col - center
			if distance < 0 {
				distance = -distance
			}
			if d := e.weights.CenterBonus - distance; d > 0 {
				bonus += d
			}
		}
	}
	return bonus
}
