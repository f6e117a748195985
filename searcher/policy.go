package searcher

import "math"

// Hyperparameters shared by both engines.

// DefaultExploration is the UCB1 exploration constant C.
const DefaultExploration = math.Sqrt2

// Rollout outcomes credited during backpropagation.
const (
	Win      = 1.0
	DrawHalf = 0.5
)

// fallbackColumn is returned when no legal move exists at all.
const fallbackColumn = 0

// noMove marks a search return without a column (terminal or cutoff leaf).
const noMove = -1

// ucb1 scores a child for selection. Unvisited children score +Inf so they
// are always tried before any sibling is revisited.
func ucb1(wins float64, visits int, c float64, parentVisits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return wins/float64(visits) +
		c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}
