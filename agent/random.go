package agent

import (
	"fmt"
	"time"

	"connectfour/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal column. It is the baseline opponent
// in benchmarks.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent. A zero seed seeds from the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(state *game.GameState, player game.Player) (int, error) {
	moves := state.ValidMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("no legal moves for %s", player)
	}
	return moves[a.rng.Intn(len(moves))], nil
}
