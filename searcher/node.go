package searcher

import (
	"fmt"
	"math"

	"connectfour/game"

	"golang.org/x/exp/rand"
)

// node is one state snapshot in the MCTS tree. Children are owned by their
// parent; the parent link is a non-owning back-reference used only by
// backpropagation, so dropping the root releases the whole tree.
type node struct {
	state    *game.GameState
	parent   *node
	move     int         // column that produced this state, noMove at the root
	mover    game.Player // player whose move produced this state
	visits   int
	wins     float64 // win count, with DrawHalf credited per draw
	children []*node
	untried  []int
}

func newNode(state *game.GameState, move int, parent *node, mover game.Player) *node {
	return &node{
		state:   state,
		move:    move,
		parent:  parent,
		mover:   mover,
		untried: state.ValidMoves(),
	}
}

// nextMover is the player to act from this node's state.
func (n *node) nextMover() game.Player { return n.mover.Opponent() }

func (n *node) terminal() bool { return n.state.Result() != game.Ongoing }

func (n *node) fullyExpanded() bool { return len(n.untried) == 0 }

// selectChild picks the child maximizing UCB1, breaking exact ties uniformly
// at random.
func (n *node) selectChild(c float64, rng *rand.Rand) *node {
	best := math.Inf(-1)
	var picks []*node
	for _, child := range n.children {
		score := ucb1(child.wins, child.visits, c, n.visits)
		if score > best {
			best = score
			picks = append(picks[:0], child)
		} else if score == best {
			picks = append(picks, child)
		}
	}
	if len(picks) == 0 {
		return nil
	}
	return picks[rng.Intn(len(picks))]
}

// expand pops one untried move, plays it on a clone of this node's state and
// attaches the resulting child. Moves are popped from the back of the
// ascending move list, so expansion order runs from high columns down.
func (n *node) expand() *node {
	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	mover := n.nextMover()
	state := n.state.Clone()
	if _, err := state.Apply(move, mover); err != nil {
		panic(fmt.Sprintf("expanding illegal move %d: %v", move, err))
	}
	child := newNode(state, move, n, mover)
	n.children = append(n.children, child)
	return child
}

// rollout plays uniformly random legal moves on a private clone, alternating
// movers, until the game resolves.
func (n *node) rollout(rng *rand.Rand) game.Result {
	state := n.state.Clone()
	mover := n.nextMover()
	for state.Result() == game.Ongoing {
		moves := state.ValidMoves()
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))]
		if _, err := state.Apply(move, mover); err != nil {
			panic(fmt.Sprintf("rollout applied illegal move %d: %v", move, err))
		}
		mover = mover.Opponent()
	}
	return state.Result()
}

// backpropagate walks the parent chain up to the root, crediting each node
// with the rollout outcome from the perspective of the mover who produced
// it. Every walk reaches the root, so the root's visit counter equals the
// number of completed simulations.
func (n *node) backpropagate(result game.Result) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		switch {
		case result.Winner() == cur.mover:
			cur.wins += Win
		case result == game.Draw:
			cur.wins += DrawHalf
		}
	}
}
