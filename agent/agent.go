package agent

import (
	"connectfour/game"
)

// Agent proposes a move for a given state. Search engines, the random
// baseline and the human terminal adapter all sit behind this one
// capability, so drivers never branch on the concrete mover type.
type Agent interface {
	FindMove(state *game.GameState, player game.Player) (int, error)
}

// MoveFinder is the decision entry point both search engines expose.
type MoveFinder interface {
	FindMove(state *game.GameState, player game.Player) int
}

// SearchAgent adapts a search engine to the Agent interface.
type SearchAgent struct {
	name   string
	finder MoveFinder
}

func NewSearchAgent(name string, finder MoveFinder) *SearchAgent {
	return &SearchAgent{name: name, finder: finder}
}

func (a *SearchAgent) Name() string { return a.name }

func (a *SearchAgent) FindMove(state *game.GameState, player game.Player) (int, error) {
	return a.finder.FindMove(state, player), nil
}
