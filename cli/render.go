package cli

import (
	"fmt"
	"strings"

	"connectfour/game"

	"github.com/muesli/termenv"
)

// Renderer draws the board with colored tokens for terminal play.
type Renderer struct {
	profile termenv.Profile
}

func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

func (r *Renderer) token(p game.Player) string {
	switch p {
	case game.PlayerA:
		return termenv.String("●").Foreground(r.profile.Color("1")).String()
	case game.PlayerB:
		return termenv.String("●").Foreground(r.profile.Color("3")).String()
	default:
		return "·"
	}
}

// Render returns the board with a column ruler underneath.
func (r *Renderer) Render(state *game.GameState) string {
	var b strings.Builder
	for row := 0; row < state.Rows(); row++ {
		b.WriteString("|")
		for col := 0; col < state.Cols(); col++ {
			b.WriteString(" ")
			b.WriteString(r.token(state.Cell(row, col)))
		}
		b.WriteString(" |\n")
	}
	b.WriteString(" ")
	for col := 0; col < state.Cols(); col++ {
		fmt.Fprintf(&b, " %d", col%10)
	}
	b.WriteString("\n")
	return b.String()
}

// Banner describes a final result for display.
func (r *Renderer) Banner(result game.Result) string {
	switch result {
	case game.WinA:
		return r.token(game.PlayerA) + " PlayerA wins!"
	case game.WinB:
		return r.token(game.PlayerB) + " PlayerB wins!"
	case game.Draw:
		return "Draw!"
	default:
		return "Game in progress"
	}
}
