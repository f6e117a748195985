package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour/game"
)

// Human reads column choices from a reader, re-prompting until a legal
// column is given. It is the terminal-input counterpart of the search
// agents.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) FindMove(state *game.GameState, player game.Player) (int, error) {
	moves := state.ValidMoves()
	for {
		fmt.Fprintf(h.out, "%s to move, pick a column %v: ", player, moves)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		text := strings.TrimSpace(h.in.Text())
		col, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintf(h.out, "not a column: %q\n", text)
			continue
		}
		if !contains(moves, col) {
			fmt.Fprintf(h.out, "column %d is full or out of range\n", col)
			continue
		}
		return col, nil
	}
}

func contains(moves []int, col int) bool {
	for _, m := range moves {
		if m == col {
			return true
		}
	}
	return false
}
