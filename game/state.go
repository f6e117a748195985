package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultRows = 6
	DefaultCols = 7
)

// ErrInvalidMove is returned when a token is dropped into a full or
// out-of-range column. Callers are expected to filter through ValidMoves
// first.
var ErrInvalidMove = errors.New("invalid move")

// GameState owns the grid and the current mover. Row 0 is the top of the
// board; tokens stack from the bottom (greater row index) up.
type GameState struct {
	rows  int
	cols  int
	board [][]Player
	mover Player
}

// NewGameState returns an empty board of the default 6x7 size with PlayerA
// to move.
func NewGameState() *GameState {
	return NewGameStateSize(DefaultRows, DefaultCols)
}

// NewGameStateSize returns an empty rows x cols board with PlayerA to move.
func NewGameStateSize(rows, cols int) *GameState {
	if rows < 4 || cols < 4 {
		panic("board must fit at least one four-cell window")
	}
	board := make([][]Player, rows)
	for r := range board {
		board[r] = make([]Player, cols)
	}
	return &GameState{rows: rows, cols: cols, board: board, mover: PlayerA}
}

func (gs *GameState) Rows() int { return gs.rows }

func (gs *GameState) Cols() int { return gs.cols }

// Cell returns the occupant of (row, col).
func (gs *GameState) Cell(row, col int) Player { return gs.board[row][col] }

// Mover returns the player whose turn it is.
func (gs *GameState) Mover() Player { return gs.mover }

// SwitchMover passes the turn to the other player.
func (gs *GameState) SwitchMover() { gs.mover = gs.mover.Opponent() }

// ValidMoves returns the playable columns in ascending order. The order is
// load-bearing: it is the tie-break order used by both search engines.
func (gs *GameState) ValidMoves() []int {
	moves := make([]int, 0, gs.cols)
	for col := 0; col < gs.cols; col++ {
		if gs.board[0][col] == None {
			moves = append(moves, col)
		}
	}
	return moves
}

// Apply drops a token for player into the lowest empty row of col and
// returns the row it landed in, so callers can cheaply test the new cell
// without a full board scan.
func (gs *GameState) Apply(col int, player Player) (int, error) {
	if col < 0 || col >= gs.cols || gs.board[0][col] != None {
		return -1, fmt.Errorf("column %d: %w", col, ErrInvalidMove)
	}
	row := gs.rows - 1
	for gs.board[row][col] != None {
		row--
	}
	gs.board[row][col] = player
	return row, nil
}

// Undo clears the given cell. Moves must be undone in exact reverse order of
// application; the gravity invariant is not re-checked here.
func (gs *GameState) Undo(row, col int) {
	gs.board[row][col] = None
}

// Result scans the whole board for a four-in-a-row run, independent of move
// history. Draw holds when the top row is full and no run exists.
func (gs *GameState) Result() Result {
	for row := 0; row < gs.rows; row++ {
		for col := 0; col < gs.cols; col++ {
			p := gs.board[row][col]
			if p == None {
				continue
			}
			if gs.connects(row, col, p) {
				return winOf(p)
			}
		}
	}
	for col := 0; col < gs.cols; col++ {
		if gs.board[0][col] == None {
			return Ongoing
		}
	}
	return Draw
}

// connects reports whether a run of four starts at (row, col) going right,
// down, down-right or down-left. Scanning every cell with these four anchors
// covers all windows exactly once.
func (gs *GameState) connects(row, col int, p Player) bool {
	if col+3 < gs.cols &&
		gs.board[row][col+1] == p && gs.board[row][col+2] == p && gs.board[row][col+3] == p {
		return true
	}
	if row+3 < gs.rows &&
		gs.board[row+1][col] == p && gs.board[row+2][col] == p && gs.board[row+3][col] == p {
		return true
	}
	if row+3 < gs.rows && col+3 < gs.cols &&
		gs.board[row+1][col+1] == p && gs.board[row+2][col+2] == p && gs.board[row+3][col+3] == p {
		return true
	}
	if row+3 < gs.rows && col-3 >= 0 &&
		gs.board[row+1][col-1] == p && gs.board[row+2][col-2] == p && gs.board[row+3][col-3] == p {
		return true
	}
	return false
}

// JustWon reports whether the token at (row, col) completes a run of four.
// Only the four window directions through that one cell are scanned, so this
// is the cheap check for a driver that just applied a move.
func (gs *GameState) JustWon(row, col int) bool {
	p := gs.board[row][col]
	if p == None {
		return false
	}
	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range directions {
		count := 1
		for _, sign := range [2]int{1, -1} {
			r, c := row+sign*d[0], col+sign*d[1]
			for r >= 0 && r < gs.rows && c >= 0 && c < gs.cols && gs.board[r][c] == p {
				count++
				r += sign * d[0]
				c += sign * d[1]
			}
		}
		if count >= 4 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the grid and mover.
func (gs *GameState) Clone() *GameState {
	board := make([][]Player, gs.rows)
	for r := range board {
		board[r] = make([]Player, gs.cols)
		copy(board[r], gs.board[r])
	}
	return &GameState{rows: gs.rows, cols: gs.cols, board: board, mover: gs.mover}
}

// Equal reports bit-for-bit equality of the grids and movers.
func (gs *GameState) Equal(other *GameState) bool {
	if gs.rows != other.rows || gs.cols != other.cols || gs.mover != other.mover {
		return false
	}
	for r := range gs.board {
		for c := range gs.board[r] {
			if gs.board[r][c] != other.board[r][c] {
				return false
			}
		}
	}
	return true
}

func (gs *GameState) String() string {
	var b strings.Builder
	for row := 0; row < gs.rows; row++ {
		b.WriteString("|")
		for col := 0; col < gs.cols; col++ {
			switch gs.board[row][col] {
			case PlayerA:
				b.WriteString(" A")
			case PlayerB:
				b.WriteString(" B")
			default:
				b.WriteString(" .")
			}
		}
		b.WriteString(" |\n")
	}
	return b.String()
}
