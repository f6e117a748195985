package game

// Player identifies one of the two movers. None marks an empty cell.
type Player int8

const (
	None Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other mover, or None for None.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "PlayerA"
	case PlayerB:
		return "PlayerB"
	default:
		return "None"
	}
}

// Result is the outcome of a position, derived from the board alone.
type Result int8

const (
	Ongoing Result = iota
	WinA
	WinB
	Draw
)

// Winner returns the winning player, or None for Ongoing and Draw.
func (r Result) Winner() Player {
	switch r {
	case WinA:
		return PlayerA
	case WinB:
		return PlayerB
	default:
		return None
	}
}

func (r Result) String() string {
	switch r {
	case WinA:
		return "PlayerA wins"
	case WinB:
		return "PlayerB wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func winOf(p Player) Result {
	if p == PlayerA {
		return WinA
	}
	return WinB
}
