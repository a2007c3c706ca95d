package entity

// Mark is the content of a board cell: one of the two players or empty.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// HumanPlayer and ComputerPlayer are the sides in a game against the computer.
const (
	HumanPlayer    = PlayerX
	ComputerPlayer = PlayerO
)

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Rune returns the board glyph for the mark, '+' for an empty cell.
func (that Mark) Rune() rune {
	switch that {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return '+'
	}
}
