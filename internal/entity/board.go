package entity

import (
	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

const (
	BoardSize = 15
	WinLength = 5
	MaxMoves  = BoardSize * BoardSize
)

// Grid is a full copy of the cell states, indexed [row][col].
type Grid [BoardSize][BoardSize]Mark

// Move is a single placed stone.
type Move struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Player Mark `json:"player"`
}

// Board holds the cells and the log of moves that produced them. The log length always equals
// the number of occupied cells.
type Board struct {
	cells Grid
	moves []Move
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Reset - clears every cell and the move log.
func (that *Board) Reset() {
	that.cells = Grid{}
	that.moves = make([]Move, 0, MaxMoves)
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// At returns the mark at (row, col), EmptyCell when out of range.
func (that *Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return EmptyCell
	}

	return that.cells[row][col]
}

// IsEmpty reports false for out-of-range coordinates.
func (that *Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.cells[row][col] == EmptyCell
}

// Apply places player at (row, col) and records the move. The caller must have validated the cell.
func (that *Board) Apply(row, col int, player Mark) Move {
	move := Move{Row: row, Col: col, Player: player}

	that.cells[row][col] = player
	that.moves = append(that.moves, move)

	return move
}

// UndoLast - removes the most recent move and clears its cell.
func (that *Board) UndoLast() (Move, error) {
	if len(that.moves) == 0 {
		return Move{}, apperror.ErrNoMoveToUndo
	}

	last := that.moves[len(that.moves)-1]
	that.moves = that.moves[:len(that.moves)-1]
	that.cells[last.Row][last.Col] = EmptyCell

	return last, nil
}

func (that *Board) IsFull() bool {
	for row := range that.cells {
		for _, cell := range that.cells[row] {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) MoveCount() int {
	return len(that.moves)
}

func (that *Board) LastMove() (Move, bool) {
	if len(that.moves) == 0 {
		return Move{}, false
	}

	return that.moves[len(that.moves)-1], true
}

// Moves returns a copy of the move log, oldest first.
func (that *Board) Moves() []Move {
	return append([]Move(nil), that.moves...)
}

func (that *Board) Snapshot() Grid {
	return that.cells
}

// EmptyCells lists the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, MaxMoves-len(that.moves))
	for row := range that.cells {
		for col, cell := range that.cells[row] {
			if cell == EmptyCell {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}
