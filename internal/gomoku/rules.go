package gomoku

import (
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Axis is a line direction through a cell, given as a unit step.
type Axis struct {
	DRow int
	DCol int
}

// Axes are horizontal, vertical, diagonal down-right and diagonal down-left.
var Axes = [4]Axis{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}

// reach - how many cells a scan inspects in each direction.
const reach = entity.WinLength - 1

// ScanAxis counts the cell at (row, col) plus the contiguous cells on both sides of it along axis
// for which match holds. Each side stops at the first mismatch or the board edge.
func ScanAxis(board *entity.Board, row, col int, axis Axis, match func(entity.Mark) bool) int {
	return 1 +
		countRun(board, row, col, axis.DRow, axis.DCol, match) +
		countRun(board, row, col, -axis.DRow, -axis.DCol, match)
}

func countRun(board *entity.Board, row, col, dRow, dCol int, match func(entity.Mark) bool) int {
	count := 0
	for step := 1; step <= reach; step++ {
		r, c := row+step*dRow, col+step*dCol
		if !board.InBounds(r, c) || !match(board.At(r, c)) {
			break
		}
		count++
	}

	return count
}

func is(mark entity.Mark) func(entity.Mark) bool {
	return func(cell entity.Mark) bool {
		return cell == mark
	}
}

// IsValidMove - checks the cell is on the board and free.
func IsValidMove(board *entity.Board, row, col int) bool {
	return board.IsEmpty(row, col)
}

// CheckWin reports whether player, having just played (row, col), has five in a row through it.
func CheckWin(board *entity.Board, row, col int, player entity.Mark) bool {
	for _, axis := range Axes {
		if ScanAxis(board, row, col, axis, is(player)) >= entity.WinLength {
			return true
		}
	}

	return false
}

// IsDraw is true when the board is full and the move that filled it did not win.
func IsDraw(board *entity.Board) bool {
	if !board.IsFull() {
		return false
	}

	last, ok := board.LastMove()
	if ok && CheckWin(board, last.Row, last.Col, last.Player) {
		return false
	}

	return true
}

// CheckTerminal evaluates the board after its most recent move.
func CheckTerminal(board *entity.Board) entity.Outcome {
	last, ok := board.LastMove()
	if ok && CheckWin(board, last.Row, last.Col, last.Player) {
		return entity.Outcome{Status: entity.StatusWin, Winner: last.Player}
	}

	if IsDraw(board) {
		return entity.Outcome{Status: entity.StatusDraw}
	}

	return entity.Ongoing()
}
