package gomoku

import (
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Line scores indexed by run length 0..5. Runs of five or more use the last entry.
var (
	ownLineScores      = [entity.WinLength + 1]int{0, 0, 10, 100, 1000, 10000}
	opponentLineScores = [entity.WinLength + 1]int{0, 0, 9, 90, 900, 9000}
)

const center = entity.BoardSize / 2

// Score evaluates player hypothetically occupying the empty cell (row, col). The board is not
// modified and nothing is looked ahead.
func Score(board *entity.Board, row, col int, player entity.Mark) int {
	score := 0
	own, opponent := is(player), is(player.Opponent())

	for _, axis := range Axes {
		score += lineScore(ownLineScores, ScanAxis(board, row, col, axis, own))
		score += lineScore(opponentLineScores, ScanAxis(board, row, col, axis, opponent))
	}

	return score + centrality(row, col)
}

func lineScore(table [entity.WinLength + 1]int, count int) int {
	if count > entity.WinLength {
		count = entity.WinLength
	}

	return table[count]
}

func centrality(row, col int) int {
	return entity.BoardSize - (abs(center-row) + abs(center-col))
}

func abs(value int) int {
	if value < 0 {
		return -value
	}

	return value
}
