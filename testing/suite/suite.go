package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// BoardFromRows builds a board from ASCII rows, 'X' and 'O' for stones and any other rune for an
// empty cell. Stones are applied in row-major order, so the last stone is the last move. Missing
// rows and columns stay empty.
func (that *Suite) BoardFromRows(rows ...string) *entity.Board {
	that.Helper()

	if len(rows) > entity.BoardSize {
		that.Fatalf("too many rows: %d", len(rows))
	}

	board := entity.NewBoard()
	for row, line := range rows {
		if len(line) > entity.BoardSize {
			that.Fatalf("row %d too long: %d", row, len(line))
		}

		for col, glyph := range line {
			switch glyph {
			case 'X':
				board.Apply(row, col, entity.PlayerX)
			case 'O':
				board.Apply(row, col, entity.PlayerO)
			}
		}
	}

	return board
}

// Swapped returns a copy of board with X and O exchanged, keeping the move order.
func (that *Suite) Swapped(board *entity.Board) *entity.Board {
	that.Helper()

	swapped := entity.NewBoard()
	for _, move := range board.Moves() {
		swapped.Apply(move.Row, move.Col, move.Player.Opponent())
	}

	return swapped
}

// DrawnRows is a full board pattern with no five in a row anywhere.
func DrawnRows() []string {
	patterns := [4]string{
		"XXOOXXOOXXOOXXO",
		"OOXXOOXXOOXXOOX",
		"XOOXXOOXXOOXXOO",
		"OXXOOXXOOXXOOXX",
	}

	rows := make([]string, entity.BoardSize)
	for row := range rows {
		rows[row] = patterns[row%len(patterns)]
	}

	return rows
}
