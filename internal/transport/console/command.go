package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

const (
	ActionMove = "move"
	ActionUndo = "undo"
	ActionQuit = "quit"
)

// Command is one line of player input.
type Command struct {
	Action string
	Row    int
	Col    int
}

// ParseCommand - accepts "row col", "r"/"undo" and "q"/"quit".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)

	switch {
	case len(fields) == 1:
		switch strings.ToLower(fields[0]) {
		case "r", "undo":
			return Command{Action: ActionUndo}, nil
		case "q", "quit", "exit":
			return Command{Action: ActionQuit}, nil
		}
	case len(fields) == 2:
		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr == nil && colErr == nil {
			return Command{Action: ActionMove, Row: row, Col: col}, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, line)
}
