package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

type Mode string

const (
	ModePvP  Mode = "pvp"
	ModePvAI Mode = "ai"
)

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModePvP, ModePvAI:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, value)
	}
}

// UndoDepth - number of moves a single undo request removes in this mode.
func (that Mode) UndoDepth() int {
	if that == ModePvAI {
		return 2
	}

	return 1
}

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

// Outcome is the terminal state checked after each move.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("%s wins", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return string(StatusOngoing)
	}
}
