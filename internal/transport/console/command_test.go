package console

import (
	"testing"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{line: "7 7", expected: Command{Action: ActionMove, Row: 7, Col: 7}},
		{line: "  0\t14 ", expected: Command{Action: ActionMove, Row: 0, Col: 14}},
		{line: "-1 20", expected: Command{Action: ActionMove, Row: -1, Col: 20}},
		{line: "r", expected: Command{Action: ActionUndo}},
		{line: "UNDO", expected: Command{Action: ActionUndo}},
		{line: "q", expected: Command{Action: ActionQuit}},
		{line: "quit", expected: Command{Action: ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			command, err := ParseCommand(tt.line)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, command)
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	for _, line := range []string{"", "   ", "7", "a b", "7 b", "1 2 3", "r 1"} {
		t.Run(line, func(t *testing.T) {
			// When: parsing garbage
			_, err := ParseCommand(line)

			// Then: ErrInvalidCommand should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidCommand)
		})
	}
}
