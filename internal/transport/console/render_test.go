package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	// Given: a board with X in the center and O in the corner
	board := entity.NewBoard()
	board.Apply(7, 7, entity.PlayerX)
	board.Apply(0, 0, entity.PlayerO)

	// When: rendering it
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, board.Snapshot()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// Then: a header and one line per row
	require.Len(t, lines, entity.BoardSize+1)
	assert.Equal(t, "     0  1  2  3  4  5  6  7  8  9 10 11 12 13 14 ", lines[0])
	assert.Equal(t, " 0  O "+strings.Repeat(" + ", 14), lines[1])
	assert.Equal(t, " 7 "+strings.Repeat(" + ", 7)+" X "+strings.Repeat(" + ", 7), lines[8])
	assert.Equal(t, "14 "+strings.Repeat(" + ", 15), lines[15])
}
