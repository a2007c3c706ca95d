package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Render - writes the board with row and column indices.
func Render(writer io.Writer, grid entity.Grid) error {
	var builder strings.Builder

	builder.WriteString("    ")
	for col := 0; col < entity.BoardSize; col++ {
		fmt.Fprintf(&builder, "%2d ", col)
	}
	builder.WriteString("\n")

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintf(&builder, "%2d ", row)
		for col := 0; col < entity.BoardSize; col++ {
			fmt.Fprintf(&builder, "%2c ", grid[row][col].Rune())
		}
		builder.WriteString("\n")
	}

	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
