package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackfall/stackfall/pkg/grid"
	"github.com/stackfall/stackfall/pkg/tetromino"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - locked cells
	colorDim   = lipgloss.Color("240") // Dim gray - empty cells and borders
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleCell  = lipgloss.NewStyle().Foreground(colorWhite)
)

// cell glyphs. Two columns per cell keeps the aspect ratio roughly square
// in a terminal.
const (
	glyphSet   = "██"
	glyphEmpty = "··"
)

// renderMask renders a piece mask with set cells in the piece's own color.
func renderMask(mask *grid.Grid[grid.Bit], color tetromino.Color) string {
	set := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex()))
	return renderCells(mask, set)
}

// renderBoard renders a playfield with locked cells in white, framed by a
// dim border.
func renderBoard(board *grid.Grid[grid.Bit]) string {
	shape := board.Shape()
	edge := styleDim.Render("+" + strings.Repeat("--", shape.Col) + "+")
	wall := styleDim.Render("|")

	var b strings.Builder
	b.WriteString(edge + "\n")
	for _, line := range strings.Split(renderCells(board, styleCell), "\n") {
		b.WriteString(wall + line + wall + "\n")
	}
	b.WriteString(edge)
	return b.String()
}

// renderCells draws every cell of g, styling set cells with set and empty
// cells dim.
func renderCells(g *grid.Grid[grid.Bit], set lipgloss.Style) string {
	rows := g.Rows()
	lines := make([]string, len(rows))
	for r, row := range rows {
		var b strings.Builder
		for _, cell := range row {
			if cell == grid.On {
				b.WriteString(set.Render(glyphSet))
			} else {
				b.WriteString(styleDim.Render(glyphEmpty))
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// printKeyValue prints an aligned "key: value" summary line.
func printKeyValue(key string, value any) {
	fmt.Printf("%s %v\n", styleDim.Render(key+":"), value)
}
