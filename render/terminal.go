// Package render draws grid rows as ANSI runs for terminals and as styled
// blocks for the HTML preview.
package render

import (
	"strings"

	"github.com/openclaw/terminal-qr/matrix"
)

const (
	esc   = "\x1b"
	reset = esc + "[0m"
)

// Background color codes. Light and Border share white.
const (
	bgWhite = "47"
	bgBlack = "40"
)

// TerminalColor returns the SGR background code used for c.
func TerminalColor(c matrix.Cell) string {
	switch c {
	case matrix.Dark:
		return bgBlack
	case matrix.Light, matrix.Border:
		return bgWhite
	default:
		return bgWhite
	}
}

// TerminalRow renders one row as a run of colored spaces. A color escape is
// written only where the color changes, each cell becomes width spaces and
// the row always ends with a reset.
func TerminalRow(row []matrix.Cell, width int) string {
	var b strings.Builder
	cell := strings.Repeat(" ", max(width, 0))
	last := ""
	for _, c := range row {
		color := TerminalColor(c)
		if color != last {
			b.WriteString(esc + "[" + color + "m")
			last = color
		}
		b.WriteString(cell)
	}
	b.WriteString(reset)
	return b.String()
}

// Terminal renders the whole grid, one line per row.
func Terminal(grid matrix.Grid, width int) string {
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(TerminalRow(row, width))
		b.WriteByte('\n')
	}
	return b.String()
}

// ColorChanges counts the color escapes TerminalRow emits for row.
func ColorChanges(row []matrix.Cell) int {
	n := 0
	last := ""
	for _, c := range row {
		if color := TerminalColor(c); color != last {
			n++
			last = color
		}
	}
	return n
}
