package render

import (
	"strings"

	"github.com/openclaw/terminal-qr/matrix"
)

const block = "█"

const (
	darkSpan  = `<span style="background:#000;color:#000">`
	lightSpan = `<span style="background:#fff;color:#fff">`
)

// PreviewRow renders one span per cell, foreground equal to background so
// the blocks read as a solid square. Cells are not coalesced.
func PreviewRow(row []matrix.Cell, width int) string {
	blocks := strings.Repeat(block, max(width, 0))
	var b strings.Builder
	for _, c := range row {
		if c == matrix.Dark {
			b.WriteString(darkSpan)
		} else {
			b.WriteString(lightSpan)
		}
		b.WriteString(blocks)
		b.WriteString("</span>")
	}
	return b.String()
}

// Preview renders the grid as a <pre> block.
func Preview(grid matrix.Grid, width int) string {
	var b strings.Builder
	b.WriteString("<pre>")
	for _, row := range grid {
		b.WriteString(PreviewRow(row, width))
		b.WriteByte('\n')
	}
	b.WriteString("</pre>")
	return b.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes s for display inside markup. Script text is only
// escaped here, never at composition time.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ScriptHTML wraps escaped script text for the script pane.
func ScriptHTML(script string) string {
	return `<pre class="token bash">` + EscapeHTML(script) + "</pre>"
}
