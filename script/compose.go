package script

import (
	"strings"

	"github.com/openclaw/terminal-qr/matrix"
	"github.com/openclaw/terminal-qr/render"
)

// WindowTitle is set by PowerShell scripts before drawing.
const WindowTitle = "Terminal QR Code"

// Compose renders every grid row at width and wraps the rows in d's syntax.
// The result is raw script text; escape it only for markup display. An
// invalid dialect yields an empty script, so take dialects from ParseDialect.
func Compose(grid matrix.Grid, width int, d Dialect) string {
	if !d.Valid() {
		return ""
	}
	var b strings.Builder
	switch d {
	case Windows:
		b.WriteString("@echo off\ncls\n")
		for _, row := range grid {
			b.WriteString("echo " + render.TerminalRow(row, width) + "\n")
		}
		b.WriteString("echo.\npause >nul\n")
	case PowerShell:
		b.WriteString(`$Host.UI.RawUI.WindowTitle = "` + WindowTitle + `"` + "\nClear-Host\n")
		for _, row := range grid {
			ansi := strings.ReplaceAll(render.TerminalRow(row, width), "\x1b", "`e")
			b.WriteString(`Write-Host "` + ansi + `" -NoNewline` + "\n")
			b.WriteString(`Write-Host ""` + "\n")
		}
		b.WriteString(`Write-Host ""` + "\n")
		b.WriteString(`Read-Host -Prompt "Press Enter to exit"` + "\n")
	case Linux:
		for _, row := range grid {
			b.WriteString(`echo -e "` + render.TerminalRow(row, width) + `"` + "\n")
		}
	}
	return b.String()
}
