package render

import (
	"strings"
	"testing"

	"github.com/openclaw/terminal-qr/matrix"
)

const (
	L = matrix.Light
	D = matrix.Dark
	B = matrix.Border
)

func TestTerminalRow(t *testing.T) {
	tests := []struct {
		name  string
		row   []matrix.Cell
		width int
		want  string
	}{
		{
			name:  "border and light coalesce",
			row:   []matrix.Cell{B, L, L, B},
			width: 1,
			want:  "\x1b[47m    \x1b[0m",
		},
		{
			name:  "dark run",
			row:   []matrix.Cell{B, D, D, L},
			width: 2,
			want:  "\x1b[47m  \x1b[40m    \x1b[47m  \x1b[0m",
		},
		{
			name:  "empty row still resets",
			row:   nil,
			width: 2,
			want:  "\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TerminalRow(tt.row, tt.width)
			if got != tt.want {
				t.Errorf("TerminalRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminalRow_Idempotent(t *testing.T) {
	row := []matrix.Cell{B, D, L, D, D, L, B}
	first := TerminalRow(row, 3)
	if second := TerminalRow(row, 3); first != second {
		t.Errorf("second render differs:\n%q\n%q", first, second)
	}
}

func TestColorChanges(t *testing.T) {
	tests := []struct {
		name string
		row  []matrix.Cell
		want int
	}{
		{"uniform", []matrix.Cell{B, L, B, L}, 1},
		{"alternating", []matrix.Cell{L, D, L, D}, 4},
		{"runs", []matrix.Cell{B, D, D, D, L, B}, 3},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorChanges(tt.row)
			if got != tt.want {
				t.Errorf("ColorChanges() = %d, want %d", got, tt.want)
			}
			if got > len(tt.row) {
				t.Errorf("ColorChanges() = %d exceeds %d cells", got, len(tt.row))
			}
			if tokens := strings.Count(TerminalRow(tt.row, 1), "\x1b[") - 1; tokens != got {
				t.Errorf("TerminalRow emitted %d color tokens, want %d", tokens, got)
			}
		})
	}
}

func TestTerminal_OneLinePerRow(t *testing.T) {
	grid := matrix.Grid{{B, B, B}, {B, D, B}, {B, B, B}}
	out := Terminal(grid, 2)
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("got %d lines, want 3", n)
	}
}

func TestPreviewRow(t *testing.T) {
	got := PreviewRow([]matrix.Cell{B, D, L}, 2)
	want := `<span style="background:#fff;color:#fff">██</span>` +
		`<span style="background:#000;color:#000">██</span>` +
		`<span style="background:#fff;color:#fff">██</span>`
	if got != want {
		t.Errorf("PreviewRow() = %q, want %q", got, want)
	}
}

func TestPreview(t *testing.T) {
	grid := matrix.Grid{{B, B}, {B, D}}
	got := Preview(grid, 1)
	if !strings.HasPrefix(got, "<pre>") || !strings.HasSuffix(got, "\n</pre>") {
		t.Errorf("Preview() not wrapped in <pre>: %q", got)
	}
	if n := strings.Count(got, "<span"); n != 4 {
		t.Errorf("Preview() has %d spans, want 4", n)
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`echo "<a>" & 'b'`)
	want := "echo &quot;&lt;a&gt;&quot; &amp; &#039;b&#039;"
	if got != want {
		t.Errorf("EscapeHTML() = %q, want %q", got, want)
	}
}
