package matrix

import (
	"errors"
	"strings"
	"testing"
)

type fakeEncoder struct {
	bits  [][]bool
	err   error
	calls int
}

func (f *fakeEncoder) Encode(string) ([][]bool, error) {
	f.calls++
	return f.bits, f.err
}

func TestBuild_BorderAndSize(t *testing.T) {
	tests := []string{"HELLO", "https://example.com/path?q=1", strings.Repeat("x", MaxContentLength)}

	for _, text := range tests {
		t.Run(text[:min(len(text), 12)], func(t *testing.T) {
			bits, err := NewQREncoder().Encode(text)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			grid, err := Build(NewQREncoder(), text)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if grid.Size() != len(bits)+2 {
				t.Fatalf("Size() = %d, want %d", grid.Size(), len(bits)+2)
			}
			if (len(bits)-17)%4 != 0 {
				t.Errorf("symbol size %d is not a QR version size", len(bits))
			}
			last := grid.Size() - 1
			for i := 0; i <= last; i++ {
				for _, c := range []Cell{grid[0][i], grid[last][i], grid[i][0], grid[i][last]} {
					if c != Border {
						t.Fatalf("edge cell at %d = %d, want Border", i, c)
					}
				}
			}
			for y := 1; y < last; y++ {
				if len(grid[y]) != grid.Size() {
					t.Fatalf("row %d has %d cells", y, len(grid[y]))
				}
				for x := 1; x < last; x++ {
					want := Light
					if bits[y-1][x-1] {
						want = Dark
					}
					if grid[y][x] != want {
						t.Fatalf("cell (%d,%d) = %d, want %d", y, x, grid[y][x], want)
					}
				}
			}
		})
	}
}

func TestBuild_MapsCells(t *testing.T) {
	enc := &fakeEncoder{bits: [][]bool{{true, false}, {false, true}}}

	grid, err := Build(enc, "x")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := Grid{
		{Border, Border, Border, Border},
		{Border, Dark, Light, Border},
		{Border, Light, Dark, Border},
		{Border, Border, Border, Border},
	}
	for y := range want {
		for x := range want[y] {
			if grid[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %d, want %d", y, x, grid[y][x], want[y][x])
			}
		}
	}
}

func TestBuild_EncoderError(t *testing.T) {
	boom := errors.New("content too long")
	_, err := Build(&fakeEncoder{err: boom}, "x")
	if !errors.Is(err, boom) {
		t.Fatalf("Build() error = %v, want wrapped %v", err, boom)
	}
}

func TestBuild_RejectsBadSymbol(t *testing.T) {
	tests := map[string][][]bool{
		"empty":      {},
		"non-square": {{true, false}, {true}},
	}
	for name, bits := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Build(&fakeEncoder{bits: bits}, "x"); err == nil {
				t.Fatal("Build() error = nil, want error")
			}
		})
	}
}

func TestGrid_Empty(t *testing.T) {
	var g Grid
	if !g.Empty() {
		t.Error("nil grid should be empty")
	}
}
