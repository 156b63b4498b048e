// Package matrix turns text into a bordered QR module grid.
package matrix

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// MaxContentLength is the input ceiling in characters. It is tied to the
// QR version 7 capacity tier the tool targets.
const MaxContentLength = 233

// Cell is one module of the bordered grid.
type Cell uint8

const (
	Light  Cell = 0
	Dark   Cell = 1
	Border Cell = 2
)

// Grid is a square matrix of cells, row-major.
type Grid [][]Cell

// Size returns the number of rows (and columns).
func (g Grid) Size() int {
	return len(g)
}

// Empty reports whether the grid holds no modules.
func (g Grid) Empty() bool {
	return len(g) == 0
}

// Encoder produces the bare N×N dark/light symbol for text.
type Encoder interface {
	Encode(text string) ([][]bool, error)
}

// QREncoder is the go-qrcode backed Encoder.
type QREncoder struct {
	Level qrcode.RecoveryLevel
}

// NewQREncoder returns an encoder using medium error recovery.
func NewQREncoder() *QREncoder {
	return &QREncoder{Level: qrcode.Medium}
}

// Encode returns the symbol without go-qrcode's own quiet zone.
func (e *QREncoder) Encode(text string) ([][]bool, error) {
	q, err := qrcode.New(text, e.Level)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

var errBadSymbol = errors.New("encoder returned a non-square symbol")

// Build encodes text and surrounds the result with a one-module border.
// Callers must check the length against MaxContentLength first.
func Build(enc Encoder, text string) (Grid, error) {
	bits, err := enc.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	n := len(bits)
	if n == 0 {
		return nil, errBadSymbol
	}
	for _, row := range bits {
		if len(row) != n {
			return nil, errBadSymbol
		}
	}

	size := n + 2
	grid := make(Grid, size)
	grid[0] = borderRow(size)
	for y, row := range bits {
		line := make([]Cell, size)
		line[0] = Border
		for x, dark := range row {
			if dark {
				line[x+1] = Dark
			} else {
				line[x+1] = Light
			}
		}
		line[size-1] = Border
		grid[y+1] = line
	}
	grid[size-1] = borderRow(size)
	return grid, nil
}

func borderRow(size int) []Cell {
	row := make([]Cell, size)
	for i := range row {
		row[i] = Border
	}
	return row
}
