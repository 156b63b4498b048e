package session

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/openclaw/terminal-qr/matrix"
)

// Default widths used when a width field is blank or invalid.
const (
	DefaultTerminalWidth = 2
	DefaultPreviewWidth  = 1
)

// MaxWidth bounds both widths. Output size grows linearly with width.
const MaxWidth = 16

// Widths holds the repeat counts for the two output targets.
type Widths struct {
	Terminal int
	Preview  int
}

// DefaultWidths returns the stock widths.
func DefaultWidths() Widths {
	return Widths{Terminal: DefaultTerminalWidth, Preview: DefaultPreviewWidth}
}

// ParseWidth reads a width field from its leading integer, so "3abc" and
// "5.9" give 3 and 5. Blank, non-numeric and non-positive values fall back
// to def; values above MaxWidth are a *WidthError.
func ParseWidth(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := s[:end]
	if digits == "" || sign == "-" {
		return def, nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxWidth {
		return 0, &WidthError{Value: sign + digits, Max: MaxWidth}
	}
	if n < 1 {
		return def, nil
	}
	return n, nil
}

// CharCount is the state of the character counter next to the input.
type CharCount struct {
	Length int
	Max    int
}

// OK reports whether the text fits under the ceiling.
func (c CharCount) OK() bool {
	return c.Length <= c.Max
}

func (c CharCount) String() string {
	return fmt.Sprintf("Characters: %d / max: %d (QR version 7)", c.Length, c.Max)
}

// CountChars measures text the way the counter and the ceiling check do.
func CountChars(text string) CharCount {
	return CharCount{Length: utf8.RuneCountInString(text), Max: matrix.MaxContentLength}
}

// InputObserver is notified by a UI binding whenever the text field changes.
type InputObserver interface {
	InputChanged(text string) CharCount
}
