package session

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the text to encode is blank.
	ErrEmptyInput = errors.New("input is empty")
	// ErrNoMatrix is returned by actions that need a generated grid.
	ErrNoMatrix = errors.New("no QR code generated yet")
	// ErrUnknownDialect is returned when switching to an undefined dialect.
	ErrUnknownDialect = errors.New("unknown dialect")
)

// CapacityError reports input longer than the capacity ceiling.
type CapacityError struct {
	Length int
	Limit  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("content too long: %d characters, limit is %d", e.Length, e.Limit)
}

// WidthError reports a width field above MaxWidth.
type WidthError struct {
	Field string
	Value string
	Max   int
}

func (e *WidthError) Error() string {
	field := e.Field
	if field == "" {
		field = "width"
	}
	return fmt.Sprintf("%s %s exceeds the maximum of %d", field, e.Value, e.Max)
}

// EncodeError wraps a rejection from the QR encoder.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "generation failed: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ClipboardError wraps a failed clipboard write.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return "copy to clipboard failed: " + e.Err.Error()
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// UserMessage turns err into the alert text shown to the user.
func UserMessage(err error) string {
	var (
		capErr   *CapacityError
		widthErr *WidthError
		encErr   *EncodeError
		clipErr  *ClipboardError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "Please enter some content"
	case errors.As(err, &capErr):
		return fmt.Sprintf("Content too long! Please reduce it to %d characters or fewer", capErr.Limit)
	case errors.As(err, &widthErr):
		return fmt.Sprintf("Width too large! Please use at most %d", widthErr.Max)
	case errors.Is(err, ErrUnknownDialect):
		return "Unknown script type"
	case errors.As(err, &encErr):
		return "Generation failed: " + encErr.Err.Error()
	case errors.As(err, &clipErr):
		return "Copy failed, please select the script and copy it manually"
	case errors.Is(err, ErrNoMatrix):
		return "Generate a QR code first"
	default:
		return err.Error()
	}
}
