// Package script wraps rendered QR rows in shell syntax for the supported
// script dialects.
package script

import (
	"fmt"
	"strings"
)

// Dialect selects the shell syntax a script is written in.
type Dialect int

const (
	// Windows is a cmd.exe batch file.
	Windows Dialect = iota
	// PowerShell is a .ps1 script.
	PowerShell
	// Linux is a POSIX shell script using echo -e.
	Linux
)

// Dialects lists every dialect in tab order.
var Dialects = []Dialect{Windows, PowerShell, Linux}

// String returns the dialect's canonical name.
func (d Dialect) String() string {
	switch d {
	case Windows:
		return "windows"
	case PowerShell:
		return "powershell"
	case Linux:
		return "linux"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Label is the human readable tab title.
func (d Dialect) Label() string {
	switch d {
	case Windows:
		return "Windows CMD"
	case PowerShell:
		return "PowerShell"
	case Linux:
		return "Linux / macOS"
	default:
		return d.String()
	}
}

// Extension returns the file extension for saved scripts, dot included.
func (d Dialect) Extension() string {
	switch d {
	case Windows:
		return ".bat"
	case PowerShell:
		return ".ps1"
	case Linux:
		return ".sh"
	default:
		return ".txt"
	}
}

// ContentType is the MIME type used when serving a script download.
func (d Dialect) ContentType() string {
	switch d {
	case Windows:
		return "application/x-bat; charset=utf-8"
	case PowerShell, Linux:
		return "text/plain; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName joins base and the dialect's extension.
func (d Dialect) FileName(base string) string {
	return base + d.Extension()
}

// Valid reports whether d is one of the known dialects.
func (d Dialect) Valid() bool {
	switch d {
	case Windows, PowerShell, Linux:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("unknown dialect %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDialect accepts a dialect name or one of its common aliases.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "cmd", "bat", "batch":
		return Windows, nil
	case "powershell", "pwsh", "ps1", "ps":
		return PowerShell, nil
	case "linux", "sh", "bash", "shell", "macos", "unix":
		return Linux, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want windows, powershell or linux)", s)
	}
}
