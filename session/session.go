// Package session is the UI controller: it validates input, owns the
// current QR grid and re-derives scripts and previews from it.
package session

import (
	"log/slog"
	"strings"

	"github.com/openclaw/terminal-qr/matrix"
	"github.com/openclaw/terminal-qr/render"
	"github.com/openclaw/terminal-qr/script"
)

// DownloadBaseName is the file name stem for saved scripts.
const DownloadBaseName = "terminal-qr"

// Input is the raw form state submitted for generation.
type Input struct {
	Text          string
	TerminalWidth string
	PreviewWidth  string
}

// View is everything a UI needs to redraw after a generation.
type View struct {
	Dialect    script.Dialect `json:"dialect"`
	Size       int            `json:"size"`
	Script     string         `json:"script"`
	ScriptHTML string         `json:"script_html"`
	Preview    string         `json:"preview"`
}

// Download is a script file ready to be saved.
type Download struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Session holds the state of one user's generation cycle. It is not safe
// for concurrent use.
type Session struct {
	encoder  matrix.Encoder
	log      *slog.Logger
	grid     matrix.Grid
	dialect  script.Dialect
	widths   Widths
	defaults Widths
}

// Option configures a Session.
type Option func(*Session)

// WithDialect sets the initially selected dialect.
func WithDialect(d script.Dialect) Option {
	return func(s *Session) {
		if d.Valid() {
			s.dialect = d
		}
	}
}

// WithDefaultWidths overrides the widths used for blank or invalid fields.
func WithDefaultWidths(w Widths) Option {
	return func(s *Session) {
		s.defaults = w
		s.widths = w
	}
}

// New creates an idle session.
func New(enc matrix.Encoder, log *slog.Logger, opts ...Option) *Session {
	s := &Session{
		encoder:  enc,
		log:      log,
		dialect:  script.Windows,
		widths:   DefaultWidths(),
		defaults: DefaultWidths(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dialect returns the selected dialect.
func (s *Session) Dialect() script.Dialect {
	return s.dialect
}

// Widths returns the widths of the last successful generation.
func (s *Session) Widths() Widths {
	return s.widths
}

// Grid returns the current grid, nil before the first generation.
func (s *Session) Grid() matrix.Grid {
	return s.grid
}

// Ready reports whether a grid is present.
func (s *Session) Ready() bool {
	return !s.grid.Empty()
}

// InputChanged implements InputObserver.
func (s *Session) InputChanged(text string) CharCount {
	return CountChars(text)
}

// Generate validates in, rebuilds the grid and renders both views. On error
// the session keeps its previous grid and widths.
func (s *Session) Generate(in Input) (*View, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	if count := CountChars(in.Text); !count.OK() {
		return nil, &CapacityError{Length: count.Length, Limit: count.Max}
	}

	termWidth, err := ParseWidth(in.TerminalWidth, s.defaults.Terminal)
	if err != nil {
		return nil, withField(err, "terminal width")
	}
	previewWidth, err := ParseWidth(in.PreviewWidth, s.defaults.Preview)
	if err != nil {
		return nil, withField(err, "preview width")
	}
	widths := Widths{Terminal: termWidth, Preview: previewWidth}

	grid, err := matrix.Build(s.encoder, text)
	if err != nil {
		s.log.Warn("QR generation failed", "error", err, "length", len(text))
		return nil, &EncodeError{Err: err}
	}

	s.grid = grid
	s.widths = widths
	s.log.Debug("QR generated", "size", grid.Size(), "dialect", s.dialect, "terminal_width", widths.Terminal, "preview_width", widths.Preview)
	return s.view(), nil
}

// SwitchDialect selects d. With a grid present the script is recomposed
// from it without re-encoding; otherwise it returns nil, nil.
func (s *Session) SwitchDialect(d script.Dialect) (*View, error) {
	if !d.Valid() {
		return nil, ErrUnknownDialect
	}
	s.dialect = d
	if !s.Ready() {
		return nil, nil
	}
	return s.view(), nil
}

// Script re-derives the script text for the current grid and dialect.
func (s *Session) Script() (string, error) {
	if !s.Ready() {
		return "", ErrNoMatrix
	}
	return script.Compose(s.grid, s.widths.Terminal, s.dialect), nil
}

// Preview re-derives the HTML preview.
func (s *Session) Preview() (string, error) {
	if !s.Ready() {
		return "", ErrNoMatrix
	}
	return render.Preview(s.grid, s.widths.Preview), nil
}

// Copy writes the script to cb.
func (s *Session) Copy(cb Clipboard) error {
	text, err := s.Script()
	if err != nil {
		return err
	}
	if err := cb.WriteAll(text); err != nil {
		s.log.Warn("clipboard write failed", "error", err)
		return &ClipboardError{Err: err}
	}
	s.log.Debug("script copied", "bytes", len(text))
	return nil
}

// Download packages the script as a file named after the dialect.
func (s *Session) Download() (*Download, error) {
	text, err := s.Script()
	if err != nil {
		return nil, err
	}
	return &Download{
		FileName:    s.dialect.FileName(DownloadBaseName),
		ContentType: s.dialect.ContentType(),
		Body:        []byte(text),
	}, nil
}

func withField(err error, field string) error {
	if werr, ok := err.(*WidthError); ok {
		werr.Field = field
	}
	return err
}

func (s *Session) view() *View {
	text := script.Compose(s.grid, s.widths.Terminal, s.dialect)
	return &View{
		Dialect:    s.dialect,
		Size:       s.grid.Size(),
		Script:     text,
		ScriptHTML: render.ScriptHTML(text),
		Preview:    render.Preview(s.grid, s.widths.Preview),
	}
}
