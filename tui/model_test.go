package tui

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openclaw/terminal-qr/matrix"
	"github.com/openclaw/terminal-qr/script"
	"github.com/openclaw/terminal-qr/session"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newModel(t *testing.T, cb session.Clipboard) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess := session.New(matrix.NewQREncoder(), log)
	return New(sess, cb, dir), dir
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TypingUpdatesCount(t *testing.T) {
	m, _ := newModel(t, &fakeClipboard{})
	m = send(m, typeText("HELLO"))

	if m.count.Length != 5 {
		t.Errorf("count = %d, want 5", m.count.Length)
	}
	if !strings.Contains(m.View(), "Characters: 5 / max: 233") {
		t.Error("view does not show the char count")
	}
}

func TestModel_GenerateAndSwitch(t *testing.T) {
	m, _ := newModel(t, &fakeClipboard{})

	m = send(m, tea.KeyMsg{Type: tea.KeyF3})
	if m.session.Ready() {
		t.Fatal("dialect switch generated without input")
	}
	if m.session.Dialect() != script.Linux {
		t.Errorf("Dialect() = %v", m.session.Dialect())
	}

	m = send(m, typeText("HELLO"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.session.Ready() || m.statusErr {
		t.Fatalf("generate failed: %q", m.status)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyF2})
	if m.session.Dialect() != script.PowerShell {
		t.Errorf("Dialect() = %v", m.session.Dialect())
	}
	if !strings.Contains(m.status, "script ready") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_GenerateEmpty(t *testing.T) {
	m, _ := newModel(t, &fakeClipboard{})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.statusErr || !strings.Contains(m.status, "enter some content") {
		t.Errorf("status = %q, err = %v", m.status, m.statusErr)
	}
}

func TestModel_WidthFields(t *testing.T) {
	m, _ := newModel(t, &fakeClipboard{})
	m = send(m,
		typeText("HELLO"),
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("1"),
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("4"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if got := m.session.Widths(); got != (session.Widths{Terminal: 1, Preview: 4}) {
		t.Errorf("Widths() = %+v", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldTerminal {
		t.Errorf("focus = %d, want %d", m.focus, fieldTerminal)
	}
}

func TestModel_CopyAndSave(t *testing.T) {
	cb := &fakeClipboard{}
	m, dir := newModel(t, cb)
	m = send(m, typeText("HELLO"), tea.KeyMsg{Type: tea.KeyEnter})

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	want, _ := m.session.Script()
	if cb.text != want {
		t.Error("clipboard does not hold the script")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	data, err := os.ReadFile(filepath.Join(dir, "terminal-qr.bat"))
	if err != nil {
		t.Fatalf("saved file: %v", err)
	}
	if string(data) != want {
		t.Error("saved file differs from script")
	}
}

func TestModel_CopyFailure(t *testing.T) {
	m, _ := newModel(t, &fakeClipboard{err: errors.New("no display")})
	m = send(m, typeText("HELLO"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlY})

	if !m.statusErr || !strings.Contains(m.status, "manually") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t, &fakeClipboard{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
}
