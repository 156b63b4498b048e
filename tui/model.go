// Package tui is an interactive terminal front end for a QR session.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openclaw/terminal-qr/render"
	"github.com/openclaw/terminal-qr/script"
	"github.com/openclaw/terminal-qr/session"
)

// Input field indexes.
const (
	fieldText = iota
	fieldTerminal
	fieldPreview
	fieldCount
)

// Model drives a session from the keyboard.
type Model struct {
	session   *session.Session
	clipboard session.Clipboard
	saveDir   string

	inputs []textinput.Model
	focus  int

	count     session.CharCount
	status    string
	statusErr bool

	keys keyMap
	help help.Model
}

// New builds the model. Saved scripts are written to saveDir.
func New(sess *session.Session, cb session.Clipboard, saveDir string) Model {
	text := textinput.New()
	text.Placeholder = "Text or URL to encode"
	text.CharLimit = 0
	text.Width = 60
	text.Focus()

	widths := sess.Widths()
	term := textinput.New()
	term.Placeholder = strconv.Itoa(widths.Terminal)
	term.Width = 4

	prev := textinput.New()
	prev.Placeholder = strconv.Itoa(widths.Preview)
	prev.Width = 4

	return Model{
		session:   sess,
		clipboard: cb,
		saveDir:   saveDir,
		inputs:    []textinput.Model{text, term, prev},
		count:     sess.InputChanged(""),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Generate):
			m.generate()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keys.Windows):
			m.switchDialect(script.Windows)
			return m, nil
		case key.Matches(msg, m.keys.PowerShell):
			m.switchDialect(script.PowerShell)
			return m, nil
		case key.Matches(msg, m.keys.Linux):
			m.switchDialect(script.Linux)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copy()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == fieldText {
		m.count = m.session.InputChanged(m.inputs[fieldText].Value())
	}
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) generate() {
	_, err := m.session.Generate(session.Input{
		Text:          m.inputs[fieldText].Value(),
		TerminalWidth: m.inputs[fieldTerminal].Value(),
		PreviewWidth:  m.inputs[fieldPreview].Value(),
	})
	if err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Generated %d×%d modules", m.session.Grid().Size(), m.session.Grid().Size()))
}

func (m *Model) switchDialect(d script.Dialect) {
	view, err := m.session.SwitchDialect(d)
	if err != nil {
		m.fail(err)
		return
	}
	if view == nil {
		m.ok(d.Label() + " selected")
		return
	}
	m.ok(d.Label() + " script ready")
}

func (m *Model) copy() {
	if err := m.session.Copy(m.clipboard); err != nil {
		m.fail(err)
		return
	}
	m.ok("Script copied to clipboard!")
}

func (m *Model) save() {
	dl, err := m.session.Download()
	if err != nil {
		m.fail(err)
		return
	}
	path := filepath.Join(m.saveDir, dl.FileName)
	if err := os.WriteFile(path, dl.Body, 0o755); err != nil {
		m.fail(fmt.Errorf("save %s: %w", path, err))
		return
	}
	m.ok("Saved " + path)
}

func (m *Model) ok(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) fail(err error) {
	m.status, m.statusErr = session.UserMessage(err), true
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Terminal QR Code"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldText].View())
	b.WriteString("\n")

	countStyle := CountStyle
	if !m.count.OK() {
		countStyle = CountOverStyle
	}
	b.WriteString(countStyle.Render(m.count.String()))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Terminal width "))
	b.WriteString(m.inputs[fieldTerminal].View())
	b.WriteString(LabelStyle.Render("  Preview width "))
	b.WriteString(m.inputs[fieldPreview].View())
	b.WriteString("\n")

	b.WriteString(m.tabs())
	b.WriteString("\n")

	// Drawn exactly as the generated script would draw it.
	if m.session.Ready() {
		b.WriteString(render.Terminal(m.session.Grid(), m.session.Widths().Terminal))
	}

	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) tabs() string {
	current := m.session.Dialect()
	tabs := make([]string, 0, len(script.Dialects))
	for _, d := range script.Dialects {
		style := TabStyle
		if d == current {
			style = ActiveTabStyle
		}
		tabs = append(tabs, style.Render(d.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
