package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate   key.Binding
	Next       key.Binding
	Prev       key.Binding
	Windows    key.Binding
	PowerShell key.Binding
	Linux      key.Binding
	Copy       key.Binding
	Save       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Next, k.Windows, k.PowerShell, k.Linux, k.Copy, k.Save, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Next, k.Prev},
		{k.Windows, k.PowerShell, k.Linux},
		{k.Copy, k.Save, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Windows: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "cmd"),
		),
		PowerShell: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "powershell"),
		),
		Linux: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "linux"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
