package gallery

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the gallery key bindings.
type keyMap struct {
	NextChart key.Binding
	PrevChart key.Binding
	Left      key.Binding
	Right     key.Binding
	Theme     key.Binding
	Replay    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextChart: key.NewBinding(
			key.WithKeys("tab", "j", "down"),
			key.WithHelp("tab", "next chart"),
		),
		PrevChart: key.NewBinding(
			key.WithKeys("shift+tab", "k", "up"),
			key.WithHelp("shift+tab", "previous chart"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous point"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next point"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay animation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextChart, k.Right, k.Theme, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextChart, k.PrevChart},
		{k.Left, k.Right},
		{k.Theme, k.Replay},
		{k.Help, k.Quit},
	}
}
