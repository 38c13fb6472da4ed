package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.anim.Update() {
			return m, frameCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextChart):
		m.moveCursor(1)
		return m, m.restartAnimation()

	case key.Matches(msg, m.keys.PrevChart):
		m.moveCursor(-1)
		return m, m.restartAnimation()

	case key.Matches(msg, m.keys.Right):
		m.moveHover(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveHover(-1)
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		if m.dark {
			m.theme = chart.DarkTheme()
		} else {
			m.theme = chart.DefaultTheme()
		}
		return m, nil

	case key.Matches(msg, m.keys.Replay):
		return m, m.restartAnimation()
	}

	return m, nil
}

func (m Model) restartAnimation() tea.Cmd {
	m.anim.Reset()
	m.anim.Start()
	if m.log != nil {
		m.log.WithFields(map[string]any{"chart": m.ActiveSpec().ID}).Debug("animation restarted")
	}
	return frameCmd()
}
