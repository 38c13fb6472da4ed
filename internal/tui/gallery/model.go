// Package gallery is the interactive chart browser. It cycles through the
// charts of a document, drives the radial intro animation, and shows a
// tooltip readout for the hovered data point.
package gallery

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mnhtng/shadcn-chart/internal/config"
	"github.com/mnhtng/shadcn-chart/internal/logger"
	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

// frameMsg is the animation clock tick.
type frameMsg time.Time

// Model is the gallery's bubbletea model.
type Model struct {
	doc *config.Document
	log *logger.Logger

	theme chart.Theme
	dark  bool

	cursor int // active chart
	hover  int // active data point, -1 for none

	anim *chart.Animator

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a gallery over a validated document.
func NewModel(doc *config.Document, log *logger.Logger) Model {
	return Model{
		doc:    doc,
		log:    log,
		theme:  chart.DefaultTheme(),
		hover:  -1,
		anim:   chart.NewAnimator(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init starts the intro animation.
func (m Model) Init() tea.Cmd {
	m.anim.Start()
	return frameCmd()
}

// frameCmd schedules the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(chart.AnimFPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// ActiveSpec returns the chart the cursor is on.
func (m Model) ActiveSpec() config.ChartSpec {
	if len(m.doc.Charts) == 0 {
		return config.ChartSpec{}
	}
	return m.doc.Charts[m.cursor]
}

// Hover returns the active data point index, -1 when none.
func (m Model) Hover() int {
	return m.hover
}

func (m Model) pointCount() int {
	return len(m.ActiveSpec().Data)
}

// moveCursor advances the chart cursor with wrapping and resets the
// per-chart state.
func (m *Model) moveCursor(delta int) {
	n := len(m.doc.Charts)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
	m.hover = -1
}

// moveHover advances the data point hover with wrapping.
func (m *Model) moveHover(delta int) {
	n := m.pointCount()
	if n == 0 {
		return
	}
	if m.hover < 0 {
		if delta > 0 {
			m.hover = 0
		} else {
			m.hover = n - 1
		}
		return
	}
	m.hover = (m.hover + delta + n) % n
}

// Run starts the gallery program in the alternate screen.
func Run(doc *config.Document, log *logger.Logger) error {
	p := tea.NewProgram(NewModel(doc, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
