package gallery

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	m := NewModel(galleryDocument(), nil)

	m, cmd := updated(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestInitStartsAnimation(t *testing.T) {
	m := NewModel(galleryDocument(), nil)

	cmd := m.Init()

	require.NotNil(t, cmd)
	assert.Equal(t, chart.AnimAnimating, m.anim.State())
}

func TestFrameMessagesDriveAnimationToRest(t *testing.T) {
	m := NewModel(galleryDocument(), nil)
	require.NotNil(t, m.Init())

	frames := 0
	for {
		var cmd tea.Cmd
		m, cmd = updated(t, m, frameMsg(time.Now()))
		if cmd == nil {
			break
		}
		frames++
		require.Less(t, frames, 10*chart.AnimFPS, "animation must settle")
	}

	assert.Equal(t, chart.AnimSettled, m.anim.State())
	assert.Equal(t, 1.0, m.anim.Progress())
}

func TestReplayRestartsAnimation(t *testing.T) {
	m := NewModel(galleryDocument(), nil)
	m.Init()
	for {
		var cmd tea.Cmd
		m, cmd = updated(t, m, frameMsg(time.Now()))
		if cmd == nil {
			break
		}
	}

	m, cmd := updated(t, m, keyPress("r"))

	require.NotNil(t, cmd)
	assert.Equal(t, chart.AnimAnimating, m.anim.State())
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(galleryDocument(), nil)
	require.False(t, m.help.ShowAll)

	m, _ = updated(t, m, keyPress("?"))
	assert.True(t, m.help.ShowAll)

	m, _ = updated(t, m, keyPress("?"))
	assert.False(t, m.help.ShowAll)
}

func TestViewShowsActiveChart(t *testing.T) {
	m := NewModel(galleryDocument(), nil)

	out := m.View()

	assert.Contains(t, out, "Demo Gallery")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "Line Chart")
}

func TestViewShowsTooltipForHoveredPoint(t *testing.T) {
	m := NewModel(galleryDocument(), nil)

	m, _ = updated(t, m, keyPress("right"))
	m, _ = updated(t, m, keyPress("right"))
	out := m.View()

	assert.Contains(t, out, "February")
	assert.Contains(t, out, "305")
}

func TestViewAfterChartSwitch(t *testing.T) {
	m := NewModel(galleryDocument(), nil)

	m, _ = updated(t, m, keyPress("tab"))
	out := m.View()

	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "Radial Chart")
}
