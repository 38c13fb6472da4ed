package chart

import (
	"github.com/charmbracelet/lipgloss"
)

// seriesSlotCount is the number of numbered series color slots a theme
// carries. Datasets with more series cycle through the slots.
const seriesSlotCount = 5

// ColorPair holds the light- and dark-mode hex values for one theme slot.
// Concrete hex values (rather than adaptive colors) keep gradient blending
// and image export deterministic: both need to inspect the actual channel
// values, not a terminal-dependent choice.
type ColorPair struct {
	Light string
	Dark  string
}

// Hex returns the hex value for the given mode.
func (p ColorPair) Hex(dark bool) string {
	if dark {
		return p.Dark
	}
	return p.Light
}

// Theme is the immutable color vocabulary of the chart components. Themes
// are created once and shared; deriving a variant returns a new value.
type Theme struct {
	// Dark selects which half of each ColorPair is used.
	Dark bool

	// Series are the numbered color slots assigned to series in
	// configuration order.
	Series [seriesSlotCount]ColorPair

	Surface    ColorPair
	Foreground ColorPair
	Muted      ColorPair
	MutedFg    ColorPair
	Border     ColorPair
	Grid       ColorPair
	Track      ColorPair
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return Theme{
		Series: [seriesSlotCount]ColorPair{
			{Light: "#e76e50", Dark: "#2662d9"},
			{Light: "#2a9d90", Dark: "#2eb88a"},
			{Light: "#274754", Dark: "#e88c30"},
			{Light: "#e8c468", Dark: "#af57db"},
			{Light: "#f4a462", Dark: "#e23670"},
		},
		Surface:    ColorPair{Light: "#ffffff", Dark: "#0a0a0a"},
		Foreground: ColorPair{Light: "#0a0a0a", Dark: "#fafafa"},
		Muted:      ColorPair{Light: "#f5f5f5", Dark: "#262626"},
		MutedFg:    ColorPair{Light: "#737373", Dark: "#a3a3a3"},
		Border:     ColorPair{Light: "#e5e5e5", Dark: "#262626"},
		Grid:       ColorPair{Light: "#e5e5e5", Dark: "#303030"},
		Track:      ColorPair{Light: "#ebebeb", Dark: "#2b2b2b"},
	}
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	t := DefaultTheme()
	t.Dark = true
	return t
}

// SeriesHex returns the hex color for the series at index i, cycling
// through the numbered slots.
func (t Theme) SeriesHex(i int) string {
	if i < 0 {
		i = 0
	}
	return t.Series[i%seriesSlotCount].Hex(t.Dark)
}

// SeriesColor returns the lipgloss color for the series at index i.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	return lipgloss.Color(t.SeriesHex(i))
}

func (t Theme) hex(p ColorPair) string {
	return p.Hex(t.Dark)
}

func (t Theme) color(p ColorPair) lipgloss.Color {
	return lipgloss.Color(t.hex(p))
}

// Style helpers shared by the components.

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.color(t.Foreground))
}

func (t Theme) descriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(t.MutedFg))
}

func (t Theme) footerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(t.MutedFg))
}

func (t Theme) axisStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(t.MutedFg))
}

func (t Theme) gridStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(t.Grid))
}

func (t Theme) borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.color(t.Border))
}
