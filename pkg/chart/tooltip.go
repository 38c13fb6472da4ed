package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// Tooltip renders the readout for one active data point: the category
// label on top, then one swatch/label/value row per series. The indicator
// shape follows the active chart variant.
type Tooltip struct {
	cfg       *Config
	theme     Theme
	indicator Indicator
}

// NewTooltip creates a tooltip bound to a series configuration.
func NewTooltip(cfg *Config, theme Theme) *Tooltip {
	return &Tooltip{cfg: cfg, theme: theme, indicator: IndicatorDot}
}

// WithIndicator sets the swatch shape.
func (t *Tooltip) WithIndicator(indicator Indicator) *Tooltip {
	t.indicator = indicator
	return t
}

func (t *Tooltip) swatchRune() string {
	switch t.indicator {
	case IndicatorLine:
		return "▍"
	case IndicatorDashed:
		return "┆"
	default:
		return "●"
	}
}

// View renders the tooltip box for the given point.
func (t *Tooltip) View(label string, point scale.Point) string {
	theme := t.theme
	labelStyle := lipgloss.NewStyle().Foreground(theme.color(theme.MutedFg))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.color(theme.Foreground))

	rows := make([]string, 0, t.cfg.Len()+1)
	if label != "" {
		rows = append(rows, theme.titleStyle().Render(label))
	}

	// Value column is right-aligned across all rows.
	values := make([]string, t.cfg.Len())
	widest := 0
	for i, key := range t.cfg.Keys() {
		values[i] = formatValue(point.Value(key))
		if len(values[i]) > widest {
			widest = len(values[i])
		}
	}

	for i, key := range t.cfg.Keys() {
		swatch := lipgloss.NewStyle().
			Foreground(t.cfg.Color(key, i, theme)).
			Render(t.swatchRune())
		row := fmt.Sprintf("%s %s  %s",
			swatch,
			labelStyle.Render(t.cfg.Label(key)),
			valueStyle.Render(fmt.Sprintf("%*s", widest, values[i])),
		)
		rows = append(rows, row)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.color(theme.Border)).
		Padding(0, 1)
	return box.Render(strings.Join(rows, "\n"))
}

// formatValue trims a data value for tooltip display.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
