package chart

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// AreaChart renders filled series over a shared category axis. Variants
// cover overlaid, stacked, 100%-stacked and gradient presentations.
type AreaChart struct {
	data    []scale.Point
	xKey    string
	cfg     *Config
	variant AreaVariant
	theme   Theme

	title       string
	description string
	footer      string

	width  int
	height int
}

// NewAreaChart creates an area chart over the given dataset. xKey is the
// category axis key; cfg orders and styles the plotted series.
func NewAreaChart(data []scale.Point, xKey string, cfg *Config) *AreaChart {
	return &AreaChart{
		data:    data,
		xKey:    xKey,
		cfg:     cfg,
		variant: AreaDefault,
		theme:   DefaultTheme(),
		width:   56,
		height:  10,
	}
}

// WithVariant selects the display preset.
func (a *AreaChart) WithVariant(v AreaVariant) *AreaChart {
	a.variant = v
	return a
}

// WithTheme sets the color theme.
func (a *AreaChart) WithTheme(theme Theme) *AreaChart {
	a.theme = theme
	return a
}

// WithTitle sets the card title.
func (a *AreaChart) WithTitle(title string) *AreaChart {
	a.title = title
	return a
}

// WithDescription sets the card description.
func (a *AreaChart) WithDescription(description string) *AreaChart {
	a.description = description
	return a
}

// WithFooter sets the card footer.
func (a *AreaChart) WithFooter(footer string) *AreaChart {
	a.footer = footer
	return a
}

// WithSize sets the plot area size in cells.
func (a *AreaChart) WithSize(width, height int) *AreaChart {
	if width > 0 {
		a.width = width
	}
	if height > 0 {
		a.height = height
	}
	return a
}

// View renders the chart card.
func (a *AreaChart) View() string {
	d := a.variant.Defaults()

	card := NewCard(a.theme).
		WithTitle(a.title).
		WithDescription(a.description).
		WithFooter(a.footer).
		WithBody(a.renderBody(d))
	if d.ShowLegend {
		card.WithLegend(Legend(a.cfg, a.theme))
	}
	return card.View()
}

// Body renders the plot without the card frame, for embedding.
func (a *AreaChart) Body() string {
	return a.renderBody(a.variant.Defaults())
}

func (a *AreaChart) renderBody(d AreaDefaults) string {
	keys := a.cfg.Keys()
	data := a.data
	if d.Expand {
		data = scale.NormalizeToPercentage(data, keys)
	}

	cv := newCanvas(a.width, a.height)
	if d.ShowGrid {
		drawGridRows(cv, a.theme)
	}

	min, max := a.domain(data, keys, d)
	cols := pointColumns(len(data), a.width)
	units := float64(a.height) / (max - min)

	samples := make([][]float64, len(keys))
	for i, key := range keys {
		samples[i] = sampleSeries(data, key, cols, a.width, d.Curve)
	}

	surface := a.theme.hex(a.theme.Surface)
	if d.Stacked {
		a.drawStacked(cv, samples, units, d, surface)
	} else {
		a.drawOverlaid(cv, samples, min, units, d, surface)
	}

	body := cv.render()
	if d.ShowXAxis && len(data) > 0 {
		labels := make([]string, len(data))
		for i, p := range data {
			labels[i] = p.Label(a.xKey)
		}
		body += "\n" + a.theme.axisStyle().Render(xAxisRow(labels, cols, a.width))
	}
	return body
}

func (a *AreaChart) domain(data []scale.Point, keys []string, d AreaDefaults) (float64, float64) {
	if d.Expand {
		return 0, 100
	}
	if d.Stacked {
		max := maxOf(stackSum(data, keys))
		if max <= 0 {
			return scale.FallbackMin, scale.FallbackMax
		}
		return 0, max
	}
	min, max := scale.Domain(data, keys)
	// Areas fill down to zero, so the baseline joins the domain.
	if min > 0 {
		min = 0
	}
	if max <= min {
		max = min + 1
	}
	return min, max
}

func (a *AreaChart) drawStacked(cv *canvas, samples [][]float64, units float64, d AreaDefaults, surface string) {
	keys := a.cfg.Keys()
	ramps := make([][]lipgloss.Color, len(keys))
	if d.Gradient {
		for i, key := range keys {
			ramps[i] = gradientRamp(a.cfg.ColorHex(key, i, a.theme), surface, a.height)
		}
	}

	for x := 0; x < a.width; x++ {
		accRows := 0.0
		lastColor := lipgloss.Color("")
		for i, key := range keys {
			vRows := samples[i][x] * units
			if vRows < 0 {
				vRows = 0
			}
			start := int(accRows)
			end := int(accRows + vRows)
			for r := start; r < end; r++ {
				row := a.height - 1 - r
				color := a.cfg.Color(key, i, a.theme)
				if d.Gradient {
					color = rampColor(ramps[i], row)
				}
				cv.set(x, row, '█', color)
			}
			accRows += vRows
			if vRows > 0 {
				lastColor = a.cfg.Color(key, i, a.theme)
			}
		}
		// Partial block tops off the whole stack.
		if frac := accRows - math.Floor(accRows); frac > 0 && lastColor != "" {
			if eighth := int(math.Round(frac * 8)); eighth > 0 {
				cv.set(x, a.height-1-int(accRows), eighthBlocks[eighth], lastColor)
			}
		}
	}
}

func (a *AreaChart) drawOverlaid(cv *canvas, samples [][]float64, min, units float64, d AreaDefaults, surface string) {
	keys := a.cfg.Keys()
	// Draw back to front so the first configured series stays visible.
	for i := len(keys) - 1; i >= 0; i-- {
		base := a.cfg.Color(keys[i], i, a.theme)
		var ramp []lipgloss.Color
		if d.Gradient {
			ramp = gradientRamp(a.cfg.ColorHex(keys[i], i, a.theme), surface, a.height)
		}
		for x := 0; x < a.width; x++ {
			vRows := (samples[i][x] - min) * units
			colorAt := func(row int) lipgloss.Color {
				if ramp == nil {
					return base
				}
				return rampColor(ramp, row)
			}
			fillColumn(cv, x, a.height-1, vRows, colorAt)
		}
	}
}

// rampColor picks the ramp entry for a canvas row, clamped to the ramp.
func rampColor(ramp []lipgloss.Color, row int) lipgloss.Color {
	if len(ramp) == 0 {
		return ""
	}
	if row < 0 {
		row = 0
	}
	if row >= len(ramp) {
		row = len(ramp) - 1
	}
	return ramp[row]
}

// drawGridRows places dashed horizontal guides at the quarter lines.
func drawGridRows(cv *canvas, theme Theme) {
	color := theme.color(theme.Grid)
	for _, q := range []float64{0.25, 0.5, 0.75} {
		row := int(math.Round(q * float64(cv.height-1)))
		for x := 0; x < cv.width; x++ {
			cv.set(x, row, '┄', color)
		}
	}
}
