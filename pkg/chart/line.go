package chart

import (
	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// LineChart renders one polyline per series with a nice-number y axis. The
// y domain runs through the full scale pipeline: raw range, relative
// padding, magnitude rounding, then tick generation.
type LineChart struct {
	data    []scale.Point
	xKey    string
	cfg     *Config
	variant LineVariant
	theme   Theme

	title       string
	description string
	footer      string

	width  int
	height int
}

// NewLineChart creates a line chart over the given dataset.
func NewLineChart(data []scale.Point, xKey string, cfg *Config) *LineChart {
	return &LineChart{
		data:    data,
		xKey:    xKey,
		cfg:     cfg,
		variant: LineDefault,
		theme:   DefaultTheme(),
		width:   56,
		height:  10,
	}
}

// WithVariant selects the display preset.
func (l *LineChart) WithVariant(v LineVariant) *LineChart {
	l.variant = v
	return l
}

// WithTheme sets the color theme.
func (l *LineChart) WithTheme(theme Theme) *LineChart {
	l.theme = theme
	return l
}

// WithTitle sets the card title.
func (l *LineChart) WithTitle(title string) *LineChart {
	l.title = title
	return l
}

// WithDescription sets the card description.
func (l *LineChart) WithDescription(description string) *LineChart {
	l.description = description
	return l
}

// WithFooter sets the card footer.
func (l *LineChart) WithFooter(footer string) *LineChart {
	l.footer = footer
	return l
}

// WithSize sets the plot area size in cells.
func (l *LineChart) WithSize(width, height int) *LineChart {
	if width > 0 {
		l.width = width
	}
	if height > 0 {
		l.height = height
	}
	return l
}

// View renders the chart card.
func (l *LineChart) View() string {
	d := l.variant.Defaults()

	card := NewCard(l.theme).
		WithTitle(l.title).
		WithDescription(l.description).
		WithFooter(l.footer).
		WithBody(l.renderBody(d))
	if d.ShowLegend {
		card.WithLegend(Legend(l.cfg, l.theme))
	}
	return card.View()
}

// Body renders the plot without the card frame, for embedding.
func (l *LineChart) Body() string {
	return l.renderBody(l.variant.Defaults())
}

// Domain reports the y-axis domain and ticks the chart will draw with.
func (l *LineChart) Domain() (min, max float64, ticks []float64) {
	return l.axis(l.variant.Defaults())
}

func (l *LineChart) axis(d LineDefaults) (float64, float64, []float64) {
	keys := l.cfg.Keys()
	rawMin, rawMax := scale.Domain(l.data, keys)
	dataMax := rawMax

	paddedMin, paddedMax := scale.PadDomain(rawMin, rawMax, scale.DefaultPadding)
	niceMin, niceMax := scale.NiceDomain(paddedMin, paddedMax)
	if niceMax <= niceMin {
		niceMax = niceMin + 1
	}

	tickCount := d.TickCount
	if tickCount < 1 {
		tickCount = 5
	}
	ticks := scale.Ticks(niceMin, niceMax, tickCount, dataMax)

	// The extra-tick heuristic may push past the rounded maximum; the axis
	// follows so the top tick stays on the canvas.
	if last := ticks[len(ticks)-1]; last > niceMax {
		niceMax = last
	}
	return niceMin, niceMax, ticks
}

func (l *LineChart) renderBody(d LineDefaults) string {
	keys := l.cfg.Keys()
	min, max, ticks := l.axis(d)

	cv := newCanvas(l.width, l.height)
	if d.ShowGrid {
		gridColor := l.theme.color(l.theme.Grid)
		for _, tick := range ticks {
			row := valueRow(tick, min, max, l.height)
			for x := 0; x < l.width; x++ {
				cv.set(x, row, '┄', gridColor)
			}
		}
	}

	cols := pointColumns(len(l.data), l.width)
	for i, key := range keys {
		color := l.cfg.Color(key, i, l.theme)
		if d.Dots {
			for pi, p := range l.data {
				row := valueRow(p.Value(key), min, max, l.height)
				cv.set(cols[pi], row, '●', color)
			}
			continue
		}

		samples := sampleSeries(l.data, key, cols, l.width, d.Curve)
		prevRow := valueRow(samples[0], min, max, l.height)
		for x := 0; x < l.width; x++ {
			row := valueRow(samples[x], min, max, l.height)
			switch {
			case x == 0 || row == prevRow:
				cv.set(x, row, '─', color)
			case row < prevRow:
				// Rising edge: connect the two rows vertically.
				cv.set(x-1, prevRow, '╯', color)
				for r := row + 1; r < prevRow; r++ {
					cv.set(x-1, r, '│', color)
				}
				cv.set(x, row, '╭', color)
			default:
				cv.set(x-1, prevRow, '╮', color)
				for r := prevRow + 1; r < row; r++ {
					cv.set(x-1, r, '│', color)
				}
				cv.set(x, row, '╰', color)
			}
			prevRow = row
		}
	}

	plot := cv.render()
	if d.ShowYAxis {
		plot = joinGutter(yGutter(ticks, min, max, l.height, gutterWidthFor(ticks)), plot, l.theme)
	}
	if d.ShowXAxis && len(l.data) > 0 {
		labels := make([]string, len(l.data))
		for i, p := range l.data {
			labels[i] = p.Label(l.xKey)
		}
		axis := xAxisRow(labels, cols, l.width)
		if d.ShowYAxis {
			pad := gutterWidthFor(ticks) + 1
			axis = xAxisRow(labels, shiftCols(cols, pad), l.width+pad)
		}
		plot += "\n" + l.theme.axisStyle().Render(axis)
	}
	return plot
}

// joinGutter glues the y-axis gutter onto the left edge of the plot.
func joinGutter(gutter []string, plot string, theme Theme) string {
	rows := splitLines(plot)
	style := theme.axisStyle()
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		label := ""
		if i < len(gutter) {
			label = gutter[i]
		}
		out = append(out, style.Render(label)+" "+row)
	}
	return joinLines(out)
}

func shiftCols(cols []int, by int) []int {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = c + by
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func joinLines(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
