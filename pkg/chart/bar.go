package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// BarChart renders grouped, stacked or horizontal bars over a category
// axis, with negative-value support in the vertical layouts.
type BarChart struct {
	data    []scale.Point
	xKey    string
	cfg     *Config
	variant BarVariant
	theme   Theme

	title       string
	description string
	footer      string

	width  int
	height int
}

// NewBarChart creates a bar chart over the given dataset.
func NewBarChart(data []scale.Point, xKey string, cfg *Config) *BarChart {
	return &BarChart{
		data:    data,
		xKey:    xKey,
		cfg:     cfg,
		variant: BarDefault,
		theme:   DefaultTheme(),
		width:   56,
		height:  10,
	}
}

// WithVariant selects the display preset.
func (b *BarChart) WithVariant(v BarVariant) *BarChart {
	b.variant = v
	return b
}

// WithTheme sets the color theme.
func (b *BarChart) WithTheme(theme Theme) *BarChart {
	b.theme = theme
	return b
}

// WithTitle sets the card title.
func (b *BarChart) WithTitle(title string) *BarChart {
	b.title = title
	return b
}

// WithDescription sets the card description.
func (b *BarChart) WithDescription(description string) *BarChart {
	b.description = description
	return b
}

// WithFooter sets the card footer.
func (b *BarChart) WithFooter(footer string) *BarChart {
	b.footer = footer
	return b
}

// WithSize sets the plot area size in cells.
func (b *BarChart) WithSize(width, height int) *BarChart {
	if width > 0 {
		b.width = width
	}
	if height > 0 {
		b.height = height
	}
	return b
}

// View renders the chart card.
func (b *BarChart) View() string {
	d := b.variant.Defaults()

	card := NewCard(b.theme).
		WithTitle(b.title).
		WithDescription(b.description).
		WithFooter(b.footer).
		WithBody(b.renderBody(d))
	if d.ShowLegend {
		card.WithLegend(Legend(b.cfg, b.theme))
	}
	return card.View()
}

// Body renders the plot without the card frame, for embedding.
func (b *BarChart) Body() string {
	return b.renderBody(b.variant.Defaults())
}

func (b *BarChart) renderBody(d BarDefaults) string {
	if d.Horizontal {
		return b.renderHorizontal(d)
	}
	return b.renderVertical(d)
}

func (b *BarChart) renderVertical(d BarDefaults) string {
	keys := b.cfg.Keys()
	n := len(b.data)
	if n == 0 || len(keys) == 0 {
		return newCanvas(b.width, b.height).render()
	}

	min, max := b.domain(d)
	cv := newCanvas(b.width, b.height)
	if d.ShowGrid {
		drawGridRows(cv, b.theme)
	}

	baseRow := valueRow(0, min, max, b.height)
	units := float64(b.height-1) / (max - min)

	slotW := b.width / n
	if slotW < 2 {
		slotW = 2
	}
	barCount := len(keys)
	if d.Stacked || d.Mixed {
		barCount = 1
	}
	barW := (slotW - 1) / barCount
	if barW < 1 {
		barW = 1
	}

	centers := make([]int, n)
	for i := 0; i < n; i++ {
		slotStart := i * slotW
		groupW := barW*barCount + (barCount - 1)
		offset := (slotW - groupW) / 2
		if offset < 0 {
			offset = 0
		}
		centers[i] = slotStart + slotW/2

		switch {
		case d.Stacked:
			b.drawStackedBar(cv, b.data[i], keys, slotStart+offset, barW, baseRow, units)
		case d.Mixed:
			color := b.theme.SeriesColor(i)
			b.drawBar(cv, b.data[i].Value(keys[0]), slotStart+offset, barW, baseRow, units, color)
		default:
			for s, key := range keys {
				x := slotStart + offset + s*(barW+1)
				b.drawBar(cv, b.data[i].Value(key), x, barW, baseRow, units, b.cfg.Color(key, s, b.theme))
			}
		}
	}

	body := cv.render()
	if d.ShowXAxis {
		labels := make([]string, n)
		for i, p := range b.data {
			labels[i] = p.Label(b.xKey)
		}
		body += "\n" + b.theme.axisStyle().Render(xAxisRow(labels, centers, b.width))
	}
	return body
}

// drawBar fills one vertical bar. Positive values grow up from the
// baseline, negative ones down.
func (b *BarChart) drawBar(cv *canvas, v float64, x, barW, baseRow int, units float64, color lipgloss.Color) {
	rows := v * units
	if rows >= 0 {
		for w := 0; w < barW; w++ {
			fillColumn(cv, x+w, baseRow, rows, func(int) lipgloss.Color { return color })
		}
		return
	}
	depth := int(math.Round(-rows))
	for w := 0; w < barW; w++ {
		for r := 1; r <= depth; r++ {
			cv.set(x+w, baseRow+r, '█', color)
		}
	}
}

func (b *BarChart) drawStackedBar(cv *canvas, p scale.Point, keys []string, x, barW int, baseRow int, units float64) {
	accRows := 0.0
	for i, key := range keys {
		v := p.Value(key)
		if v <= 0 {
			continue
		}
		vRows := v * units
		start := int(accRows)
		end := int(math.Round(accRows + vRows))
		color := b.cfg.Color(key, i, b.theme)
		for r := start; r < end; r++ {
			for w := 0; w < barW; w++ {
				cv.set(x+w, baseRow-r, '█', color)
			}
		}
		accRows += vRows
	}
}

func (b *BarChart) renderHorizontal(d BarDefaults) string {
	keys := b.cfg.Keys()
	if len(b.data) == 0 || len(keys) == 0 {
		return ""
	}
	key := keys[0]

	labelW := 0
	for _, p := range b.data {
		if w := lipgloss.Width(p.Label(b.xKey)); w > labelW {
			labelW = w
		}
	}

	max := 0.0
	for _, p := range b.data {
		if v := p.Value(key); v > max {
			max = v
		}
	}
	if max <= 0 {
		max = scale.FallbackMax
	}

	valueW := 0
	values := make([]string, len(b.data))
	for i, p := range b.data {
		values[i] = formatValue(p.Value(key))
		if len(values[i]) > valueW {
			valueW = len(values[i])
		}
	}

	barSpace := b.width - labelW - valueW - 3
	if barSpace < 4 {
		barSpace = 4
	}

	labelStyle := b.theme.axisStyle()
	valueStyle := lipgloss.NewStyle().Foreground(b.theme.color(b.theme.Foreground))

	rows := make([]string, 0, len(b.data))
	for i, p := range b.data {
		color := b.cfg.Color(key, 0, b.theme)
		if d.Mixed {
			color = b.theme.SeriesColor(i)
		}
		length := int(math.Round(p.Value(key) / max * float64(barSpace)))
		if length < 1 && p.Value(key) > 0 {
			length = 1
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", length))

		row := fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%*s", labelW, p.Label(b.xKey))), bar)
		if d.ShowValues {
			row += " " + valueStyle.Render(values[i])
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (b *BarChart) domain(d BarDefaults) (float64, float64) {
	keys := b.cfg.Keys()
	if d.Stacked {
		max := maxOf(stackSum(b.data, keys))
		if max <= 0 {
			return scale.FallbackMin, scale.FallbackMax
		}
		return 0, max
	}
	min, max := scale.Domain(b.data, keys)
	if min > 0 {
		min = 0
	}
	if max <= min {
		max = min + 1
	}
	return min, max
}
