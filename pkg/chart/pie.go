package chart

import (
	"math"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// PieChart renders proportional angular segments. Each data point is one
// slice: nameKey holds the slice label, valueKey the slice value. The
// series configuration is keyed by slice name.
type PieChart struct {
	data     []scale.Point
	nameKey  string
	valueKey string
	cfg      *Config
	variant  PieVariant
	theme    Theme

	title       string
	description string
	footer      string

	height int
}

// NewPieChart creates a pie chart over the given dataset.
func NewPieChart(data []scale.Point, nameKey, valueKey string, cfg *Config) *PieChart {
	return &PieChart{
		data:     data,
		nameKey:  nameKey,
		valueKey: valueKey,
		cfg:      cfg,
		variant:  PieDefault,
		theme:    DefaultTheme(),
		height:   11,
	}
}

// WithVariant selects the display preset.
func (p *PieChart) WithVariant(v PieVariant) *PieChart {
	p.variant = v
	return p
}

// WithTheme sets the color theme.
func (p *PieChart) WithTheme(theme Theme) *PieChart {
	p.theme = theme
	return p
}

// WithTitle sets the card title.
func (p *PieChart) WithTitle(title string) *PieChart {
	p.title = title
	return p
}

// WithDescription sets the card description.
func (p *PieChart) WithDescription(description string) *PieChart {
	p.description = description
	return p
}

// WithFooter sets the card footer.
func (p *PieChart) WithFooter(footer string) *PieChart {
	p.footer = footer
	return p
}

// WithHeight sets the pie diameter in rows; the width follows from the
// cell aspect ratio.
func (p *PieChart) WithHeight(height int) *PieChart {
	if height > 0 {
		p.height = height
	}
	return p
}

// View renders the chart card.
func (p *PieChart) View() string {
	d := p.variant.Defaults()

	card := NewCard(p.theme).
		WithTitle(p.title).
		WithDescription(p.description).
		WithFooter(p.footer).
		WithBody(p.renderBody(d))
	if d.ShowLegend {
		card.WithLegend(Legend(p.sliceConfig(), p.theme))
	}
	return card.View()
}

// Body renders the plot without the card frame, for embedding.
func (p *PieChart) Body() string {
	return p.renderBody(p.variant.Defaults())
}

// sliceConfig resolves the effective per-slice configuration: configured
// entries win, unconfigured slices pick up labels from the data and colors
// from the numbered slots.
func (p *PieChart) sliceConfig() *Config {
	cfg := NewConfig()
	for i, point := range p.data {
		name := point.Label(p.nameKey)
		if name == "" {
			continue
		}
		style := SeriesStyle{Label: p.cfg.Label(name), Color: p.cfg.ColorHex(name, i, p.theme)}
		cfg.Set(name, style)
	}
	return cfg
}

func (p *PieChart) renderBody(d PieDefaults) string {
	h := p.height
	w := 2*h + 1
	cv := newCanvas(w, h)
	if len(p.data) == 0 {
		return cv.render()
	}

	total := 0.0
	for _, point := range p.data {
		total += point.Value(p.valueKey)
	}
	if total <= 0 {
		return cv.render()
	}

	// Cumulative share boundaries in [0, 1], clockwise from the top.
	bounds := make([]float64, len(p.data)+1)
	acc := 0.0
	for i, point := range p.data {
		acc += point.Value(p.valueKey) / total
		bounds[i+1] = acc
	}

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	radius := float64(h) / 2
	hole := 0.0
	if d.Donut {
		hole = radius * 0.55
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Cells are twice as tall as wide; halve dx to keep the disc round.
			dx := (float64(x) - cx) * 0.5
			dy := float64(y) - cy
			r := math.Hypot(dx, dy)
			if r > radius || r < hole {
				continue
			}
			share := clockwiseShare(dx, dy)
			idx := segmentAt(bounds, share)
			cv.set(x, y, '█', p.cfg.Color(p.data[idx].Label(p.nameKey), idx, p.theme))
		}
	}

	if d.CenterText {
		text := formatValue(total)
		cv.writeString(w/2-len(text)/2, h/2, text, p.theme.color(p.theme.Foreground))
	}
	return cv.render()
}

// clockwiseShare maps a direction from the disc center to its share of the
// full turn, 0 at twelve o'clock increasing clockwise.
func clockwiseShare(dx, dy float64) float64 {
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi)
}

// segmentAt finds the slice owning a share position given cumulative
// bounds.
func segmentAt(bounds []float64, share float64) int {
	for i := 1; i < len(bounds); i++ {
		if share <= bounds[i] {
			return i - 1
		}
	}
	return len(bounds) - 2
}
