package chart

import (
	"math"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// RadialChart renders progress rings: one arc per data point sweeping
// clockwise from the top, on a muted track. Progress is animatable; the
// gallery drives it through an Animator.
type RadialChart struct {
	data     []scale.Point
	nameKey  string
	valueKey string
	cfg      *Config
	variant  RadialVariant
	theme    Theme

	title       string
	description string
	footer      string

	height   int
	progress float64
}

// NewRadialChart creates a radial chart over the given dataset.
func NewRadialChart(data []scale.Point, nameKey, valueKey string, cfg *Config) *RadialChart {
	return &RadialChart{
		data:     data,
		nameKey:  nameKey,
		valueKey: valueKey,
		cfg:      cfg,
		variant:  RadialDefault,
		theme:    DefaultTheme(),
		height:   11,
		progress: 1,
	}
}

// WithVariant selects the display preset.
func (r *RadialChart) WithVariant(v RadialVariant) *RadialChart {
	r.variant = v
	return r
}

// WithTheme sets the color theme.
func (r *RadialChart) WithTheme(theme Theme) *RadialChart {
	r.theme = theme
	return r
}

// WithTitle sets the card title.
func (r *RadialChart) WithTitle(title string) *RadialChart {
	r.title = title
	return r
}

// WithDescription sets the card description.
func (r *RadialChart) WithDescription(description string) *RadialChart {
	r.description = description
	return r
}

// WithFooter sets the card footer.
func (r *RadialChart) WithFooter(footer string) *RadialChart {
	r.footer = footer
	return r
}

// WithHeight sets the ring diameter in rows.
func (r *RadialChart) WithHeight(height int) *RadialChart {
	if height > 0 {
		r.height = height
	}
	return r
}

// WithProgress scales every arc by a factor in [0, 1], the hook the
// intro animation drives. Values outside the range are clamped.
func (r *RadialChart) WithProgress(progress float64) *RadialChart {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	r.progress = progress
	return r
}

// View renders the chart card.
func (r *RadialChart) View() string {
	d := r.variant.Defaults()

	card := NewCard(r.theme).
		WithTitle(r.title).
		WithDescription(r.description).
		WithFooter(r.footer).
		WithBody(r.renderBody(d))
	if d.ShowLegend {
		card.WithLegend(Legend(r.ringConfig(d), r.theme))
	}
	return card.View()
}

// Body renders the plot without the card frame, for embedding.
func (r *RadialChart) Body() string {
	return r.renderBody(r.variant.Defaults())
}

func (r *RadialChart) rings(d RadialDefaults) []scale.Point {
	if d.Stacked || len(r.data) <= 1 {
		return r.data
	}
	return r.data[:1]
}

func (r *RadialChart) ringConfig(d RadialDefaults) *Config {
	cfg := NewConfig()
	for i, point := range r.rings(d) {
		name := point.Label(r.nameKey)
		if name == "" {
			continue
		}
		cfg.Set(name, SeriesStyle{Label: r.cfg.Label(name), Color: r.cfg.ColorHex(name, i, r.theme)})
	}
	return cfg
}

func (r *RadialChart) renderBody(d RadialDefaults) string {
	h := r.height
	w := 2*h + 1
	cv := newCanvas(w, h)

	rings := r.rings(d)
	if len(rings) == 0 {
		return cv.render()
	}

	max := 0.0
	for _, point := range rings {
		if v := point.Value(r.valueKey); v > max {
			max = v
		}
	}
	if max <= 0 {
		max = scale.FallbackMax
	}

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	outer := float64(h) / 2
	band := (outer * 0.5) / float64(len(rings))
	if band > 1.5 {
		band = 1.5
	}
	if band < 0.5 {
		band = 0.5
	}

	trackColor := r.theme.color(r.theme.Track)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) * 0.5
			dy := float64(y) - cy
			dist := math.Hypot(dx, dy)

			ring := -1
			for i := range rings {
				hi := outer - float64(i)*band
				lo := hi - band*0.8
				if dist <= hi && dist >= lo {
					ring = i
					break
				}
			}
			if ring < 0 {
				continue
			}

			span := rings[ring].Value(r.valueKey) / max * r.progress
			if span > 0 && clockwiseShare(dx, dy) < span {
				name := rings[ring].Label(r.nameKey)
				cv.set(x, y, '█', r.cfg.Color(name, ring, r.theme))
			} else if d.ShowGrid || ring == 0 || d.Stacked {
				cv.set(x, y, '░', trackColor)
			}
		}
	}

	if d.CenterText {
		total := 0.0
		for _, point := range rings {
			total += point.Value(r.valueKey)
		}
		text := formatValue(total * r.progress)
		cv.writeString(w/2-len(text)/2, h/2, text, r.theme.color(r.theme.Foreground))
	}
	if d.ShowLabel {
		name := rings[0].Label(r.nameKey)
		if name != "" {
			cv.writeString(w/2-len(name)/2, h-1, name, r.theme.color(r.theme.MutedFg))
		}
	}
	return cv.render()
}
