// Package export renders the library's chart definitions to PNG or SVG
// images through go-chart, so the same data, configuration and theme that
// drive the terminal cards can produce files for reports.
package export

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"

	"github.com/mnhtng/shadcn-chart/pkg/chart"
	pkgerrors "github.com/mnhtng/shadcn-chart/pkg/errors"
	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// Format selects the image encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// Options controls the output image.
type Options struct {
	Title  string
	Width  int
	Height int
	Format Format
}

func (o Options) normalized(square bool) Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if square {
		if o.Width < o.Height {
			o.Height = o.Width
		} else {
			o.Width = o.Height
		}
	}
	if o.Format == "" {
		o.Format = PNG
	}
	return o
}

func (o Options) renderer() (gochart.RendererProvider, error) {
	switch o.Format {
	case PNG:
		return gochart.PNG, nil
	case SVG:
		return gochart.SVG, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", o.Format)
	}
}

// Area writes an area chart image. Stacked variants accumulate the series,
// 100%-stacked variants normalize them first.
func Area(w io.Writer, data []scale.Point, xKey string, cfg *chart.Config, variant chart.AreaVariant, theme chart.Theme, opts Options) error {
	d := variant.Defaults()
	if d.Expand {
		data = scale.NormalizeToPercentage(data, cfg.Keys())
	}
	return renderXY(w, data, xKey, cfg, theme, opts, xySpec{fill: true, stacked: d.Stacked})
}

// Line writes a line chart image with the nice-number axis the terminal
// line chart uses.
func Line(w io.Writer, data []scale.Point, xKey string, cfg *chart.Config, _ chart.LineVariant, theme chart.Theme, opts Options) error {
	return renderXY(w, data, xKey, cfg, theme, opts, xySpec{})
}

type xySpec struct {
	fill    bool
	stacked bool
}

func renderXY(w io.Writer, data []scale.Point, xKey string, cfg *chart.Config, theme chart.Theme, opts Options, spec xySpec) error {
	if len(data) < 2 {
		return pkgerrors.NewRenderError(opts.Title, fmt.Errorf("need at least 2 data points, have %d", len(data)))
	}
	opts = opts.normalized(false)
	rp, err := opts.renderer()
	if err != nil {
		return pkgerrors.NewRenderError(opts.Title, err)
	}

	keys := cfg.Keys()
	xs := make([]float64, len(data))
	ticks := make([]gochart.Tick, 0, len(data))
	for i, p := range data {
		xs[i] = float64(i)
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: p.Label(xKey)})
	}

	acc := make([]float64, len(data))
	series := make([]gochart.Series, 0, len(keys))
	for i, key := range keys {
		ys := make([]float64, len(data))
		for pi, p := range data {
			ys[pi] = p.Value(key)
			if spec.stacked {
				acc[pi] += ys[pi]
				ys[pi] = acc[pi]
			}
		}
		color := hexColor(cfg.ColorHex(key, i, theme))
		style := gochart.Style{
			Show:        true,
			StrokeColor: color,
			StrokeWidth: 2,
		}
		if spec.fill {
			style.FillColor = color.WithAlpha(90)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    cfg.Label(key),
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}
	// Stacked fills draw tallest first so every band stays visible.
	if spec.stacked {
		for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
			series[i], series[j] = series[j], series[i]
		}
	}

	yTicks := axisTicks(data, keys)
	graph := gochart.Chart{
		Title:      opts.Title,
		TitleStyle: titleStyle(opts),
		Width:      opts.Width,
		Height:     opts.Height,
		XAxis: gochart.XAxis{
			Style: gochart.StyleShow(),
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Style: gochart.StyleShow(),
			Ticks: yTicks,
		},
		Series: series,
	}
	if err := graph.Render(rp, w); err != nil {
		return pkgerrors.NewRenderError(opts.Title, err)
	}
	return nil
}

// axisTicks runs the shared scale pipeline and converts the result.
func axisTicks(data []scale.Point, keys []string) []gochart.Tick {
	rawMin, rawMax := scale.Domain(data, keys)
	paddedMin, paddedMax := scale.PadDomain(rawMin, rawMax, scale.DefaultPadding)
	niceMin, niceMax := scale.NiceDomain(paddedMin, paddedMax)
	if niceMax <= niceMin {
		niceMax = niceMin + 1
	}
	values := scale.Ticks(niceMin, niceMax, 5, rawMax)

	ticks := make([]gochart.Tick, 0, len(values)+1)
	if len(values) == 0 || values[0] > niceMin {
		ticks = append(ticks, gochart.Tick{Value: niceMin, Label: formatTick(niceMin)})
	}
	for _, v := range values {
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// Bar writes a bar chart image. Stacked variants map onto go-chart's
// stacked bar chart; every other variant renders the first series as plain
// bars (go-chart has no grouped or horizontal bar layout).
func Bar(w io.Writer, data []scale.Point, xKey string, cfg *chart.Config, variant chart.BarVariant, theme chart.Theme, opts Options) error {
	if len(data) == 0 || cfg.Len() == 0 {
		return pkgerrors.NewRenderError(opts.Title, fmt.Errorf("empty dataset"))
	}
	opts = opts.normalized(false)
	rp, err := opts.renderer()
	if err != nil {
		return pkgerrors.NewRenderError(opts.Title, err)
	}

	d := variant.Defaults()
	keys := cfg.Keys()

	if d.Stacked {
		bars := make([]gochart.StackedBar, 0, len(data))
		for _, p := range data {
			values := make([]gochart.Value, 0, len(keys))
			for i, key := range keys {
				values = append(values, gochart.Value{
					Value: p.Value(key),
					Label: cfg.Label(key),
					Style: gochart.Style{Show: true, FillColor: hexColor(cfg.ColorHex(key, i, theme))},
				})
			}
			bars = append(bars, gochart.StackedBar{Name: p.Label(xKey), Values: values})
		}
		graph := gochart.StackedBarChart{
			Title:      opts.Title,
			TitleStyle: titleStyle(opts),
			Width:      opts.Width,
			Height:     opts.Height,
			XAxis:      gochart.StyleShow(),
			YAxis:      gochart.StyleShow(),
			Bars:       bars,
		}
		if err := graph.Render(rp, w); err != nil {
			return pkgerrors.NewRenderError(opts.Title, err)
		}
		return nil
	}

	key := keys[0]
	bars := make([]gochart.Value, 0, len(data))
	for i, p := range data {
		hex := cfg.ColorHex(key, 0, theme)
		if d.Mixed {
			hex = theme.SeriesHex(i)
		}
		bars = append(bars, gochart.Value{
			Value: p.Value(key),
			Label: p.Label(xKey),
			Style: gochart.Style{Show: true, FillColor: hexColor(hex)},
		})
	}
	graph := gochart.BarChart{
		Title:      opts.Title,
		TitleStyle: titleStyle(opts),
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   40,
		XAxis:      gochart.StyleShow(),
		YAxis:      gochart.YAxis{Style: gochart.StyleShow()},
		Bars:       bars,
	}
	if err := graph.Render(rp, w); err != nil {
		return pkgerrors.NewRenderError(opts.Title, err)
	}
	return nil
}

// Pie writes a pie image. Donut and radial variants flatten to a full
// pie: the pinned go-chart release has no donut or radial shape, and the
// slice proportions carry the same information.
func Pie(w io.Writer, data []scale.Point, nameKey, valueKey string, cfg *chart.Config, theme chart.Theme, opts Options) error {
	if len(data) == 0 {
		return pkgerrors.NewRenderError(opts.Title, fmt.Errorf("empty dataset"))
	}
	opts = opts.normalized(true)
	rp, err := opts.renderer()
	if err != nil {
		return pkgerrors.NewRenderError(opts.Title, err)
	}

	values := make([]gochart.Value, 0, len(data))
	for i, p := range data {
		name := p.Label(nameKey)
		values = append(values, gochart.Value{
			Value: p.Value(valueKey),
			Label: cfg.Label(name),
			Style: gochart.Style{Show: true, FillColor: hexColor(cfg.ColorHex(name, i, theme))},
		})
	}

	graph := gochart.PieChart{
		Title:      opts.Title,
		TitleStyle: titleStyle(opts),
		Width:      opts.Width,
		Height:     opts.Height,
		Values:     values,
	}
	if err := graph.Render(rp, w); err != nil {
		return pkgerrors.NewRenderError(opts.Title, err)
	}
	return nil
}

func titleStyle(opts Options) gochart.Style {
	if opts.Title == "" {
		return gochart.StyleShow()
	}
	return gochart.Style{Show: true, FontSize: 14}
}

// hexColor converts a #rrggbb string into a drawing color, falling back to
// a neutral gray for anything unparseable.
func hexColor(hex string) drawing.Color {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return drawing.Color{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	}
	return drawing.ColorFromHex(trimmed)
}

// formatTick matches the terminal axis labels: integers plain, thousands
// in the 1.2k form.
func formatTick(v float64) string {
	if v >= 1000 || v <= -1000 {
		s := fmt.Sprintf("%.1f", v/1000)
		s = strings.TrimSuffix(s, ".0")
		return s + "k"
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
