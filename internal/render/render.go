// Package render turns validated chart specs into terminal card output.
// It is the bridge between the document model and the chart components,
// shared by the render command and the gallery.
package render

import (
	"fmt"

	"github.com/mnhtng/shadcn-chart/internal/config"
	"github.com/mnhtng/shadcn-chart/pkg/chart"
	charterrors "github.com/mnhtng/shadcn-chart/pkg/errors"
)

// Options adjusts the rendered card.
type Options struct {
	// Width is the plot width in cells; zero keeps the component default.
	Width int
	// Progress scales radial arcs, for the intro animation. Zero means
	// fully drawn.
	Progress float64
}

// Card renders one chart spec as a styled terminal card.
func Card(spec config.ChartSpec, theme chart.Theme, opts Options) (string, error) {
	kind, ok := chart.ParseKind(spec.Kind)
	if !ok {
		return "", charterrors.NewRenderError(spec.ID, fmt.Errorf("unknown chart kind %q", spec.Kind))
	}

	points := spec.Points()
	cfg := spec.SeriesConfig()

	switch kind {
	case chart.KindArea:
		v, _ := chart.ParseAreaVariant(spec.Variant)
		return chart.NewAreaChart(points, spec.XKey, cfg).
			WithVariant(v).
			WithTheme(theme).
			WithTitle(spec.Title).
			WithDescription(spec.Description).
			WithFooter(spec.Footer).
			WithSize(opts.Width, spec.Height).
			View(), nil

	case chart.KindBar:
		v, _ := chart.ParseBarVariant(spec.Variant)
		return chart.NewBarChart(points, spec.XKey, cfg).
			WithVariant(v).
			WithTheme(theme).
			WithTitle(spec.Title).
			WithDescription(spec.Description).
			WithFooter(spec.Footer).
			WithSize(opts.Width, spec.Height).
			View(), nil

	case chart.KindLine:
		v, _ := chart.ParseLineVariant(spec.Variant)
		return chart.NewLineChart(points, spec.XKey, cfg).
			WithVariant(v).
			WithTheme(theme).
			WithTitle(spec.Title).
			WithDescription(spec.Description).
			WithFooter(spec.Footer).
			WithSize(opts.Width, spec.Height).
			View(), nil

	case chart.KindPie:
		v, _ := chart.ParsePieVariant(spec.Variant)
		return chart.NewPieChart(points, spec.NameKey, spec.ValueKey, cfg).
			WithVariant(v).
			WithTheme(theme).
			WithTitle(spec.Title).
			WithDescription(spec.Description).
			WithFooter(spec.Footer).
			WithHeight(spec.Height).
			View(), nil

	case chart.KindRadial:
		v, _ := chart.ParseRadialVariant(spec.Variant)
		progress := opts.Progress
		if progress <= 0 {
			progress = 1
		}
		return chart.NewRadialChart(points, spec.NameKey, spec.ValueKey, cfg).
			WithVariant(v).
			WithTheme(theme).
			WithTitle(spec.Title).
			WithDescription(spec.Description).
			WithFooter(spec.Footer).
			WithHeight(spec.Height).
			WithProgress(progress).
			View(), nil
	}

	return "", charterrors.NewRenderError(spec.ID, fmt.Errorf("unhandled chart kind %q", spec.Kind))
}

// TooltipFor renders the tooltip readout for one data point of a spec.
func TooltipFor(spec config.ChartSpec, theme chart.Theme, index int) string {
	points := spec.Points()
	if index < 0 || index >= len(points) {
		return ""
	}

	point := points[index]
	return chart.NewTooltip(spec.SeriesConfig(), theme).
		WithIndicator(indicatorFor(spec)).
		View(point.Label(spec.XKey), point)
}

func indicatorFor(spec config.ChartSpec) chart.Indicator {
	kind, _ := chart.ParseKind(spec.Kind)
	switch kind {
	case chart.KindArea:
		v, _ := chart.ParseAreaVariant(spec.Variant)
		return v.Defaults().Indicator
	case chart.KindLine:
		v, _ := chart.ParseLineVariant(spec.Variant)
		return v.Defaults().Indicator
	default:
		return chart.IndicatorDot
	}
}
