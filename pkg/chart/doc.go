// Package chart provides configurable, themeable chart components for
// terminal applications: area, bar, line, pie and radial charts composed
// into bordered cards with optional legends, tooltips and footers.
//
// # Components
//
// Every chart follows the same shape: construct it over a dataset and a
// series configuration, refine it with fluent With* options, then render
// it with View:
//
//	cfg := chart.NewConfig().
//		Set("desktop", chart.SeriesStyle{Label: "Desktop"}).
//		Set("mobile", chart.SeriesStyle{Label: "Mobile"})
//
//	out := chart.NewAreaChart(data, "month", cfg).
//		WithVariant(chart.AreaStacked).
//		WithTitle("Visitors").
//		View()
//
// # Variants
//
// Each chart kind has a closed set of variant tags (AreaStacked,
// BarHorizontal, LineDots, PieDonut, ...). A variant is nothing more than
// a preset bundle of display defaults resolved through a lookup table;
// unknown tags fall back to the kind's default preset.
//
// # Themes
//
// A Theme carries five numbered series color slots plus the surface,
// border and text colors, each with light and dark values. Series without
// an explicit color pick up the numbered slot matching their position.
//
// # Scale
//
// Axis domains and ticks come from the pkg/scale package: the line chart
// pads the raw data range, rounds it to magnitude-dependent nice bounds
// and generates 1/2/5/10-stepped ticks from it.
package chart
