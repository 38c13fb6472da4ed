// Package config loads and validates the YAML chart documents the CLI
// renders. A document is a named list of chart specs, each carrying its
// kind, variant, series styling and inline data.
package config

import (
	"github.com/mnhtng/shadcn-chart/pkg/chart"
	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// Document is the root of a chart document file.
type Document struct {
	Version string      `yaml:"version" validate:"required"`
	Name    string      `yaml:"name"`
	Charts  []ChartSpec `yaml:"charts" validate:"required,min=1,dive"`
}

// ChartSpec describes one chart card.
type ChartSpec struct {
	ID          string   `yaml:"id" validate:"required,chart_id"`
	Kind        string   `yaml:"kind" validate:"required,chart_kind"`
	Variant     string   `yaml:"variant"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Footer      string   `yaml:"footer"`
	XKey        string   `yaml:"x_key"`
	NameKey     string   `yaml:"name_key"`
	ValueKey    string   `yaml:"value_key"`
	Height      int      `yaml:"height" validate:"omitempty,min=3,max=50"`
	Series      []Series `yaml:"series" validate:"dive"`
	Data        []Row    `yaml:"data" validate:"required,min=1"`
}

// Series styles one data key.
type Series struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label"`
	Color string `yaml:"color" validate:"omitempty,hex_color"`
}

// Row is one data point as parsed from YAML.
type Row map[string]any

// ChartKind resolves the spec's kind tag.
func (c ChartSpec) ChartKind() chart.Kind {
	k, _ := chart.ParseKind(c.Kind)
	return k
}

// Points converts the inline rows to the renderer's point type.
func (c ChartSpec) Points() []scale.Point {
	points := make([]scale.Point, 0, len(c.Data))
	for _, row := range c.Data {
		points = append(points, scale.Point(row))
	}
	return points
}

// SeriesConfig builds the renderer config from the series list, preserving
// document order.
func (c ChartSpec) SeriesConfig() *chart.Config {
	cfg := chart.NewConfig()
	for _, s := range c.Series {
		cfg.Set(s.Key, chart.SeriesStyle{Label: s.Label, Color: s.Color})
	}
	return cfg
}
