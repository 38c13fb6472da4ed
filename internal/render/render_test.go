package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnhtng/shadcn-chart/internal/config"
	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

func cartesianSpec(kind string) config.ChartSpec {
	return config.ChartSpec{
		ID:    "visitors",
		Kind:  kind,
		Title: "Visitors",
		XKey:  "month",
		Series: []config.Series{
			{Key: "desktop", Label: "Desktop"},
			{Key: "mobile", Label: "Mobile"},
		},
		Data: []config.Row{
			{"month": "January", "desktop": 186, "mobile": 80},
			{"month": "February", "desktop": 305, "mobile": 200},
			{"month": "March", "desktop": 237, "mobile": 120},
		},
	}
}

func pieSpec(kind string) config.ChartSpec {
	return config.ChartSpec{
		ID:       "browsers",
		Kind:     kind,
		Title:    "Browsers",
		NameKey:  "browser",
		ValueKey: "visitors",
		Series: []config.Series{
			{Key: "chrome", Label: "Chrome"},
			{Key: "safari", Label: "Safari"},
		},
		Data: []config.Row{
			{"browser": "chrome", "visitors": 275},
			{"browser": "safari", "visitors": 200},
		},
	}
}

func TestCardRendersEveryKind(t *testing.T) {
	specs := []config.ChartSpec{
		cartesianSpec("area"),
		cartesianSpec("bar"),
		cartesianSpec("line"),
		pieSpec("pie"),
		pieSpec("radial"),
	}

	for _, spec := range specs {
		t.Run(spec.Kind, func(t *testing.T) {
			out, err := Card(spec, chart.DefaultTheme(), Options{})
			require.NoError(t, err)
			assert.Contains(t, out, spec.Title)
		})
	}
}

func TestCardUnknownKind(t *testing.T) {
	spec := cartesianSpec("area")
	spec.Kind = "scatter"

	_, err := Card(spec, chart.DefaultTheme(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scatter")
}

func TestCardHonorsVariant(t *testing.T) {
	spec := cartesianSpec("area")
	spec.Variant = "stacked"

	out, err := Card(spec, chart.DefaultTheme(), Options{})
	require.NoError(t, err)
	// The stacked variant shows a legend with the series labels.
	assert.Contains(t, out, "Desktop")
	assert.Contains(t, out, "Mobile")
}

func TestCardRadialProgress(t *testing.T) {
	spec := pieSpec("radial")

	dimmed, err := Card(spec, chart.DefaultTheme(), Options{Progress: 0.3})
	require.NoError(t, err)
	full, err := Card(spec, chart.DefaultTheme(), Options{})
	require.NoError(t, err)

	assert.NotEqual(t, dimmed, full)
}

func TestTooltipFor(t *testing.T) {
	spec := cartesianSpec("line")

	out := TooltipFor(spec, chart.DefaultTheme(), 1)
	assert.Contains(t, out, "February")
	assert.Contains(t, out, "Desktop")
	assert.Contains(t, out, "305")
}

func TestTooltipForOutOfRange(t *testing.T) {
	spec := cartesianSpec("line")

	assert.Equal(t, "", TooltipFor(spec, chart.DefaultTheme(), -1))
	assert.Equal(t, "", TooltipFor(spec, chart.DefaultTheme(), 99))
}
