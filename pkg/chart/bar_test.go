package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

func TestBarChartVerticalBody(t *testing.T) {
	data, cfg := areaFixture()

	body := NewBarChart(data, "month", cfg).WithSize(48, 8).Body()
	lines := strings.Split(body, "\n")

	require.Len(t, lines, 9, "plot rows plus x-axis row")
	assert.Contains(t, body, "█")
	assert.Contains(t, lines[8], "Jan")
}

func TestBarChartStackedUsesStackDomain(t *testing.T) {
	data, cfg := areaFixture()
	b := NewBarChart(data, "month", cfg)

	_, max := b.domain(BarStacked.Defaults())
	assert.Equal(t, 505.0, max)

	_, max = b.domain(BarDefault.Defaults())
	assert.Equal(t, 305.0, max)
}

func TestBarChartNegativeValues(t *testing.T) {
	data := []scale.Point{
		{"month": "Jan", "visitors": 120},
		{"month": "Feb", "visitors": -40},
		{"month": "Mar", "visitors": 90},
	}
	cfg := NewConfig().Set("visitors", SeriesStyle{Label: "Visitors"})
	b := NewBarChart(data, "month", cfg).WithVariant(BarNegative)

	min, max := b.domain(BarNegative.Defaults())
	assert.Equal(t, -40.0, min)
	assert.Equal(t, 120.0, max)

	assert.NotPanics(t, func() { b.View() })
}

func TestBarChartHorizontal(t *testing.T) {
	data := []scale.Point{
		{"browser": "Chrome", "visitors": 275},
		{"browser": "Safari", "visitors": 200},
		{"browser": "Firefox", "visitors": 187},
	}
	cfg := NewConfig().Set("visitors", SeriesStyle{Label: "Visitors"})

	body := NewBarChart(data, "browser", cfg).WithVariant(BarHorizontal).WithSize(40, 0).Body()
	lines := strings.Split(body, "\n")

	require.Len(t, lines, 3, "one row per category")
	assert.Contains(t, lines[0], "Chrome")
	assert.Contains(t, lines[0], "275")
	assert.Contains(t, lines[1], "Safari")
	assert.Contains(t, body, "█")
}

func TestBarChartEmptyData(t *testing.T) {
	cfg := NewConfig().Set("a", SeriesStyle{})
	b := NewBarChart(nil, "x", cfg)

	assert.NotPanics(t, func() { b.View() })
	assert.NotPanics(t, func() { b.WithVariant(BarHorizontal).View() })
}
