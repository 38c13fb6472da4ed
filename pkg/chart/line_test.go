package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

func lineFixture() ([]scale.Point, *Config) {
	data := []scale.Point{
		{"month": "January", "value": 30},
		{"month": "February", "value": 52},
		{"month": "March", "value": 45},
		{"month": "April", "value": 97},
		{"month": "May", "value": 60},
	}
	cfg := NewConfig().Set("value", SeriesStyle{Label: "Value"})
	return data, cfg
}

func TestLineChartDomainPipeline(t *testing.T) {
	data, cfg := lineFixture()

	min, max, ticks := NewLineChart(data, "month", cfg).Domain()

	// Raw 30..97, padded by 0.15 → 19.95..107.05, rounded by magnitude
	// tier → 10..200, ticked with step 50.
	assert.Equal(t, 10.0, min)
	assert.Equal(t, 200.0, max)
	assert.Equal(t, []float64{50, 100, 150, 200}, ticks)
}

func TestLineChartDomainGrowsWithExtraTick(t *testing.T) {
	data := []scale.Point{
		{"month": "Jan", "value": 10},
		{"month": "Feb", "value": 101},
	}
	cfg := NewConfig().Set("value", SeriesStyle{})

	_, max, ticks := NewLineChart(data, "month", cfg).Domain()

	require.NotEmpty(t, ticks)
	assert.GreaterOrEqual(t, max, ticks[len(ticks)-1], "axis covers the last tick")
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1])
	}
}

func TestLineChartBodyHasAxes(t *testing.T) {
	data, cfg := lineFixture()

	body := NewLineChart(data, "month", cfg).WithSize(40, 8).Body()
	lines := strings.Split(body, "\n")

	require.Len(t, lines, 9)
	assert.Contains(t, body, "─", "polyline uses box-drawing runes")
	assert.Contains(t, body, "50", "y gutter shows tick labels")
	assert.Contains(t, lines[8], "Jan")
}

func TestLineChartDotsVariant(t *testing.T) {
	data, cfg := lineFixture()

	body := NewLineChart(data, "month", cfg).WithVariant(LineDots).WithSize(40, 8).Body()

	assert.Contains(t, body, "●")
	assert.NotContains(t, body, "╭")
}

func TestLineChartEmptyData(t *testing.T) {
	cfg := NewConfig().Set("value", SeriesStyle{})
	l := NewLineChart(nil, "month", cfg)

	min, max, ticks := l.Domain()
	assert.LessOrEqual(t, min, max)
	assert.NotEmpty(t, ticks)
	assert.NotPanics(t, func() { l.View() })
}
