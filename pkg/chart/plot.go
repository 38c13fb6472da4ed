package chart

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/mnhtng/shadcn-chart/pkg/scale"
)

// sampleSeries resamples one series onto plot columns. Columns between two
// data points interpolate according to the curve: step curves hold the left
// point's value, everything else interpolates linearly (terminal cells are
// too coarse for spline smoothing to read differently). Columns outside the
// data clamp to the nearest point.
func sampleSeries(data []scale.Point, key string, cols []int, plotWidth int, curve Curve) []float64 {
	values := make([]float64, plotWidth)
	if len(data) == 0 {
		return values
	}
	if len(data) == 1 {
		v := data[0].Value(key)
		for x := range values {
			values[x] = v
		}
		return values
	}

	seg := 0
	for x := 0; x < plotWidth; x++ {
		for seg < len(cols)-2 && x > cols[seg+1] {
			seg++
		}
		left, right := cols[seg], cols[seg+1]
		lv, rv := data[seg].Value(key), data[seg+1].Value(key)
		switch {
		case x <= left:
			values[x] = lv
		case x >= right:
			values[x] = rv
		case curve == CurveStep:
			values[x] = lv
		default:
			t := float64(x-left) / float64(right-left)
			values[x] = lv + (rv-lv)*t
		}
	}
	return values
}

// stackSum returns, per point, the sum of values across keys.
func stackSum(data []scale.Point, keys []string) []float64 {
	sums := make([]float64, len(data))
	for i, p := range data {
		for _, key := range keys {
			sums[i] += p.Value(key)
		}
	}
	return sums
}

// maxOf returns the largest value in vs, or 0 when empty.
func maxOf(vs []float64) float64 {
	max := math.Inf(-1)
	for _, v := range vs {
		if v > max {
			max = v
		}
	}
	if math.IsInf(max, -1) {
		return 0
	}
	return max
}

// partial block runes indexed by eighths of a cell, lightest first.
var eighthBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// fillColumn draws a vertical fill in one column from the baseline row up
// to the value height expressed in fractional rows. Height 0 draws
// nothing; fractional tops use an eighth block. colorAt lets gradient
// fills vary the color per row.
func fillColumn(cv *canvas, x, baseRow int, rows float64, colorAt func(row int) lipgloss.Color) {
	if rows <= 0 {
		return
	}
	full := int(rows)
	frac := rows - float64(full)
	for i := 0; i < full; i++ {
		row := baseRow - i
		cv.set(x, row, '█', colorAt(row))
	}
	if eighth := int(math.Round(frac * 8)); eighth > 0 {
		row := baseRow - full
		cv.set(x, row, eighthBlocks[eighth], colorAt(row))
	}
}
