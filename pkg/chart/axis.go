package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// tickLabel formats an axis value compactly: integers lose their decimals
// and anything from a thousand up collapses to the "1.2k" form.
func tickLabel(v float64) string {
	abs := math.Abs(v)
	if abs >= 1000 {
		s := strconv.FormatFloat(v/1000, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
		return s + "k"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// abbreviate trims a category label to its first three runes, matching the
// axis tick formatting of the web components this library mirrors.
func abbreviate(label string) string {
	runes := []rune(label)
	if len(runes) <= 3 {
		return label
	}
	return string(runes[:3])
}

// pointColumns spreads n data points across a plot width, first point at
// column 0 and last at the right edge.
func pointColumns(n, plotWidth int) []int {
	cols := make([]int, n)
	if n == 1 {
		cols[0] = plotWidth / 2
		return cols
	}
	for i := range cols {
		cols[i] = i * (plotWidth - 1) / (n - 1)
	}
	return cols
}

// valueRow maps a value onto a canvas row, row 0 being the top.
func valueRow(v, min, max float64, height int) int {
	if max <= min {
		return height - 1
	}
	ratio := (v - min) / (max - min)
	row := height - 1 - int(math.Round(ratio*float64(height-1)))
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	return row
}

// xAxisRow lays category labels out under their plot columns, dropping any
// label that would collide with the previous one.
func xAxisRow(labels []string, cols []int, width int) string {
	buf := make([]rune, width)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -2
	for i, label := range labels {
		if i >= len(cols) {
			break
		}
		text := []rune(abbreviate(label))
		start := cols[i] - len(text)/2
		if start < 0 {
			start = 0
		}
		if start+len(text) > width {
			start = width - len(text)
		}
		if start <= lastEnd+1 {
			continue
		}
		copy(buf[start:], text)
		lastEnd = start + len(text) - 1
	}
	return string(buf)
}

// yGutter builds the right-aligned tick label column for a plot of the
// given height. Each tick lands on the row its value maps to; rows without
// a tick stay blank.
func yGutter(ticks []float64, min, max float64, height, gutterWidth int) []string {
	rows := make([]string, height)
	blank := strings.Repeat(" ", gutterWidth)
	for i := range rows {
		rows[i] = blank
	}
	for _, tick := range ticks {
		if tick < min || tick > max {
			continue
		}
		row := valueRow(tick, min, max, height)
		rows[row] = fmt.Sprintf("%*s", gutterWidth, tickLabel(tick))
	}
	return rows
}

// gutterWidthFor sizes the y gutter to the widest tick label plus one
// space of separation.
func gutterWidthFor(ticks []float64) int {
	widest := 0
	for _, tick := range ticks {
		if w := len(tickLabel(tick)); w > widest {
			widest = w
		}
	}
	return widest + 1
}
