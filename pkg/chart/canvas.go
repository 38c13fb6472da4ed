package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is the cell grid the chart bodies draw into. Each cell holds a
// rune and a foreground color; rendering batches runs of equal color into
// a single styled segment per row. Row 0 is the top of the chart.
type canvas struct {
	width  int
	height int
	runes  [][]rune
	colors [][]lipgloss.Color
}

func newCanvas(width, height int) *canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	runes := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := range runes {
		runes[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := range runes[y] {
			runes[y][x] = ' '
		}
	}
	return &canvas{width: width, height: height, runes: runes, colors: colors}
}

// set places a colored rune. Out-of-bounds writes are dropped so drawing
// code never needs edge guards.
func (c *canvas) set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.colors[y][x] = color
}

// at returns the rune currently stored at (x, y).
func (c *canvas) at(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.runes[y][x]
}

// writeString places a text run starting at (x, y), one cell per rune.
func (c *canvas) writeString(x, y int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, color)
	}
}

// render flattens the grid into a styled multi-line string.
func (c *canvas) render() string {
	var out strings.Builder
	for y := 0; y < c.height; y++ {
		x := 0
		for x < c.width {
			color := c.colors[y][x]
			end := x
			for end < c.width && c.colors[y][end] == color {
				end++
			}
			segment := string(c.runes[y][x:end])
			if color == "" {
				out.WriteString(segment)
			} else {
				out.WriteString(lipgloss.NewStyle().Foreground(color).Render(segment))
			}
			x = end
		}
		if y < c.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
