package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasDimensions(t *testing.T) {
	cv := newCanvas(8, 3)
	lines := strings.Split(cv.render(), "\n")

	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat(" ", 8), line)
	}
}

func TestCanvasSetAndAt(t *testing.T) {
	cv := newCanvas(4, 2)
	cv.set(1, 0, '█', "")

	assert.Equal(t, '█', cv.at(1, 0))
	assert.Equal(t, ' ', cv.at(0, 0))
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	cv := newCanvas(2, 2)
	cv.set(-1, 0, 'x', "")
	cv.set(0, -1, 'x', "")
	cv.set(2, 0, 'x', "")
	cv.set(0, 2, 'x', "")

	assert.Equal(t, ' ', cv.at(-1, 0))
	assert.NotContains(t, cv.render(), "x")
}

func TestCanvasWriteString(t *testing.T) {
	cv := newCanvas(10, 1)
	cv.writeString(2, 0, "hi", "")

	assert.Contains(t, cv.render(), "hi")
	assert.Equal(t, 'h', cv.at(2, 0))
	assert.Equal(t, 'i', cv.at(3, 0))
}

func TestCanvasMinimumSize(t *testing.T) {
	cv := newCanvas(0, -3)
	assert.Equal(t, 1, cv.width)
	assert.Equal(t, 1, cv.height)
}
