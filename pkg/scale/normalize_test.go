package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToPercentage(t *testing.T) {
	points := []Point{{"x": 1, "y": 3}}

	got := NormalizeToPercentage(points, []string{"x", "y"})

	require.Len(t, got, 1)
	assert.InDelta(t, 25.0, got[0].Value("x"), 1e-9)
	assert.InDelta(t, 75.0, got[0].Value("y"), 1e-9)
}

func TestNormalizeToPercentageZeroTotal(t *testing.T) {
	points := []Point{{"x": 0, "y": 0, "month": "Jan"}}

	got := NormalizeToPercentage(points, []string{"x", "y"})

	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Value("x"))
	assert.Equal(t, 0.0, got[0].Value("y"))
	assert.Equal(t, "Jan", got[0].Label("month"), "non-series keys are carried over")
}

func TestNormalizeToPercentageDoesNotMutateInput(t *testing.T) {
	points := []Point{{"x": 2, "y": 2}}

	_ = NormalizeToPercentage(points, []string{"x", "y"})

	assert.Equal(t, 2.0, points[0].Value("x"))
	assert.Equal(t, 2.0, points[0].Value("y"))
}

func TestNormalizeToPercentageIdempotent(t *testing.T) {
	points := []Point{
		{"x": 4, "y": 12, "month": "Jan"},
		{"x": 7, "y": 3, "month": "Feb"},
	}
	keys := []string{"x", "y"}

	once := NormalizeToPercentage(points, keys)
	twice := NormalizeToPercentage(once, keys)

	for i := range once {
		for _, k := range keys {
			assert.InDelta(t, once[i].Value(k), twice[i].Value(k), 1e-9)
		}
	}
}

func TestNormalizeToPercentageSumsToHundred(t *testing.T) {
	points := []Point{
		{"a": 186, "b": 80, "c": 40},
		{"a": 305, "b": 200, "c": 12},
	}
	keys := []string{"a", "b", "c"}

	got := NormalizeToPercentage(points, keys)

	for i := range got {
		var total float64
		for _, k := range keys {
			total += got[i].Value(k)
		}
		assert.InDelta(t, 100.0, total, 1e-9, "point %d", i)
	}
}
