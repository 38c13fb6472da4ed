package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPreservesSeriesOrder(t *testing.T) {
	cfg := NewConfig().
		Set("desktop", SeriesStyle{Label: "Desktop"}).
		Set("mobile", SeriesStyle{Label: "Mobile"}).
		Set("tablet", SeriesStyle{Label: "Tablet"})

	assert.Equal(t, []string{"desktop", "mobile", "tablet"}, cfg.Keys())
	assert.Equal(t, 3, cfg.Len())
}

func TestConfigSetReplacesWithoutReordering(t *testing.T) {
	cfg := NewConfig().
		Set("a", SeriesStyle{Label: "First"}).
		Set("b", SeriesStyle{Label: "Second"}).
		Set("a", SeriesStyle{Label: "Renamed"})

	assert.Equal(t, []string{"a", "b"}, cfg.Keys())
	assert.Equal(t, "Renamed", cfg.Label("a"))
}

func TestConfigLabelFallsBackToKey(t *testing.T) {
	cfg := NewConfig().Set("desktop", SeriesStyle{})

	assert.Equal(t, "desktop", cfg.Label("desktop"))
	assert.Equal(t, "unknown", cfg.Label("unknown"))
}

func TestConfigColorFallsBackToThemeSlot(t *testing.T) {
	theme := DefaultTheme()
	cfg := NewConfig().
		Set("custom", SeriesStyle{Color: "#123456"}).
		Set("plain", SeriesStyle{})

	assert.Equal(t, "#123456", cfg.ColorHex("custom", 0, theme))
	assert.Equal(t, theme.SeriesHex(1), cfg.ColorHex("plain", 1, theme))
	// Unconfigured keys use the slot for their position too.
	assert.Equal(t, theme.SeriesHex(4), cfg.ColorHex("missing", 4, theme))
}

func TestThemeSeriesSlotsCycle(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme.SeriesHex(0), theme.SeriesHex(5))
	assert.Equal(t, theme.SeriesHex(2), theme.SeriesHex(7))
}

func TestDarkThemeUsesDarkHalf(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.False(t, light.Dark)
	assert.True(t, dark.Dark)
	assert.Equal(t, light.Series[0].Dark, dark.SeriesHex(0))
	assert.NotEqual(t, light.SeriesHex(0), dark.SeriesHex(0))
}
