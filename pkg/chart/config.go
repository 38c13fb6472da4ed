package chart

import "github.com/charmbracelet/lipgloss"

// SeriesStyle describes how one series is presented: the text shown in
// legends and tooltips and an optional hex color. An empty color falls back
// to the theme's numbered slot for the series' position.
type SeriesStyle struct {
	Label string
	Color string
}

// Config maps series keys to their presentation. Insertion order is the
// series order: it decides stacking order, legend order and which numbered
// theme color a series falls back to.
type Config struct {
	keys   []string
	styles map[string]SeriesStyle
}

// NewConfig creates an empty series configuration.
func NewConfig() *Config {
	return &Config{styles: make(map[string]SeriesStyle)}
}

// Set registers (or replaces) the style for a series key. First-time keys
// are appended to the series order.
func (c *Config) Set(key string, style SeriesStyle) *Config {
	if _, ok := c.styles[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.styles[key] = style
	return c
}

// Keys returns the series keys in configuration order. The returned slice
// is shared; callers must not modify it.
func (c *Config) Keys() []string {
	return c.keys
}

// Len returns the number of configured series.
func (c *Config) Len() int {
	return len(c.keys)
}

// Label returns the display label for a series key, defaulting to the key
// itself.
func (c *Config) Label(key string) string {
	if s, ok := c.styles[key]; ok && s.Label != "" {
		return s.Label
	}
	return key
}

// ColorHex resolves the hex color for the series at position i with key
// key: the configured color when present, the theme slot otherwise.
func (c *Config) ColorHex(key string, i int, theme Theme) string {
	if s, ok := c.styles[key]; ok && s.Color != "" {
		return s.Color
	}
	return theme.SeriesHex(i)
}

// Color resolves the lipgloss color for the series at position i.
func (c *Config) Color(key string, i int, theme Theme) lipgloss.Color {
	return lipgloss.Color(c.ColorHex(key, i, theme))
}
