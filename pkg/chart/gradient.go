package chart

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// blendHex interpolates between two hex colors in Luv space, which keeps
// the fade perceptually even. t is clamped to [0, 1]. Unparseable colors
// fall back to the from color.
func blendHex(from, to string, t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil {
		return lipgloss.Color(from)
	}
	if errB != nil {
		return lipgloss.Color(from)
	}
	return lipgloss.Color(a.BlendLuv(b, t).Clamped().Hex())
}

// gradientRamp builds a top-to-bottom color ramp of n steps fading a series
// color into the surface color. Step 0 is the strongest (top of the fill).
func gradientRamp(seriesHex, surfaceHex string, n int) []lipgloss.Color {
	if n < 1 {
		n = 1
	}
	ramp := make([]lipgloss.Color, n)
	for i := range ramp {
		var t float64
		if n > 1 {
			// Hold back from a full fade so the bottom row stays visible.
			t = 0.75 * float64(i) / float64(n-1)
		}
		ramp[i] = blendHex(seriesHex, surfaceHex, t)
	}
	return ramp
}
