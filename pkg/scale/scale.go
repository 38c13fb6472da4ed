// Package scale provides the axis-domain and tick mathematics shared by the
// chart components: range scanning, domain padding, nice-number rounding,
// step selection and tick generation. Everything here is a pure function
// over the input data; nothing is cached between calls.
package scale

import "math"

// DefaultPadding is the relative padding applied to a raw data domain
// before rounding it to nice bounds.
const DefaultPadding = 0.15

// Fallback domain used when a dataset has no plottable values.
const (
	FallbackMin = 0
	FallbackMax = 100
)

// Point is one dataset element: a mapping from a key to a value. Values are
// either numbers or text labels (the category axis). Points are treated as
// immutable once handed to a chart.
type Point map[string]any

// Value returns the numeric value stored under key. Missing keys and
// non-numeric values read as 0.
func (p Point) Value(key string) float64 {
	v, ok := p[key]
	if !ok {
		return 0
	}
	return asFloat(v)
}

// Label returns the string stored under key, or "" when the value is not
// text.
func (p Point) Label(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}

// ScanRange returns the minimum and maximum value observed across all points
// for the given keys. An empty scan returns the sentinel (+Inf, -Inf); use
// Domain when the [FallbackMin, FallbackMax] substitution is wanted.
func ScanRange(points []Point, keys []string) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range points {
		for _, key := range keys {
			v := p.Value(key)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Domain is ScanRange with the empty-dataset fallback applied: when nothing
// was scanned the domain defaults to [0, 100].
func Domain(points []Point, keys []string) (min, max float64) {
	min, max = ScanRange(points, keys)
	if math.IsInf(min, 1) || math.IsInf(max, -1) {
		return FallbackMin, FallbackMax
	}
	return min, max
}

// PadDomain expands the domain by a relative padding fraction on each side.
// The padded minimum never drops below zero.
func PadDomain(min, max, padding float64) (paddedMin, paddedMax float64) {
	r := max - min
	paddedMin = math.Max(0, min-r*padding)
	paddedMax = max + r*padding
	return paddedMin, paddedMax
}

// NiceDomain rounds a padded domain outward to magnitude-dependent
// boundaries. Each bound picks its own rounding factor, so an axis spanning
// 80..12000 rounds its ends differently. This is a labeling heuristic, not
// a general nice-number algorithm; step selection uses the 1/2/5/10 ladder
// instead.
func NiceDomain(paddedMin, paddedMax float64) (niceMin, niceMax float64) {
	minFactor := roundingFactor(paddedMin)
	maxFactor := roundingFactor(paddedMax)
	niceMin = math.Floor(paddedMin/minFactor) * minFactor
	niceMax = math.Ceil(paddedMax/maxFactor) * maxFactor
	return niceMin, niceMax
}

func roundingFactor(bound float64) float64 {
	abs := math.Abs(bound)
	switch {
	case abs <= 100:
		return 10
	case abs <= 1000:
		return 100
	case abs <= 10000:
		return 500
	case abs <= 50000:
		return 1000
	default:
		return 5000
	}
}

// ChooseStep picks a nice step size for dividing rng into roughly
// targetSteps intervals. The result is always 1, 2, 5 or 10 scaled by a
// power of ten. Callers must special-case targetSteps <= 1 (a single tick
// at the domain minimum) before calling.
func ChooseStep(rng float64, targetSteps int) float64 {
	rawStep := rng / float64(targetSteps)
	magnitude := math.Pow(10, math.Floor(math.Log10(rawStep)))
	normalized := rawStep / magnitude

	var niceStep float64
	switch {
	case normalized <= 1:
		niceStep = 1
	case normalized <= 2:
		niceStep = 2
	case normalized <= 5:
		niceStep = 5
	default:
		niceStep = 10
	}
	return niceStep * magnitude
}

// Ticks generates axis tick values for the domain [min, max]. The walk
// starts at min floored to the step grid and is bounded at 2*tickCount
// values so a pathological step can never loop forever. When the true data
// maximum sits just above the last tick (by less than a tenth of a step)
// one extra tick is appended so the topmost point is not visually clipped;
// that final tick may exceed max.
func Ticks(min, max float64, tickCount int, dataMax float64) []float64 {
	if tickCount <= 1 {
		return []float64{min}
	}

	step := ChooseStep(max-min, tickCount-1)
	niceMin := math.Floor(min/step) * step

	ticks := make([]float64, 0, tickCount+1)
	for v := niceMin; v <= max && len(ticks) < 2*tickCount; v += step {
		if v >= min {
			ticks = append(ticks, v)
		}
	}
	if len(ticks) == 0 {
		return []float64{min}
	}

	last := ticks[len(ticks)-1]
	if diff := dataMax - last; diff > 0 && diff < step*0.1 {
		ticks = append(ticks, last+step)
	}
	return ticks
}
