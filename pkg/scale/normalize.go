package scale

// NormalizeToPercentage rescales each point so its values across keys sum to
// 100, producing the dataset for a 100%-stacked chart. Points whose values
// total zero are copied unchanged; there is no meaningful share of an empty
// stack and leaving the zeros in place renders correctly. The input slice is
// never mutated.
func NormalizeToPercentage(points []Point, keys []string) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		cp := make(Point, len(p))
		for k, v := range p {
			cp[k] = v
		}

		var total float64
		for _, key := range keys {
			total += p.Value(key)
		}
		if total > 0 {
			for _, key := range keys {
				cp[key] = p.Value(key) / total * 100
			}
		}
		out[i] = cp
	}
	return out
}
