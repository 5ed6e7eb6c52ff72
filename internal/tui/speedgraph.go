package tui

import "strings"

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparkline renders speed history as a one-line block graph, newest sample
// on the right.
func sparkline(data []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(data) == 0 {
		return strings.Repeat("▁", width)
	}

	// Keep only the newest samples when the history is wider than the panel
	if len(data) > width {
		data = data[len(data)-width:]
	}

	min, max := speedBounds(data)
	if max == min {
		return strings.Repeat("▄", len(data))
	}

	var b strings.Builder
	for _, v := range data {
		normalized := (v - min) / (max - min)
		idx := int(normalized * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

// speedBounds returns the min and max of the samples, zeros when empty.
func speedBounds(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
