package trajectory

import (
	"slices"

	"signal-lab/domain"
)

// intensityOutlierDelta is the gap an interior sample must show against
// both neighbors before its intensity is treated as an outlier.
const intensityOutlierDelta = 30.0

// Smooth removes single-point outliers from a trajectory in one forward
// pass. An interior sample whose neighbors share a label it does not have
// is rewritten to that label with the mean of the neighbor intensities;
// a sample further than 30 intensity points from both neighbors is pulled
// to their mean. Both rules may fire on the same sample. Sequences shorter
// than three samples pass through unchanged. The input is never mutated.
func Smooth(samples []domain.EmotionSample) []domain.EmotionSample {
	out := slices.Clone(samples)
	if len(out) < 3 {
		return out
	}

	for i := 1; i < len(out)-1; i++ {
		prev, next := out[i-1], out[i+1]

		if prev.Label == next.Label && out[i].Label != prev.Label {
			out[i].Label = prev.Label
			out[i].Intensity = mean(prev.Intensity, next.Intensity)
		}

		if abs(out[i].Intensity-prev.Intensity) > intensityOutlierDelta &&
			abs(out[i].Intensity-next.Intensity) > intensityOutlierDelta {
			out[i].Intensity = mean(prev.Intensity, next.Intensity)
		}
	}
	return out
}

func mean(a, b float64) float64 {
	return (a + b) / 2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
