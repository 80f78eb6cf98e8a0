// Package trajectory derives, smooths and segments the per-message
// emotional trajectory of one interview session.
// It consumes the shared domain vocabulary and performs no I/O.
package trajectory

import (
	"math"
	"strings"

	"signal-lab/domain"
	"signal-lab/lexicon"
)

// MinSignal is the minimum dominant lexical score required to trust the
// lexicon. Below it the position-band fallback provides the label, so
// every message is labeled even without any signal.
const MinSignal = 3.0

// Contribution caps of the intensity formula. Each input feeds a capped
// share so no single factor can saturate the 0-100 scale on its own.
const (
	maxLengthShare   = 25.0
	maxWordShare     = 20.0
	maxProgressShare = 15.0
	maxSignalShare   = 40.0
)

// positionFallback returns the canonical default label for a message
// position when the lexicon found no usable signal. The early/middle/late
// bands produce a deterministic, explainable progression.
func positionFallback(index, total int) domain.Label {
	if total <= 0 {
		return domain.Neutral
	}
	switch {
	case float64(index) < float64(total)/3:
		return domain.Neutral
	case float64(index) < 2*float64(total)/3:
		return domain.Thoughtful
	default:
		return domain.Engaged
	}
}

// Build scores every candidate message and assigns a dominant label plus
// an intensity in [0,100]. Non-user messages are ignored. The scorer must
// be built from lexicon.TrajectoryEntries or a compatible table.
func Build(scorer *lexicon.Scorer, messages []domain.Message) []domain.EmotionSample {
	userMessages := domain.UserMessages(messages)
	samples := make([]domain.EmotionSample, 0, len(userMessages))

	for i, m := range userMessages {
		label, score := lexicon.Dominant(scorer.Score(m.Content))
		if score < MinSignal {
			label = positionFallback(i, len(userMessages))
		}
		samples = append(samples, domain.EmotionSample{
			MessageIndex: i,
			Timestamp:    m.Timestamp,
			Label:        label,
			Intensity:    intensity(m.Content, i, len(userMessages), score),
		})
	}
	return samples
}

// intensity combines message length, word count, sequence progress and the
// winning lexical score, each capped, then clamps to [0,100].
func intensity(content string, index, total int, signal float64) float64 {
	length := math.Min(float64(len(content))/8, maxLengthShare)
	words := math.Min(1.5*float64(len(strings.Fields(content))), maxWordShare)

	progress := 0.0
	if total > 1 {
		progress = maxProgressShare * float64(index) / float64(total-1)
	}

	lexical := math.Min(4*signal, maxSignalShare)

	return Clamp(round1(length + words + progress + lexical))
}

// Clamp bounds a value to the 0-100 intensity scale.
func Clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// round1 rounds to one decimal. Deterministic rounding replaces the
// cosmetic jitter some scorers add to avoid visibly identical values.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
