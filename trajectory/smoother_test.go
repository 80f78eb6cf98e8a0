package trajectory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"signal-lab/domain"
)

func sample(idx int, ts int64, label domain.Label, intensity float64) domain.EmotionSample {
	return domain.EmotionSample{MessageIndex: idx, Timestamp: ts, Label: label, Intensity: intensity}
}

func TestSmooth_CollapsesLabelOutlier(t *testing.T) {
	req := require.New(t)

	// Samples ten seconds apart: a single negative dip between two
	// identical positive neighbors is treated as noise.
	in := []domain.EmotionSample{
		sample(0, 10_000, domain.Confident, 80),
		sample(1, 20_000, domain.Nervous, 20),
		sample(2, 30_000, domain.Confident, 80),
	}

	out := Smooth(in)
	req.Equal(domain.Confident, out[1].Label)
	req.Equal(80.0, out[1].Intensity, "mean of the neighbor intensities")

	// The input slice stays untouched.
	req.Equal(domain.Nervous, in[1].Label)
	req.Equal(20.0, in[1].Intensity)
}

func TestSmooth_IntensityOutlierOnly(t *testing.T) {
	req := require.New(t)

	in := []domain.EmotionSample{
		sample(0, 0, domain.Engaged, 60),
		sample(1, 10_000, domain.Engaged, 10),
		sample(2, 20_000, domain.Engaged, 70),
	}

	out := Smooth(in)
	req.Equal(domain.Engaged, out[1].Label)
	req.Equal(65.0, out[1].Intensity)
}

func TestSmooth_KeepsModerateVariation(t *testing.T) {
	req := require.New(t)

	in := []domain.EmotionSample{
		sample(0, 0, domain.Engaged, 60),
		sample(1, 10_000, domain.Engaged, 40),
		sample(2, 20_000, domain.Engaged, 55),
	}
	// 20 and 15 point gaps are within the 30 point tolerance.
	req.Equal(in, Smooth(in))
}

func TestSmooth_ShortSequencesPassThrough(t *testing.T) {
	req := require.New(t)

	req.Empty(Smooth(nil))

	two := []domain.EmotionSample{
		sample(0, 0, domain.Confident, 90),
		sample(1, 10_000, domain.Nervous, 10),
	}
	req.Equal(two, Smooth(two))
}

// A single pass reaches a fixed point: smoothing twice changes nothing.
func TestSmooth_Idempotent(t *testing.T) {
	req := require.New(t)

	inputs := [][]domain.EmotionSample{
		{
			sample(0, 0, domain.Confident, 80),
			sample(1, 10_000, domain.Nervous, 20),
			sample(2, 20_000, domain.Confident, 80),
		},
		{
			sample(0, 0, domain.Neutral, 50),
			sample(1, 10_000, domain.Uncertain, 90),
			sample(2, 20_000, domain.Neutral, 45),
			sample(3, 30_000, domain.Thoughtful, 50),
			sample(4, 40_000, domain.Neutral, 55),
		},
		{
			sample(0, 0, domain.Engaged, 0),
			sample(1, 10_000, domain.Engaged, 100),
			sample(2, 20_000, domain.Engaged, 0),
			sample(3, 30_000, domain.Engaged, 100),
			sample(4, 40_000, domain.Engaged, 0),
		},
	}

	for _, in := range inputs {
		once := Smooth(in)
		req.Equal(once, Smooth(once))
	}
}
