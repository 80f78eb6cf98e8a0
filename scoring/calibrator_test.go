package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"signal-lab/domain"
)

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func rawScores(values map[domain.Category]float64) []domain.CategoryScore {
	out := make([]domain.CategoryScore, 0, len(values))
	for _, c := range domain.Categories {
		if v, ok := values[c]; ok {
			out = append(out, domain.CategoryScore{Category: c, Score: v})
		}
	}
	return out
}

func TestCompress_Tiers(t *testing.T) {
	req := require.New(t)

	req.Equal(50.0, Compress(50))
	req.Equal(65.0, Compress(65))
	// 70 -> 70 - 5*0.15
	req.InDelta(69.25, Compress(70), 0.001)
	// 80 -> 80 - 5*0.3
	req.InDelta(78.5, Compress(80), 0.001)
	// 90 -> 90 - 5*0.7 - 2
	req.InDelta(84.5, Compress(90), 0.001)
	// 100 -> 100 - 15*0.7 - 2
	req.InDelta(87.5, Compress(100), 0.001)
}

func TestCompress_MonotoneNondecreasing(t *testing.T) {
	req := require.New(t)

	previous := Compress(0)
	for s := 0.5; s <= 100; s += 0.5 {
		current := Compress(s)
		req.GreaterOrEqual(current, previous, "compression must never reorder scores (at %.1f)", s)
		previous = current
	}
}

func TestCalibrate_BoundsAndMalformedInput(t *testing.T) {
	req := require.New(t)

	raw := rawScores(map[domain.Category]float64{
		domain.DomainKnowledge:     140, // out of range, clamped to 100
		domain.Communication:       -20, // out of range, clamped to 0
		domain.ResponseQuality:     55.5,
		domain.ExperienceRelevance: 99,
	})

	got := Calibrate(raw, nil)
	for _, s := range got.Scores {
		req.GreaterOrEqual(s.Score, 30.0, "category %s", s.Category)
		req.LessOrEqual(s.Score, 95.0, "category %s", s.Category)
	}
	req.GreaterOrEqual(got.Overall, 0.0)
	req.LessOrEqual(got.Overall, 100.0)
}

func TestCalibrate_CompressesInflatedScores(t *testing.T) {
	req := require.New(t)

	raw := rawScores(map[domain.Category]float64{
		domain.DomainKnowledge:     90,
		domain.ExperienceRelevance: 90,
		domain.Communication:       90,
		domain.ResponseQuality:     90,
		domain.CulturalFit:         90,
	})
	weights := map[domain.Category]float64{
		domain.DomainKnowledge:     0.2,
		domain.ExperienceRelevance: 0.2,
		domain.Communication:       0.2,
		domain.ResponseQuality:     0.2,
		domain.CulturalFit:         0.2,
	}

	got := Calibrate(raw, weights)

	// Straight 90s must land materially below 90 after compression.
	req.Less(got.Overall, 86.0)
	for _, s := range got.Scores {
		req.InDelta(84.5, s.Score, 0.001)
	}

	// Compression alone must not disqualify a strong candidate.
	req.True(got.Qualified)
	req.Contains(got.Reasoning, "qualified")
}

func TestCalibrate_PrimaryCategoryFailure(t *testing.T) {
	req := require.New(t)

	raw := rawScores(map[domain.Category]float64{
		domain.DomainKnowledge:     40,
		domain.ExperienceRelevance: 90,
		domain.Communication:       90,
		domain.ResponseQuality:     90,
		domain.CulturalFit:         90,
	})

	got := Calibrate(raw, nil)
	req.False(got.Qualified)
	req.Contains(got.Reasoning, "primary requirement not met")
	req.Contains(got.Reasoning, string(domain.DomainKnowledge))
}

func TestCalibrate_ReasonOrdering(t *testing.T) {
	req := require.New(t)

	raw := rawScores(map[domain.Category]float64{
		domain.DomainKnowledge:     40,
		domain.ExperienceRelevance: 45,
		domain.Communication:       45,
	})

	got := Calibrate(raw, nil)
	req.False(got.Qualified)

	primary := "primary requirement not met"
	minimum := "minimum threshold not met"
	overall := "overall score"
	req.Contains(got.Reasoning, primary)
	req.Contains(got.Reasoning, minimum)
	req.Contains(got.Reasoning, overall)
	req.Less(indexOf(got.Reasoning, primary), indexOf(got.Reasoning, minimum))
	req.Less(indexOf(got.Reasoning, minimum), indexOf(got.Reasoning, overall))
	req.Contains(got.Reasoning, " and ")
}

func TestCalibrate_MissingWeightFallsBackToEqualShare(t *testing.T) {
	req := require.New(t)

	raw := rawScores(map[domain.Category]float64{
		domain.DomainKnowledge: 80,
		domain.Communication:   60,
	})

	// Explicit weights for one category only; the other gets 1/len(raw).
	got := Calibrate(raw, map[domain.Category]float64{domain.DomainKnowledge: 0.5})
	req.Greater(got.Overall, 0.0)
}

func TestCalibrate_NoScores(t *testing.T) {
	req := require.New(t)

	got := Calibrate(nil, nil)
	req.Empty(got.Scores)
	req.Zero(got.Overall)
	req.False(got.Qualified)
}

func TestCalibrate_Deterministic(t *testing.T) {
	req := require.New(t)

	raw := rawScores(map[domain.Category]float64{
		domain.DomainKnowledge:     87.3,
		domain.ExperienceRelevance: 72.9,
		domain.Communication:       66.1,
	})

	first := Calibrate(raw, nil)
	for i := 0; i < 20; i++ {
		req.Equal(first, Calibrate(raw, nil))
	}
}
