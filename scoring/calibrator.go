// Package scoring calibrates raw category scores into a bounded,
// anti-inflation-corrected assessment and derives the qualification
// decision. Every function is pure; identical input gives identical output.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"signal-lab/domain"
)

const (
	// Category scores are clamped to this band after compression.
	categoryFloor   = 30.0
	categoryCeiling = 95.0

	// Qualification thresholds.
	PrimaryThreshold = 65.0
	MinimumThreshold = 50.0
	OverallThreshold = 65.0
)

// PrimaryCategories must individually clear PrimaryThreshold for a
// candidate to qualify.
var PrimaryCategories = []domain.Category{
	domain.DomainKnowledge,
	domain.ExperienceRelevance,
}

// DefaultWeights is the standard weighting of the assessment dimensions.
// The weights of the categories present are renormalized at use.
var DefaultWeights = map[domain.Category]float64{
	domain.DomainKnowledge:       0.30,
	domain.ExperienceRelevance:   0.25,
	domain.Communication:         0.15,
	domain.ResponseQuality:       0.15,
	domain.CulturalFit:           0.10,
	domain.EmotionalIntelligence: 0.05,
}

// Compress applies the three-tier anti-inflation transform. It is
// monotone nondecreasing and compresses only the upper tail, countering
// systematic inflation from upstream scorers.
func Compress(s float64) float64 {
	switch {
	case s > 85:
		return s - (s-85)*0.7 - 2
	case s > 75:
		return s - (s-75)*0.3
	case s > 65:
		return s - (s-65)*0.15
	default:
		return s
	}
}

// Calibrate compresses every raw score, clamps categories to [30,95],
// recomputes the weighted overall, compresses it the same way and embeds
// the qualification decision. Raw scores outside [0,100] are clamped
// first, never propagated; categories without a configured weight fall
// back to an equal share.
func Calibrate(raw []domain.CategoryScore, weights map[domain.Category]float64) domain.CalibratedAssessment {
	if weights == nil {
		weights = DefaultWeights
	}

	calibrated := make([]domain.CategoryScore, 0, len(raw))
	weightedSum := 0.0
	weightTotal := 0.0

	for _, score := range raw {
		value := round1(clampTo(Compress(clampTo(score.Score, 0, 100)), categoryFloor, categoryCeiling))
		calibrated = append(calibrated, domain.CategoryScore{
			Category:    score.Category,
			Score:       value,
			Explanation: score.Explanation,
		})

		weight, ok := weights[score.Category]
		if !ok || weight <= 0 {
			weight = 1.0 / float64(len(raw))
		}
		weightedSum += weight * value
		weightTotal += weight
	}

	overall := 0.0
	if weightTotal > 0 {
		// The overall gets the same compression but keeps its natural
		// range, without the category floor.
		overall = round1(clampTo(Compress(weightedSum/weightTotal), 0, 100))
	}

	assessment := domain.CalibratedAssessment{
		Scores:  calibrated,
		Overall: overall,
	}
	assessment.Qualified, assessment.Reasoning = decide(assessment)
	return assessment
}

// decide applies the threshold rules. On failure the reasoning enumerates
// the failed conditions in a fixed order: primary requirement, minimum
// threshold, overall threshold.
func decide(a domain.CalibratedAssessment) (bool, string) {
	var failedPrimary, failedMinimum []domain.Category

	for _, primary := range PrimaryCategories {
		if score, ok := a.Score(primary); ok && score < PrimaryThreshold {
			failedPrimary = append(failedPrimary, primary)
		}
	}
	for _, s := range a.Scores {
		if s.Score < MinimumThreshold {
			failedMinimum = append(failedMinimum, s.Category)
		}
	}
	failedOverall := a.Overall < OverallThreshold

	if len(failedPrimary) == 0 && len(failedMinimum) == 0 && !failedOverall {
		return true, fmt.Sprintf(
			"qualified: all primary categories reach %.0f, every category reaches %.0f and the overall score %.1f reaches %.0f",
			PrimaryThreshold, MinimumThreshold, a.Overall, OverallThreshold,
		)
	}

	reasons := make([]string, 0, 3)
	if len(failedPrimary) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"primary requirement not met: %s below %.0f",
			joinCategories(failedPrimary), PrimaryThreshold,
		))
	}
	if len(failedMinimum) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"minimum threshold not met: %s below %.0f",
			joinCategories(failedMinimum), MinimumThreshold,
		))
	}
	if failedOverall {
		reasons = append(reasons, fmt.Sprintf(
			"overall score %.1f below %.0f", a.Overall, OverallThreshold,
		))
	}
	return false, "not qualified: " + strings.Join(reasons, " and ")
}

func joinCategories(categories []domain.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func clampTo(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
