// Package domain contains core concepts of the candidate analysis system.
// This file defines the assessment categories and calibration results.
package domain

// Category is one of the fixed assessment dimensions.
type Category string

const (
	DomainKnowledge       Category = "domain_knowledge"
	Communication         Category = "communication"
	ResponseQuality       Category = "response_quality"
	ExperienceRelevance   Category = "experience_relevance"
	CulturalFit           Category = "cultural_fit"
	EmotionalIntelligence Category = "emotional_intelligence"
)

// Categories fixes the reporting order of the assessment dimensions.
var Categories = []Category{
	DomainKnowledge,
	Communication,
	ResponseQuality,
	ExperienceRelevance,
	CulturalFit,
	EmotionalIntelligence,
}

// CategoryScore carries one raw or calibrated score on a 0-100 scale.
type CategoryScore struct {
	Category    Category `json:"category"`
	Score       float64  `json:"score"`
	Explanation string   `json:"explanation,omitempty"`
}

// CalibratedAssessment is the anti-inflation corrected result.
// Category scores are clamped to [30,95] after compression.
type CalibratedAssessment struct {
	Scores    []CategoryScore `json:"scores"`
	Overall   float64         `json:"overall"`
	Qualified bool            `json:"qualified"`
	Reasoning string          `json:"reasoning"`
}

// Score returns the calibrated score for one category, false if absent.
func (a CalibratedAssessment) Score(c Category) (float64, bool) {
	for _, s := range a.Scores {
		if s.Category == c {
			return s.Score, true
		}
	}
	return 0, false
}
