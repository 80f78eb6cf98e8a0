// Package domain contains core concepts of the candidate analysis system.
// This file defines fairness findings produced by the bias scanner.
package domain

// BiasCategory classifies a non-inclusive language finding.
type BiasCategory string

const (
	BiasGender   BiasCategory = "gender"
	BiasAge      BiasCategory = "age"
	BiasCultural BiasCategory = "cultural"
	BiasRacial   BiasCategory = "racial"
	BiasOther    BiasCategory = "other"
)

// Severity grades how strongly a finding should be surfaced.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// BiasFinding is a single detected instance of potentially
// non-inclusive language with suggested alternatives.
type BiasFinding struct {
	MatchedText string       `json:"matchedText"`
	Category    BiasCategory `json:"category"`
	Severity    Severity     `json:"severity"`
	Suggestions []string     `json:"suggestions"`
}

// BiasReport is the fairness result for one scanned text.
// BiasScore is 0-100, lower is better; FairnessScore is its complement.
type BiasReport struct {
	BiasScore     float64       `json:"biasScore"`
	FairnessScore float64       `json:"fairnessScore"`
	Findings      []BiasFinding `json:"findings"`
	Summary       string        `json:"summary"`
}
