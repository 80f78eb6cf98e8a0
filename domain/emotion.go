// Package domain contains core concepts of the candidate analysis system.
// This file defines the closed emotion vocabulary and trajectory entities.
// Every component consumes this single table; no package keeps its own copy.
package domain

// Label is one entry of the closed emotion vocabulary.
type Label string

const (
	Enthusiastic  Label = "enthusiastic"
	Confident     Label = "confident"
	Engaged       Label = "engaged"
	Thoughtful    Label = "thoughtful"
	Neutral       Label = "neutral"
	Uncertain     Label = "uncertain"
	Nervous       Label = "nervous"
	Disinterested Label = "disinterested"
	Defensive     Label = "defensive"
	Evasive       Label = "evasive"
)

// CanonicalLabels fixes the tie-break ordering used when two labels
// score identically: the earlier entry wins.
var CanonicalLabels = []Label{
	Enthusiastic,
	Confident,
	Engaged,
	Thoughtful,
	Neutral,
	Uncertain,
	Nervous,
	Disinterested,
	Defensive,
	Evasive,
}

// Polarity groups labels into positive, neutral and negative families.
type Polarity string

const (
	Positive        Polarity = "positive"
	NeutralPolarity Polarity = "neutral"
	Negative        Polarity = "negative"
)

var labelPolarity = map[Label]Polarity{
	Enthusiastic:  Positive,
	Confident:     Positive,
	Engaged:       Positive,
	Thoughtful:    NeutralPolarity,
	Neutral:       NeutralPolarity,
	Uncertain:     Negative,
	Nervous:       Negative,
	Disinterested: Negative,
	Defensive:     Negative,
	Evasive:       Negative,
}

// PolarityOf maps a label to its family. Unknown labels are neutral.
func PolarityOf(l Label) Polarity {
	if p, ok := labelPolarity[l]; ok {
		return p
	}
	return NeutralPolarity
}

// EmotionSample is the per-message point of an emotional trajectory.
// Intensity is on a 0-100 scale. Samples are only rewritten during smoothing.
type EmotionSample struct {
	MessageIndex int     `json:"messageIndex"`
	Timestamp    int64   `json:"timestamp"`
	Label        Label   `json:"label"`
	Intensity    float64 `json:"intensity"`
}

// Shift is a detected transition between two adjacent trajectory samples.
type Shift struct {
	From      EmotionSample `json:"from"`
	To        EmotionSample `json:"to"`
	Type      Polarity      `json:"type"`
	Timestamp int64         `json:"timestamp"`
}

// ShiftReport groups the detected shifts with the overall significance verdict.
type ShiftReport struct {
	Shifts      []Shift `json:"shifts"`
	Significant bool    `json:"significant"`
}

// AggregateSentiment reduces a full session to four scalar metrics,
// an overall polarity and the smoothed trajectory. Language is the
// ISO 639-1 code detected on the candidate text; it annotates the
// result and never changes scoring.
type AggregateSentiment struct {
	Overall     Polarity        `json:"overall"`
	Confidence  float64         `json:"confidence"`
	Enthusiasm  float64         `json:"enthusiasm"`
	Nervousness float64         `json:"nervousness"`
	Engagement  float64         `json:"engagement"`
	Trajectory  []EmotionSample `json:"trajectory"`
	Language    string          `json:"language,omitempty"`
}
