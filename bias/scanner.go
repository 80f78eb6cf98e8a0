// Package bias scans text for potentially non-inclusive language.
// Detection is lexical and deterministic: per-category keyword tables
// matched with an Aho-Corasick automaton, one finding per category.
package bias

import (
	"fmt"
	"math"

	goahocorasick "github.com/anknown/ahocorasick"

	"signal-lab/domain"
	"signal-lab/lexicon"
)

// Context tags where the scanned text comes from. It changes the
// explanatory phrasing of the summary, never the detection logic.
type Context string

const (
	JobDescription      Context = "job-description"
	InterviewQuestion   Context = "interview-question"
	CandidateEvaluation Context = "candidate-evaluation"
)

// categoryTable is one detection family: a keyword list with a fixed
// severity and score weight.
type categoryTable struct {
	category domain.BiasCategory
	severity domain.Severity
	weight   float64
	keywords []string
	machine  *goahocorasick.Machine
}

// Per-category scan weights and the score caps selected by category mix.
const (
	genderWeight   = 30.0
	ageWeight      = 25.0
	culturalWeight = 25.0
	codedWeight    = 25.0

	highSeverityCap = 90.0
	defaultCap      = 80.0
)

// Scanner holds the compiled keyword tables. Build once, scan many.
type Scanner struct {
	tables []categoryTable
}

// NewScanner compiles the detection tables. Table order fixes the
// reporting order of findings.
func NewScanner() (*Scanner, error) {
	tables := []categoryTable{
		{
			category: domain.BiasGender,
			severity: domain.SeverityHigh,
			weight:   genderWeight,
			keywords: []string{
				"chairman", "salesman", "saleswoman", "manpower", "mankind",
				"he will be responsible", "his team", "waitress", "stewardess",
				"strong man", "career woman",
			},
		},
		{
			category: domain.BiasAge,
			severity: domain.SeverityMedium,
			weight:   ageWeight,
			keywords: []string{
				"young and energetic", "digital native", "recent graduates only",
				"under 30", "youthful team", "overqualified", "over-qualified",
			},
		},
		{
			category: domain.BiasCultural,
			severity: domain.SeverityMedium,
			weight:   culturalWeight,
			keywords: []string{
				"native english speaker", "like a family", "work hard play hard",
				"beer fridge", "no accent",
			},
		},
		{
			category: domain.BiasOther,
			severity: domain.SeverityLow,
			weight:   codedWeight,
			keywords: []string{
				"rockstar", "ninja", "guru", "wizard", "superhero",
				"dominant personality", "aggressive",
			},
		},
	}

	for i := range tables {
		patterns := make([][]rune, 0, len(tables[i].keywords))
		for _, kw := range tables[i].keywords {
			patterns = append(patterns, []rune(lexicon.Normalize(kw)))
		}
		machine := new(goahocorasick.Machine)
		if err := machine.Build(patterns); err != nil {
			return nil, err
		}
		tables[i].machine = machine
	}
	return &Scanner{tables: tables}, nil
}

// Scan reports at most one finding per category: the match appearing
// earliest in the text wins, which keeps the score formula stable while
// still flagging every affected category.
func (s *Scanner) Scan(text string, context Context) domain.BiasReport {
	normalized := lexicon.Normalize(text)

	findings := make([]domain.BiasFinding, 0, len(s.tables))
	score := 0.0
	scoreCap := defaultCap

	for _, table := range s.tables {
		matched, ok := firstMatch(table.machine, normalized)
		if !ok {
			continue
		}
		findings = append(findings, domain.BiasFinding{
			MatchedText: matched,
			Category:    table.category,
			Severity:    table.severity,
			Suggestions: suggestionsFor(matched),
		})
		score += table.weight
		if table.severity == domain.SeverityHigh {
			scoreCap = highSeverityCap
		}
	}

	score = math.Min(score, scoreCap)
	return domain.BiasReport{
		BiasScore:     score,
		FairnessScore: 100 - score,
		Findings:      findings,
		Summary:       summary(context, findings),
	}
}

// firstMatch returns the keyword whose occurrence starts earliest.
func firstMatch(machine *goahocorasick.Machine, normalized string) (string, bool) {
	if normalized == "" {
		return "", false
	}
	best := ""
	bestPos := -1
	for _, term := range machine.MultiPatternSearch([]rune(normalized), false) {
		if bestPos == -1 || term.Pos < bestPos {
			bestPos = term.Pos
			best = string(term.Word)
		}
	}
	return best, bestPos != -1
}

func summary(context Context, findings []domain.BiasFinding) string {
	subject := "the text"
	switch context {
	case JobDescription:
		subject = "the job description"
	case InterviewQuestion:
		subject = "the interview question"
	case CandidateEvaluation:
		subject = "the candidate evaluation"
	}

	if len(findings) == 0 {
		return fmt.Sprintf("No non-inclusive language detected in %s.", subject)
	}
	return fmt.Sprintf(
		"Found %d potentially non-inclusive term(s) in %s; consider the suggested alternatives.",
		len(findings), subject,
	)
}
