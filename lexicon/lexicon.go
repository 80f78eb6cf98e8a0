// Package lexicon converts one text message into weighted per-label
// emotion scores using literal phrase and regex pattern matching.
// Scoring is deterministic: identical text always yields identical scores.
package lexicon

import (
	"regexp"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"signal-lab/domain"
	"signal-lab/errors"
)

// Entry configures one label channel of a lexicon.
type Entry struct {
	Label    domain.Label
	Weight   float64
	Phrases  []string
	Patterns []string
}

type phraseChannel struct {
	label  domain.Label
	weight float64
}

type patternChannel struct {
	label  domain.Label
	weight float64
	re     *regexp.Regexp
}

// Scorer matches all configured phrases in a single automaton pass
// and all regex patterns with precompiled expressions.
type Scorer struct {
	machine  *goahocorasick.Machine
	phrases  map[string]phraseChannel
	patterns []patternChannel
}

// NewScorer compiles the entries into a ready-to-use scorer.
func NewScorer(entries []Entry) (*Scorer, error) {
	if len(entries) == 0 {
		return nil, errors.ErrEmptyLexicon
	}

	channels := make(map[string]phraseChannel)
	patterns := make([]patternChannel, 0)
	words := make([][]rune, 0)

	for _, e := range entries {
		for _, phrase := range e.Phrases {
			normalized := Normalize(phrase)
			if normalized == "" {
				continue
			}
			if _, exists := channels[normalized]; exists {
				continue
			}
			channels[normalized] = phraseChannel{label: e.Label, weight: e.Weight}
			words = append(words, []rune(normalized))
		}
		for _, pattern := range e.Patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, patternChannel{label: e.Label, weight: e.Weight, re: re})
		}
	}

	machine := new(goahocorasick.Machine)
	if len(words) > 0 {
		if err := machine.Build(words); err != nil {
			return nil, err
		}
	}

	return &Scorer{machine: machine, phrases: channels, patterns: patterns}, nil
}

// Score returns the weighted score per label for one message.
// Labels without any match are absent from the result.
func (s *Scorer) Score(text string) map[domain.Label]float64 {
	scores := make(map[domain.Label]float64)
	normalized := Normalize(text)
	if normalized == "" {
		return scores
	}

	if len(s.phrases) > 0 {
		for _, term := range s.machine.MultiPatternSearch([]rune(normalized), false) {
			channel, ok := s.phrases[string(term.Word)]
			if !ok {
				continue
			}
			scores[channel.label] += channel.weight
		}
	}

	for _, p := range s.patterns {
		if n := len(p.re.FindAllStringIndex(normalized, -1)); n > 0 {
			scores[p.label] += float64(n) * p.weight
		}
	}

	return scores
}

// Dominant picks the highest-scoring label. Ties are broken by the
// canonical label ordering, so results never depend on map iteration.
func Dominant(scores map[domain.Label]float64) (domain.Label, float64) {
	best := domain.Neutral
	bestScore := 0.0
	for _, label := range domain.CanonicalLabels {
		if s, ok := scores[label]; ok && s > bestScore {
			best = label
			bestScore = s
		}
	}
	return best, bestScore
}

// Normalize lowercases the text and collapses whitespace runs so
// phrase matching is stable across formatting. Unlike the leet-speak
// stripping used for moderation dictionaries, word boundaries are kept:
// the emotion phrases rely on them.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
