//go:generate go run go.uber.org/mock/mockgen -source=summarizer.go -destination=../mocks/mock_result_cache.go -package=mocks

// Package sentiment reduces a full interview session to four scalar
// metrics, an overall polarity and the smoothed emotional trajectory.
// All reductions are deterministic; the cache is an optional collaborator.
package sentiment

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"math"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"

	"signal-lab/domain"
	"signal-lab/lexicon"
	"signal-lab/trajectory"
)

// ResultCache avoids recomputation for identical sessions. Implementations
// must key strictly on SessionKey so a hit can never change the result.
type ResultCache interface {
	Get(key string) (domain.AggregateSentiment, bool)
	Set(key string, value domain.AggregateSentiment)
}

// Summarizer owns the sentiment lexicon. A nil cache disables caching.
type Summarizer struct {
	scorer *lexicon.Scorer
	cache  ResultCache
	log    *slog.Logger
}

// NewSummarizer builds the sentiment scorer once; construction is the only
// step that can fail (invalid lexicon), analysis itself is total.
func NewSummarizer(cache ResultCache, log *slog.Logger) (*Summarizer, error) {
	scorer, err := lexicon.NewScorer(lexicon.SentimentEntries())
	if err != nil {
		return nil, err
	}
	return &Summarizer{scorer: scorer, cache: cache, log: log}, nil
}

// Scorer exposes the sentiment lexicon for callers composing their own
// per-message analysis.
func (s *Summarizer) Scorer() *lexicon.Scorer {
	return s.scorer
}

// Summarize analyzes all candidate messages of one session.
// Zero candidate messages yield the documented neutral default:
// every metric at 50, overall neutral, empty trajectory.
func (s *Summarizer) Summarize(messages []domain.Message) domain.AggregateSentiment {
	userMessages := domain.UserMessages(messages)
	if len(userMessages) == 0 {
		return neutralDefault()
	}

	key := SessionKey(userMessages)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.log.Debug("Sentiment served from cache", "key", key)
			return cached
		}
	}

	totals := make(map[domain.Label]float64)
	for _, m := range userMessages {
		for label, score := range s.scorer.Score(m.Content) {
			totals[label] += score
		}
	}

	// Longer, wordier answers feed the engaged channel with capped bonuses.
	avgLength := lo.SumBy(userMessages, func(m domain.Message) float64 {
		return float64(len(m.Content))
	}) / float64(len(userMessages))
	avgWords := lo.SumBy(userMessages, func(m domain.Message) float64 {
		return float64(len(strings.Fields(m.Content)))
	}) / float64(len(userMessages))
	totals[domain.Engaged] += math.Min(avgLength/40, 4) + math.Min(avgWords/8, 3)

	result := reduce(totals)
	result.Trajectory = trajectory.Smooth(trajectory.Build(s.scorer, userMessages))
	result.Language = detectLanguage(userMessages)

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return result
}

// reduce pools the per-label totals and derives the overall polarity and
// the four metrics. The overall decision uses bucket ratios, not raw sums,
// so longer interviews do not mechanically read as more positive.
func reduce(totals map[domain.Label]float64) domain.AggregateSentiment {
	positive := totals[domain.Enthusiastic] + totals[domain.Confident] + totals[domain.Engaged]
	negative := totals[domain.Uncertain] + totals[domain.Nervous] + totals[domain.Disinterested]
	neutral := totals[domain.Thoughtful]

	sum := positive + negative + neutral
	overall := domain.NeutralPolarity
	if sum > 0 {
		switch {
		case positive/sum > 0.6:
			overall = domain.Positive
		case negative/sum > 0.6:
			overall = domain.Negative
		}
	}

	// Label shares of the pooled total; all zero on a signal-free session.
	share := func(l domain.Label) float64 {
		if sum == 0 {
			return 0
		}
		return totals[l] / sum
	}

	return domain.AggregateSentiment{
		Overall: overall,
		Confidence: metric(50 +
			80*share(domain.Confident) -
			60*share(domain.Uncertain) -
			40*share(domain.Nervous)),
		Enthusiasm: metric(50 +
			80*share(domain.Enthusiastic) -
			60*share(domain.Disinterested)),
		Nervousness: metric(50 +
			80*share(domain.Nervous) -
			60*share(domain.Confident)),
		Engagement: metric(50 +
			60*share(domain.Engaged) +
			30*share(domain.Enthusiastic) -
			60*share(domain.Disinterested)),
	}
}

func metric(v float64) float64 {
	return trajectory.Clamp(math.Round(v*10) / 10)
}

func neutralDefault() domain.AggregateSentiment {
	return domain.AggregateSentiment{
		Overall:     domain.NeutralPolarity,
		Confidence:  50,
		Enthusiasm:  50,
		Nervousness: 50,
		Engagement:  50,
		Trajectory:  []domain.EmotionSample{},
	}
}

// detectLanguage annotates the result with the ISO 639-1 code of the
// candidate text. The lexicons are English; a different code tells the
// caller to treat the lexical metrics with care. Detection never alters
// scoring.
func detectLanguage(messages []domain.Message) string {
	joined := strings.Join(lo.Map(messages, func(m domain.Message, _ int) string {
		return m.Content
	}), " ")
	if strings.TrimSpace(joined) == "" {
		return ""
	}
	return whatlanggo.Detect(joined).Lang.Iso6391()
}

// SessionKey hashes message identities and content into the cache key.
// Same ids and same text always map to the same key.
func SessionKey(messages []domain.Message) string {
	h := sha256.New()
	for _, m := range messages {
		h.Write([]byte(m.ID.String()))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
