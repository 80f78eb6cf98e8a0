package sentiment

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"signal-lab/domain"
)

func newSummarizer(t *testing.T, cache ResultCache) *Summarizer {
	t.Helper()
	s, err := NewSummarizer(cache, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return s
}

func userMessage(content string, ts int64) domain.Message {
	return domain.Message{ID: uuid.New(), Role: domain.RoleUser, Content: content, Timestamp: ts}
}

func TestSummarize_EmptySessionNeutralDefault(t *testing.T) {
	req := require.New(t)
	s := newSummarizer(t, nil)

	tests := []struct {
		name     string
		messages []domain.Message
	}{
		{"No messages at all", nil},
		{"Only interviewer messages", []domain.Message{
			{ID: uuid.New(), Role: domain.RoleAssistant, Content: "Welcome!", Timestamp: 0},
			{ID: uuid.New(), Role: domain.RoleSystem, Content: "session opened", Timestamp: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Summarize(tt.messages)
			req.Equal(domain.NeutralPolarity, got.Overall)
			req.Equal(50.0, got.Confidence)
			req.Equal(50.0, got.Enthusiasm)
			req.Equal(50.0, got.Nervousness)
			req.Equal(50.0, got.Engagement)
			req.Empty(got.Trajectory)
		})
	}
}

func TestSummarize_PositiveSession(t *testing.T) {
	req := require.New(t)
	s := newSummarizer(t, nil)

	messages := []domain.Message{
		userMessage("I'm excited about this role, it sounds amazing and I really enjoy the domain.", 1_000),
		userMessage("I definitely know how to run such a migration, I led one successfully last year.", 60_000),
		userMessage("Great question! I'm confident the approach scales, absolutely.", 120_000),
	}

	got := s.Summarize(messages)
	req.Equal(domain.Positive, got.Overall)
	req.Greater(got.Confidence, 50.0)
	req.Greater(got.Enthusiasm, 50.0)
	req.Less(got.Nervousness, 50.0)
	req.Greater(got.Engagement, 50.0)
	req.Len(got.Trajectory, 3)
	req.Equal("en", got.Language)
}

func TestSummarize_NegativeSession(t *testing.T) {
	req := require.New(t)
	s := newSummarizer(t, nil)

	messages := []domain.Message{
		userMessage("Um, sorry, I'm not sure. Maybe. I don't know.", 1_000),
		userMessage("I guess so. Sorry, I'm nervous, hopefully it's not wrong. Not sure at all.", 60_000),
	}

	got := s.Summarize(messages)
	req.Equal(domain.Negative, got.Overall)
	req.Less(got.Confidence, 50.0)
	req.Greater(got.Nervousness, 50.0)
}

// The overall verdict is driven by bucket ratios: doubling the session
// length with the same mix must not flip a neutral verdict to positive.
func TestSummarize_RatioNotVolume(t *testing.T) {
	req := require.New(t)
	s := newSummarizer(t, nil)

	mixed := []domain.Message{
		userMessage("I'm excited, amazing.", 1_000),
		userMessage("I guess so, possibly.", 60_000),
	}
	short := s.Summarize(mixed)

	long := append(append([]domain.Message{}, mixed...),
		userMessage("I'm excited, amazing.", 120_000),
		userMessage("I guess so, possibly.", 180_000),
	)
	doubled := s.Summarize(long)

	req.Equal(domain.NeutralPolarity, short.Overall)
	req.Equal(domain.NeutralPolarity, doubled.Overall)
}

func TestSummarize_Deterministic(t *testing.T) {
	req := require.New(t)
	s := newSummarizer(t, nil)

	messages := []domain.Message{
		userMessage("I'm confident, maybe even excited.", 1_000),
		userMessage("Let me think, it depends on the constraints.", 60_000),
	}

	first := s.Summarize(messages)
	for i := 0; i < 20; i++ {
		req.Equal(first, s.Summarize(messages))
	}
}

type mapCache struct {
	values map[string]domain.AggregateSentiment
	hits   int
	sets   int
}

func (c *mapCache) Get(key string) (domain.AggregateSentiment, bool) {
	v, ok := c.values[key]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *mapCache) Set(key string, value domain.AggregateSentiment) {
	c.sets++
	c.values[key] = value
}

func TestSummarize_CacheRoundTrip(t *testing.T) {
	req := require.New(t)
	cache := &mapCache{values: make(map[string]domain.AggregateSentiment)}
	s := newSummarizer(t, cache)

	messages := []domain.Message{
		userMessage("I'm excited about this role.", 1_000),
	}

	first := s.Summarize(messages)
	req.Equal(1, cache.sets)
	second := s.Summarize(messages)
	req.Equal(1, cache.hits)
	req.Equal(first, second)
}

func TestSessionKey(t *testing.T) {
	req := require.New(t)

	a := userMessage("hello", 0)
	b := userMessage("hello", 0)

	req.Equal(SessionKey([]domain.Message{a}), SessionKey([]domain.Message{a}))
	// Same text, different id: different sessions, different keys.
	req.NotEqual(SessionKey([]domain.Message{a}), SessionKey([]domain.Message{b}))
}
