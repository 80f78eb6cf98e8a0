package storage

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"signal-lab/domain"
)

func newCache(t *testing.T) *ResultCache {
	t.Helper()
	db, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewResultCache(db, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestResultCache_RoundTrip(t *testing.T) {
	req := require.New(t)
	cache := newCache(t)

	stored := domain.AggregateSentiment{
		Overall:     domain.Positive,
		Confidence:  72.5,
		Enthusiasm:  80,
		Nervousness: 21.5,
		Engagement:  66,
		Trajectory: []domain.EmotionSample{
			{MessageIndex: 0, Timestamp: 1_000, Label: domain.Enthusiastic, Intensity: 74},
		},
		Language: "en",
	}

	cache.Set("session-a", stored)
	got, ok := cache.Get("session-a")
	req.True(ok)
	req.Equal(stored, got)
}

func TestResultCache_Miss(t *testing.T) {
	req := require.New(t)
	cache := newCache(t)

	_, ok := cache.Get("unknown")
	req.False(ok)
}

func TestResultCache_OverwriteKeepsLatest(t *testing.T) {
	req := require.New(t)
	cache := newCache(t)

	cache.Set("session-b", domain.AggregateSentiment{Overall: domain.Negative})
	cache.Set("session-b", domain.AggregateSentiment{Overall: domain.Positive})

	got, ok := cache.Get("session-b")
	req.True(ok)
	req.Equal(domain.Positive, got.Overall)
}
