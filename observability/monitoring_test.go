package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStats_CountersAccumulate(t *testing.T) {
	req := require.New(t)
	stats := NewRunStats()

	stats.IncrSessionsAnalyzed()
	stats.IncrCacheHit()
	stats.IncrCacheMiss()
	stats.IncrCacheMiss()
	stats.AddShiftsDetected(3)
	stats.AddBiasFindings(2)

	snapshot := stats.Latest()
	req.Equal(uint64(1), snapshot.SessionsAnalyzed)
	req.Equal(uint64(1), snapshot.CacheHits)
	req.Equal(uint64(2), snapshot.CacheMisses)
	req.Equal(uint64(3), snapshot.ShiftsDetected)
	req.Equal(uint64(2), snapshot.BiasFindings)
}

func TestRunStats_SnapshotIsPointInTime(t *testing.T) {
	req := require.New(t)
	stats := NewRunStats()

	stats.IncrSessionsAnalyzed()
	before := stats.Latest()
	stats.IncrSessionsAnalyzed()

	req.Equal(uint64(1), before.SessionsAnalyzed)
	req.Equal(uint64(2), stats.Latest().SessionsAnalyzed)
}

func TestRunStats_ConcurrentIncrements(t *testing.T) {
	req := require.New(t)
	stats := NewRunStats()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.IncrSessionsAnalyzed()
			stats.IncrCacheHit()
			stats.AddShiftsDetected(2)
		}()
	}
	wg.Wait()

	snapshot := stats.Latest()
	req.Equal(uint64(50), snapshot.SessionsAnalyzed)
	req.Equal(uint64(50), snapshot.CacheHits)
	req.Equal(uint64(100), snapshot.ShiftsDetected)
}
