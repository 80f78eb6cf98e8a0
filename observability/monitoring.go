// Package observability tracks counters for the analysis pipeline.
// Counters are atomic so concurrent sessions can report freely.
package observability

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/shirou/gopsutil/process"
)

// Snapshot is a point-in-time view of the pipeline counters plus
// process self-stats for debug output.
type Snapshot struct {
	SessionsAnalyzed uint64  `json:"sessions_analyzed"`
	CacheHits        uint64  `json:"cache_hits"`
	CacheMisses      uint64  `json:"cache_misses"`
	ShiftsDetected   uint64  `json:"shifts_detected"`
	BiasFindings     uint64  `json:"bias_findings"`
	AllocMemMb       uint64  `json:"alloc_mem_mb"`
	NumGC            uint32  `json:"num_gc"`
	RssMb            uint64  `json:"rss_mb"`
	CPUPercent       float64 `json:"cpu_percent"`
}

// RunStats aggregates pipeline counters across sessions.
type RunStats struct {
	sessionsAnalyzed uint64
	cacheHits        uint64
	cacheMisses      uint64
	shiftsDetected   uint64
	biasFindings     uint64
}

func NewRunStats() *RunStats {
	return &RunStats{}
}

func (s *RunStats) IncrSessionsAnalyzed() {
	atomic.AddUint64(&s.sessionsAnalyzed, 1)
}

func (s *RunStats) IncrCacheHit() {
	atomic.AddUint64(&s.cacheHits, 1)
}

func (s *RunStats) IncrCacheMiss() {
	atomic.AddUint64(&s.cacheMisses, 1)
}

func (s *RunStats) AddShiftsDetected(n uint64) {
	atomic.AddUint64(&s.shiftsDetected, n)
}

func (s *RunStats) AddBiasFindings(n uint64) {
	atomic.AddUint64(&s.biasFindings, n)
}

// Latest collects the counters together with Go runtime and process
// self-stats. Self-stat failures zero the fields rather than failing
// the snapshot; monitoring must never break an analysis run.
func (s *RunStats) Latest() Snapshot {
	snapshot := Snapshot{
		SessionsAnalyzed: atomic.LoadUint64(&s.sessionsAnalyzed),
		CacheHits:        atomic.LoadUint64(&s.cacheHits),
		CacheMisses:      atomic.LoadUint64(&s.cacheMisses),
		ShiftsDetected:   atomic.LoadUint64(&s.shiftsDetected),
		BiasFindings:     atomic.LoadUint64(&s.biasFindings),
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	snapshot.AllocMemMb = m.Alloc / 1024 / 1024
	snapshot.NumGC = m.NumGC

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil {
			snapshot.RssMb = info.RSS / 1024 / 1024
		}
		if cpu, err := p.CPUPercent(); err == nil {
			snapshot.CPUPercent = cpu
		}
	}
	return snapshot
}
