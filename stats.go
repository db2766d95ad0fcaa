package msgfmt

import "sync"

type formatterStats struct {
	mu                sync.Mutex
	truncatedInputs   uint64
	depthLimitAborts  uint64
	scanIterationCaps uint64
	icuFallbacks      uint64
	ruleCacheHits     uint64
	ruleCacheMisses   uint64
	ruleFallbacks     uint64
}

func (s *formatterStats) incrementTruncatedInputs() {
	s.mu.Lock()
	s.truncatedInputs++
	s.mu.Unlock()
}

func (s *formatterStats) incrementDepthLimitAborts() {
	s.mu.Lock()
	s.depthLimitAborts++
	s.mu.Unlock()
}

func (s *formatterStats) incrementScanIterationCaps() {
	s.mu.Lock()
	s.scanIterationCaps++
	s.mu.Unlock()
}

func (s *formatterStats) incrementICUFallbacks() {
	s.mu.Lock()
	s.icuFallbacks++
	s.mu.Unlock()
}

func (s *formatterStats) incrementRuleCacheHits() {
	s.mu.Lock()
	s.ruleCacheHits++
	s.mu.Unlock()
}

func (s *formatterStats) incrementRuleCacheMisses() {
	s.mu.Lock()
	s.ruleCacheMisses++
	s.mu.Unlock()
}

func (s *formatterStats) incrementRuleFallbacks() {
	s.mu.Lock()
	s.ruleFallbacks++
	s.mu.Unlock()
}

func (s *formatterStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.truncatedInputs = 0
	s.depthLimitAborts = 0
	s.scanIterationCaps = 0
	s.icuFallbacks = 0
	s.ruleCacheHits = 0
	s.ruleCacheMisses = 0
	s.ruleFallbacks = 0
}

func (s *formatterStats) snapshot() FormatterStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FormatterStats{
		TruncatedInputs:   s.truncatedInputs,
		DepthLimitAborts:  s.depthLimitAborts,
		ScanIterationCaps: s.scanIterationCaps,
		ICUFallbacks:      s.icuFallbacks,
		RuleCacheHits:     s.ruleCacheHits,
		RuleCacheMisses:   s.ruleCacheMisses,
		RuleFallbacks:     s.ruleFallbacks,
	}
}

// FormatterStats is a point-in-time copy of a formatter's counters.
type FormatterStats struct {
	TruncatedInputs   uint64
	DepthLimitAborts  uint64
	ScanIterationCaps uint64
	ICUFallbacks      uint64
	RuleCacheHits     uint64
	RuleCacheMisses   uint64
	RuleFallbacks     uint64
}

// SnapshotStats returns a copy of the formatter's counters.
func (f *Formatter) SnapshotStats() FormatterStats {
	return f.stats.snapshot()
}

// ResetStats zeroes the formatter's counters.
func (f *Formatter) ResetStats() {
	f.stats.reset()
}
