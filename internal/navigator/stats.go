package navigator

import (
	"math"
	"slices"
	"time"
)

const defaultMaxSamples = 256

// StatsSnapshot is a point-in-time aggregate of a session.
type StatsSnapshot struct {
	Inputs   int
	Outcomes map[Outcome]int

	Loads   int
	LoadMin time.Duration
	LoadMax time.Duration
	LoadAvg time.Duration
	LoadP50 time.Duration
	LoadP95 time.Duration
}

// Stats counts handled inputs and keeps the most recent load durations.
type Stats struct {
	inputs     int
	outcomes   map[Outcome]int
	loads      []time.Duration
	maxSamples int
}

func NewStats(maxSamples int) *Stats {
	if maxSamples <= 0 {
		maxSamples = defaultMaxSamples
	}
	return &Stats{
		outcomes:   make(map[Outcome]int),
		loads:      make([]time.Duration, 0, 16),
		maxSamples: maxSamples,
	}
}

func (s *Stats) RecordOutcome(o Outcome) {
	s.inputs++
	s.outcomes[o]++
}

func (s *Stats) RecordLoad(d time.Duration) {
	if d < 0 {
		d = 0
	}
	if len(s.loads) == s.maxSamples {
		s.loads = slices.Delete(s.loads, 0, 1)
	}
	s.loads = append(s.loads, d)
}

func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Inputs:   s.inputs,
		Outcomes: make(map[Outcome]int, len(s.outcomes)),
	}
	for k, v := range s.outcomes {
		snap.Outcomes[k] = v
	}
	if len(s.loads) == 0 {
		return snap
	}

	values := slices.Clone(s.loads)
	slices.Sort(values)
	var sum time.Duration
	for _, v := range values {
		sum += v
	}

	snap.Loads = len(values)
	snap.LoadMin = values[0]
	snap.LoadMax = values[len(values)-1]
	snap.LoadAvg = sum / time.Duration(len(values))
	snap.LoadP50 = percentile(values, 50)
	snap.LoadP95 = percentile(values, 95)
	return snap
}

func percentile(sorted []time.Duration, pct float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return sorted[0]
	}
	if pct >= 100 {
		return sorted[len(sorted)-1]
	}

	index := (float64(len(sorted)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}
	weight := index - float64(lower)
	lo := float64(sorted[lower])
	hi := float64(sorted[upper])
	return time.Duration(math.Round(lo + (hi-lo)*weight))
}
