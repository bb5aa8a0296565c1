package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// roster loads, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*upstreamStats
	rosterLoads int
	rosterFails int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream resource and stores the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(resource)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(resource, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response was throttled.
func (r *Recorder) RecordRateLimit(resource string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(resource).rateLimitHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(resource)
	}
}

// RecordRosterLoad tracks one roster fetch-and-normalize cycle.
func (r *Recorder) RecordRosterLoad(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.rosterLoads++
	if err != nil {
		r.rosterFails++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRosterLoad(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// UpstreamCalls returns the total attempts recorded for a resource.
func (r *Recorder) UpstreamCalls(resource string) int {
	return r.Snapshot(resource).Calls
}

// UpstreamErrors returns the total failed attempts recorded for a resource.
func (r *Recorder) UpstreamErrors(resource string) int {
	return r.Snapshot(resource).Errors
}

// RateLimitHits returns the number of throttled responses seen for a resource.
func (r *Recorder) RateLimitHits(resource string) int {
	return r.Snapshot(resource).RateLimitHits
}

// LastCallLatency returns the last recorded latency for a resource.
func (r *Recorder) LastCallLatency(resource string) time.Duration {
	return r.Snapshot(resource).LastCallLatency
}

// RosterLoads returns the number of roster loads attempted and how many failed.
func (r *Recorder) RosterLoads() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rosterLoads, r.rosterFails
}

// Snapshot returns a copy of the current stats for the resource.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[resource]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(resource string) *upstreamStats {
	stats, ok := r.stats[resource]
	if !ok {
		stats = &upstreamStats{}
		r.stats[resource] = stats
	}
	return stats
}
