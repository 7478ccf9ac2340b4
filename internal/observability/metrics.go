package observability

import (
	"strconv"
	"sync"
	"time"
)

// RouteStats aggregates request count and cumulative latency for one
// method/path/status combination.
type RouteStats struct {
	Count       int64 `json:"count"`
	TotalMillis int64 `json:"totalMillis"`
}

// Metrics keeps per-route request and error tallies in memory. Snapshot is
// what the metrics endpoint serves.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]RouteStats
	failures map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]RouteStats),
		failures: make(map[string]int64),
	}
}

// RecordRequest tallies a completed request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := method + " " + path + " " + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.requests[key]
	stats.Count++
	stats.TotalMillis += duration.Milliseconds()
	m.requests[key] = stats
}

// RecordError tallies a request that ended in a translated error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method+" "+path+" "+code]++
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() (requests map[string]RouteStats, failures map[string]int64) {
	requests = make(map[string]RouteStats)
	failures = make(map[string]int64)
	if m == nil {
		return requests, failures
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.requests {
		requests[k] = v
	}
	for k, v := range m.failures {
		failures[k] = v
	}
	return requests, failures
}
