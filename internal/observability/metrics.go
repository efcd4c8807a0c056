package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-memory counters for the portal's request traffic and the
// domain error codes it surfaces (DUPLICATE_EMAIL, ACCESS_DENIED, ...).
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	failures map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		failures: make(map[string]int64),
	}
}

// RecordRequest counts a completed request by route and status.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[routeKey(path, method)+"|"+strconv.Itoa(status)]++
}

// RecordError counts a request rejected with the given domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[routeKey(path, method)+"|"+code]++
}

// RequestCount returns the counter for a route/status combination.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[routeKey(path, method)+"|"+strconv.Itoa(status)]
}

// ErrorCount returns the counter for a route/error-code combination.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[routeKey(path, method)+"|"+code]
}

func routeKey(path, method string) string {
	return method + " " + path
}
