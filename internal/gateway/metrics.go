package gateway

import (
	"sync/atomic"
	"time"
)

// Metrics tracks gateway statistics using atomic operations for thread-safety.
// Requests run on command goroutines while the UI reads snapshots.
type Metrics struct {
	Requests     atomic.Int64
	Failures     atomic.Int64
	Unauthorized atomic.Int64
	Superseded   atomic.Int64
	StartTime    time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the requests counter
func (m *Metrics) IncRequests() {
	m.Requests.Add(1)
}

// IncFailures increments the failures counter, tracking auth failures separately
func (m *Metrics) IncFailures(kind ErrorKind) {
	m.Failures.Add(1)
	if kind == KindUnauthorized {
		m.Unauthorized.Add(1)
	}
}

// IncSuperseded counts results discarded because a newer cycle started
func (m *Metrics) IncSuperseded() {
	m.Superseded.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests     int64     `json:"requests"`
	Failures     int64     `json:"failures"`
	Unauthorized int64     `json:"unauthorized"`
	Superseded   int64     `json:"superseded"`
	StartTime    time.Time `json:"start_time"`
	Uptime       string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:     m.Requests.Load(),
		Failures:     m.Failures.Load(),
		Unauthorized: m.Unauthorized.Load(),
		Superseded:   m.Superseded.Load(),
		StartTime:    m.StartTime,
		Uptime:       time.Since(m.StartTime).Round(time.Second).String(),
	}
}
