// Package metrics is a small in-process collector backing the /metrics
// endpoint: counters, gauges, timers, error rates and component health.
package metrics

import (
	"sync"
	"time"
)

// TimerStats summarizes recorded durations for one timer.
type TimerStats struct {
	Count         int64   `json:"count"`
	TotalTimeMs   int64   `json:"total_time_ms"`
	AverageTimeMs float64 `json:"average_time_ms"`
	MinTimeMs     int64   `json:"min_time_ms"`
	MaxTimeMs     int64   `json:"max_time_ms"`
}

// ErrorRateStats summarizes success/error outcomes for one operation.
type ErrorRateStats struct {
	Total     int64   `json:"total"`
	Errors    int64   `json:"errors"`
	ErrorRate float64 `json:"error_rate"`
}

type timer struct {
	count, totalMs, minMs, maxMs int64
}

type outcome struct {
	total, errors int64
}

// Metrics is the collector. All methods are safe for concurrent use.
type Metrics struct {
	mu        sync.RWMutex
	counters  map[string]int64
	gauges    map[string]int64
	timers    map[string]*timer
	outcomes  map[string]*outcome
	health    map[string]bool
	startTime time.Time
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		counters:  make(map[string]int64),
		gauges:    make(map[string]int64),
		timers:    make(map[string]*timer),
		outcomes:  make(map[string]*outcome),
		health:    make(map[string]bool),
		startTime: time.Now(),
	}
}

// IncrementCounter increments a counter by 1.
func (m *Metrics) IncrementCounter(name string) {
	m.mu.Lock()
	m.counters[name]++
	m.mu.Unlock()
}

// SetGauge sets a gauge to a point-in-time value.
func (m *Metrics) SetGauge(name string, value int64) {
	m.mu.Lock()
	m.gauges[name] = value
	m.mu.Unlock()
}

// RecordTimer records one duration measurement in milliseconds.
func (m *Metrics) RecordTimer(name string, durationMs int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.timers[name]
	if !ok {
		t = &timer{minMs: durationMs, maxMs: durationMs}
		m.timers[name] = t
	}
	t.count++
	t.totalMs += durationMs
	if durationMs < t.minMs {
		t.minMs = durationMs
	}
	if durationMs > t.maxMs {
		t.maxMs = durationMs
	}
}

// RecordSuccess records a successful operation for error rate tracking.
func (m *Metrics) RecordSuccess(name string) { m.recordOutcome(name, false) }

// RecordError records a failed operation for error rate tracking.
func (m *Metrics) RecordError(name string) { m.recordOutcome(name, true) }

func (m *Metrics) recordOutcome(name string, isError bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.outcomes[name]
	if !ok {
		o = &outcome{}
		m.outcomes[name] = o
	}
	o.total++
	if isError {
		o.errors++
	}
}

// SetHealth flags a component as healthy or unhealthy.
func (m *Metrics) SetHealth(component string, isHealthy bool) {
	m.mu.Lock()
	m.health[component] = isHealthy
	m.mu.Unlock()
}

// GetHealthChecks returns the health flag of every tracked component.
func (m *Metrics) GetHealthChecks() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	checks := make(map[string]bool, len(m.health))
	for name, ok := range m.health {
		checks[name] = ok
	}
	return checks
}

// GetUptimeSeconds returns the service uptime in seconds.
func (m *Metrics) GetUptimeSeconds() int64 {
	return int64(time.Since(m.startTime).Seconds())
}

// GetAllMetrics returns every metric in a structured form for the metrics
// endpoint.
func (m *Metrics) GetAllMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counters := make(map[string]int64, len(m.counters))
	for name, v := range m.counters {
		counters[name] = v
	}

	gauges := make(map[string]int64, len(m.gauges))
	for name, v := range m.gauges {
		gauges[name] = v
	}

	timers := make(map[string]TimerStats, len(m.timers))
	for name, t := range m.timers {
		stats := TimerStats{
			Count:       t.count,
			TotalTimeMs: t.totalMs,
			MinTimeMs:   t.minMs,
			MaxTimeMs:   t.maxMs,
		}
		if t.count > 0 {
			stats.AverageTimeMs = float64(t.totalMs) / float64(t.count)
		}
		timers[name] = stats
	}

	errorRates := make(map[string]ErrorRateStats, len(m.outcomes))
	for name, o := range m.outcomes {
		stats := ErrorRateStats{Total: o.total, Errors: o.errors}
		if o.total > 0 {
			stats.ErrorRate = float64(o.errors) / float64(o.total) * 100.0
		}
		errorRates[name] = stats
	}

	health := make(map[string]bool, len(m.health))
	for name, ok := range m.health {
		health[name] = ok
	}

	return map[string]interface{}{
		"uptime_seconds": int64(time.Since(m.startTime).Seconds()),
		"counters":       counters,
		"gauges":         gauges,
		"timers":         timers,
		"error_rates":    errorRates,
		"health_checks":  health,
	}
}
