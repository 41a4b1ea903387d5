package observability

import (
	"sort"
	"sync"
	"time"
)

// Metrics keeps in-process per-route counters. They back the admin metrics
// endpoint; nothing is shipped to an external collector.
type Metrics struct {
	mu     sync.Mutex
	routes map[string]*routeStat
}

type routeStat struct {
	requests int64
	failures int64
	errors   map[string]int64
	total    time.Duration
	max      time.Duration
}

// RouteMetric is one row of a metrics snapshot.
type RouteMetric struct {
	Route     string           `json:"route"`
	Requests  int64            `json:"requests"`
	Failures  int64            `json:"failures"`
	Errors    map[string]int64 `json:"errors,omitempty"`
	AvgMillis int64            `json:"avgMillis"`
	MaxMillis int64            `json:"maxMillis"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{routes: make(map[string]*routeStat)}
}

// RecordRequest counts one completed request with its timing.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stat := m.route(method + " " + path)
	stat.requests++
	if status >= 400 {
		stat.failures++
	}
	stat.total += duration
	if duration > stat.max {
		stat.max = duration
	}
}

// RecordError counts one translated error by its domain code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stat := m.route(method + " " + path)
	stat.errors[code]++
}

// Snapshot returns the per-route counters sorted by route.
func (m *Metrics) Snapshot() []RouteMetric {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RouteMetric, 0, len(m.routes))
	for route, stat := range m.routes {
		row := RouteMetric{
			Route:     route,
			Requests:  stat.requests,
			Failures:  stat.failures,
			MaxMillis: stat.max.Milliseconds(),
		}
		if stat.requests > 0 {
			row.AvgMillis = (stat.total / time.Duration(stat.requests)).Milliseconds()
		}
		if len(stat.errors) > 0 {
			row.Errors = make(map[string]int64, len(stat.errors))
			for code, n := range stat.errors {
				row.Errors[code] = n
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}

func (m *Metrics) route(key string) *routeStat {
	stat, ok := m.routes[key]
	if !ok {
		stat = &routeStat{errors: make(map[string]int64)}
		m.routes[key] = stat
	}
	return stat
}
