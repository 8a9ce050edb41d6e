package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/recoilless/internal/input"
)

// Metrics collects dispatch statistics for a session.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics
	kinds   map[input.Kind]uint64

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for one action name.
type ActionMetrics struct {
	Name          string
	Kind          input.Kind
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actions: make(map[string]*ActionMetrics),
		kinds:   make(map[input.Kind]uint64),
	}
}

// RecordDispatch records one executed action.
func (m *Metrics) RecordDispatch(a input.Action, duration time.Duration, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	m.kinds[a.Kind]++

	am := m.actions[a.Name]
	if am == nil {
		am = &ActionMetrics{Name: a.Name, Kind: a.Kind}
		m.actions[a.Name] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastDispatch = time.Now()
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}

	if failed {
		m.totalErrors++
		am.ErrorCount++
	}
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic(a input.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of failed dispatches.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// KindCount returns how many actions of kind k were dispatched.
func (m *Metrics) KindCount(k input.Kind) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.kinds[k]
}

// ActionStats returns a copy of the metrics for one action, or nil.
func (m *Metrics) ActionStats(name string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actions[name]
	if am == nil {
		return nil
	}
	cp := *am
	return &cp
}

// TopActions returns the n most dispatched actions, ties broken by name.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		out = append(out, *am)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Name < out[j].Name
	})
	return out[:min(n, len(out))]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = make(map[string]*ActionMetrics)
	m.kinds = make(map[input.Kind]uint64)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time summary of the metrics.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalErrors     uint64
	TotalPanics     uint64
	AverageDuration time.Duration
	ActionCount     int
}

// Snapshot returns a summary of the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalErrors:     m.totalErrors,
		TotalPanics:     m.totalPanics,
		ActionCount:     len(m.actions),
	}
	if m.totalDispatches > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return s
}
