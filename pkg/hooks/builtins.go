package hooks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MetricsCollector is the built-in hook that records per-event call count
// plus last and cumulative duration into context.metadata["hook_metrics"].
type MetricsCollector struct {
	mu      sync.Mutex
	byEvent map[EventType]*EventMetrics
}

// EventMetrics is one event type's accumulated counters.
type EventMetrics struct {
	Calls       int64
	LastMS      int64
	CumulativeMS int64
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{byEvent: make(map[EventType]*EventMetrics)}
}

// Handler returns the hook Handler bound to this collector.
func (m *MetricsCollector) Handler(ctx context.Context, hc *Context, next CallNext) error {
	start := time.Now()
	err := next(ctx, hc)
	elapsed := time.Since(start).Milliseconds()

	m.mu.Lock()
	em, ok := m.byEvent[hc.Event]
	if !ok {
		em = &EventMetrics{}
		m.byEvent[hc.Event] = em
	}
	em.Calls++
	em.LastMS = elapsed
	em.CumulativeMS += elapsed
	snapshot := *em
	m.mu.Unlock()

	hc.Metadata["hook_metrics"] = snapshot
	return err
}

// Snapshot returns a copy of the metrics recorded for an event type.
func (m *MetricsCollector) Snapshot(event EventType) EventMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	if em, ok := m.byEvent[event]; ok {
		return *em
	}
	return EventMetrics{}
}

// AuditEntry is one structured audit-logger record.
type AuditEntry struct {
	Event     EventType
	TenantID  string
	Fields    map[string]any
	Timestamp time.Time
}

// AuditLogger is the built-in hook that appends a structured entry per
// invocation. It both logs via slog and retains entries
// in memory for inspection (e.g. by gate/trace consumers).
type AuditLogger struct {
	mu      sync.Mutex
	entries []AuditEntry
	logger  *slog.Logger
}

// NewAuditLogger creates an audit logger writing through the given slog
// logger (nil selects slog.Default()).
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger}
}

// Handler returns the hook Handler bound to this logger.
func (a *AuditLogger) Handler(ctx context.Context, hc *Context, next CallNext) error {
	err := next(ctx, hc)

	entry := AuditEntry{
		Event:     hc.Event,
		TenantID:  hc.TenantID,
		Fields:    relevantFields(hc),
		Timestamp: time.Now(),
	}

	a.mu.Lock()
	a.entries = append(a.entries, entry)
	a.mu.Unlock()

	a.logger.Info("hook audit", "event", entry.Event, "tenant", entry.TenantID, "abort", hc.Abort)
	return err
}

// Entries returns a copy of all recorded audit entries.
func (a *AuditLogger) Entries() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AuditEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

func relevantFields(hc *Context) map[string]any {
	fields := make(map[string]any, 4)
	for _, k := range []string{"method", "path", "status_code", "tool_name"} {
		if v, ok := hc.Data[k]; ok {
			fields[k] = v
		}
	}
	return fields
}
