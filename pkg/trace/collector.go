package trace

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collector is the in-memory append-only trace store.
// Every trace and failure record is owned by the Collector; callers
// receive borrowed references and must not mutate them directly.
type Collector struct {
	mu       sync.Mutex
	traces   map[string]*Trace
	failures []FailureRecord
	order    []string // trace IDs, insertion order, for stable default listing
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{traces: make(map[string]*Trace)}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// StartTrace creates a new trace in the running state.
func (c *Collector) StartTrace(taskID, sessionID, runID, tenantID, agentID, agentRole, model string) *Trace {
	tr := &Trace{
		TraceID:   newID("trace"),
		TaskID:    taskID,
		SessionID: sessionID,
		RunID:     runID,
		TenantID:  tenantID,
		AgentID:   agentID,
		AgentRole: agentRole,
		Model:     model,
		StartedAt: time.Now(),
		Outcome:   Outcome{Status: StatusRunning},
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.traces[tr.TraceID] = tr
	c.order = append(c.order, tr.TraceID)
	return tr
}

// AddStep appends a new step to the trace, creating its StartedAt now.
// No-op (returns false) if the trace does not exist or is already
// completed — trace records are immutable once completed.
func (c *Collector) AddStep(traceID, stepID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	tr, ok := c.traces[traceID]
	if !ok || !tr.CompletedAt.IsZero() {
		return false
	}
	tr.Steps = append(tr.Steps, Step{StepID: stepID, StartedAt: time.Now()})
	return true
}

// AddAction appends an action to the named step, creating the step first
// if it does not yet exist. No-op if the trace is absent or completed.
func (c *Collector) AddAction(traceID, stepID string, action Action) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	tr, ok := c.traces[traceID]
	if !ok || !tr.CompletedAt.IsZero() {
		return false
	}
	idx := stepIndex(tr, stepID)
	if idx < 0 {
		tr.Steps = append(tr.Steps, Step{StepID: stepID, StartedAt: time.Now()})
		idx = len(tr.Steps) - 1
	}
	tr.Steps[idx].Actions = append(tr.Steps[idx].Actions, action)
	return true
}

func stepIndex(tr *Trace, stepID string) int {
	for i := range tr.Steps {
		if tr.Steps[i].StepID == stepID {
			return i
		}
	}
	return -1
}

// CompleteTrace sets the trace's completion timestamp, closes any open
// steps at that same timestamp, and computes its duration. Idempotent:
// completing an already-completed trace is a no-op.
func (c *Collector) CompleteTrace(traceID string, status Status, failureCode, failureMessage string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	tr, ok := c.traces[traceID]
	if !ok || !tr.CompletedAt.IsZero() {
		return false
	}
	now := time.Now()
	tr.CompletedAt = now
	for i := range tr.Steps {
		if tr.Steps[i].CompletedAt.IsZero() {
			tr.Steps[i].CompletedAt = now
		}
	}
	tr.Outcome.Status = status
	tr.Outcome.FailureCode = failureCode
	tr.Outcome.FailureMessage = failureMessage
	return true
}

// Cancel completes a trace with status cancelled, closing any open steps
// at the cancellation timestamp.
func (c *Collector) Cancel(traceID string) bool {
	return c.CompleteTrace(traceID, StatusCancelled, "", "")
}

// RecordFailure appends a classified failure linked to traceID and copies
// its category and message into the trace's outcome so callers can filter
// traces by failure category alone.
func (c *Collector) RecordFailure(traceID, message string, category Category, severity Severity, subcode string) FailureRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec := FailureRecord{
		FailureID:  newID("failure"),
		TraceID:    traceID,
		Category:   category,
		Severity:   severity,
		Subcode:    subcode,
		Message:    message,
		Context:    make(map[string]string),
		RecordedAt: time.Now(),
	}
	c.failures = append(c.failures, rec)
	if tr, ok := c.traces[traceID]; ok {
		tr.Outcome.Category = category
		tr.Outcome.FailureMessage = message
	}
	return rec
}

// TraceFilter narrows ListTraces results.
type TraceFilter struct {
	TenantID string
	Status   Status
	TaskID   string
	Category Category
}

const defaultListLimit = 100

// ListTraces returns traces matching filter, most-recently-started first,
// capped at limit (0 selects the default of 100).
func (c *Collector) ListTraces(filter TraceFilter, limit int) []*Trace {
	if limit <= 0 {
		limit = defaultListLimit
	}
	c.mu.Lock()
	all := make([]*Trace, 0, len(c.traces))
	for _, id := range c.order {
		tr := c.traces[id]
		if filter.TenantID != "" && tr.TenantID != filter.TenantID {
			continue
		}
		if filter.Status != "" && tr.Outcome.Status != filter.Status {
			continue
		}
		if filter.TaskID != "" && tr.TaskID != filter.TaskID {
			continue
		}
		if filter.Category != "" && tr.Outcome.Category != filter.Category {
			continue
		}
		all = append(all, tr)
	}
	c.mu.Unlock()

	sort.SliceStable(all, func(i, j int) bool { return all[i].StartedAt.After(all[j].StartedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// FailureFilter narrows ListFailures results.
type FailureFilter struct {
	TraceID  string
	Category Category
}

// ListFailures returns failure records matching filter, most-recent
// first, capped at limit (0 selects the default of 100).
func (c *Collector) ListFailures(filter FailureFilter, limit int) []FailureRecord {
	if limit <= 0 {
		limit = defaultListLimit
	}
	c.mu.Lock()
	all := make([]FailureRecord, 0, len(c.failures))
	for _, f := range c.failures {
		if filter.TraceID != "" && f.TraceID != filter.TraceID {
			continue
		}
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		all = append(all, f)
	}
	c.mu.Unlock()

	sort.SliceStable(all, func(i, j int) bool { return all[i].RecordedAt.After(all[j].RecordedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Get returns a borrowed reference to a trace by ID.
func (c *Collector) Get(traceID string) (*Trace, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tr, ok := c.traces[traceID]
	return tr, ok
}
