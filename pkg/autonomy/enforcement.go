package autonomy

import (
	"sync"
	"time"
)

// Violation records a single resource-limit breach and the action taken.
type Violation struct {
	Resource string
	Action   StopAction
	Reason   string
	At       time.Time
}

// Escalation records an escalation raised by the enforcer.
type Escalation struct {
	Trigger EscalationTrigger
	Reason  string
	At      time.Time
}

// EnforcementContext tracks live consumption counters for an active
// budget. One EnforcementContext is created per agent execution; it is
// never shared across executions.
type EnforcementContext struct {
	mu sync.Mutex

	budget *Budget
	start  time.Time

	iterations     int
	toolCalls      int
	filesModified  int
	linesChanged   int
	networkRequests int

	warnings    []string
	violations  []Violation
	escalations []Escalation

	stopped bool
	stopReason string
}

// NewEnforcementContext attaches live counters to an active budget.
func NewEnforcementContext(b *Budget, now time.Time) *EnforcementContext {
	return &EnforcementContext{budget: b, start: now}
}

// Stopped reports whether a stop condition has already fired.
func (e *EnforcementContext) Stopped() (bool, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped, e.stopReason
}

// RecordIteration increments the iteration counter.
func (e *EnforcementContext) RecordIteration() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.iterations++
}

// RecordToolCall increments the tool-call counter.
func (e *EnforcementContext) RecordToolCall() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.toolCalls++
}

// RecordFileModified increments the files-modified and lines-changed counters.
func (e *EnforcementContext) RecordFileModified(linesChanged int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filesModified++
	e.linesChanged += linesChanged
}

// RecordNetworkRequest increments the network-request counter.
func (e *EnforcementContext) RecordNetworkRequest() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.networkRequests++
}

// Snapshot is a read-only view of the live counters, used by CheckBeforeToolCall
// callers that want to log current consumption.
type Snapshot struct {
	Iterations      int
	ToolCalls       int
	FilesModified   int
	LinesChanged    int
	NetworkRequests int
	ElapsedMinutes  float64
}

func (e *EnforcementContext) snapshotLocked(now time.Time) Snapshot {
	return Snapshot{
		Iterations:      e.iterations,
		ToolCalls:       e.toolCalls,
		FilesModified:   e.filesModified,
		LinesChanged:    e.linesChanged,
		NetworkRequests: e.networkRequests,
		ElapsedMinutes:  now.Sub(e.start).Minutes(),
	}
}

// Snapshot returns the current counters without mutating state.
func (e *EnforcementContext) Snapshot(now time.Time) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(now)
}

// CheckOutcome is what CheckBeforeToolCall tells the caller to do.
type CheckOutcome string

const (
	OutcomeProceed  CheckOutcome = "proceed"
	OutcomeStop     CheckOutcome = "stop"
	OutcomeEscalate CheckOutcome = "escalate"
	OutcomeWarn     CheckOutcome = "warn"
)

// EnforcementOutcome is the result of a pre-tool-call budget check.
type EnforcementOutcome struct {
	Outcome CheckOutcome
	Reason  string
}

// CheckBeforeToolCall runs the resource-limit checks (iterations, tool
// calls, duration, files, lines, and the network request cap when the
// budget's network scope is enabled) before a tool call is dispatched.
// On the first breach it applies the first matching stop condition's
// action and returns immediately.
func (e *EnforcementContext) CheckBeforeToolCall(now time.Time) EnforcementOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return EnforcementOutcome{Outcome: OutcomeStop, Reason: e.stopReason}
	}

	snap := e.snapshotLocked(now)
	limits := e.budget.Limits

	var breached string
	switch {
	case limits.MaxIterations > 0 && snap.Iterations >= limits.MaxIterations:
		breached = "max_iterations"
	case limits.MaxToolCalls > 0 && snap.ToolCalls >= limits.MaxToolCalls:
		breached = "max_tool_calls"
	case limits.MaxDurationMinutes > 0 && snap.ElapsedMinutes >= float64(limits.MaxDurationMinutes):
		breached = "max_duration_minutes"
	case limits.MaxFilesModified > 0 && snap.FilesModified >= limits.MaxFilesModified:
		breached = "max_files_modified"
	case limits.MaxLinesChanged > 0 && snap.LinesChanged >= limits.MaxLinesChanged:
		breached = "max_lines_changed"
	case e.budget.Network.Enabled && e.budget.Network.RequestCap > 0 && snap.NetworkRequests >= e.budget.Network.RequestCap:
		breached = "network_request_cap"
	default:
		return EnforcementOutcome{Outcome: OutcomeProceed}
	}

	return e.applyStopConditionLocked(breached, now)
}

func (e *EnforcementContext) applyStopConditionLocked(reason string, now time.Time) EnforcementOutcome {
	var sc *StopCondition
	for i := range e.budget.StopConditions {
		sc = &e.budget.StopConditions[i]
		break // first matching stop condition; budgets declare them in priority order
	}

	action := ActionWarn
	desc := reason
	if sc != nil {
		action = sc.Action
		desc = sc.Description
	}

	switch action {
	case ActionStop:
		e.stopped = true
		e.stopReason = reason
		return EnforcementOutcome{Outcome: OutcomeStop, Reason: reason}
	case ActionEscalate:
		e.stopped = true
		e.stopReason = reason
		target := e.budget.DefaultEscalationTarget
		urgency := UrgencyNormal
		if len(e.budget.EscalationTriggers) > 0 {
			target = e.budget.EscalationTriggers[0].Target
			urgency = e.budget.EscalationTriggers[0].Urgency
		}
		e.escalations = append(e.escalations, Escalation{
			Trigger: EscalationTrigger{Description: desc, Target: target, Urgency: urgency},
			Reason:  reason,
			At:      now,
		})
		return EnforcementOutcome{Outcome: OutcomeEscalate, Reason: reason}
	default: // warn
		e.warnings = append(e.warnings, reason)
		e.violations = append(e.violations, Violation{Resource: reason, Action: ActionWarn, Reason: desc, At: now})
		return EnforcementOutcome{Outcome: OutcomeWarn, Reason: reason}
	}
}

// Warnings returns all warnings accumulated so far.
func (e *EnforcementContext) Warnings() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.warnings))
	copy(out, e.warnings)
	return out
}

// Escalations returns all escalations raised so far.
func (e *EnforcementContext) Escalations() []Escalation {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Escalation, len(e.escalations))
	copy(out, e.escalations)
	return out
}
