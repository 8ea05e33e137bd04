package autonomy

import (
	"testing"
	"time"
)

func TestEnforcementStopsOnMaxIterations(t *testing.T) {
	b := &Budget{
		Limits:         ResourceLimits{MaxIterations: 2},
		StopConditions: []StopCondition{{Description: "iteration cap", Action: ActionStop}},
	}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordIteration()
	e.RecordIteration()

	outcome := e.CheckBeforeToolCall(now)
	if outcome.Outcome != OutcomeStop {
		t.Fatalf("expected stop outcome, got %s", outcome.Outcome)
	}
	stopped, reason := e.Stopped()
	if !stopped || reason != "max_iterations" {
		t.Fatalf("expected stopped with reason max_iterations, got stopped=%v reason=%q", stopped, reason)
	}
}

func TestEnforcementPriorityOrderIterationsBeforeToolCalls(t *testing.T) {
	b := &Budget{
		Limits:         ResourceLimits{MaxIterations: 1, MaxToolCalls: 1},
		StopConditions: []StopCondition{{Description: "cap", Action: ActionWarn}},
	}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordIteration()
	e.RecordToolCall()

	outcome := e.CheckBeforeToolCall(now)
	if outcome.Reason != "max_iterations" {
		t.Fatalf("max_iterations must take priority over max_tool_calls, got reason=%q", outcome.Reason)
	}
}

func TestEnforcementStopsOnNetworkRequestCap(t *testing.T) {
	b := &Budget{
		Network:        NetworkScope{Enabled: true, RequestCap: 2},
		StopConditions: []StopCondition{{Description: "network cap", Action: ActionStop}},
	}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordNetworkRequest()

	if outcome := e.CheckBeforeToolCall(now); outcome.Outcome != OutcomeProceed {
		t.Fatalf("one request under a cap of two must proceed, got %s", outcome.Outcome)
	}

	e.RecordNetworkRequest()
	outcome := e.CheckBeforeToolCall(now)
	if outcome.Outcome != OutcomeStop {
		t.Fatalf("expected stop outcome at the request cap, got %s", outcome.Outcome)
	}
	if outcome.Reason != "network_request_cap" {
		t.Fatalf("expected reason network_request_cap, got %q", outcome.Reason)
	}
}

func TestEnforcementNetworkCapIgnoredWhenDisabled(t *testing.T) {
	b := &Budget{
		Network:        NetworkScope{Enabled: false, RequestCap: 1},
		StopConditions: []StopCondition{{Description: "network cap", Action: ActionStop}},
	}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordNetworkRequest()
	e.RecordNetworkRequest()

	if outcome := e.CheckBeforeToolCall(now); outcome.Outcome != OutcomeProceed {
		t.Fatalf("cap must not apply when network scope is disabled, got %s", outcome.Outcome)
	}
}

func TestEnforcementEscalateRaisesEscalation(t *testing.T) {
	b := &Budget{
		Limits: ResourceLimits{MaxFilesModified: 1},
		StopConditions: []StopCondition{{
			Description: "too many files", Action: ActionEscalate,
		}},
		EscalationTriggers: []EscalationTrigger{{Target: "oncall", Urgency: UrgencyImmediate}},
	}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordFileModified(5)

	outcome := e.CheckBeforeToolCall(now)
	if outcome.Outcome != OutcomeEscalate {
		t.Fatalf("expected escalate outcome, got %s", outcome.Outcome)
	}
	escalations := e.Escalations()
	if len(escalations) != 1 || escalations[0].Trigger.Target != "oncall" {
		t.Fatalf("expected one escalation targeting oncall, got %+v", escalations)
	}
}

func TestEnforcementWarnDoesNotStop(t *testing.T) {
	b := &Budget{
		Limits:         ResourceLimits{MaxLinesChanged: 10},
		StopConditions: []StopCondition{{Description: "line cap", Action: ActionWarn}},
	}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordFileModified(20)

	outcome := e.CheckBeforeToolCall(now)
	if outcome.Outcome != OutcomeWarn {
		t.Fatalf("expected warn outcome, got %s", outcome.Outcome)
	}
	stopped, _ := e.Stopped()
	if stopped {
		t.Fatalf("warn action must not stop the enforcement context")
	}
	if len(e.Warnings()) != 1 {
		t.Fatalf("expected one warning recorded, got %d", len(e.Warnings()))
	}
}

func TestEnforcementProceedsUnderAllLimits(t *testing.T) {
	b := &Budget{Limits: ResourceLimits{MaxIterations: 100}}
	now := time.Now()
	e := NewEnforcementContext(b, now)
	e.RecordIteration()

	outcome := e.CheckBeforeToolCall(now)
	if outcome.Outcome != OutcomeProceed {
		t.Fatalf("expected proceed outcome, got %s", outcome.Outcome)
	}
}
