package autonomy

import (
	"testing"
	"time"
)

func TestTransitionGraph(t *testing.T) {
	b := &Budget{Status: StatusDraft}

	if err := b.Transition(StatusActive); err != nil {
		t.Fatalf("draft->active should be allowed: %v", err)
	}
	if err := b.Transition(StatusDraft); err == nil {
		t.Fatalf("active->draft should be rejected")
	}
	if err := b.Transition(StatusCompleted); err != nil {
		t.Fatalf("active->completed should be allowed: %v", err)
	}
	if err := b.Transition(StatusActive); err == nil {
		t.Fatalf("completed is terminal, transition should fail")
	}
}

func TestPreflightMandatoryChecksBlock(t *testing.T) {
	b := &Budget{
		Status: StatusPendingApproval, // fails PF-02
		Scope:  Scope{},               // fails PF-04
	}
	report := RunPreflight(b, time.Now())
	if report.CanActivate() {
		t.Fatalf("expected CanActivate() == false when PF-02/PF-04 fail")
	}
	if report.Overall != CheckFail {
		t.Fatalf("expected overall fail, got %s", report.Overall)
	}
}

func TestPreflightWarningsDoNotBlock(t *testing.T) {
	b := &Budget{
		Status: StatusActive,
		Scope:  Scope{InScope: []string{"repo:foo"}},
		// everything else left zero-value -> warnings PF-05..PF-10
	}
	report := RunPreflight(b, time.Now())
	if !report.CanActivate() {
		t.Fatalf("warnings alone must not block activation")
	}
	if report.Overall != CheckWarn {
		t.Fatalf("expected overall warn, got %s", report.Overall)
	}
}

func TestPreflightNilBudget(t *testing.T) {
	report := RunPreflight(nil, time.Now())
	if report.Overall != CheckFail {
		t.Fatalf("nil budget must fail PF-01")
	}
}

func TestPreflightExpiredBudgetFails(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	b := &Budget{
		Status:    StatusActive,
		Scope:     Scope{InScope: []string{"repo:foo"}},
		ExpiresAt: &past,
	}
	report := RunPreflight(b, time.Now())
	if report.CanActivate() {
		t.Fatalf("expired budget must fail PF-03 and block activation")
	}
}
