package trace

import "testing"

func TestCompleteTraceIsIdempotent(t *testing.T) {
	c := NewCollector()
	tr := c.StartTrace("task-1", "sess-1", "run-1", "tenant-a", "agent-1", "implementer", "anthropic/claude")
	c.AddStep(tr.TraceID, "step-1")
	c.AddAction(tr.TraceID, "step-1", Action{ActionID: "a1", Tool: "shell", Status: ActionSuccess})

	if !c.CompleteTrace(tr.TraceID, StatusCompleted, "", "") {
		t.Fatalf("first completion should succeed")
	}
	firstCompletedAt := tr.CompletedAt

	if c.CompleteTrace(tr.TraceID, StatusFailed, "F-UNK-TL00", "should not apply") {
		t.Fatalf("completing an already-completed trace must be a no-op")
	}
	if tr.CompletedAt != firstCompletedAt {
		t.Fatalf("completed_at must not change on a second completion")
	}
	if tr.Outcome.Status != StatusCompleted {
		t.Fatalf("outcome must remain from the first completion")
	}
}

func TestCompleteTraceClosesOpenSteps(t *testing.T) {
	c := NewCollector()
	tr := c.StartTrace("t", "s", "r", "", "a", "qa", "m")
	c.AddStep(tr.TraceID, "step-1")
	c.AddStep(tr.TraceID, "step-2")

	c.CompleteTrace(tr.TraceID, StatusCompleted, "", "")

	for _, step := range tr.Steps {
		if step.CompletedAt.IsZero() {
			t.Fatalf("step %s should be closed by trace completion", step.StepID)
		}
		if step.CompletedAt.Before(tr.StartedAt) {
			t.Fatalf("step completed_at must not precede trace start")
		}
	}
	if tr.CompletedAt.Before(tr.StartedAt) {
		t.Fatalf("completed_at must be >= started_at")
	}
}

func TestActionsStayInInsertionOrder(t *testing.T) {
	c := NewCollector()
	tr := c.StartTrace("t", "s", "r", "", "a", "qa", "m")
	for i := 0; i < 5; i++ {
		c.AddAction(tr.TraceID, "step-1", Action{ActionID: string(rune('a' + i))})
	}
	step, _ := tr, tr.Steps[0]
	_ = step
	for i, a := range tr.Steps[0].Actions {
		want := string(rune('a' + i))
		if a.ActionID != want {
			t.Fatalf("action %d out of order: got %s want %s", i, a.ActionID, want)
		}
	}
}

func TestRecordFailureLinksCategoryOntoTrace(t *testing.T) {
	c := NewCollector()
	tr := c.StartTrace("t", "s", "r", "tenant-a", "a", "qa", "m")
	c.RecordFailure(tr.TraceID, "boom", CategoryExecution, SeverityHigh, SubcodeToolLoopError)

	found := c.ListTraces(TraceFilter{Category: CategoryExecution}, 0)
	if len(found) != 1 || found[0].TraceID != tr.TraceID {
		t.Fatalf("trace should be filterable by failure category alone")
	}
}

func TestListTracesMostRecentFirstAndLimited(t *testing.T) {
	c := NewCollector()
	var ids []string
	for i := 0; i < 5; i++ {
		tr := c.StartTrace("t", "s", "r", "tenant-a", "a", "qa", "m")
		ids = append(ids, tr.TraceID)
	}
	got := c.ListTraces(TraceFilter{TenantID: "tenant-a"}, 3)
	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(got))
	}
	// Most recently started should be last inserted.
	if got[0].TraceID != ids[len(ids)-1] {
		t.Fatalf("expected most-recent trace first")
	}
}

func TestActivityFeedEvictsOldest(t *testing.T) {
	f := &ActivityFeed{cap: 3}
	for i := 0; i < 5; i++ {
		f.Push(ActivityEntry{Kind: string(rune('0' + i))})
	}
	if f.Len() != 3 {
		t.Fatalf("expected feed capped at 3, got %d", f.Len())
	}
	recent := f.Recent(0)
	if recent[0].Kind != "2" || recent[2].Kind != "4" {
		t.Fatalf("expected oldest entries evicted, got %+v", recent)
	}
}
