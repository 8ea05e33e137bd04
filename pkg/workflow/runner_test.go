package workflow

import (
	"context"
	"errors"
	"testing"
)

type fakeAgents struct {
	calls int
	fail  int // number of initial calls to fail before succeeding
}

func (f *fakeAgents) Invoke(ctx context.Context, agentName string, inputs map[string]any) (map[string]any, error) {
	f.calls++
	if f.calls <= f.fail {
		return nil, errors.New("transient failure")
	}
	return map[string]any{"agent": agentName, "echo": inputs["msg"]}, nil
}

func TestRunnerExecutesDependencyAwareLayers(t *testing.T) {
	def := Definition{
		Name: "demo",
		Steps: []Step{
			{ID: "a", Action: ActionInvokeAgent, Agent: "triager", Inputs: map[string]any{"msg": "hi"}},
			{ID: "b", Action: ActionInvokeAgent, Agent: "triager", DependsOn: []string{"a"},
				Inputs: map[string]any{"msg": "${steps.a.echo}"}},
		},
		Execution: DefaultExecution,
	}
	agents := &fakeAgents{}
	r := NewRunner(Adapters{Agents: agents})

	result, err := r.Run(context.Background(), def, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(result.Steps) != 2 {
		t.Fatalf("expected 2 step results, got %d", len(result.Steps))
	}
	if result.Outputs["b"].(map[string]any)["echo"] != "hi" {
		t.Fatalf("expected step b to receive step a's output via reference resolution, got %+v", result.Outputs["b"])
	}
}

func TestRunnerRetriesUpToMaxAttempts(t *testing.T) {
	def := Definition{
		Name: "demo",
		Steps: []Step{
			{ID: "a", Action: ActionInvokeAgent, Agent: "flaky", Retry: Retry{MaxAttempts: 3, DelaySeconds: 0}},
		},
		Execution: DefaultExecution,
	}
	agents := &fakeAgents{fail: 2}
	r := NewRunner(Adapters{Agents: agents})

	result, err := r.Run(context.Background(), def, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected eventual success after retries, got %+v", result)
	}
	if result.Steps[0].Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", result.Steps[0].Attempts)
	}
}

func TestRunnerFailFastSkipsDownstreamLayers(t *testing.T) {
	def := Definition{
		Name: "demo",
		Steps: []Step{
			{ID: "a", Action: ActionInvokeAgent, Agent: "always-fails", Retry: Retry{MaxAttempts: 1, DelaySeconds: 0}},
			{ID: "b", Action: ActionInvokeAgent, Agent: "never-runs", DependsOn: []string{"a"}},
		},
		Execution: Execution{Mode: ModeDependencyAware, ParallelLimit: 2, FailFast: true},
	}
	agents := &fakeAgents{fail: 100}
	r := NewRunner(Adapters{Agents: agents})

	result, err := r.Run(context.Background(), def, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatalf("expected overall failure")
	}
	var bResult *StepResult
	for i := range result.Steps {
		if result.Steps[i].StepID == "b" {
			bResult = &result.Steps[i]
		}
	}
	if bResult == nil || !bResult.Skipped {
		t.Fatalf("expected step b to be skipped after fail-fast abort, got %+v", bResult)
	}
}

func TestRunnerMissingAdapterReturnsClearError(t *testing.T) {
	def := Definition{
		Name:      "demo",
		Steps:     []Step{{ID: "a", Action: ActionInvokeAgent, Agent: "x", Retry: Retry{MaxAttempts: 1, DelaySeconds: 0}}},
		Execution: DefaultExecution,
	}
	r := NewRunner(Adapters{})

	result, err := r.Run(context.Background(), def, nil)
	if err != nil {
		t.Fatalf("unexpected top-level error: %v", err)
	}
	if result.Success {
		t.Fatalf("expected failure when no agent invoker is configured")
	}
	if result.Steps[0].Error == "" {
		t.Fatalf("expected a step-level error message")
	}
}
