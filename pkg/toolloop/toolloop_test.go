package toolloop

import (
	"context"
	"testing"

	"github.com/tarsy-labs/agentcore/pkg/contracts"
)

type scriptedRouter struct {
	completions []*contracts.CompletionResult
	calls       int
}

func (r *scriptedRouter) Complete(ctx context.Context, req contracts.CompletionRequest) (*contracts.CompletionResult, error) {
	c := r.completions[r.calls]
	r.calls++
	return c, nil
}
func (r *scriptedRouter) ListModels(ctx context.Context) ([]string, error) { return nil, nil }

type echoExecutor struct{}

func (echoExecutor) Execute(ctx context.Context, toolName string, args map[string]any) (*contracts.ToolResult, error) {
	return &contracts.ToolResult{Success: true, Content: "ok:" + toolName}, nil
}

func finalCompletion(text string) *contracts.CompletionResult {
	return &contracts.CompletionResult{Content: text, FinishReason: contracts.FinishStop}
}

func toolCallCompletion(id, name, argsJSON string) *contracts.CompletionResult {
	return &contracts.CompletionResult{
		FinishReason: contracts.FinishToolCalls,
		ToolCalls:    []contracts.ToolCallRequest{{ID: id, Name: name, Arguments: argsJSON}},
	}
}

func TestRunCompletesWithoutToolCalls(t *testing.T) {
	router := &scriptedRouter{completions: []*contracts.CompletionResult{finalCompletion("done")}}
	cfg := Config{Router: router, ToolExecutor: echoExecutor{}, MaxIterations: 5}

	result := Run(context.Background(), cfg, nil)
	if result.Reason != ReasonCompleted || result.FinalText != "done" {
		t.Fatalf("expected completed/done, got %+v", result)
	}
}

func TestRunExecutesToolThenCompletes(t *testing.T) {
	router := &scriptedRouter{completions: []*contracts.CompletionResult{
		toolCallCompletion("1", "search", `{"query":"x"}`),
		finalCompletion("found it"),
	}}
	cfg := Config{
		Router: router, ToolExecutor: echoExecutor{}, MaxIterations: 5,
		Tools: []contracts.ToolSpec{{Name: "search", ParametersSchema: `{"required":["query"]}`}},
	}

	result := Run(context.Background(), cfg, nil)
	if result.Reason != ReasonCompleted {
		t.Fatalf("expected completed, got %s", result.Reason)
	}
	if len(result.ToolCalls) != 1 || result.ToolCalls[0].Output != "ok:search" {
		t.Fatalf("expected one recorded tool call with echoed output, got %+v", result.ToolCalls)
	}
	if len(result.ToolNameOrder) != 1 || result.ToolNameOrder[0] != "search" {
		t.Fatalf("expected tool name order [search], got %v", result.ToolNameOrder)
	}
}

func TestRunMaxIterations(t *testing.T) {
	completions := make([]*contracts.CompletionResult, 3)
	for i := range completions {
		completions[i] = toolCallCompletion("1", "search", `{"query":"x"}`)
	}
	router := &scriptedRouter{completions: completions}
	cfg := Config{
		Router: router, ToolExecutor: echoExecutor{}, MaxIterations: 3,
		Tools: []contracts.ToolSpec{{Name: "search"}},
	}

	result := Run(context.Background(), cfg, nil)
	if result.Reason != ReasonMaxIterations {
		t.Fatalf("expected max_iterations, got %s", result.Reason)
	}
	if result.Iterations != 3 {
		t.Fatalf("expected 3 iterations, got %d", result.Iterations)
	}
}

func TestRunConsecutiveSchemaErrorsAbort(t *testing.T) {
	completions := make([]*contracts.CompletionResult, 5)
	for i := range completions {
		completions[i] = toolCallCompletion("1", "search", `not json`)
	}
	router := &scriptedRouter{completions: completions}
	cfg := Config{
		Router: router, ToolExecutor: echoExecutor{}, MaxIterations: 5,
		Tools: []contracts.ToolSpec{{Name: "search"}},
	}

	result := Run(context.Background(), cfg, nil)
	if result.Reason != ReasonError {
		t.Fatalf("expected error after exceeding consecutive-error threshold, got %s", result.Reason)
	}
	if result.Iterations != DefaultMaxConsecutiveErrors+1 {
		t.Fatalf("expected loop to run threshold+1 iterations before aborting, got %d", result.Iterations)
	}
}

type denyGovernance struct{ reason string }

func (d denyGovernance) Check(ctx context.Context, toolName string, args map[string]string) (bool, string) {
	return false, d.reason
}

func TestRunGovernanceDenial(t *testing.T) {
	router := &scriptedRouter{completions: []*contracts.CompletionResult{
		toolCallCompletion("1", "shell", `{}`),
	}}
	cfg := Config{
		Router: router, ToolExecutor: echoExecutor{}, MaxIterations: 5,
		Tools:      []contracts.ToolSpec{{Name: "shell"}},
		Governance: denyGovernance{reason: "scope missing"},
	}

	result := Run(context.Background(), cfg, nil)
	if result.Reason != ReasonToolGovernanceDeny {
		t.Fatalf("expected tool_governance_denied, got %s", result.Reason)
	}
}

type leakyExecutor struct{}

func (leakyExecutor) Execute(ctx context.Context, toolName string, args map[string]any) (*contracts.ToolResult, error) {
	return &contracts.ToolResult{Success: true, Content: "leaked SECRET-TOKEN here"}, nil
}

func TestRunLeakageDetection(t *testing.T) {
	router := &scriptedRouter{completions: []*contracts.CompletionResult{
		toolCallCompletion("1", "search", `{}`),
	}}
	cfg := Config{
		Router: router, ToolExecutor: leakyExecutor{}, MaxIterations: 5,
		Tools:         []contracts.ToolSpec{{Name: "search"}},
		LeakageMarker: "SECRET-TOKEN",
	}

	result := Run(context.Background(), cfg, nil)
	if result.Reason != ReasonLeakageDetected {
		t.Fatalf("expected leakage_detected, got %s", result.Reason)
	}
}
