package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// AgentInvoker dispatches an invoke-agent step to the agent registry.
type AgentInvoker interface {
	Invoke(ctx context.Context, agentName string, inputs map[string]any) (map[string]any, error)
}

// CommandRunner dispatches run-command and execute-code steps to a
// sandboxed executor.
type CommandRunner interface {
	Run(ctx context.Context, command string, inputs map[string]any) (map[string]any, error)
}

// ConditionEvaluator evaluates a conditional step's guard expression
// against the shared step-output context.
type ConditionEvaluator interface {
	Evaluate(condition string, context map[string]any) (bool, error)
}

// Observer receives step lifecycle callbacks so callers can persist
// progress and publish events while a run is still executing. Both
// methods may be called from concurrent layer workers.
type Observer interface {
	OnStepStart(step Step, layer int)
	OnStepEnd(step Step, layer int, result StepResult)
}

// Adapters bundles the action dispatch targets a Runner needs. Any field
// left nil makes that action kind fail with a clear error rather than
// panicking; a nil Observer disables callbacks.
type Adapters struct {
	Agents     AgentInvoker
	Commands   CommandRunner
	Conditions ConditionEvaluator
	Observer   Observer
}

// Runner executes a workflow's DAG: builds layers once, then drives each
// layer with up to Execution.ParallelLimit steps running concurrently.
type Runner struct {
	adapters Adapters
}

// NewRunner creates a Runner bound to the given action adapters.
func NewRunner(adapters Adapters) *Runner {
	return &Runner{adapters: adapters}
}

// Run executes def's steps to completion against workflowInputs, honoring
// per-step retries, continue_on_error, and fail_fast.
func (r *Runner) Run(ctx context.Context, def Definition, workflowInputs map[string]any) (Result, error) {
	graph, err := NewGraph(def.Steps)
	if err != nil {
		return Result{}, err
	}
	layers, err := graph.ParallelGroups()
	if err != nil {
		return Result{}, err
	}

	stepsByID := make(map[string]Step, len(def.Steps))
	for _, s := range def.Steps {
		stepsByID[s.ID] = s
	}

	exec := def.Execution
	if exec.ParallelLimit <= 0 {
		exec.ParallelLimit = DefaultExecution.ParallelLimit
	}

	sharedCtx := newStepContext(workflowInputs)
	result := Result{WorkflowName: def.Name, Success: true}

	var aborted bool
	for layerIdx, layer := range layers {
		if aborted {
			for _, id := range layer {
				sr := StepResult{StepID: id, Skipped: true}
				result.Steps = append(result.Steps, sr)
				if r.adapters.Observer != nil {
					r.adapters.Observer.OnStepEnd(stepsByID[id], layerIdx, sr)
				}
			}
			continue
		}

		layerResults := r.runLayer(ctx, layer, stepsByID, sharedCtx, exec, layerIdx)
		for _, sr := range layerResults {
			result.Steps = append(result.Steps, sr)
			sharedCtx.setStepOutput(sr.StepID, sr.Output)
			if !sr.Success && !sr.Skipped {
				result.Success = false
				if exec.FailFast && !exec.ContinueOnError {
					aborted = true
				}
			}
		}
	}

	result.Outputs = sharedCtx.snapshot()
	return result, nil
}

// runLayer executes every step in a layer, bounded by exec.ParallelLimit
// concurrent workers, using a reservation-then-register pattern so the
// concurrency cap never races.
func (r *Runner) runLayer(ctx context.Context, layer []string, stepsByID map[string]Step, sharedCtx *stepContext, exec Execution, layerIdx int) []StepResult {
	sem := make(chan struct{}, exec.ParallelLimit)
	results := make([]StepResult, len(layer))
	var wg sync.WaitGroup

	for i, id := range layer {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()
			step := stepsByID[id]
			if r.adapters.Observer != nil {
				r.adapters.Observer.OnStepStart(step, layerIdx)
			}
			results[i] = r.runStepWithRetry(ctx, step, sharedCtx)
			if r.adapters.Observer != nil {
				r.adapters.Observer.OnStepEnd(step, layerIdx, results[i])
			}
		}(i, id)
	}
	wg.Wait()
	return results
}

// runStepWithRetry resolves a step's inputs, dispatches it, and retries
// up to Retry.MaxAttempts on failure with Retry.DelaySeconds between
// attempts.
func (r *Runner) runStepWithRetry(ctx context.Context, step Step, sharedCtx *stepContext) StepResult {
	retry := step.Retry
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetry
	}

	sr := StepResult{StepID: step.ID, StartedAt: time.Now()}
	inputs := sharedCtx.resolveInputs(step.Inputs)

	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		sr.Attempts = attempt
		out, err := r.dispatch(ctx, step, inputs, sharedCtx)
		if err == nil {
			sr.Success = true
			sr.Output = out
			sr.CompletedAt = time.Now()
			return sr
		}
		lastErr = err
		if attempt < retry.MaxAttempts {
			select {
			case <-ctx.Done():
				sr.Error = ctx.Err().Error()
				sr.CompletedAt = time.Now()
				return sr
			case <-time.After(time.Duration(retry.DelaySeconds) * time.Second):
			}
		}
	}

	sr.Error = lastErr.Error()
	sr.CompletedAt = time.Now()
	return sr
}

func (r *Runner) dispatch(ctx context.Context, step Step, inputs map[string]any, sharedCtx *stepContext) (map[string]any, error) {
	switch step.Action {
	case ActionInvokeAgent:
		if r.adapters.Agents == nil {
			return nil, fmt.Errorf("workflow: no agent invoker configured for step %q", step.ID)
		}
		// The invoker needs the dispatching step's identity for its own
		// bookkeeping; a reserved key keeps the input map flat.
		inputs["__step_id"] = step.ID
		return r.adapters.Agents.Invoke(ctx, step.Agent, inputs)

	case ActionRunCommand, ActionExecuteCode:
		if r.adapters.Commands == nil {
			return nil, fmt.Errorf("workflow: no command runner configured for step %q", step.ID)
		}
		return r.adapters.Commands.Run(ctx, step.Command, inputs)

	case ActionValidate, ActionTransform:
		return inputs, nil

	case ActionConditional:
		if r.adapters.Conditions == nil {
			return nil, fmt.Errorf("workflow: no condition evaluator configured for step %q", step.ID)
		}
		ok, err := r.adapters.Conditions.Evaluate(step.Condition, sharedCtx.snapshot())
		if err != nil {
			return nil, err
		}
		branch := step.ElseSteps
		if ok {
			branch = step.ThenSteps
		}
		return r.runSubSteps(ctx, branch, sharedCtx)

	case ActionParallelGroup:
		return r.runSubSteps(ctx, step.Steps, sharedCtx)

	case ActionWait:
		return r.wait(ctx, step)

	default:
		return nil, fmt.Errorf("workflow: unknown action %q for step %q", step.Action, step.ID)
	}
}

// runSubSteps recurses the runner over a nested step list (conditional
// branches, parallel-group children), sharing the parent's context map.
func (r *Runner) runSubSteps(ctx context.Context, steps []Step, sharedCtx *stepContext) (map[string]any, error) {
	if len(steps) == 0 {
		return map[string]any{}, nil
	}
	graph, err := NewGraph(steps)
	if err != nil {
		return nil, err
	}
	layers, err := graph.ParallelGroups()
	if err != nil {
		return nil, err
	}
	stepsByID := make(map[string]Step, len(steps))
	for _, s := range steps {
		stepsByID[s.ID] = s
	}
	out := make(map[string]any, len(steps))
	for _, layer := range layers {
		results := r.runLayer(ctx, layer, stepsByID, sharedCtx, Execution{ParallelLimit: len(layer)}, 0)
		for _, sr := range results {
			sharedCtx.setStepOutput(sr.StepID, sr.Output)
			out[sr.StepID] = sr.Output
			if !sr.Success {
				return out, fmt.Errorf("workflow: sub-step %q failed: %s", sr.StepID, sr.Error)
			}
		}
	}
	return out, nil
}

func (r *Runner) wait(ctx context.Context, step Step) (map[string]any, error) {
	if step.DurationSeconds > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(step.DurationSeconds) * time.Second):
		}
	}
	return map[string]any{}, nil
}
