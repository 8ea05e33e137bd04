package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/agentexecution"
	"github.com/tarsy-labs/agentcore/ent/steprun"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/autonomy"
	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/contracts"
	"github.com/tarsy-labs/agentcore/pkg/events"
	"github.com/tarsy-labs/agentcore/pkg/governance"
	"github.com/tarsy-labs/agentcore/pkg/hooks"
	"github.com/tarsy-labs/agentcore/pkg/mcp"
	"github.com/tarsy-labs/agentcore/pkg/models"
	"github.com/tarsy-labs/agentcore/pkg/services"
	"github.com/tarsy-labs/agentcore/pkg/toolloop"
	"github.com/tarsy-labs/agentcore/pkg/trace"
	"github.com/tarsy-labs/agentcore/pkg/workflow"
)

// defaultAgentIterations bounds the reasoning loop when neither the agent
// definition nor the defaults declare a cap.
const defaultAgentIterations = 10

// Executor drives one claimed workflow run to completion: it builds the
// DAG runner, dispatches invoke-agent steps through the reasoning loop
// under governance and autonomy enforcement, and writes all intermediate
// state progressively.
type Executor struct {
	cfg        *config.Config
	router     contracts.ModelRouter
	mcpFactory *mcp.ClientFactory
	hooks      *hooks.Registry
	gov        *governance.Evaluator
	collector  *trace.Collector

	stepSvc        *services.StepService
	interactionSvc *services.InteractionService
	traceSvc       *services.TraceService
	budgetSvc      *services.BudgetService
	sampleSvc      *services.SampleService
	publisher      *events.EventPublisher
}

// ExecutorDeps bundles the Executor's collaborators.
type ExecutorDeps struct {
	Config         *config.Config
	Router         contracts.ModelRouter
	MCPFactory     *mcp.ClientFactory
	Hooks          *hooks.Registry
	Governance     *governance.Evaluator
	Collector      *trace.Collector
	StepService    *services.StepService
	Interactions   *services.InteractionService
	TraceService   *services.TraceService
	BudgetService  *services.BudgetService
	SampleService  *services.SampleService
	EventPublisher *events.EventPublisher
}

// NewExecutor creates an Executor.
func NewExecutor(deps ExecutorDeps) *Executor {
	return &Executor{
		cfg:            deps.Config,
		router:         deps.Router,
		mcpFactory:     deps.MCPFactory,
		hooks:          deps.Hooks,
		gov:            deps.Governance,
		collector:      deps.Collector,
		stepSvc:        deps.StepService,
		interactionSvc: deps.Interactions,
		traceSvc:       deps.TraceService,
		budgetSvc:      deps.BudgetService,
		sampleSvc:      deps.SampleService,
		publisher:      deps.EventPublisher,
	}
}

// Execute runs the workflow referenced by run to a terminal state.
func (e *Executor) Execute(ctx context.Context, run *ent.WorkflowRun) *ExecutionResult {
	wfCfg, err := e.cfg.GetWorkflow(run.WorkflowName)
	if err != nil {
		return &ExecutionResult{Status: workflowrun.StatusFailed, Error: err}
	}
	def := wfCfg.ToDefinition(run.WorkflowName)

	// Overall workflow timeout, when declared.
	if def.Execution.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(def.Execution.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	state := &runState{run: run, executor: e}

	runner := workflow.NewRunner(workflow.Adapters{
		Agents:     &agentInvoker{executor: e, state: state},
		Commands:   &commandRunner{},
		Conditions: &conditionEvaluator{},
		Observer:   state,
	})

	result, err := runner.Run(ctx, *def, run.Inputs)
	if err != nil {
		return &ExecutionResult{Status: workflowrun.StatusFailed, Error: err}
	}

	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &ExecutionResult{Status: workflowrun.StatusTimedOut, Error: ctx.Err()}
		}
		return &ExecutionResult{Status: workflowrun.StatusCancelled, Error: ctx.Err()}
	}

	if !result.Success {
		return &ExecutionResult{
			Status:  workflowrun.StatusFailed,
			Outputs: result.Outputs,
			Error:   fmt.Errorf("workflow %q had failing steps", run.WorkflowName),
		}
	}
	return &ExecutionResult{Status: workflowrun.StatusCompleted, Outputs: result.Outputs}
}

// runState observes step lifecycle callbacks: it persists step runs,
// publishes step.status events, and runs workflow.step.pre/post hooks.
type runState struct {
	run      *ent.WorkflowRun
	executor *Executor
}

func (s *runState) OnStepStart(step workflow.Step, layer int) {
	e := s.executor
	ctx := context.Background()

	hc := hooks.NewContext(hooks.EventWorkflowStepPre, s.run.TenantID)
	hc.Data["run_id"] = s.run.ID
	hc.Data["step_id"] = step.ID
	hc.Data["action"] = string(step.Action)
	hooks.RunSequential(ctx, hc, e.hooks.GetHooks(hooks.EventWorkflowStepPre, s.run.TenantID))

	if _, err := e.stepSvc.CreateStepRun(ctx, models.CreateStepRunRequest{
		RunID:      s.run.ID,
		StepID:     step.ID,
		LayerIndex: layer,
		Action:     string(step.Action),
	}); err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		slog.Warn("Failed to create step run row", "run_id", s.run.ID, "step_id", step.ID, "error", err)
	}
	if sr, err := s.stepRow(ctx, step.ID); err == nil {
		_ = e.stepSvc.StartStepRun(ctx, sr.ID)
	}

	e.publishStepStatus(ctx, s.run, step.ID, layer, events.StepStatusStarted)
}

func (s *runState) OnStepEnd(step workflow.Step, layer int, result workflow.StepResult) {
	e := s.executor
	ctx := context.Background()

	status := steprun.StatusCompleted
	eventStatus := events.StepStatusCompleted
	switch {
	case result.Skipped:
		status = steprun.StatusSkipped
		eventStatus = events.StepStatusSkipped
	case !result.Success:
		status = steprun.StatusFailed
		eventStatus = events.StepStatusFailed
	}

	if sr, err := s.stepRow(ctx, step.ID); err == nil {
		_ = e.stepSvc.CompleteStepRun(ctx, sr.ID, status, result.Output, result.Error)
	} else if result.Skipped {
		// Skipped steps never hit OnStepStart; record them for the audit trail.
		if created, cerr := e.stepSvc.CreateStepRun(ctx, models.CreateStepRunRequest{
			RunID:      s.run.ID,
			StepID:     step.ID,
			LayerIndex: layer,
			Action:     string(step.Action),
		}); cerr == nil {
			_ = e.stepSvc.CompleteStepRun(ctx, created.ID, status, nil, "")
		}
	}

	e.publishStepStatus(ctx, s.run, step.ID, layer, eventStatus)

	hc := hooks.NewContext(hooks.EventWorkflowStepPost, s.run.TenantID)
	hc.Data["run_id"] = s.run.ID
	hc.Data["step_id"] = step.ID
	hc.Data["success"] = result.Success
	hc.Data["attempts"] = result.Attempts
	hooks.RunConcurrent(ctx, hc, e.hooks.GetHooks(hooks.EventWorkflowStepPost, s.run.TenantID))
}

func (s *runState) stepRow(ctx context.Context, stepID string) (*ent.StepRun, error) {
	rows, err := s.executor.stepSvc.GetStepRuns(ctx, s.run.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.StepID == stepID {
			return r, nil
		}
	}
	return nil, services.ErrNotFound
}

func (e *Executor) publishStepStatus(ctx context.Context, run *ent.WorkflowRun, stepID string, layer int, status string) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishStepStatus(ctx, run.ID, events.StepStatusPayload{
		Type:       events.EventTypeStepStatus,
		RunID:      run.ID,
		StepID:     stepID,
		LayerIndex: layer,
		Status:     status,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish step status", "run_id", run.ID, "step_id", stepID, "error", err)
	}
}

// agentInvoker dispatches invoke-agent steps: agent resolution, hook
// wrapping, budget enforcement, the reasoning loop, and trace recording.
type agentInvoker struct {
	executor *Executor
	state    *runState
}

func (a *agentInvoker) Invoke(ctx context.Context, agentName string, inputs map[string]any) (map[string]any, error) {
	e := a.executor
	run := a.state.run

	agentCfg, err := e.cfg.GetAgent(agentName)
	if err != nil {
		return nil, err
	}
	def := agentCfg.ToDefinition(agentName, e.cfg.Defaults)

	providerName := agentCfg.LLMProvider
	if providerName == "" && e.cfg.Defaults != nil {
		providerName = e.cfg.Defaults.LLMProvider
	}
	var model string
	if providerName != "" {
		if provider, perr := e.cfg.GetLLMProvider(providerName); perr == nil {
			model = provider.Model
		}
	}

	// agent.invoke.pre hooks may veto the invocation.
	hc := hooks.NewContext(hooks.EventAgentInvokePre, run.TenantID)
	hc.Data["run_id"] = run.ID
	hc.Data["agent"] = agentName
	hc.Data["inputs"] = inputs
	hooks.RunSequential(ctx, hc, e.hooks.GetHooks(hooks.EventAgentInvokePre, run.TenantID))
	if hc.Abort {
		return nil, fmt.Errorf("agent invocation aborted: %s", hc.AbortReason)
	}

	tr := e.collector.StartTrace("", "", run.ID, run.TenantID, agentName, string(def.Role), model)

	// Per-step agent execution row. The step run row exists by the time
	// the adapter is dispatched.
	var executionID, stepRunID string
	if sr, serr := a.state.stepRow(ctx, currentStepID(inputs)); serr == nil {
		stepRunID = sr.ID
		if exec, cerr := e.stepSvc.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			StepRunID:  sr.ID,
			RunID:      run.ID,
			AgentName:  agentName,
			AgentRole:  string(def.Role),
			Model:      model,
			AgentIndex: 1,
		}); cerr == nil {
			executionID = exec.ID
			_ = e.stepSvc.StartAgentExecution(ctx, executionID)
		}
	}

	// Tool surface for this agent.
	toolExec, client, err := e.mcpFactory.CreateToolExecutor(ctx, agentCfg.ToolServers, nil)
	if err != nil {
		e.failTrace(tr, trace.CategoryDependency, "tool server initialization failed: "+err.Error())
		return nil, fmt.Errorf("failed to initialize tool servers: %w", err)
	}
	defer func() { _ = client.Close() }()

	// Autonomy enforcement from the agent's active budget, when bound.
	var enforcement *autonomy.EnforcementContext
	if budgetRow, berr := e.budgetSvc.GetActiveBudgetForAgent(ctx, run.TenantID, agentName); berr == nil {
		if budget, derr := autonomy.DecodeSpec(
			budgetRow.ID, agentName, autonomy.BudgetStatus(budgetRow.State),
			budgetRow.Spec, budgetRow.CreatedAt, budgetRow.ExpiresAt,
		); derr == nil {
			enforcement = autonomy.NewEnforcementContext(budget, time.Now())
		} else {
			slog.Warn("Failed to decode budget spec, running unenforced",
				"budget_id", budgetRow.ID, "error", derr)
		}
	}

	maxIterations := defaultAgentIterations
	if agentCfg.MaxIterations != nil {
		maxIterations = *agentCfg.MaxIterations
	} else if e.cfg.Defaults != nil && e.cfg.Defaults.MaxIterations != nil {
		maxIterations = *e.cfg.Defaults.MaxIterations
	}

	caller := governance.CallerContext{
		Scopes:   []string{"tools:execute"},
		Autonomy: def.Autonomy,
	}
	if agentCfg.Governance != nil {
		if len(agentCfg.Governance.Scopes) > 0 {
			caller.Scopes = agentCfg.Governance.Scopes
		}
		caller.CommandAllowlist = agentCfg.Governance.CommandAllowlist
		caller.PathAllowlist = agentCfg.Governance.PathAllowlist
		caller.DomainAllowlist = agentCfg.Governance.DomainAllowlist
	} else if e.cfg.Governance != nil {
		caller.CommandAllowlist = e.cfg.Governance.CommandAllowlist
		caller.PathAllowlist = e.cfg.Governance.PathAllowlist
		caller.DomainAllowlist = e.cfg.Governance.DomainAllowlist
	}

	loopCfg := toolloop.Config{
		Router:        e.router,
		Tools:         toolExec.ToolSpecs(),
		ToolExecutor:  &hookedToolExecutor{executor: e, state: a.state, tools: toolExec, traceRef: tr, executionID: executionID, stepRunID: stepRunID},
		Governance:    &governanceAdapter{gov: e.gov, caller: caller},
		Model:         model,
		SystemPrompt:  buildSystemPrompt(agentCfg, inputs),
		MaxIterations: maxIterations,
	}
	if enforcement != nil {
		loopCfg.Autonomy = &autonomyAdapter{enforcement: enforcement}
	}

	result := toolloop.Run(ctx, loopCfg, []contracts.Message{
		{Role: contracts.RoleUser, Content: renderTask(inputs)},
	})

	e.finishExecution(ctx, run, tr, executionID, agentName, result)

	// agent.invoke.post hooks observe the outcome concurrently.
	post := hooks.NewContext(hooks.EventAgentInvokePost, run.TenantID)
	post.Data["run_id"] = run.ID
	post.Data["agent"] = agentName
	post.Data["reason"] = string(result.Reason)
	post.Data["iterations"] = result.Iterations
	hooks.RunConcurrent(ctx, post, e.hooks.GetHooks(hooks.EventAgentInvokePost, run.TenantID))

	switch result.Reason {
	case toolloop.ReasonCompleted, toolloop.ReasonMaxIterations:
		return map[string]any{
			"output":     result.FinalText,
			"iterations": result.Iterations,
			"reason":     string(result.Reason),
		}, nil
	default:
		return nil, fmt.Errorf("agent %q terminated: %s", agentName, result.Reason)
	}
}

// finishExecution maps the loop outcome onto the trace, the execution
// row, and the comparative sample stream.
func (e *Executor) finishExecution(ctx context.Context, run *ent.WorkflowRun, tr *trace.Trace, executionID, agentName string, result toolloop.Result) {
	var traceStatus trace.Status
	switch result.Reason {
	case toolloop.ReasonCompleted:
		traceStatus = trace.StatusCompleted
	case toolloop.ReasonMaxIterations:
		traceStatus = trace.StatusTimeout
	default:
		traceStatus = trace.StatusFailed
	}

	e.collector.CompleteTrace(tr.TraceID, traceStatus, result.FailureCode, terminationMessage(result))

	if result.FailureCode != "" {
		e.collector.RecordFailure(tr.TraceID, terminationMessage(result),
			trace.CategoryExecution, trace.SeverityMedium, result.FailureCode)
	}

	// Flush the completed trace to the durable store.
	steps := make([]map[string]any, 0, len(tr.Steps))
	for _, st := range tr.Steps {
		actions := make([]map[string]any, 0, len(st.Actions))
		for _, a := range st.Actions {
			actions = append(actions, map[string]any{
				"action_id":   a.ActionID,
				"tool":        a.Tool,
				"status":      string(a.Status),
				"duration_ms": a.DurationMS,
			})
		}
		steps = append(steps, map[string]any{"step_id": st.StepID, "actions": actions})
	}
	if _, err := e.traceSvc.PersistTrace(ctx, models.PersistTraceRequest{
		TraceID:         tr.TraceID,
		TenantID:        run.TenantID,
		RunID:           run.ID,
		AgentID:         agentName,
		AgentRole:       tr.AgentRole,
		Model:           tr.Model,
		Status:          string(traceStatus),
		FailureCode:     result.FailureCode,
		FailureMessage:  terminationMessage(result),
		FailureCategory: failureCategory(result),
		StartedAt:       tr.StartedAt,
		CompletedAt:     tr.CompletedAt,
		Steps:           steps,
	}); err != nil {
		slog.Warn("Failed to persist trace", "trace_id", tr.TraceID, "error", err)
	}

	if executionID != "" {
		execStatus := agentexecution.StatusCompleted
		if traceStatus == trace.StatusFailed {
			execStatus = agentexecution.StatusFailed
		} else if traceStatus == trace.StatusTimeout {
			execStatus = agentexecution.StatusTimedOut
		}
		_ = e.stepSvc.UpdateAgentStatus(ctx, executionID, models.UpdateAgentStatusRequest{
			Status:            string(execStatus),
			TerminationReason: string(result.Reason),
			Iterations:        result.Iterations,
			ToolCalls:         len(result.ToolCalls),
			ErrorMessage:      terminationMessage(result),
		})
	}

	// Success-rate sample feeds the comparative core.
	value := 0.0
	if result.Reason == toolloop.ReasonCompleted {
		value = 100.0
	}
	if _, err := e.sampleSvc.RecordSample(ctx, models.RecordSampleRequest{
		TenantID:  run.TenantID,
		AgentName: agentName,
		Metric:    "M-01",
		Value:     value,
		TaskID:    run.ID,
	}); err != nil {
		slog.Debug("Failed to record comparative sample", "agent", agentName, "error", err)
	}
}

func (e *Executor) failTrace(tr *trace.Trace, category trace.Category, message string) {
	e.collector.RecordFailure(tr.TraceID, message, category, trace.SeverityHigh, trace.SubcodeToolLoopError)
	e.collector.CompleteTrace(tr.TraceID, trace.StatusFailed, trace.SubcodeToolLoopError, message)
}

func terminationMessage(result toolloop.Result) string {
	if result.Reason == toolloop.ReasonCompleted {
		return ""
	}
	return "tool loop terminated: " + string(result.Reason)
}

func failureCategory(result toolloop.Result) string {
	switch result.Reason {
	case toolloop.ReasonCompleted, toolloop.ReasonMaxIterations:
		return ""
	case toolloop.ReasonToolGovernanceDeny:
		return string(trace.CategorySecurity)
	case toolloop.ReasonBudgetExceeded, toolloop.ReasonContextExhausted:
		return string(trace.CategoryResource)
	default:
		return string(trace.CategoryExecution)
	}
}

// hookedToolExecutor wraps the MCP executor with tool.execute.pre/post
// hooks, trace action recording, and interaction persistence.
type hookedToolExecutor struct {
	executor    *Executor
	state       *runState
	tools       *mcp.ToolExecutor
	traceRef    *trace.Trace
	executionID string
	stepRunID   string

	actionSeq int
}

func (h *hookedToolExecutor) Execute(ctx context.Context, toolName string, args map[string]any) (*contracts.ToolResult, error) {
	e := h.executor
	run := h.state.run

	pre := hooks.NewContext(hooks.EventToolExecutePre, run.TenantID)
	pre.Data["run_id"] = run.ID
	pre.Data["tool"] = toolName
	pre.Data["args"] = args
	hooks.RunSequential(ctx, pre, e.hooks.GetHooks(hooks.EventToolExecutePre, run.TenantID))
	if pre.Abort {
		return &contracts.ToolResult{Success: false, Error: "tool blocked: " + pre.AbortReason}, nil
	}

	start := time.Now()
	result, err := h.tools.Execute(ctx, toolName, encodeArgs(args))
	durationMS := time.Since(start).Milliseconds()

	h.actionSeq++
	status := trace.ActionSuccess
	output := ""
	if err != nil {
		status = trace.ActionFailure
	} else if !result.Success {
		status = trace.ActionFailure
		output = result.Content
	} else {
		output = result.Content
	}

	e.collector.AddAction(h.traceRef.TraceID, "loop", trace.Action{
		ActionID:   fmt.Sprintf("act-%d", h.actionSeq),
		Tool:       toolName,
		Input:      encodeArgs(args),
		Output:     output,
		DurationMS: durationMS,
		Status:     status,
	})

	if h.executionID != "" {
		durationInt := int(durationMS)
		interactionStatus := "success"
		if status == trace.ActionFailure {
			interactionStatus = "failure"
		}
		if _, ierr := e.interactionSvc.CreateToolInteraction(ctx, models.CreateToolInteractionRequest{
			RunID:       run.ID,
			StepRunID:   h.stepRunID,
			ExecutionID: h.executionID,
			ToolName:    toolName,
			Arguments:   args,
			Result:      output,
			Status:      interactionStatus,
			DurationMs:  &durationInt,
		}); ierr != nil {
			slog.Debug("Failed to persist tool interaction", "tool", toolName, "error", ierr)
		}
	}

	post := hooks.NewContext(hooks.EventToolExecutePost, run.TenantID)
	post.Data["run_id"] = run.ID
	post.Data["tool"] = toolName
	post.Data["success"] = status == trace.ActionSuccess
	post.Data["duration_ms"] = durationMS
	hooks.RunConcurrent(ctx, post, e.hooks.GetHooks(hooks.EventToolExecutePost, run.TenantID))

	if err != nil {
		return nil, err
	}
	return result, nil
}

// governanceAdapter bridges the governance evaluator onto the loop's
// checker interface.
type governanceAdapter struct {
	gov    *governance.Evaluator
	caller governance.CallerContext
}

func (g *governanceAdapter) Check(_ context.Context, toolName string, args map[string]string) (bool, string) {
	decision := g.gov.Evaluate(toolName, args, g.caller, time.Now())
	return decision.Allowed, decision.Reason
}

// autonomyAdapter bridges the enforcement context onto the loop's checker
// interface.
type autonomyAdapter struct {
	enforcement *autonomy.EnforcementContext
}

func (a *autonomyAdapter) CheckBeforeToolCall(_ context.Context, toolName string) (toolloop.TerminationReason, bool) {
	a.enforcement.RecordIteration()
	outcome := a.enforcement.CheckBeforeToolCall(time.Now())
	switch outcome.Outcome {
	case autonomy.OutcomeProceed, autonomy.OutcomeWarn:
		a.enforcement.RecordToolCall()
		if isNetworkTool(toolName) {
			a.enforcement.RecordNetworkRequest()
		}
		return "", true
	default:
		return toolloop.ReasonBudgetExceeded, false
	}
}

// isNetworkTool reports whether a tool call counts against the budget's
// network request cap: the bare web_fetch tool, a server-prefixed
// web_fetch, or any tool served by a web-* tool server.
func isNetworkTool(toolName string) bool {
	if i := strings.Index(toolName, "."); i >= 0 {
		return strings.HasPrefix(toolName, "web-") || toolName[i+1:] == "web_fetch"
	}
	return toolName == "web_fetch"
}

// commandRunner rejects run-command and execute-code steps until a code
// executor is attached; the workflow surface still accepts the actions so
// definitions validate.
type commandRunner struct {
	codeExecutor contracts.CodeExecutor
}

func (c *commandRunner) Run(ctx context.Context, command string, inputs map[string]any) (map[string]any, error) {
	if c.codeExecutor == nil {
		return nil, fmt.Errorf("no code executor configured for command %q", command)
	}
	res, err := c.codeExecutor.Execute(ctx, contracts.CodeExecContract{
		ToolID: command,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"exit_code": res.ExitCode,
		"stdout":    res.Stdout,
		"stderr":    res.Stderr,
		"truncated": res.Truncated,
	}, nil
}

// conditionEvaluator evaluates conditional-step guards of the forms
// "<ref> == <value>", "<ref> != <value>", or a bare reference checked for
// truthiness. References use dotted paths into the shared context
// ("steps.<id>.<field>" or a plain key).
type conditionEvaluator struct{}

func (conditionEvaluator) Evaluate(condition string, context map[string]any) (bool, error) {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return false, fmt.Errorf("empty condition")
	}

	if lhs, rhs, ok := splitOperator(condition, "!="); ok {
		return lookupString(context, lhs) != rhs, nil
	}
	if lhs, rhs, ok := splitOperator(condition, "=="); ok {
		return lookupString(context, lhs) == rhs, nil
	}

	return truthy(lookup(context, condition)), nil
}

func splitOperator(condition, op string) (lhs, rhs string, ok bool) {
	idx := strings.Index(condition, op)
	if idx < 0 {
		return "", "", false
	}
	lhs = strings.TrimSpace(condition[:idx])
	rhs = strings.Trim(strings.TrimSpace(condition[idx+len(op):]), `"'`)
	return lhs, rhs, true
}

func lookup(context map[string]any, path string) any {
	path = strings.TrimPrefix(strings.TrimSuffix(strings.TrimPrefix(path, "${"), "}"), "steps.")
	var current any = context
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

func lookupString(context map[string]any, path string) string {
	v := lookup(context, path)
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// currentStepID extracts the dispatching step's ID when the runner put it
// into the resolved inputs; empty otherwise.
func currentStepID(inputs map[string]any) string {
	if id, ok := inputs["__step_id"].(string); ok {
		return id
	}
	return ""
}

func buildSystemPrompt(agentCfg *config.AgentConfig, _ map[string]any) string {
	prompt := "You are the " + agentCfg.Role + " agent in an autonomous engineering workflow."
	if agentCfg.Description != "" {
		prompt += "\n\n" + agentCfg.Description
	}
	if agentCfg.CustomInstructions != "" {
		prompt += "\n\n" + agentCfg.CustomInstructions
	}
	return prompt
}

// renderTask flattens the step's resolved inputs into the user message.
func renderTask(inputs map[string]any) string {
	if task, ok := inputs["task"].(string); ok && task != "" {
		return task
	}
	var b strings.Builder
	b.WriteString("Inputs:\n")
	for k, v := range inputs {
		if strings.HasPrefix(k, "__") {
			continue
		}
		fmt.Fprintf(&b, "- %s: %v\n", k, v)
	}
	return b.String()
}

func encodeArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(data)
}
