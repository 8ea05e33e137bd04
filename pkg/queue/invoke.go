package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tarsy-labs/agentcore/pkg/autonomy"
	"github.com/tarsy-labs/agentcore/pkg/contracts"
	"github.com/tarsy-labs/agentcore/pkg/governance"
	"github.com/tarsy-labs/agentcore/pkg/mcp"
	"github.com/tarsy-labs/agentcore/pkg/toolloop"
	"github.com/tarsy-labs/agentcore/pkg/trace"
)

// InvokeResult is the outcome of a direct (workflow-less) agent
// invocation.
type InvokeResult struct {
	Output     string                    `json:"output"`
	Reason     string                    `json:"reason"`
	Iterations int                       `json:"iterations"`
	TraceID    string                    `json:"trace_id"`
	ToolCalls  []toolloop.ToolCallRecord `json:"tool_calls,omitempty"`
}

// InvokeAgentDirect runs one agent's reasoning loop outside any workflow:
// governance, budget enforcement, and trace recording all apply, but
// nothing is written to the run tables. Used by the agent-invoke API
// surface.
func (e *Executor) InvokeAgentDirect(ctx context.Context, tenantID, agentName string, inputs map[string]any) (*InvokeResult, error) {
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

	tr := e.collector.StartTrace("", "", "", tenantID, agentName, string(def.Role), model)

	toolExec, client, err := e.mcpFactory.CreateToolExecutor(ctx, agentCfg.ToolServers, nil)
	if err != nil {
		e.failTrace(tr, trace.CategoryDependency, "tool server initialization failed: "+err.Error())
		return nil, fmt.Errorf("failed to initialize tool servers: %w", err)
	}
	defer func() { _ = client.Close() }()

	var enforcement *autonomy.EnforcementContext
	if budgetRow, berr := e.budgetSvc.GetActiveBudgetForAgent(ctx, tenantID, agentName); berr == nil {
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
		ToolExecutor:  &directToolExecutor{executor: e, tools: toolExec, traceRef: tr},
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

	return &InvokeResult{
		Output:     result.FinalText,
		Reason:     string(result.Reason),
		Iterations: result.Iterations,
		TraceID:    tr.TraceID,
		ToolCalls:  result.ToolCalls,
	}, nil
}

// directToolExecutor records trace actions for workflow-less invocations
// without any DB persistence.
type directToolExecutor struct {
	executor  *Executor
	tools     *mcp.ToolExecutor
	traceRef  *trace.Trace
	actionSeq int
}

func (d *directToolExecutor) Execute(ctx context.Context, toolName string, args map[string]any) (*contracts.ToolResult, error) {
	start := time.Now()
	result, err := d.tools.Execute(ctx, toolName, encodeArgs(args))
	durationMS := time.Since(start).Milliseconds()

	d.actionSeq++
	status := trace.ActionSuccess
	output := ""
	if err != nil {
		status = trace.ActionFailure
	} else {
		output = result.Content
		if !result.Success {
			status = trace.ActionFailure
		}
	}
	d.executor.collector.AddAction(d.traceRef.TraceID, "loop", trace.Action{
		ActionID:   fmt.Sprintf("act-%d", d.actionSeq),
		Tool:       toolName,
		Input:      encodeArgs(args),
		Output:     output,
		DurationMS: durationMS,
		Status:     status,
	})
	return result, err
}
