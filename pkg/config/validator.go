package config

import (
	"errors"
	"fmt"

	"github.com/tarsy-labs/agentcore/pkg/taxonomy"
)

// Validator performs cross-component validation of loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a new Validator.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every component and cross-reference. All errors
// are collected so the operator sees the full list at once.
func (v *Validator) ValidateAll() error {
	var errs []error

	errs = append(errs, v.validateToolServers()...)
	errs = append(errs, v.validateLLMProviders()...)
	errs = append(errs, v.validateAgents()...)
	errs = append(errs, v.validateWorkflows()...)
	errs = append(errs, v.validateGateThresholds()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func (v *Validator) validateToolServers() []error {
	var errs []error
	for id, server := range v.cfg.ToolServerRegistry.GetAll() {
		if !server.Transport.Type.IsValid() {
			errs = append(errs, NewValidationError("tool_server", id, "transport.type",
				fmt.Errorf("%w: %q", ErrInvalidValue, server.Transport.Type)))
			continue
		}
		switch server.Transport.Type {
		case TransportTypeStdio:
			if server.Transport.Command == "" {
				errs = append(errs, NewValidationError("tool_server", id, "transport.command", ErrMissingRequiredField))
			}
		case TransportTypeHTTP, TransportTypeSSE:
			if server.Transport.URL == "" {
				errs = append(errs, NewValidationError("tool_server", id, "transport.url", ErrMissingRequiredField))
			}
		}
		if server.Summarization != nil && server.Summarization.Enabled {
			if server.Summarization.SizeThresholdTokens < 100 {
				errs = append(errs, NewValidationError("tool_server", id, "summarization.size_threshold_tokens",
					fmt.Errorf("%w: must be >= 100", ErrInvalidValue)))
			}
		}
	}
	return errs
}

func (v *Validator) validateLLMProviders() []error {
	var errs []error
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			errs = append(errs, NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %q", ErrInvalidValue, provider.Type)))
		}
		if provider.Model == "" {
			errs = append(errs, NewValidationError("llm_provider", name, "model", ErrMissingRequiredField))
		}
		if provider.MaxToolResultTokens < 1000 {
			errs = append(errs, NewValidationError("llm_provider", name, "max_tool_result_tokens",
				fmt.Errorf("%w: must be >= 1000", ErrInvalidValue)))
		}
	}
	return errs
}

func (v *Validator) validateAgents() []error {
	var errs []error
	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		for _, capID := range agent.Capabilities {
			if !taxonomy.Valid(capID) {
				errs = append(errs, NewValidationError("agent", name, "capabilities",
					fmt.Errorf("%w: unknown capability %q", ErrInvalidValue, capID)))
			}
		}
		for _, serverID := range agent.ToolServers {
			if !v.cfg.ToolServerRegistry.Has(serverID) {
				errs = append(errs, NewValidationError("agent", name, "tool_servers",
					fmt.Errorf("%w: tool server %q", ErrInvalidReference, serverID)))
			}
		}
		if agent.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(agent.LLMProvider) {
			errs = append(errs, NewValidationError("agent", name, "llm_provider",
				fmt.Errorf("%w: llm provider %q", ErrInvalidReference, agent.LLMProvider)))
		}
		if !agent.Autonomy.IsValid() {
			errs = append(errs, NewValidationError("agent", name, "autonomy",
				fmt.Errorf("%w: %q", ErrInvalidValue, agent.Autonomy)))
		}
		for _, dep := range agent.DependsOn {
			if !v.cfg.AgentRegistry.Has(dep) {
				errs = append(errs, NewValidationError("agent", name, "depends_on",
					fmt.Errorf("%w: agent %q", ErrInvalidReference, dep)))
			}
		}
		if c := agent.Constraints; c != nil {
			if c.MaxTokens != 0 && (c.MaxTokens < 100 || c.MaxTokens > 200_000) {
				errs = append(errs, NewValidationError("agent", name, "constraints.max_tokens",
					fmt.Errorf("%w: out of range [100, 200000]", ErrInvalidValue)))
			}
			if c.TimeoutSeconds != 0 && (c.TimeoutSeconds < 10 || c.TimeoutSeconds > 3600) {
				errs = append(errs, NewValidationError("agent", name, "constraints.timeout_seconds",
					fmt.Errorf("%w: out of range [10, 3600]", ErrInvalidValue)))
			}
			if c.MaxRetries < 0 || c.MaxRetries > 10 {
				errs = append(errs, NewValidationError("agent", name, "constraints.max_retries",
					fmt.Errorf("%w: out of range [0, 10]", ErrInvalidValue)))
			}
		}
	}
	return errs
}

func (v *Validator) validateWorkflows() []error {
	var errs []error
	for name, wf := range v.cfg.WorkflowRegistry.GetAll() {
		if len(wf.Steps) == 0 {
			errs = append(errs, NewValidationError("workflow", name, "steps", ErrMissingRequiredField))
			continue
		}
		for _, trigger := range wf.Triggers {
			if !IsValidTrigger(trigger) {
				errs = append(errs, NewValidationError("workflow", name, "triggers",
					fmt.Errorf("%w: %q", ErrInvalidValue, trigger)))
			}
		}
		if e := wf.Execution; e != nil {
			if e.ParallelLimit != 0 && (e.ParallelLimit < 1 || e.ParallelLimit > 32) {
				errs = append(errs, NewValidationError("workflow", name, "execution.parallel_limit",
					fmt.Errorf("%w: out of range [1, 32]", ErrInvalidValue)))
			}
			if e.TimeoutSeconds != 0 && (e.TimeoutSeconds < 60 || e.TimeoutSeconds > 86_400) {
				errs = append(errs, NewValidationError("workflow", name, "execution.timeout_seconds",
					fmt.Errorf("%w: out of range [60, 86400]", ErrInvalidValue)))
			}
		}
		errs = append(errs, v.validateSteps(name, wf.Steps)...)
	}
	return errs
}

// validateSteps checks a step list (top-level or nested): IDs unique,
// dependency targets exist in the same list, actions valid, bindings
// present for the actions that need them.
func (v *Validator) validateSteps(workflowName string, steps []StepConfig) []error {
	var errs []error

	ids := make(map[string]bool, len(steps))
	for _, step := range steps {
		if step.ID == "" {
			errs = append(errs, NewValidationError("workflow", workflowName, "steps.id", ErrMissingRequiredField))
			continue
		}
		if ids[step.ID] {
			errs = append(errs, NewValidationError("workflow", workflowName, "steps",
				fmt.Errorf("%w: duplicate step id %q", ErrInvalidValue, step.ID)))
		}
		ids[step.ID] = true
	}

	for _, step := range steps {
		if !IsValidStepAction(step.Action) {
			errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".action",
				fmt.Errorf("%w: %q", ErrInvalidValue, step.Action)))
			continue
		}

		for _, dep := range step.DependsOn {
			if !ids[dep] {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".depends_on",
					fmt.Errorf("%w: step %q", ErrInvalidReference, dep)))
			}
		}

		switch step.Action {
		case "invoke-agent":
			if step.Agent == "" {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".agent", ErrMissingRequiredField))
			} else if !v.cfg.AgentRegistry.Has(step.Agent) {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".agent",
					fmt.Errorf("%w: agent %q", ErrInvalidReference, step.Agent)))
			}
		case "run-command":
			if step.Command == "" {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".command", ErrMissingRequiredField))
			}
		case "conditional":
			if step.Condition == "" {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".condition", ErrMissingRequiredField))
			}
			errs = append(errs, v.validateSteps(workflowName, step.Then)...)
			errs = append(errs, v.validateSteps(workflowName, step.Else)...)
		case "parallel-group":
			if len(step.Steps) == 0 {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".steps", ErrMissingRequiredField))
			}
			errs = append(errs, v.validateSteps(workflowName, step.Steps)...)
		case "wait":
			if step.DurationSeconds <= 0 && step.WaitCondition == "" {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID,
					fmt.Errorf("%w: wait step needs duration_seconds or wait_condition", ErrInvalidValue)))
			}
		case "execute-code":
			if step.ToolID == "" {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".tool_id", ErrMissingRequiredField))
			}
		}

		if step.Retry != nil {
			if step.Retry.MaxAttempts != 0 && (step.Retry.MaxAttempts < 1 || step.Retry.MaxAttempts > 10) {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".retry.max_attempts",
					fmt.Errorf("%w: out of range [1, 10]", ErrInvalidValue)))
			}
			if step.Retry.DelaySeconds < 0 {
				errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".retry.delay_seconds",
					fmt.Errorf("%w: must be >= 1", ErrInvalidValue)))
			}
		}
		if step.TimeoutSeconds != 0 && step.TimeoutSeconds < 10 {
			errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".timeout_seconds",
				fmt.Errorf("%w: must be >= 10", ErrInvalidValue)))
		}
		if step.SuccessPolicy != "" && !step.SuccessPolicy.IsValid() {
			errs = append(errs, NewValidationError("workflow", workflowName, "steps."+step.ID+".success_policy",
				fmt.Errorf("%w: %q", ErrInvalidValue, step.SuccessPolicy)))
		}
	}

	return errs
}

func (v *Validator) validateGateThresholds() []error {
	var errs []error

	validMetrics := map[string]bool{"M-01": true, "M-02": true, "M-03": true, "M-04": true, "M-05": true}
	validGates := map[string]bool{"G-PR": true, "G-MRG": true, "G-REL": true, "G-MON": true}
	validOperators := map[string]bool{"gte": true, "lte": true, "eq": true, "gt": true, "lt": true}
	validActions := map[string]bool{"block": true, "warn": true, "alert": true}

	for i, t := range v.cfg.GateThresholds {
		id := fmt.Sprintf("gate_thresholds[%d]", i)
		if !validMetrics[t.Metric] {
			errs = append(errs, NewValidationError("system", id, "metric",
				fmt.Errorf("%w: %q", ErrInvalidValue, t.Metric)))
		}
		if !validGates[t.Gate] {
			errs = append(errs, NewValidationError("system", id, "gate",
				fmt.Errorf("%w: %q", ErrInvalidValue, t.Gate)))
		}
		if !validOperators[t.Operator] {
			errs = append(errs, NewValidationError("system", id, "operator",
				fmt.Errorf("%w: %q", ErrInvalidValue, t.Operator)))
		}
		if !validActions[t.Action] {
			errs = append(errs, NewValidationError("system", id, "action",
				fmt.Errorf("%w: %q", ErrInvalidValue, t.Action)))
		}
	}
	return errs
}
