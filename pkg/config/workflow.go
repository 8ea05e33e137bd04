package config

import (
	"fmt"
	"sync"

	"github.com/tarsy-labs/agentcore/pkg/workflow"
)

// WorkflowConfig defines a workflow at the YAML layer.
type WorkflowConfig struct {
	// Semver version of the definition
	Version string `yaml:"version,omitempty"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Triggers that may start this workflow (default: manual)
	Triggers []string `yaml:"triggers,omitempty"`

	// Input and output parameter schemas (free-form maps)
	Inputs  map[string]any `yaml:"inputs,omitempty"`
	Outputs map[string]any `yaml:"outputs,omitempty"`

	// Steps to execute (required, min 1)
	Steps []StepConfig `yaml:"steps" validate:"required,min=1,dive"`

	// Execution configuration
	Execution *ExecutionConfig `yaml:"execution,omitempty"`

	// Workflow-level LLM provider override for invoke-agent steps
	LLMProvider string `yaml:"llm_provider,omitempty"`
}

// StepConfig defines a single step in a workflow.
type StepConfig struct {
	// Step ID (required, slug, unique within the workflow)
	ID string `yaml:"id" validate:"required"`

	// Human-readable name
	Name string `yaml:"name,omitempty"`

	// Action kind (required)
	Action string `yaml:"action" validate:"required"`

	// Agent binding for invoke-agent steps
	Agent string `yaml:"agent,omitempty"`

	// Command binding for run-command steps
	Command string `yaml:"command,omitempty"`

	// Inputs/outputs maps
	Inputs  map[string]any `yaml:"inputs,omitempty"`
	Outputs map[string]any `yaml:"outputs,omitempty"`

	// Condition expression for conditional steps
	Condition string `yaml:"condition,omitempty"`

	// Step IDs this step depends on
	DependsOn []string `yaml:"depends_on,omitempty"`

	// Retry configuration
	Retry *RetryConfig `yaml:"retry,omitempty"`

	// Per-step timeout (seconds, min 10)
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=10"`

	// Fan-out for invoke-agent steps: run the same agent N times
	Replicas      int           `yaml:"replicas,omitempty" validate:"omitempty,min=1"`
	SuccessPolicy SuccessPolicy `yaml:"success_policy,omitempty"`

	// Action-specific sub-fields
	Steps           []StepConfig      `yaml:"steps,omitempty"` // parallel-group children
	Then            []StepConfig      `yaml:"then,omitempty"`  // conditional branches
	Else            []StepConfig      `yaml:"else,omitempty"`
	DurationSeconds int               `yaml:"duration_seconds,omitempty"` // wait
	WaitCondition   string            `yaml:"wait_condition,omitempty"`
	ToolID          string            `yaml:"tool_id,omitempty"` // execute-code
	AdapterID       string            `yaml:"adapter_id,omitempty"`
	Sandbox         map[string]string `yaml:"sandbox,omitempty"`
}

// ExecutionConfig defines a workflow's run-wide scheduling settings.
type ExecutionConfig struct {
	Mode            string `yaml:"mode,omitempty"` // sequential, parallel, dependency-aware
	ParallelLimit   int    `yaml:"parallel_limit,omitempty" validate:"omitempty,min=1,max=32"`
	ContinueOnError bool   `yaml:"continue_on_error,omitempty"`
	FailFast        *bool  `yaml:"fail_fast,omitempty"`
	TimeoutSeconds  int    `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=60,max=86400"`
	DryRun          bool   `yaml:"dry_run,omitempty"`
}

// ToDefinition converts the YAML-level config to a runtime workflow
// definition with defaults applied.
func (w *WorkflowConfig) ToDefinition(name string) *workflow.Definition {
	def := &workflow.Definition{
		Name:        name,
		Version:     w.Version,
		Description: w.Description,
		Inputs:      w.Inputs,
		Outputs:     w.Outputs,
		Steps:       convertSteps(w.Steps),
		Execution:   workflow.DefaultExecution,
	}
	if def.Version == "" {
		def.Version = "1.0.0"
	}

	if len(w.Triggers) == 0 {
		def.Triggers = []workflow.Trigger{workflow.TriggerManual}
	} else {
		for _, t := range w.Triggers {
			def.Triggers = append(def.Triggers, workflow.Trigger(t))
		}
	}

	if e := w.Execution; e != nil {
		if e.Mode != "" {
			def.Execution.Mode = workflow.ExecutionMode(e.Mode)
		}
		if e.ParallelLimit > 0 {
			def.Execution.ParallelLimit = e.ParallelLimit
		}
		def.Execution.ContinueOnError = e.ContinueOnError
		if e.FailFast != nil {
			def.Execution.FailFast = *e.FailFast
		}
		def.Execution.TimeoutSeconds = e.TimeoutSeconds
		def.Execution.DryRun = e.DryRun
	}

	return def
}

func convertSteps(steps []StepConfig) []workflow.Step {
	out := make([]workflow.Step, 0, len(steps))
	for _, s := range steps {
		step := workflow.Step{
			ID:              s.ID,
			Name:            s.Name,
			Action:          workflow.Action(s.Action),
			Agent:           s.Agent,
			Command:         s.Command,
			Inputs:          s.Inputs,
			Outputs:         s.Outputs,
			Condition:       s.Condition,
			DependsOn:       append([]string(nil), s.DependsOn...),
			Retry:           workflow.DefaultRetry,
			TimeoutSeconds:  s.TimeoutSeconds,
			Steps:           convertSteps(s.Steps),
			ThenSteps:       convertSteps(s.Then),
			ElseSteps:       convertSteps(s.Else),
			DurationSeconds: s.DurationSeconds,
			WaitCondition:   s.WaitCondition,
			ToolID:          s.ToolID,
			AdapterID:       s.AdapterID,
			Sandbox:         s.Sandbox,
		}
		if s.Retry != nil {
			if s.Retry.MaxAttempts > 0 {
				step.Retry.MaxAttempts = s.Retry.MaxAttempts
			}
			if s.Retry.DelaySeconds > 0 {
				step.Retry.DelaySeconds = s.Retry.DelaySeconds
			}
		}
		out = append(out, step)
	}
	return out
}

// WorkflowRegistry stores workflow configurations in memory with
// thread-safe access.
type WorkflowRegistry struct {
	workflows map[string]*WorkflowConfig
	mu        sync.RWMutex
}

// NewWorkflowRegistry creates a new workflow registry
func NewWorkflowRegistry(workflows map[string]*WorkflowConfig) *WorkflowRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*WorkflowConfig, len(workflows))
	for k, v := range workflows {
		copied[k] = v
	}
	return &WorkflowRegistry{
		workflows: copied,
	}
}

// Get retrieves a workflow configuration by name (thread-safe)
func (r *WorkflowRegistry) Get(name string) (*WorkflowConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wf, exists := r.workflows[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrWorkflowNotFound, name)
	}
	return wf, nil
}

// GetAll returns all workflow configurations (thread-safe, returns copy)
func (r *WorkflowRegistry) GetAll() map[string]*WorkflowConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*WorkflowConfig, len(r.workflows))
	for k, v := range r.workflows {
		result[k] = v
	}
	return result
}

// Has checks if a workflow exists in the registry (thread-safe)
func (r *WorkflowRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.workflows[name]
	return exists
}

// Len returns the number of workflows in the registry (thread-safe)
func (r *WorkflowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workflows)
}
