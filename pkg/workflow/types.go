// Package workflow implements the dependency-aware DAG executor:
// topological ordering, parallel layering, and a step runner with
// per-step retries and a concurrency limit.
package workflow

import "time"

// Action is one of the fixed step action kinds.
type Action string

const (
	ActionInvokeAgent   Action = "invoke-agent"
	ActionRunCommand    Action = "run-command"
	ActionValidate      Action = "validate"
	ActionTransform     Action = "transform"
	ActionConditional   Action = "conditional"
	ActionParallelGroup Action = "parallel-group"
	ActionWait          Action = "wait"
	ActionExecuteCode   Action = "execute-code"
)

// ExecutionMode is how a workflow's steps are scheduled overall.
type ExecutionMode string

const (
	ModeSequential      ExecutionMode = "sequential"
	ModeParallel        ExecutionMode = "parallel"
	ModeDependencyAware ExecutionMode = "dependency-aware"
)

// Trigger is one of the fixed workflow trigger kinds.
type Trigger string

const (
	TriggerManual   Trigger = "manual"
	TriggerOnChange Trigger = "on-change"
	TriggerSchedule Trigger = "schedule"
	TriggerOnEvent  Trigger = "on-event"
)

// Retry bounds a step's retry attempts.
type Retry struct {
	MaxAttempts  int // >=1 <=10
	DelaySeconds int // >=1
}

// DefaultRetry is applied to a step that declares none.
var DefaultRetry = Retry{MaxAttempts: 1, DelaySeconds: 1}

// Step is a single node in the workflow DAG.
type Step struct {
	ID             string // slug, unique within the workflow
	Name           string
	Action         Action
	Agent          string
	Command        string
	Inputs         map[string]any
	Outputs        map[string]any
	Condition      string
	DependsOn      []string
	Retry          Retry
	TimeoutSeconds int

	// action-specific sub-fields
	Steps           []Step // parallel-group children
	ThenSteps       []Step // conditional branch
	ElseSteps       []Step
	DurationSeconds int
	WaitCondition   string
	ToolID          string
	AdapterID       string
	Sandbox         map[string]string
}

// Execution is a workflow's run-wide configuration.
type Execution struct {
	Mode            ExecutionMode
	ParallelLimit   int // >=1 <=32
	ContinueOnError bool
	FailFast        bool
	TimeoutSeconds  int // >=60 <=86400, 0 = unset
	DryRun          bool
}

// DefaultExecution mirrors the field defaults a workflow gets when it
// declares no execution block.
var DefaultExecution = Execution{Mode: ModeSequential, ParallelLimit: 4, FailFast: true}

// Definition is a complete workflow: name, version, triggers, steps, and
// execution configuration.
type Definition struct {
	Name        string
	Version     string // semver
	Description string
	Triggers    []Trigger
	Inputs      map[string]any
	Outputs     map[string]any
	Steps       []Step
	Execution   Execution
}

// StepResult is the outcome of running one step.
type StepResult struct {
	StepID      string
	Success     bool
	Attempts    int
	Output      map[string]any
	Error       string
	Skipped     bool
	StartedAt   time.Time
	CompletedAt time.Time
}

// Result is the outcome of a full workflow run.
type Result struct {
	WorkflowName string
	Success      bool
	Steps        []StepResult
	Outputs      map[string]any
}

// Node is one entry in the scheduler's deterministic visual layout.
type Node struct {
	StepID string
	Layer  int
	X, Y   int
}
