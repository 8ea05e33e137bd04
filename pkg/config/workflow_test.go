package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/pkg/workflow"
)

func TestWorkflowToDefinitionDefaults(t *testing.T) {
	cfg := &WorkflowConfig{
		Steps: []StepConfig{
			{ID: "a", Action: "validate"},
			{ID: "b", Action: "invoke-agent", Agent: "implementer", DependsOn: []string{"a"},
				Retry: &RetryConfig{MaxAttempts: 3, DelaySeconds: 2}},
		},
	}

	def := cfg.ToDefinition("wf")

	assert.Equal(t, "wf", def.Name)
	assert.Equal(t, "1.0.0", def.Version)
	assert.Equal(t, []workflow.Trigger{workflow.TriggerManual}, def.Triggers)
	assert.Equal(t, workflow.ModeSequential, def.Execution.Mode)
	assert.Equal(t, 4, def.Execution.ParallelLimit)
	assert.True(t, def.Execution.FailFast)

	require.Len(t, def.Steps, 2)
	assert.Equal(t, workflow.DefaultRetry, def.Steps[0].Retry)
	assert.Equal(t, workflow.Retry{MaxAttempts: 3, DelaySeconds: 2}, def.Steps[1].Retry)
	assert.Equal(t, []string{"a"}, def.Steps[1].DependsOn)
}

func TestWorkflowToDefinitionExecutionOverrides(t *testing.T) {
	failFast := false
	cfg := &WorkflowConfig{
		Version:  "3.1.4",
		Triggers: []string{"schedule", "on-event"},
		Steps:    []StepConfig{{ID: "only", Action: "transform"}},
		Execution: &ExecutionConfig{
			Mode:            "dependency-aware",
			ParallelLimit:   8,
			ContinueOnError: true,
			FailFast:        &failFast,
			TimeoutSeconds:  600,
		},
	}

	def := cfg.ToDefinition("wf")

	assert.Equal(t, "3.1.4", def.Version)
	assert.Equal(t, []workflow.Trigger{workflow.TriggerSchedule, workflow.TriggerOnEvent}, def.Triggers)
	assert.Equal(t, workflow.ModeDependencyAware, def.Execution.Mode)
	assert.Equal(t, 8, def.Execution.ParallelLimit)
	assert.True(t, def.Execution.ContinueOnError)
	assert.False(t, def.Execution.FailFast)
	assert.Equal(t, 600, def.Execution.TimeoutSeconds)
}

func TestWorkflowToDefinitionNestedSteps(t *testing.T) {
	cfg := &WorkflowConfig{
		Steps: []StepConfig{
			{ID: "branch", Action: "conditional", Condition: "${inputs.deep} == true",
				Then: []StepConfig{{ID: "deep", Action: "invoke-agent", Agent: "researcher"}},
				Else: []StepConfig{{ID: "shallow", Action: "validate"}},
			},
			{ID: "fan", Action: "parallel-group",
				Steps: []StepConfig{
					{ID: "fan-1", Action: "run-command", Command: "make test"},
					{ID: "fan-2", Action: "wait", DurationSeconds: 5},
				},
			},
		},
	}

	def := cfg.ToDefinition("wf")

	require.Len(t, def.Steps, 2)
	require.Len(t, def.Steps[0].ThenSteps, 1)
	require.Len(t, def.Steps[0].ElseSteps, 1)
	assert.Equal(t, workflow.ActionInvokeAgent, def.Steps[0].ThenSteps[0].Action)
	require.Len(t, def.Steps[1].Steps, 2)
	assert.Equal(t, 5, def.Steps[1].Steps[1].DurationSeconds)
}
