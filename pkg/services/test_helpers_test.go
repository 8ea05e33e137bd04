package services

import (
	"testing"

	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/pkg/config"
)

// setupTestRunService creates a RunService with test configuration.
func setupTestRunService(_ *testing.T, client *ent.Client) *RunService {
	workflowRegistry := config.NewWorkflowRegistry(map[string]*config.WorkflowConfig{
		"deploy-check": {
			Version:     "1.0.0",
			Description: "Verify a deployment candidate",
			Steps: []config.StepConfig{
				{ID: "plan", Action: "invoke-agent", Agent: "planner"},
				{ID: "verify", Action: "invoke-agent", Agent: "verifier", DependsOn: []string{"plan"}},
			},
		},
		"test-workflow": {
			Version: "0.1.0",
			Steps: []config.StepConfig{
				{ID: "step1", Action: "validate"},
			},
		},
	})

	return NewRunService(client, workflowRegistry)
}
