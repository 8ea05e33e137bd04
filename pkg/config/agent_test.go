package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tarsy-labs/agentcore/pkg/agentdef"
)

func TestAgentToDefinitionDefaults(t *testing.T) {
	cfg := &AgentConfig{
		Role:         "coder", // legacy alias
		Capabilities: []string{"I-01", "I-02"},
	}

	def := cfg.ToDefinition("worker", &Defaults{AutonomyLevel: AutonomyLevelAutonomous})

	assert.Equal(t, "worker", def.Name)
	assert.Equal(t, "1.0.0", def.Version)
	assert.Equal(t, agentdef.RoleImplementer, def.Role, "legacy alias resolves at load time")
	assert.Equal(t, agentdef.AutonomyLevel("autonomous"), def.Autonomy)
	assert.Equal(t, 16_000, def.Constraints.MaxTokens)
	assert.Equal(t, 600, def.Constraints.TimeoutSeconds)
}

func TestAgentToDefinitionConstraintOverrides(t *testing.T) {
	cfg := &AgentConfig{
		Role:     "qa",
		Version:  "2.0.0",
		Autonomy: AutonomyLevelReadOnly,
		Constraints: &ConstraintsConfig{
			MaxTokens:       50_000,
			TimeoutSeconds:  120,
			MaxRetries:      5,
			ParallelAllowed: true,
		},
		Governance: &GovernanceConfig{
			Scopes:           []string{"tools:execute"},
			CommandAllowlist: []string{"go", "make"},
		},
		Owner:            "platform-team",
		EscalationTarget: "oncall",
	}

	def := cfg.ToDefinition("gatekeeper", nil)

	assert.Equal(t, "2.0.0", def.Version)
	assert.Equal(t, agentdef.AutonomyReadOnly, def.Autonomy)
	assert.Equal(t, 50_000, def.Constraints.MaxTokens)
	assert.Equal(t, 120, def.Constraints.TimeoutSeconds)
	assert.Equal(t, 5, def.Constraints.MaxRetries)
	assert.True(t, def.Constraints.ParallelAllowed)
	assert.NoError(t, def.Constraints.Validate())

	assert.NotNil(t, def.Governance)
	assert.Equal(t, []string{"go", "make"}, def.Governance.Commands)
	assert.Equal(t, "platform-team", def.Own.Owner)
	assert.Equal(t, "oncall", def.Own.EscalationTarget)
}
