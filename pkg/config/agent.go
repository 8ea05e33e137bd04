// Package config provides configuration management for the orchestration
// engine, including agent, workflow, tool server, and LLM provider
// configurations.
package config

import (
	"fmt"
	"sync"

	"github.com/tarsy-labs/agentcore/pkg/agentdef"
)

// AgentConfig defines agent configuration (metadata only — see the agent
// factory for instantiation).
type AgentConfig struct {
	// Role drives prompt selection and default capabilities
	Role string `yaml:"role,omitempty"`

	// Semver of this definition
	Version string `yaml:"version,omitempty"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Capability IDs this agent declares (taxonomy IDs like "I-01")
	Capabilities []string `yaml:"capabilities,omitempty"`

	// Tool servers this agent uses
	ToolServers []string `yaml:"tool_servers,omitempty"`

	// Other agents this one depends on
	DependsOn []string `yaml:"depends_on,omitempty"`

	// Prompt template references
	PromptRefs []string `yaml:"prompt_refs,omitempty"`

	// Custom instructions override built-in agent behavior
	CustomInstructions string `yaml:"custom_instructions,omitempty"`

	// LLM provider for this agent (defaults.llm_provider when empty)
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Max iterations for the reasoning loop
	MaxIterations *int `yaml:"max_iterations,omitempty" validate:"omitempty,min=1"`

	// Autonomy level (defaults.autonomy_level when empty)
	Autonomy AutonomyLevel `yaml:"autonomy,omitempty"`

	// Execution constraints
	Constraints *ConstraintsConfig `yaml:"constraints,omitempty"`

	// Optional per-agent governance narrowing
	Governance *GovernanceConfig `yaml:"governance,omitempty"`

	// Ownership
	Owner            string `yaml:"owner,omitempty"`
	EscalationTarget string `yaml:"escalation_target,omitempty"`
}

// ToDefinition converts the YAML-level config to a runtime agent
// definition, applying defaults for unset constraint fields.
func (a *AgentConfig) ToDefinition(name string, defaults *Defaults) *agentdef.Definition {
	constraints := agentdef.Constraints{
		MaxTokens:      16_000,
		TimeoutSeconds: 600,
		MaxRetries:     2,
	}
	if a.Constraints != nil {
		if a.Constraints.MaxTokens > 0 {
			constraints.MaxTokens = a.Constraints.MaxTokens
		}
		if a.Constraints.TimeoutSeconds > 0 {
			constraints.TimeoutSeconds = a.Constraints.TimeoutSeconds
		}
		if a.Constraints.MaxRetries > 0 {
			constraints.MaxRetries = a.Constraints.MaxRetries
		}
		constraints.ParallelAllowed = a.Constraints.ParallelAllowed
	}

	autonomy := a.Autonomy
	if autonomy == "" && defaults != nil {
		autonomy = defaults.AutonomyLevel
	}
	if autonomy == "" {
		autonomy = AutonomyLevelSupervised
	}

	version := a.Version
	if version == "" {
		version = "1.0.0"
	}

	def := &agentdef.Definition{
		Name:         name,
		Version:      version,
		Role:         agentdef.CanonicalRole(agentdef.Role(a.Role)),
		Capabilities: append([]string(nil), a.Capabilities...),
		DependsOn:    append([]string(nil), a.DependsOn...),
		PromptRefs:   append([]string(nil), a.PromptRefs...),
		Constraints:  constraints,
		Autonomy:     agentdef.AutonomyLevel(autonomy),
		Status:       agentdef.StatusActive,
	}

	if a.Governance != nil {
		def.Governance = &agentdef.GovernanceConstraints{
			Scope:    append([]string(nil), a.Governance.Scopes...),
			Commands: append([]string(nil), a.Governance.CommandAllowlist...),
		}
	}
	def.Own = agentdef.Ownership{Owner: a.Owner, EscalationTarget: a.EscalationTarget}

	return def
}

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{
		agents: copied,
	}
}

// Get retrieves an agent configuration by name (thread-safe)
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe)
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Len returns the number of agents in the registry (thread-safe)
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
