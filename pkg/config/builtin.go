package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default agents, tool servers, LLM providers, workflows,
// and masking patterns. User YAML overrides entries with the same name.
type BuiltinConfig struct {
	Agents              map[string]AgentConfig
	ToolServers         map[string]ToolServerConfig
	LLMProviders        map[string]LLMProviderConfig
	WorkflowDefinitions map[string]WorkflowConfig
	MaskingPatterns     map[string]MaskingPattern
	PatternGroups       map[string][]string
	CodeMaskers         []string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration
// (thread-safe, lazy-initialized).
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Agents:              initBuiltinAgents(),
		ToolServers:         initBuiltinToolServers(),
		LLMProviders:        initBuiltinLLMProviders(),
		WorkflowDefinitions: initBuiltinWorkflows(),
		MaskingPatterns:     initBuiltinMaskingPatterns(),
		PatternGroups:       initBuiltinPatternGroups(),
		CodeMaskers:         []string{"dotenv_secret"},
	}
}

func initBuiltinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"planner": {
			Role:         "director",
			Description:  "Decomposes a task into ordered, assignable sub-tasks",
			Capabilities: []string{"P-01", "P-02", "P-03", "P-04", "P-05"},
			ToolServers:  []string{"workspace-server"},
		},
		"implementer": {
			Role:         "implementer",
			Description:  "Produces and modifies source code to satisfy a sub-task",
			Capabilities: []string{"I-01", "I-02", "S-01"},
			ToolServers:  []string{"workspace-server", "shell-server"},
		},
		"verifier": {
			Role:         "qa",
			Description:  "Runs tests and static analysis against a candidate change",
			Capabilities: []string{"V-01", "V-03", "V-04"},
			ToolServers:  []string{"shell-server"},
		},
		"reviewer": {
			Role:         "reviewer",
			Description:  "Reviews diffs for correctness, style, and scope adherence",
			Capabilities: []string{"R-01", "R-02"},
			ToolServers:  []string{"workspace-server"},
			CustomInstructions: `You are reviewing a change produced by another agent.

Your task:
1. CRITICALLY EVALUATE the change against its stated goal — flag anything out of scope
2. VERIFY claims against the actual diff; do not trust summaries
3. PRIORITIZE correctness defects over style preferences
4. STATE each finding with the file, the line, and the concrete failure it causes
5. APPROVE only when you would merge the change yourself

Focus on the change in front of you, not on re-designing the system.`,
		},
		"researcher": {
			Role:         "researcher",
			Description:  "Gathers context from the codebase and external sources",
			Capabilities: []string{"S-01", "S-02", "S-03", "S-04"},
			ToolServers:  []string{"workspace-server", "web-server"},
		},
	}
}

func initBuiltinToolServers() map[string]ToolServerConfig {
	return map[string]ToolServerConfig{
		"workspace-server": {
			Description: "Read/write access to the task workspace",
			Transport: TransportConfig{
				Type:    TransportTypeStdio,
				Command: "npx",
				Args: []string{
					"-y",
					"@modelcontextprotocol/server-filesystem",
					"${WORKSPACE_DIR}",
				},
			},
			Instructions: `For workspace operations:
- Always read a file before modifying it
- Prefer targeted edits over whole-file rewrites
- Never write outside the workspace root`,
			DataMasking: &MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"security"},
			},
			Summarization: &SummarizationConfig{
				Enabled:              true,
				SizeThresholdTokens:  5000,
				SummaryMaxTokenLimit: 1000,
			},
		},
		"shell-server": {
			Description: "Sandboxed command execution",
			Transport: TransportConfig{
				Type:    TransportTypeStdio,
				Command: "agentcore-shell-server",
				Args:    []string{"--workdir", "${WORKSPACE_DIR}"},
			},
			Instructions: `For shell operations:
- Commands run under the caller's command allowlist; composite commands are
  split on pipes and separators, and every segment is checked
- Command substitution is rejected before execution`,
			DataMasking: &MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"security"},
				Patterns:      []string{"token", "email"},
			},
		},
		"web-server": {
			Description: "Outbound HTTP fetches under the domain allowlist",
			Transport: TransportConfig{
				Type: TransportTypeHTTP,
				URL:  "${WEB_SERVER_URL}",
			},
			Summarization: &SummarizationConfig{
				Enabled:              true,
				SizeThresholdTokens:  8000,
				SummaryMaxTokenLimit: 1500,
			},
		},
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:                LLMProviderTypeOpenAI,
			Model:               "gpt-4o",
			ModelPrefixes:       []string{"gpt-", "o3", "o4"},
			APIKeyEnv:           "OPENAI_API_KEY",
			MaxToolResultTokens: 8000,
		},
		"anthropic-default": {
			Type:                LLMProviderTypeAnthropic,
			Model:               "claude-sonnet-4-5",
			ModelPrefixes:       []string{"claude-"},
			APIKeyEnv:           "ANTHROPIC_API_KEY",
			MaxToolResultTokens: 8000,
		},
		"google-default": {
			Type:                LLMProviderTypeGoogle,
			Model:               "gemini-2.5-flash",
			ModelPrefixes:       []string{"gemini-"},
			APIKeyEnv:           "GEMINI_API_KEY",
			MaxToolResultTokens: 8000,
		},
	}
}

func initBuiltinWorkflows() map[string]WorkflowConfig {
	return map[string]WorkflowConfig{
		"implement-and-verify": {
			Version:     "1.0.0",
			Description: "Plan, implement, verify, and review a change",
			Steps: []StepConfig{
				{ID: "plan", Action: "invoke-agent", Agent: "planner"},
				{ID: "implement", Action: "invoke-agent", Agent: "implementer", DependsOn: []string{"plan"}},
				{ID: "verify", Action: "invoke-agent", Agent: "verifier", DependsOn: []string{"implement"},
					Retry: &RetryConfig{MaxAttempts: 2, DelaySeconds: 5}},
				{ID: "review", Action: "invoke-agent", Agent: "reviewer", DependsOn: []string{"implement"}},
			},
			Execution: &ExecutionConfig{
				Mode:          "dependency-aware",
				ParallelLimit: 2,
			},
		},
	}
}

func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(api[_-]?key|apikey)["\s:=]+["']?[\w\-\.]{16,}["']?`,
			Replacement: "${1}=***MASKED_API_KEY***",
			Description: "Generic API key assignments",
		},
		"password": {
			Pattern:     `(?i)(password|passwd|pwd)["\s:=]+["']?[^\s"']{6,}["']?`,
			Replacement: "${1}=***MASKED_PASSWORD***",
			Description: "Password assignments",
		},
		"bearer_token": {
			Pattern:     `(?i)bearer\s+[\w\-\.=]{16,}`,
			Replacement: "Bearer ***MASKED_TOKEN***",
			Description: "Bearer authorization headers",
		},
		"token": {
			Pattern:     `(?i)(token|secret)["\s:=]+["']?[\w\-\.=]{16,}["']?`,
			Replacement: "${1}=***MASKED_SECRET***",
			Description: "Generic token/secret assignments",
		},
		"certificate": {
			Pattern:     `-----BEGIN [A-Z ]+-----[\s\S]*?-----END [A-Z ]+-----`,
			Replacement: "***MASKED_CERTIFICATE***",
			Description: "PEM certificate and key blocks",
		},
		"email": {
			Pattern:     `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
			Replacement: "***MASKED_EMAIL***",
			Description: "Email addresses",
		},
	}
}

func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"security": {"api_key", "password", "bearer_token", "token", "certificate", "dotenv_secret"},
		"identity": {"email"},
	}
}
