package config

// SuccessPolicy defines success criteria for fan-out invoke-agent steps.
type SuccessPolicy string

const (
	// SuccessPolicyAll requires all agents to succeed
	SuccessPolicyAll SuccessPolicy = "all"
	// SuccessPolicyAny requires at least one agent to succeed (default)
	SuccessPolicyAny SuccessPolicy = "any"
)

// IsValid checks if the success policy is valid
func (p SuccessPolicy) IsValid() bool {
	return p == SuccessPolicyAll || p == SuccessPolicyAny
}

// TransportType defines tool server transport types
type TransportType string

const (
	// TransportTypeStdio uses subprocess communication via stdin/stdout
	TransportTypeStdio TransportType = "stdio"
	// TransportTypeHTTP uses HTTP/HTTPS JSON-RPC
	TransportTypeHTTP TransportType = "http"
	// TransportTypeSSE uses Server-Sent Events
	TransportTypeSSE TransportType = "sse"
)

// IsValid checks if the transport type is valid
func (t TransportType) IsValid() bool {
	return t == TransportTypeStdio || t == TransportTypeHTTP || t == TransportTypeSSE
}

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeGoogle is Google Gemini API
	LLMProviderTypeGoogle LLMProviderType = "google"
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeXAI is xAI Grok API
	LLMProviderTypeXAI LLMProviderType = "xai"
	// LLMProviderTypeVertexAI is Google Vertex AI
	LLMProviderTypeVertexAI LLMProviderType = "vertexai"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeGoogle,
		LLMProviderTypeOpenAI,
		LLMProviderTypeAnthropic,
		LLMProviderTypeXAI,
		LLMProviderTypeVertexAI:
		return true
	default:
		return false
	}
}

// AutonomyLevel mirrors the agent definition's autonomy setting at the
// YAML layer.
type AutonomyLevel string

const (
	AutonomyLevelReadOnly   AutonomyLevel = "read-only"
	AutonomyLevelSupervised AutonomyLevel = "supervised"
	AutonomyLevelAutonomous AutonomyLevel = "autonomous"
)

// IsValid checks if the autonomy level is valid (empty is valid — means
// the system default applies).
func (l AutonomyLevel) IsValid() bool {
	switch l {
	case "", AutonomyLevelReadOnly, AutonomyLevelSupervised, AutonomyLevelAutonomous:
		return true
	default:
		return false
	}
}

// stepActions is the fixed action vocabulary accepted in workflow YAML.
var stepActions = map[string]bool{
	"invoke-agent":   true,
	"run-command":    true,
	"validate":       true,
	"transform":      true,
	"conditional":    true,
	"parallel-group": true,
	"wait":           true,
	"execute-code":   true,
}

// IsValidStepAction checks an action string against the fixed vocabulary.
func IsValidStepAction(action string) bool {
	return stepActions[action]
}

// workflowTriggers is the fixed trigger vocabulary accepted in YAML.
var workflowTriggers = map[string]bool{
	"manual":    true,
	"on-change": true,
	"schedule":  true,
	"on-event":  true,
}

// IsValidTrigger checks a trigger string against the fixed vocabulary.
func IsValidTrigger(trigger string) bool {
	return workflowTriggers[trigger]
}
