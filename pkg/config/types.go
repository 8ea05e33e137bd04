package config

// Shared types used across configuration structs

// TransportConfig defines tool server transport configuration
type TransportConfig struct {
	Type TransportType `yaml:"type" validate:"required"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// For http/sse transport
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	VerifySSL   *bool  `yaml:"verify_ssl,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"` // In seconds
}

// MaskingConfig defines data masking configuration for tool servers
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern
type MaskingPattern struct {
	Pattern     string `yaml:"pattern" validate:"required"`
	Replacement string `yaml:"replacement" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// SummarizationConfig defines when and how to summarize large tool responses
type SummarizationConfig struct {
	Enabled              bool `yaml:"enabled"`
	SizeThresholdTokens  int  `yaml:"size_threshold_tokens,omitempty" validate:"omitempty,min=100"`
	SummaryMaxTokenLimit int  `yaml:"summary_max_token_limit,omitempty" validate:"omitempty,min=50"`
}

// ConstraintsConfig bounds a single agent execution at the YAML layer.
type ConstraintsConfig struct {
	MaxTokens       int  `yaml:"max_tokens,omitempty" validate:"omitempty,min=100,max=200000"`
	TimeoutSeconds  int  `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=10,max=3600"`
	MaxRetries      int  `yaml:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`
	ParallelAllowed bool `yaml:"parallel_allowed,omitempty"`
}

// GovernanceConfig defines the caller-context allowlists handed to the
// governance evaluator.
type GovernanceConfig struct {
	Scopes           []string `yaml:"scopes,omitempty"`
	CommandAllowlist []string `yaml:"command_allowlist,omitempty"`
	PathAllowlist    []string `yaml:"path_allowlist,omitempty"`
	DomainAllowlist  []string `yaml:"domain_allowlist,omitempty"`

	// Rate limits applied per caller scope
	CallsPerMinute int `yaml:"calls_per_minute,omitempty"`
	BurstPerSecond int `yaml:"burst_per_second,omitempty"`
}

// RetryConfig bounds a workflow step's retries at the YAML layer.
type RetryConfig struct {
	MaxAttempts  int `yaml:"max_attempts,omitempty" validate:"omitempty,min=1,max=10"`
	DelaySeconds int `yaml:"delay_seconds,omitempty" validate:"omitempty,min=1"`
}

// GateThresholdConfig overrides or extends the gate engine's built-in
// thresholds from YAML.
type GateThresholdConfig struct {
	Metric        string  `yaml:"metric" validate:"required"`
	Gate          string  `yaml:"gate" validate:"required"`
	Operator      string  `yaml:"operator" validate:"required"`
	Value         float64 `yaml:"value"`
	Action        string  `yaml:"action" validate:"required"`
	BypassAllowed bool    `yaml:"bypass_allowed,omitempty"`
}
