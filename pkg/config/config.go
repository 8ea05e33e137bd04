package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used
// throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Resolved system settings
	Queue            *QueueConfig
	Retention        *RetentionConfig
	Governance       *GovernanceConfig
	GateThresholds   []GateThresholdConfig
	DashboardURL     string
	AllowedWSOrigins []string

	// Component registries
	AgentRegistry       *AgentRegistry
	WorkflowRegistry    *WorkflowRegistry
	ToolServerRegistry  *ToolServerRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// ConfigStats contains statistics about loaded configuration
type ConfigStats struct {
	Agents       int
	Workflows    int
	ToolServers  int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() ConfigStats {
	return ConfigStats{
		Agents:       c.AgentRegistry.Len(),
		Workflows:    c.WorkflowRegistry.Len(),
		ToolServers:  c.ToolServerRegistry.Len(),
		LLMProviders: c.LLMProviderRegistry.Len(),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetWorkflow retrieves a workflow configuration by name.
// This is a convenience method that wraps WorkflowRegistry.Get().
func (c *Config) GetWorkflow(name string) (*WorkflowConfig, error) {
	return c.WorkflowRegistry.Get(name)
}

// GetToolServer retrieves a tool server configuration by ID.
// This is a convenience method that wraps ToolServerRegistry.Get().
func (c *Config) GetToolServer(serverID string) (*ToolServerConfig, error) {
	return c.ToolServerRegistry.Get(serverID)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}
