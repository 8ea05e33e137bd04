package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultSizeThresholdTokens is applied to tool servers that enable
// summarization without declaring a threshold.
const DefaultSizeThresholdTokens = 5000

// CoreYAMLConfig represents the complete agentcore.yaml file structure
type CoreYAMLConfig struct {
	System      *SystemYAMLConfig           `yaml:"system"`
	ToolServers map[string]ToolServerConfig `yaml:"tool_servers"`
	Agents      map[string]AgentConfig      `yaml:"agents"`
	Workflows   map[string]WorkflowConfig   `yaml:"workflows"`
	Defaults    *Defaults                   `yaml:"defaults"`
	Queue       *QueueConfig                `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string                `yaml:"dashboard_url"`
	AllowedWSOrigins []string              `yaml:"allowed_ws_origins"`
	Governance       *GovernanceConfig     `yaml:"governance"`
	GateThresholds   []GateThresholdConfig `yaml:"gate_thresholds"`
	Retention        *RetentionConfig      `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Apply tool server defaults (e.g. size_threshold_tokens)
//  6. Build in-memory registries
//  7. Apply default values
//  8. Validate all configuration
//  9. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"workflows", stats.Workflows,
		"tool_servers", stats.ToolServers,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load agentcore.yaml (tool_servers, agents, workflows, defaults)
	coreConfig, err := loader.loadCoreYAML()
	if err != nil {
		return nil, NewLoadError("agentcore.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, coreConfig.Agents)
	toolServers := mergeToolServers(builtin.ToolServers, coreConfig.ToolServers)
	workflows := mergeWorkflows(builtin.WorkflowDefinitions, coreConfig.Workflows)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Apply tool server defaults (before validation)
	for _, server := range toolServers {
		if server.Summarization != nil && server.Summarization.Enabled && server.Summarization.SizeThresholdTokens == 0 {
			server.Summarization.SizeThresholdTokens = DefaultSizeThresholdTokens
		}
	}

	// 6. Build registries
	agentRegistry := NewAgentRegistry(agents)
	toolServerRegistry := NewToolServerRegistry(toolServers)
	workflowRegistry := NewWorkflowRegistry(workflows)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 7. Resolve defaults (YAML overrides built-in)
	defaults := coreConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.AutonomyLevel == "" {
		defaults.AutonomyLevel = AutonomyLevelSupervised
	}
	if defaults.SuccessPolicy == "" {
		defaults.SuccessPolicy = SuccessPolicyAny
	}
	if defaults.InputMasking == nil {
		defaults.InputMasking = &InputMaskingDefaults{
			Enabled:      true,
			PatternGroup: "security",
		}
	}

	// Resolve queue config (merge user YAML with built-in defaults)
	queueConfig := DefaultQueueConfig()
	if coreConfig.Queue != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(queueConfig, coreConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// Resolve system config
	governanceCfg := resolveGovernanceConfig(coreConfig.System)
	retentionCfg := resolveRetentionConfig(coreConfig.System)
	dashboardURL := resolveDashboardURL(coreConfig.System)
	allowedWSOrigins := resolveAllowedWSOrigins(coreConfig.System)

	var gateThresholds []GateThresholdConfig
	if coreConfig.System != nil {
		gateThresholds = coreConfig.System.GateThresholds
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Retention:           retentionCfg,
		Governance:          governanceCfg,
		GateThresholds:      gateThresholds,
		DashboardURL:        dashboardURL,
		AllowedWSOrigins:    allowedWSOrigins,
		AgentRegistry:       agentRegistry,
		WorkflowRegistry:    workflowRegistry,
		ToolServerRegistry:  toolServerRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables before parsing
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCoreYAML() (*CoreYAMLConfig, error) {
	var config CoreYAMLConfig

	// Initialize maps to avoid nil maps
	config.ToolServers = make(map[string]ToolServerConfig)
	config.Agents = make(map[string]AgentConfig)
	config.Workflows = make(map[string]WorkflowConfig)

	if err := l.loadYAML("agentcore.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveGovernanceConfig resolves governance defaults from system YAML.
func resolveGovernanceConfig(sys *SystemYAMLConfig) *GovernanceConfig {
	cfg := &GovernanceConfig{
		CallsPerMinute: 60,
		BurstPerSecond: 10,
	}

	if sys == nil || sys.Governance == nil {
		return cfg
	}

	g := sys.Governance
	if len(g.Scopes) > 0 {
		cfg.Scopes = g.Scopes
	}
	if len(g.CommandAllowlist) > 0 {
		cfg.CommandAllowlist = g.CommandAllowlist
	}
	if len(g.PathAllowlist) > 0 {
		cfg.PathAllowlist = g.PathAllowlist
	}
	if len(g.DomainAllowlist) > 0 {
		cfg.DomainAllowlist = g.DomainAllowlist
	}
	if g.CallsPerMinute > 0 {
		cfg.CallsPerMinute = g.CallsPerMinute
	}
	if g.BurstPerSecond > 0 {
		cfg.BurstPerSecond = g.BurstPerSecond
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system
// YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.RunRetentionDays > 0 {
		cfg.RunRetentionDays = r.RunRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML,
// applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns
// from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
