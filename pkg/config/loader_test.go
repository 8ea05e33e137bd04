package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, coreYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agentcore.yaml"), []byte(coreYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProvidersYAML = `
llm_providers:
  test-provider:
    type: openai
    model: gpt-4o
    model_prefixes: ["gpt-"]
    api_key_env: OPENAI_API_KEY
    max_tool_result_tokens: 4000
`

func TestInitializeMinimal(t *testing.T) {
	dir := writeConfigFiles(t, `
agents:
  custom-agent:
    role: implementer
    capabilities: ["I-01"]
    tool_servers: ["workspace-server"]
    llm_provider: test-provider

workflows:
  custom-flow:
    version: "2.0.0"
    steps:
      - id: only
        action: invoke-agent
        agent: custom-agent
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User components plus built-ins.
	assert.True(t, cfg.AgentRegistry.Has("custom-agent"))
	assert.True(t, cfg.AgentRegistry.Has("implementer"), "built-in agents are merged in")
	assert.True(t, cfg.WorkflowRegistry.Has("custom-flow"))
	assert.True(t, cfg.WorkflowRegistry.Has("implement-and-verify"))
	assert.True(t, cfg.LLMProviderRegistry.Has("test-provider"))

	wf, err := cfg.GetWorkflow("custom-flow")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", wf.Version)

	// Defaults resolved.
	assert.Equal(t, AutonomyLevelSupervised, cfg.Defaults.AutonomyLevel)
	assert.Equal(t, SuccessPolicyAny, cfg.Defaults.SuccessPolicy)
	require.NotNil(t, cfg.Defaults.InputMasking)
	assert.True(t, cfg.Defaults.InputMasking.Enabled)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
}

func TestInitializeMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidReference(t *testing.T) {
	dir := writeConfigFiles(t, `
workflows:
  broken:
    steps:
      - id: s1
        action: invoke-agent
        agent: no-such-agent
`, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "no-such-agent")
}

func TestInitializeDuplicateStepIDs(t *testing.T) {
	dir := writeConfigFiles(t, `
workflows:
  dupes:
    steps:
      - id: same
        action: validate
      - id: same
        action: transform
`, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate step id")
}

func TestInitializeUnknownDependency(t *testing.T) {
	dir := writeConfigFiles(t, `
workflows:
  dangling:
    steps:
      - id: s1
        action: validate
        depends_on: ["ghost"]
`, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestQueueConfigMerge(t *testing.T) {
	dir := writeConfigFiles(t, `
queue:
  worker_count: 8
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	// Unset values keep their defaults.
	assert.Equal(t, 16, cfg.Queue.MaxConcurrentRuns)
}

func TestGateThresholdOverrides(t *testing.T) {
	dir := writeConfigFiles(t, `
system:
  gate_thresholds:
    - metric: M-01
      gate: G-PR
      operator: gte
      value: 85
      action: block
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	thresholds := cfg.EngineThresholds()
	require.Len(t, thresholds, 1)
	assert.Equal(t, 85.0, thresholds[0].Value)
}

func TestGateThresholdValidation(t *testing.T) {
	dir := writeConfigFiles(t, `
system:
  gate_thresholds:
    - metric: M-99
      gate: G-PR
      operator: gte
      value: 85
      action: block
`, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "M-99")
}
