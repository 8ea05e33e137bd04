package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/contracts"
)

type stubProvider struct {
	name  string
	model string
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return s.model }
func (s *stubProvider) Complete(_ context.Context, _ contracts.CompletionRequest) (*contracts.CompletionResult, error) {
	return &contracts.CompletionResult{Content: "from " + s.name, FinishReason: contracts.FinishStop}, nil
}

func TestResolveByPrefix(t *testing.T) {
	r := NewRouter()
	r.Register(&stubProvider{name: "openai", model: "gpt-4o"}, []string{"gpt-"})
	r.Register(&stubProvider{name: "anthropic", model: "claude-sonnet-4-5"}, []string{"claude-"})

	p, err := r.Resolve("claude-haiku")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())

	p, err = r.Resolve("gpt-4.1")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestResolveLongestPrefixWins(t *testing.T) {
	r := NewRouter()
	r.Register(&stubProvider{name: "generic", model: "gpt-4o"}, []string{"gpt-"})
	r.Register(&stubProvider{name: "special", model: "gpt-4o-audio"}, []string{"gpt-4o-audio"})

	p, err := r.Resolve("gpt-4o-audio-preview")
	require.NoError(t, err)
	assert.Equal(t, "special", p.Name())
}

func TestResolveAmbiguousPrefixDeterministic(t *testing.T) {
	// Two providers claim the identical prefix; lexicographic provider
	// order breaks the tie, regardless of registration order.
	r := NewRouter()
	r.Register(&stubProvider{name: "zeta", model: "m"}, []string{"shared-"})
	r.Register(&stubProvider{name: "alpha", model: "m"}, []string{"shared-"})

	for i := 0; i < 5; i++ {
		p, err := r.Resolve("shared-model")
		require.NoError(t, err)
		assert.Equal(t, "alpha", p.Name())
	}
}

func TestResolveFallback(t *testing.T) {
	r := NewRouter()
	r.Register(&stubProvider{name: "first", model: "m1"}, []string{"m1-"})

	p, err := r.Resolve("totally-unknown")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Name())

	empty := NewRouter()
	_, err = empty.Resolve("anything")
	assert.Error(t, err)
}

func TestAutoRegisterIdempotent(t *testing.T) {
	registry := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"openai-default": {
			Type: config.LLMProviderTypeOpenAI, Model: "gpt-4o",
			ModelPrefixes: []string{"gpt-"}, MaxToolResultTokens: 4000,
		},
		"anthropic-default": {
			Type: config.LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5",
			ModelPrefixes: []string{"claude-"}, MaxToolResultTokens: 4000,
		},
	})

	first := AutoRegister(registry)
	second := AutoRegister(registry)
	assert.Equal(t, first.ProviderNames(), second.ProviderNames())

	models, err := first.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"claude-sonnet-4-5", "gpt-4o"}, models)
}
