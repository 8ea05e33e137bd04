package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tarsy-labs/agentcore/pkg/config"
)

func newTestService(t *testing.T, inputCfg InputMaskingConfig) *MaskingService {
	t.Helper()
	registry := config.NewToolServerRegistry(map[string]*config.ToolServerConfig{
		"masked-server": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio, Command: "srv"},
			DataMasking: &config.MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"security"},
				Patterns:      []string{"email"},
				CustomPatterns: []config.MaskingPattern{
					{Pattern: `ticket-\d{6}`, Replacement: "***MASKED_TICKET***"},
				},
			},
		},
		"open-server": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio, Command: "srv"},
		},
	})
	return NewMaskingService(registry, inputCfg)
}

func TestMaskToolResultPatterns(t *testing.T) {
	svc := newTestService(t, InputMaskingConfig{})

	in := `api_key: "sk-fake-1234567890abcdef" contact admin@example.com ref ticket-123456`
	out := svc.MaskToolResult(in, "masked-server")

	assert.NotContains(t, out, "sk-fake-1234567890abcdef")
	assert.NotContains(t, out, "admin@example.com")
	assert.Contains(t, out, "***MASKED_TICKET***")
}

func TestMaskToolResultUnconfiguredServer(t *testing.T) {
	svc := newTestService(t, InputMaskingConfig{})

	in := `password: "hunter2hunter2"`
	assert.Equal(t, in, svc.MaskToolResult(in, "open-server"))
	assert.Equal(t, in, svc.MaskToolResult(in, "no-such-server"))
}

func TestMaskInputData(t *testing.T) {
	svc := newTestService(t, InputMaskingConfig{Enabled: true, PatternGroup: "security"})

	out := svc.MaskInputData(`token = "abcdef0123456789abcdef"`)
	assert.NotContains(t, out, "abcdef0123456789abcdef")

	// Disabled masking passes data through.
	off := newTestService(t, InputMaskingConfig{})
	in := `token = "abcdef0123456789abcdef"`
	assert.Equal(t, in, off.MaskInputData(in))
}

func TestDotenvSecretMasker(t *testing.T) {
	m := &DotenvSecretMasker{}

	in := "LOG_LEVEL=debug\nexport OPENAI_API_KEY=sk-fake-abc123\nDB_PASSWORD=hunter2\n"
	assert.True(t, m.AppliesTo(in))

	out := m.Mask(in)
	assert.Contains(t, out, "LOG_LEVEL=debug")
	assert.Contains(t, out, "OPENAI_API_KEY="+MaskedEnvValue)
	assert.Contains(t, out, "DB_PASSWORD="+MaskedEnvValue)
	assert.NotContains(t, out, "sk-fake-abc123")
	assert.NotContains(t, out, "hunter2")
}

func TestLeakageDetector(t *testing.T) {
	d := NewLeakageDetector([]string{"CANARY-7f3a", ""})

	marker, found := d.Detect("normal output")
	assert.False(t, found)
	assert.Empty(t, marker)

	marker, found = d.Detect("leaked: CANARY-7f3a inside")
	assert.True(t, found)
	assert.Equal(t, "CANARY-7f3a", marker)
}
