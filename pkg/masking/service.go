// Package masking redacts sensitive data from tool results and run
// inputs, and detects output leakage markers for the reasoning loop.
package masking

import (
	"log/slog"

	"github.com/tarsy-labs/agentcore/pkg/config"
)

// InputMaskingConfig holds run input masking settings.
type InputMaskingConfig struct {
	Enabled      bool
	PatternGroup string
}

// MaskingService applies data masking to tool results and submitted run
// inputs. Created once at application startup (singleton). Thread-safe
// and stateless aside from compiled patterns.
type MaskingService struct {
	registry             *config.ToolServerRegistry
	patterns             map[string]*CompiledPattern // Built-in + custom compiled patterns
	patternGroups        map[string][]string         // Group name → pattern names
	codeMaskers          map[string]Masker           // Registered code-based maskers
	inputMasking         InputMaskingConfig          // Run input masking settings
	serverCustomPatterns map[string][]string         // serverID → custom pattern keys
}

// NewMaskingService creates a masking service with compiled patterns and
// registered maskers. All patterns are compiled eagerly at creation time.
// Invalid patterns are logged and skipped.
func NewMaskingService(
	registry *config.ToolServerRegistry,
	inputCfg InputMaskingConfig,
) *MaskingService {
	s := &MaskingService{
		registry:             registry,
		patterns:             make(map[string]*CompiledPattern),
		patternGroups:        config.GetBuiltinConfig().PatternGroups,
		codeMaskers:          make(map[string]Masker),
		inputMasking:         inputCfg,
		serverCustomPatterns: make(map[string][]string),
	}

	// 1. Compile all built-in regex patterns
	s.compileBuiltinPatterns()

	// 2. Compile custom patterns from all tool server configs
	s.compileCustomPatterns()

	// 3. Register code-based maskers
	s.registerMasker(&DotenvSecretMasker{})

	slog.Info("Masking service initialized",
		"builtin_patterns", len(config.GetBuiltinConfig().MaskingPatterns),
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers),
		"input_masking_enabled", inputCfg.Enabled)

	return s
}

// MaskToolResult applies server-specific masking to tool result content.
// Returns masked content. On masking failure, returns a redaction notice
// (fail-closed).
func (s *MaskingService) MaskToolResult(content string, serverID string) string {
	if content == "" {
		return content
	}

	serverCfg, err := s.registry.Get(serverID)
	if err != nil || serverCfg.DataMasking == nil || !serverCfg.DataMasking.Enabled {
		return content // No masking configured
	}

	resolved := s.resolvePatterns(serverCfg.DataMasking, serverID)
	if len(resolved.codeMaskerNames) == 0 && len(resolved.regexPatterns) == 0 {
		return content
	}

	masked, err := s.applyMasking(content, resolved)
	if err != nil {
		slog.Error("Masking failed, redacting content (fail-closed)",
			"server", serverID, "error", err)
		return "[REDACTED: data masking failure — tool result could not be safely processed]"
	}

	return masked
}

// MaskInputData applies masking to submitted run inputs using the
// configured pattern group. Returns masked data. On masking failure,
// returns original data (fail-open for inputs).
func (s *MaskingService) MaskInputData(data string) string {
	if !s.inputMasking.Enabled || data == "" {
		return data
	}

	resolved := s.resolvePatternsFromGroup(s.inputMasking.PatternGroup)
	if len(resolved.codeMaskerNames) == 0 && len(resolved.regexPatterns) == 0 {
		return data
	}

	masked, err := s.applyMasking(data, resolved)
	if err != nil {
		slog.Error("Input masking failed, continuing with unmasked data (fail-open)",
			"error", err)
		return data
	}

	return masked
}

// applyMasking applies code-based maskers then regex patterns to content.
func (s *MaskingService) applyMasking(content string, resolved *resolvedPatterns) (string, error) {
	masked := content

	// Phase 1: Code-based maskers (more specific, structural awareness)
	for _, maskerName := range resolved.codeMaskerNames {
		masker, ok := s.codeMaskers[maskerName]
		if !ok {
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	// Phase 2: Regex patterns (general sweep)
	for _, pattern := range resolved.regexPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked, nil
}

// registerMasker registers a code-based masker by its name.
func (s *MaskingService) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}
