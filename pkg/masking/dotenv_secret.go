package masking

import (
	"regexp"
	"strings"
)

// MaskedEnvValue is the replacement string for masked env-file values.
const MaskedEnvValue = "[MASKED_ENV_VALUE]"

// envLinePattern matches KEY=VALUE lines, optionally "export"-prefixed.
var envLinePattern = regexp.MustCompile(`(?m)^(\s*(?:export\s+)?)([A-Z][A-Z0-9_]*)=(.+)$`)

// sensitiveKeyPattern marks which env keys carry secrets.
var sensitiveKeyPattern = regexp.MustCompile(`(?i)(KEY|TOKEN|SECRET|PASSWORD|PASSWD|CREDENTIAL|AUTH)`)

// DotenvSecretMasker masks values of secret-looking keys in env-file
// shaped content (.env dumps, `env` output, export blocks) while leaving
// non-sensitive assignments like LOG_LEVEL=debug readable.
type DotenvSecretMasker struct{}

// Name returns the unique identifier for this masker.
func (m *DotenvSecretMasker) Name() string { return "dotenv_secret" }

// AppliesTo performs a lightweight check on whether this masker should
// process the data.
func (m *DotenvSecretMasker) AppliesTo(data string) bool {
	if !strings.Contains(data, "=") {
		return false
	}
	return envLinePattern.MatchString(data)
}

// Mask replaces values of sensitive keys line by line. Non-matching lines
// pass through unchanged.
func (m *DotenvSecretMasker) Mask(data string) string {
	return envLinePattern.ReplaceAllStringFunc(data, func(line string) string {
		parts := envLinePattern.FindStringSubmatch(line)
		if parts == nil {
			return line
		}
		prefix, key := parts[1], parts[2]
		if !sensitiveKeyPattern.MatchString(key) {
			return line
		}
		return prefix + key + "=" + MaskedEnvValue
	})
}
