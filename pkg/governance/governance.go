// Package governance evaluates tool-call permission as a pure function
// plus a rate-limiter side effect. Checks run in a fixed order: rate
// limit, autonomy filter, scope, shell validation, path allowlist,
// domain allowlist.
package governance

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tarsy-labs/agentcore/pkg/agentdef"
)

// writeSet is the tool set denied in read-only autonomy mode.
var writeSet = map[string]bool{
	"shell":     true,
	"file_ops":  true,
	"browser":   true,
}

// defaultScopes maps a tool name to its required scope. Unlisted tools
// default to "tools:execute".
var defaultScopes = map[string]string{
	"shell":     "tools:shell",
	"file_ops":  "tools:files",
	"web_fetch": "tools:network",
	"browser":   "tools:browser",
}

func requiredScope(tool string) string {
	if s, ok := defaultScopes[tool]; ok {
		return s
	}
	return "tools:execute"
}

// CallerContext carries the caller-side permission inputs to Evaluate.
type CallerContext struct {
	Scopes          []string
	CommandAllowlist []string // empty = no restriction
	PathAllowlist    []string // empty = no restriction
	DomainAllowlist  []string // empty = no restriction
	Autonomy         agentdef.AutonomyLevel
}

func (c CallerContext) hasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func (c CallerContext) firstScope() string {
	if len(c.Scopes) == 0 {
		return AnonymousKey
	}
	return c.Scopes[0]
}

// Decision is the outcome of a governance evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

var allowDecision = Decision{Allowed: true}

// shellMetaRegex rejects command substitution.
var shellMetaRegex = regexp.MustCompile("\\$\\(|`")

// Evaluate runs the six-step algorithm in strict order
// against a single (tool, args, caller) triple.
func (g *Evaluator) Evaluate(tool string, args map[string]string, caller CallerContext, now time.Time) Decision {
	// 1. Rate limit
	if !g.limiter.Allow(caller.firstScope(), now) {
		return deny("rate limit exceeded")
	}

	// 2. Autonomy filter
	if caller.Autonomy == agentdef.AutonomyReadOnly && writeSet[tool] {
		return deny("tool blocked: write-set tool under read-only autonomy")
	}
	if caller.Autonomy == agentdef.AutonomySupervised && tool == "file_ops" && args["operation"] == "write" {
		g.logDestructive(tool, args)
		// Supervised mode currently allows.
	}

	// 3. Scope check
	scope := requiredScope(tool)
	if !caller.hasScope(scope) {
		return deny("missing required scope: " + scope)
	}

	// 4. Shell validation
	if tool == "shell" {
		if d := validateShell(args["command"], caller.CommandAllowlist); !d.Allowed {
			return d
		}
	}

	// 5. Path allowlist
	if tool == "file_ops" && len(caller.PathAllowlist) > 0 {
		path := args["path"]
		if !hasPrefixAny(path, caller.PathAllowlist) {
			return deny("path not in allowlist: " + path)
		}
	}

	// 6. Domain allowlist + SSRF guard
	if tool == "web_fetch" {
		if len(caller.DomainAllowlist) > 0 {
			host, err := hostnameOf(args["url"])
			if err != nil || !domainAllowed(host, caller.DomainAllowlist) {
				return deny("domain not in allowlist for url: " + args["url"])
			}
		}
		if err := ValidateOutboundURL(args["url"]); err != nil {
			return deny(err.Error())
		}
	}

	return allowDecision
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hostnameOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return u.Hostname(), nil
}

func domainAllowed(host string, allowlist []string) bool {
	for _, entry := range allowlist {
		if host == entry || strings.HasSuffix(host, "."+entry) {
			return true
		}
	}
	return false
}

// shellSeparators splits a compound shell command into segments.
var shellSeparators = regexp.MustCompile(`\|\||&&|\||;`)

func validateShell(command string, allowlist []string) Decision {
	if shellMetaRegex.MatchString(command) {
		return deny("command substitution is not permitted")
	}
	if len(allowlist) == 0 {
		return allowDecision
	}
	segments := shellSeparators.Split(command, -1)
	for _, seg := range segments {
		fields := strings.Fields(seg)
		if len(fields) == 0 {
			continue // empty segment, skip
		}
		exe := fields[0]
		if !containsStr(allowlist, exe) {
			return deny("executable not in command allowlist: " + exe)
		}
	}
	return allowDecision
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
