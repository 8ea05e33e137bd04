package governance

import (
	"testing"
	"time"

	"github.com/tarsy-labs/agentcore/pkg/agentdef"
)

func TestRateLimitBoundary(t *testing.T) {
	ev := NewEvaluator(3, 10)
	caller := CallerContext{Scopes: []string{"tools:execute"}}
	now := time.Now()

	for i := 0; i < 3; i++ {
		d := ev.Evaluate("noop", nil, caller, now)
		if !d.Allowed {
			t.Fatalf("call %d should be allowed within the per-minute cap", i+1)
		}
	}
	d := ev.Evaluate("noop", nil, caller, now)
	if d.Allowed {
		t.Fatalf("4th call should be denied by the per-minute cap of 3")
	}
}

func TestReadOnlyDeniesWriteSet(t *testing.T) {
	ev := NewEvaluator(100, 100)
	caller := CallerContext{Scopes: []string{"tools:shell"}, Autonomy: agentdef.AutonomyReadOnly}
	d := ev.Evaluate("shell", map[string]string{"command": "ls"}, caller, time.Now())
	if d.Allowed {
		t.Fatalf("read-only autonomy must deny shell tool")
	}
}

func TestShellRejectsCommandSubstitution(t *testing.T) {
	ev := NewEvaluator(100, 100)
	caller := CallerContext{Scopes: []string{"tools:shell"}, Autonomy: agentdef.AutonomyAutonomous}
	d := ev.Evaluate("shell", map[string]string{"command": "echo $(whoami)"}, caller, time.Now())
	if d.Allowed {
		t.Fatalf("command substitution must be rejected")
	}
}

func TestShellAllowlistPerSegment(t *testing.T) {
	ev := NewEvaluator(100, 100)
	caller := CallerContext{
		Scopes:           []string{"tools:shell"},
		Autonomy:         agentdef.AutonomyAutonomous,
		CommandAllowlist: []string{"git", "ls"},
	}
	d := ev.Evaluate("shell", map[string]string{"command": "git status && ls -la"}, caller, time.Now())
	if !d.Allowed {
		t.Fatalf("both segments are allowlisted, expected allow, got deny: %s", d.Reason)
	}

	d2 := ev.Evaluate("shell", map[string]string{"command": "git status && rm -rf /"}, caller, time.Now())
	if d2.Allowed {
		t.Fatalf("rm is not allowlisted, expected deny")
	}
}

func TestDomainAllowlistSuffix(t *testing.T) {
	ev := NewEvaluator(100, 100)
	caller := CallerContext{
		Scopes:          []string{"tools:network"},
		Autonomy:        agentdef.AutonomyAutonomous,
		DomainAllowlist: []string{"example.com"},
	}
	d := ev.Evaluate("web_fetch", map[string]string{"url": "https://api.example.com/data"}, caller, time.Now())
	if !d.Allowed {
		t.Fatalf("subdomain of allowlisted domain should be allowed: %s", d.Reason)
	}

	d2 := ev.Evaluate("web_fetch", map[string]string{"url": "https://evil.com/data"}, caller, time.Now())
	if d2.Allowed {
		t.Fatalf("non-allowlisted domain should be denied")
	}
}

func TestPathAllowlistPrefix(t *testing.T) {
	ev := NewEvaluator(100, 100)
	caller := CallerContext{
		Scopes:        []string{"tools:files"},
		Autonomy:      agentdef.AutonomyAutonomous,
		PathAllowlist: []string{"/workspace/"},
	}
	d := ev.Evaluate("file_ops", map[string]string{"path": "/workspace/main.go"}, caller, time.Now())
	if !d.Allowed {
		t.Fatalf("path inside allowlist should be allowed: %s", d.Reason)
	}
	d2 := ev.Evaluate("file_ops", map[string]string{"path": "/etc/passwd"}, caller, time.Now())
	if d2.Allowed {
		t.Fatalf("path outside allowlist should be denied")
	}
}
