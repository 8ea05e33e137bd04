// Package agentdef defines the agent descriptor and its read-mostly
// registry. Agent definitions are owned by the registry; callers receive
// borrowed references and never mutate a shared definition.
package agentdef

import (
	"fmt"
	"sync"
	"time"
)

// Role is one of the fixed agent roles, including two legacy aliases
// mapped at load time.
type Role string

const (
	RoleOrchestrator   Role = "orchestrator"
	RoleDirector       Role = "director"
	RoleImplementer    Role = "implementer"
	RoleQA             Role = "qa"
	RoleReviewer       Role = "reviewer"
	RoleResearcher     Role = "researcher"
	RoleDocumentation  Role = "documentation"
	RoleSecurity       Role = "security"
	RoleArchitect      Role = "architect"
	RoleTestEngineer   Role = "test-engineer"
)

// legacyRoleAliases maps deprecated role spellings to their current form.
// Applied once at load time by NewRegistry so the rest of the system never
// has to special-case an alias.
var legacyRoleAliases = map[Role]Role{
	"coder":  RoleImplementer,
	"tester": RoleTestEngineer,
}

// CanonicalRole resolves a legacy alias to its current role, or returns the
// role unchanged if it is not an alias.
func CanonicalRole(r Role) Role {
	if canon, ok := legacyRoleAliases[r]; ok {
		return canon
	}
	return r
}

// AutonomyLevel controls how much a tool-call may proceed without review.
type AutonomyLevel string

const (
	AutonomyReadOnly   AutonomyLevel = "read-only"
	AutonomySupervised AutonomyLevel = "supervised"
	AutonomyAutonomous AutonomyLevel = "autonomous"
)

// Status is the agent definition's lifecycle status.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusDeprecated Status = "deprecated"
	StatusRetired    Status = "retired"
)

// Constraints bounds an agent's single execution.
type Constraints struct {
	MaxTokens       int // >=100 <=200000
	TimeoutSeconds  int // >=10 <=3600
	MaxRetries      int // >=0 <=10
	ParallelAllowed bool
}

// Validate enforces the numeric ranges fixes for Constraints.
func (c Constraints) Validate() error {
	if c.MaxTokens < 100 || c.MaxTokens > 200_000 {
		return fmt.Errorf("agentdef: max_tokens %d out of range [100, 200000]", c.MaxTokens)
	}
	if c.TimeoutSeconds < 10 || c.TimeoutSeconds > 3600 {
		return fmt.Errorf("agentdef: timeout_seconds %d out of range [10, 3600]", c.TimeoutSeconds)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("agentdef: max_retries %d out of range [0, 10]", c.MaxRetries)
	}
	return nil
}

// GovernanceConstraints optionally narrows governance checks for this agent.
type GovernanceConstraints struct {
	Scope             []string
	Commands          []string
	NetworkAllowed    bool
	ApprovalRequired  []string
}

// Ownership records who owns and who escalates to for this agent.
type Ownership struct {
	Owner           string
	EscalationTarget string
}

// Definition is a named, versioned agent descriptor.
type Definition struct {
	Name         string
	Version      string
	Role         Role
	Capabilities []string // taxonomy capability IDs
	InputSchema  string   // JSON Schema
	OutputSchema string   // JSON Schema
	DependsOn    []string // other agent names
	PromptRefs   []string

	Constraints Constraints
	Autonomy    AutonomyLevel
	Governance  *GovernanceConstraints // optional
	Own         Ownership
	Status      Status

	CreatedAt time.Time
}

// Registry is the read-mostly agent definition store. Reads after the
// initial Freeze are lock-free; Register/Unregister take the write lock.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*Definition
	frozen  bool
	snapshot map[string]*Definition // immutable once frozen
}

// NewRegistry builds a registry from a set of definitions, performing a
// defensive copy so callers cannot mutate the registry's storage afterward.
func NewRegistry(defs map[string]*Definition) *Registry {
	copied := make(map[string]*Definition, len(defs))
	for k, v := range defs {
		d := *v
		d.Role = CanonicalRole(d.Role)
		copied[k] = &d
	}
	return &Registry{byName: copied}
}

// Freeze locks the registry's current contents as a read-only snapshot.
// After Freeze, Get/List never take the mutex.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return
	}
	snap := make(map[string]*Definition, len(r.byName))
	for k, v := range r.byName {
		snap[k] = v
	}
	r.snapshot = snap
	r.frozen = true
}

// Register adds or replaces a definition. Takes the write lock; safe to
// call concurrently with Get/List.
func (r *Registry) Register(def *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := *def
	d.Role = CanonicalRole(d.Role)
	r.byName[d.Name] = &d
	r.frozen = false
	r.snapshot = nil
}

// Unregister removes a definition by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byName, name)
	r.frozen = false
	r.snapshot = nil
}

// Get returns a borrowed reference to the named definition.
func (r *Registry) Get(name string) (*Definition, bool) {
	if snap := r.readSnapshot(); snap != nil {
		d, ok := snap[name]
		return d, ok
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

// ListAll returns all definitions in no particular order.
func (r *Registry) ListAll() []*Definition {
	var src map[string]*Definition
	if snap := r.readSnapshot(); snap != nil {
		src = snap
	} else {
		r.mu.RLock()
		src = r.byName
		defer r.mu.RUnlock()
	}
	out := make([]*Definition, 0, len(src))
	for _, v := range src {
		out = append(out, v)
	}
	return out
}

func (r *Registry) readSnapshot() map[string]*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.frozen {
		return r.snapshot
	}
	return nil
}
