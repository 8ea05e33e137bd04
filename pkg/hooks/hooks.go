// Package hooks implements the ordered middleware pipeline around every
// agent invocation, tool execution, workflow step, and inbound request.
// Hook instances are owned by the Registry; callers never
// mutate a registered definition directly.
package hooks

import (
	"context"
	"errors"
	"time"
)

// EventType is one of the eight fixed lifecycle events hooks attach to.
type EventType string

const (
	EventAgentInvokePre   EventType = "agent.invoke.pre"
	EventAgentInvokePost  EventType = "agent.invoke.post"
	EventToolExecutePre   EventType = "tool.execute.pre"
	EventToolExecutePost  EventType = "tool.execute.post"
	EventWorkflowStepPre  EventType = "workflow.step.pre"
	EventWorkflowStepPost EventType = "workflow.step.post"
	EventRequestPre       EventType = "request.pre"
	EventRequestPost      EventType = "request.post"
)

// FailMode is a hook's behavior when it times out or panics/errors.
type FailMode string

const (
	FailOpen   FailMode = "open"
	FailClosed FailMode = "closed"
)

// maxHooksPerEvent is the per-event cap enforced by the registry.
// Registrations past the cap are rejected.
const maxHooksPerEvent = 20

// DefaultChainTimeout is the default per-hook deadline.
const DefaultChainTimeout = 500 * time.Millisecond

// Context flows through the whole chain for one invocation. Hooks read and
// mutate it in place; Abort short-circuits everything downstream.
type Context struct {
	Event    EventType
	TenantID string
	Data     map[string]any // method/path/headers/body/etc, event-specific
	Metadata map[string]any // e.g. "hook_metrics"

	Abort       bool
	AbortReason string

	Results []HookResult
}

// NewContext creates an empty Context for the given event and tenant.
func NewContext(event EventType, tenantID string) *Context {
	return &Context{
		Event:    event,
		TenantID: tenantID,
		Data:     make(map[string]any),
		Metadata: make(map[string]any),
	}
}

// HookResult is the per-hook outcome recorded for every attempted hook.
type HookResult struct {
	HookName   string
	Success    bool
	Error      string
	DurationMS int64
}

// CallNext is the downstream continuation a hook invokes to proceed.
type CallNext func(ctx context.Context, hc *Context) error

// Handler is the hook's executable body. It receives the downstream
// continuation and decides whether, when, and how to invoke it.
type Handler func(ctx context.Context, hc *Context, next CallNext) error

// Definition is a single registered hook.
type Definition struct {
	ID        string
	Event     EventType
	Priority  int // 0-1000, lower runs first
	Handler   Handler
	TimeoutMS int // 0 < t <= 5000; 0 means DefaultChainTimeout
	Enabled   bool
	TenantID  string // "" = system-wide
	FailMode  FailMode
	Tags      []string
}

func (d *Definition) timeout() time.Duration {
	if d.TimeoutMS <= 0 {
		return DefaultChainTimeout
	}
	return time.Duration(d.TimeoutMS) * time.Millisecond
}

// ErrTooManyHooks is returned when registering a hook would exceed the
// per-event cap.
var ErrTooManyHooks = errors.New("hooks: event already has the maximum of 20 registered hooks")
