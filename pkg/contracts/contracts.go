// Package contracts defines the capability sets the core consumes from and
// exposes to external collaborators. The core never assumes a
// concrete model provider, persistence engine, or code sandbox — it depends
// only on these interfaces, and every concrete component elsewhere in this
// module is written against them.
package contracts

import "context"

// Role is a conversation message role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCallRequest is a model-proposed tool invocation.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments string // JSON-encoded
}

// Message is one turn of a conversation passed to the model router.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCallRequest // set on assistant messages proposing tool calls
	ToolCallID string            // set on tool-role messages
	ToolName   string            // set on tool-role messages
}

// FinishReason mirrors the model router's stop reason for a single call.
type FinishReason string

const (
	FinishStop      FinishReason = "stop"
	FinishToolCalls FinishReason = "tool_calls"
)

// ToolSpec describes a callable tool to the model.
type ToolSpec struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// Usage aggregates token consumption for a single completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// CompletionRequest is the input to ModelRouter.Complete.
type CompletionRequest struct {
	Messages    []Message
	Model       string
	Temperature float64
	MaxTokens   int
	Tools       []ToolSpec
	SystemPrompt string
}

// CompletionResult is the output of ModelRouter.Complete.
type CompletionResult struct {
	Content      string
	FinishReason FinishReason
	ToolCalls    []ToolCallRequest
	Usage        Usage
}

// ModelRouter resolves model identifiers to provider implementations and
// performs completions against them.
type ModelRouter interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	ListModels(ctx context.Context) ([]string, error)
}

// ToolExecutionContext carries ambient data a tool implementation may need
// (caller identity, working directory, etc.) without coupling the contract
// to any one governance or autonomy implementation.
type ToolExecutionContext struct {
	TenantID string
	Scopes   []string
	Extra    map[string]string
}

// ToolResult is the outcome of a single tool execution.
type ToolResult struct {
	Success bool
	Content string
	Error   string
}

// Tool is a single callable capability exposed to the reasoning loop.
type Tool interface {
	Name() string
	Description() string
	Schema() string // JSON Schema for arguments
	Execute(ctx context.Context, args string, tc ToolExecutionContext) (*ToolResult, error)
}

// ToolRegistry resolves tool names to implementations.
type ToolRegistry interface {
	Get(name string) (Tool, bool)
	List() []Tool
}

// AgentSummary is the minimal agent-definition view the registry contract
// exposes to callers outside pkg/agentdef (avoids a package cycle).
type AgentSummary struct {
	Name    string
	Role    string
	Version string
}

// AgentRegistry resolves agent names to their definitions.
type AgentRegistry interface {
	Get(name string) (AgentSummary, bool)
	ListAll() []AgentSummary
}

// CodeExecContract is the input to CodeExecutor.Execute.
type CodeExecContract struct {
	ToolID      string
	AdapterID   string
	Arguments   map[string]string
	Environment map[string]string
	WorkingDir  string
	TimeoutMS   int
	MaxOutputKB int
}

// CodeExecResult is the output of CodeExecutor.Execute.
type CodeExecResult struct {
	Success    bool
	ExitCode   int
	Stdout     string
	Stderr     string
	DurationMS int64
	Truncated  bool
}

// CodeExecutor runs sandboxed workflow actions.
type CodeExecutor interface {
	Execute(ctx context.Context, contract CodeExecContract) (*CodeExecResult, error)
}

// EmbeddingProvider turns text into vectors for hybrid retrieval.
// The core never embeds a concrete provider, only the
// brute-force cosine index that consumes vectors this contract returns.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Searchable is satisfied by anything producing a ranked result list for a
// query string — the BM25 index and any pluggable vector store alike.
type Searchable interface {
	Search(ctx context.Context, query string, limit int) ([]RankedResult, error)
}

// RankedResult is one entry in a ranked search result list.
type RankedResult struct {
	DocID string
	Score float64
}

// Page describes pagination parameters accepted by Persistence list methods.
type Page struct {
	Limit  int
	Offset int
}

// Persistence is the opaque CRUD surface the core requires of a store.
// The core never assumes SQL; any backend satisfying this
// interface can back traces, failures, budgets, releases, and comparative
// samples.
type Persistence interface {
	SaveTrace(ctx context.Context, rec any) error
	SaveFailure(ctx context.Context, rec any) error
	SaveBudget(ctx context.Context, rec any) error
	SaveRelease(ctx context.Context, rec any) error
	SaveSample(ctx context.Context, rec any) error
	ListTraces(ctx context.Context, filter map[string]string, page Page) ([]any, error)
}
