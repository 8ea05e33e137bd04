// Package toolloop implements the bounded driver that alternates model
// completion and tool execution until the agent produces a final answer
// or hits a termination condition.
package toolloop

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tarsy-labs/agentcore/pkg/contracts"
	"github.com/tarsy-labs/agentcore/pkg/trace"
)

// TerminationReason is the fixed set of reasons a loop can end with.
type TerminationReason string

const (
	ReasonCompleted          TerminationReason = "completed"
	ReasonError              TerminationReason = "error"
	ReasonToolGovernanceDeny TerminationReason = "tool_governance_denied"
	ReasonBudgetExceeded     TerminationReason = "budget_exceeded"
	ReasonMaxIterations      TerminationReason = "max_iterations"
	ReasonContextExhausted   TerminationReason = "context_exhausted"
	ReasonLeakageDetected    TerminationReason = "leakage_detected"
)

// FailureCode maps a termination reason to its failure-taxonomy subcode,
// defined once in pkg/trace so every component shares one taxonomy
// surface. completed and max_iterations are not failures.
var FailureCode = map[TerminationReason]string{
	ReasonError:              trace.SubcodeToolLoopError,
	ReasonToolGovernanceDeny: trace.SubcodeToolLoopGovernanceDenied,
	ReasonBudgetExceeded:     trace.SubcodeToolLoopBudgetExceeded,
	ReasonContextExhausted:   trace.SubcodeToolLoopContextExhausted,
	ReasonLeakageDetected:    trace.SubcodeToolLoopLeakageDetected,
}

// DefaultMaxConsecutiveErrors bounds back-to-back recoverable tool
// errors before the loop gives up.
const DefaultMaxConsecutiveErrors = 3

// GovernanceChecker decides whether a proposed tool call is permitted.
type GovernanceChecker interface {
	Check(ctx context.Context, toolName string, args map[string]string) (allowed bool, reason string)
}

// AutonomyChecker decides whether budget/iteration/context limits stop
// the loop before a tool executes. The proposed tool's name is passed so
// checkers can account per-resource consumption (e.g. the network
// request cap only applies to network-bound tools).
type AutonomyChecker interface {
	// CheckBeforeToolCall returns ("", true) to proceed, or a non-empty
	// TerminationReason (one of ReasonBudgetExceeded, ReasonMaxIterations,
	// ReasonContextExhausted) plus false to stop.
	CheckBeforeToolCall(ctx context.Context, toolName string) (TerminationReason, bool)
}

// ToolExecutor runs a named tool with validated, JSON-decoded arguments.
type ToolExecutor interface {
	Execute(ctx context.Context, toolName string, args map[string]any) (*contracts.ToolResult, error)
}

// ToolCallRecord is one tool invocation made during the loop.
type ToolCallRecord struct {
	Name      string
	Arguments map[string]any
	Output    string
	Error     string
}

// Result is the loop's termination outcome.
type Result struct {
	FinalText     string
	Iterations    int
	ToolCalls     []ToolCallRecord
	ToolNameOrder []string
	Reason        TerminationReason
	FailureCode   string // empty for completed/max_iterations
}

// Config bundles the loop's fixed inputs.
type Config struct {
	Router               contracts.ModelRouter
	Tools                []contracts.ToolSpec
	ToolExecutor         ToolExecutor
	Governance           GovernanceChecker
	Autonomy             AutonomyChecker
	Model                string
	Temperature          float64
	SystemPrompt         string
	MaxIterations        int
	MaxConsecutiveErrors int // 0 => DefaultMaxConsecutiveErrors
	OutputCap            int // 0 => no truncation
	LeakageMarker        string
}

// Run drives the loop to completion.
func Run(ctx context.Context, cfg Config, initial []contracts.Message) Result {
	maxConsecutive := cfg.MaxConsecutiveErrors
	if maxConsecutive <= 0 {
		maxConsecutive = DefaultMaxConsecutiveErrors
	}

	messages := append([]contracts.Message(nil), initial...)
	result := Result{}
	consecutiveErrors := 0

	for i := 1; i <= cfg.MaxIterations; i++ {
		result.Iterations = i

		completion, err := cfg.Router.Complete(ctx, contracts.CompletionRequest{
			Model:        cfg.Model,
			Messages:     messages,
			Tools:        cfg.Tools,
			Temperature:  cfg.Temperature,
			SystemPrompt: cfg.SystemPrompt,
		})
		if err != nil {
			return finish(result, ReasonError)
		}

		if completion.FinishReason != contracts.FinishToolCalls {
			result.FinalText = completion.Content
			return finish(result, ReasonCompleted)
		}

		messages = append(messages, contracts.Message{
			Role: contracts.RoleAssistant, Content: completion.Content, ToolCalls: completion.ToolCalls,
		})

		for _, call := range completion.ToolCalls {
			args, decodeErr := decodeArgs(call.Arguments)
			if decodeErr == nil {
				decodeErr = validateArgs(call.Name, args, cfg.Tools)
			}
			if decodeErr != nil {
				messages = append(messages, toolErrorMessage(call, decodeErr.Error()))
				consecutiveErrors++
				if consecutiveErrors > maxConsecutive {
					return finish(result, ReasonError)
				}
				continue
			}
			consecutiveErrors = 0

			if cfg.Governance != nil {
				if allowed, reason := cfg.Governance.Check(ctx, call.Name, stringifyArgs(args)); !allowed {
					result.ToolCalls = append(result.ToolCalls, ToolCallRecord{Name: call.Name, Arguments: args, Error: reason})
					return finish(result, ReasonToolGovernanceDeny)
				}
			}

			if cfg.Autonomy != nil {
				if reason, ok := cfg.Autonomy.CheckBeforeToolCall(ctx, call.Name); !ok {
					return finish(result, reason)
				}
			}

			toolResult, execErr := cfg.ToolExecutor.Execute(ctx, call.Name, args)
			rec := ToolCallRecord{Name: call.Name, Arguments: args}
			if execErr != nil {
				rec.Error = execErr.Error()
				result.ToolCalls = append(result.ToolCalls, rec)
				messages = append(messages, toolErrorMessage(call, execErr.Error()))
				continue
			}

			output := toolResult.Content
			if cfg.OutputCap > 0 && len(output) > cfg.OutputCap {
				output = output[:cfg.OutputCap]
			}
			rec.Output = output
			result.ToolCalls = append(result.ToolCalls, rec)
			result.ToolNameOrder = append(result.ToolNameOrder, call.Name)
			messages = append(messages, contracts.Message{
				Role: contracts.RoleTool, Content: output, ToolCallID: call.ID, ToolName: call.Name,
			})

			if cfg.LeakageMarker != "" && strings.Contains(output, cfg.LeakageMarker) {
				return finish(result, ReasonLeakageDetected)
			}
		}
	}

	return finish(result, ReasonMaxIterations)
}

func finish(result Result, reason TerminationReason) Result {
	result.Reason = reason
	result.FailureCode = FailureCode[reason]
	return result
}

func decodeArgs(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, invalidArgsError{cause: err}
	}
	return out, nil
}

type invalidArgsError struct{ cause error }

func (e invalidArgsError) Error() string { return "invalid tool arguments: " + e.cause.Error() }

func validateArgs(toolName string, args map[string]any, tools []contracts.ToolSpec) error {
	for _, t := range tools {
		if t.Name != toolName {
			continue
		}
		if t.ParametersSchema == "" {
			return nil
		}
		var schema map[string]any
		if err := json.Unmarshal([]byte(t.ParametersSchema), &schema); err != nil {
			return nil // malformed schema is a tool-definition problem, not a call-time error
		}
		return validateAgainstSchema(args, schema)
	}
	return unknownToolError{name: toolName}
}

type unknownToolError struct{ name string }

func (e unknownToolError) Error() string { return "unknown tool: " + e.name }

// validateAgainstSchema performs a minimal JSON-schema required-field check
// sufficient for the loop's own validation gate; deeper schema validation is
// delegated to the tool implementation.
func validateAgainstSchema(args map[string]any, schema map[string]any) error {
	required, _ := schema["required"].([]any)
	for _, r := range required {
		key, _ := r.(string)
		if key == "" {
			continue
		}
		if _, ok := args[key]; !ok {
			return missingFieldError{field: key}
		}
	}
	return nil
}

type missingFieldError struct{ field string }

func (e missingFieldError) Error() string { return "missing required argument: " + e.field }

func toolErrorMessage(call contracts.ToolCallRequest, errMsg string) contracts.Message {
	return contracts.Message{Role: contracts.RoleTool, Content: errMsg, ToolCallID: call.ID, ToolName: call.Name}
}

func stringifyArgs(args map[string]any) map[string]string {
	out := make(map[string]string, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			continue
		}
		out[k] = string(b)
	}
	return out
}
