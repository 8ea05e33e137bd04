package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/contracts"
	"github.com/tarsy-labs/agentcore/pkg/masking"
)

// Compile-time check that ToolExecutor implements contracts.ToolRegistry.
var _ contracts.ToolRegistry = (*ToolExecutor)(nil)

// ToolExecutor bridges tool servers to the reasoning loop: it discovers
// tools, exposes each as a contracts.Tool, executes calls, and applies
// server-specific output masking and truncation.
// Created per-execution by ClientFactory.
type ToolExecutor struct {
	client   *Client
	registry *config.ToolServerRegistry

	// Resolved list of server IDs this executor can access.
	serverIDs []string

	// Optional tool filter per server (from the agent definition's tool
	// selection). nil means all tools for that server are available.
	toolFilter map[string][]string // serverID → allowed tool names (nil = all)

	// Optional masking service for redacting sensitive data in tool results.
	// nil means no masking is applied.
	maskingService *masking.MaskingService
}

// NewToolExecutor creates a new executor for the given servers.
// maskingService may be nil (masking disabled).
func NewToolExecutor(
	client *Client,
	registry *config.ToolServerRegistry,
	serverIDs []string,
	toolFilter map[string][]string,
	maskingService *masking.MaskingService,
) *ToolExecutor {
	return &ToolExecutor{
		client:         client,
		registry:       registry,
		serverIDs:      serverIDs,
		toolFilter:     toolFilter,
		maskingService: maskingService,
	}
}

// remoteTool adapts one discovered server tool to the contracts.Tool
// interface. Execution routes back through the executor so masking,
// truncation, and recovery apply uniformly.
type remoteTool struct {
	executor    *ToolExecutor
	fullName    string // "server.tool"
	description string
	schema      string
}

func (t *remoteTool) Name() string        { return t.fullName }
func (t *remoteTool) Description() string { return t.description }
func (t *remoteTool) Schema() string      { return t.schema }

func (t *remoteTool) Execute(ctx context.Context, args string, _ contracts.ToolExecutionContext) (*contracts.ToolResult, error) {
	return t.executor.Execute(ctx, t.fullName, args)
}

// Execute runs a tool call via its server.
//
// Flow:
//  1. Normalize tool name (server__tool → server.tool)
//  2. Split and validate the server.tool name
//  3. Check server is in the allowed set, tool in the filter
//  4. Parse the arguments string into a parameter map
//  5. Call the server (with recovery on transport failures)
//  6. Apply data masking and storage truncation
//
// Tool-level failures come back as an unsuccessful ToolResult, not a Go
// error, so the model can observe and recover from them.
func (e *ToolExecutor) Execute(ctx context.Context, name, arguments string) (*contracts.ToolResult, error) {
	name = NormalizeToolName(name)

	serverID, toolName, err := e.resolveToolCall(name)
	if err != nil {
		return &contracts.ToolResult{Success: false, Error: err.Error()}, nil
	}

	params, err := ParseActionInput(arguments)
	if err != nil {
		return &contracts.ToolResult{
			Success: false,
			Error:   fmt.Sprintf("failed to parse tool arguments: %s", err),
		}, nil
	}

	result, err := e.client.CallTool(ctx, serverID, toolName, params)
	if err != nil {
		return &contracts.ToolResult{
			Success: false,
			Error:   fmt.Sprintf("tool execution failed: %s", err),
		}, nil
	}

	content := extractTextContent(result)
	if e.maskingService != nil {
		content = e.maskingService.MaskToolResult(content, serverID)
	}
	content = TruncateForStorage(content)

	if result.IsError {
		return &contracts.ToolResult{Success: false, Content: content, Error: content}, nil
	}
	return &contracts.ToolResult{Success: true, Content: content}, nil
}

// Get resolves a tool by its server-prefixed name.
func (e *ToolExecutor) Get(name string) (contracts.Tool, bool) {
	name = NormalizeToolName(name)
	serverID, toolName, err := e.resolveToolCall(name)
	if err != nil {
		return nil, false
	}

	tools, err := e.client.ListTools(context.Background(), serverID)
	if err != nil {
		return nil, false
	}
	for _, tool := range tools {
		if tool.Name == toolName {
			return &remoteTool{
				executor:    e,
				fullName:    name,
				description: tool.Description,
				schema:      marshalSchema(tool.InputSchema),
			}, true
		}
	}
	return nil, false
}

// List returns all available tools from the configured servers.
// Tools carry server-prefixed names (e.g. "workspace-server.read_file").
func (e *ToolExecutor) List() []contracts.Tool {
	var all []contracts.Tool

	for _, serverID := range e.serverIDs {
		tools, err := e.client.ListTools(context.Background(), serverID)
		if err != nil {
			// Log and continue — partial tools are better than none.
			slog.Warn("Failed to list tools from tool server",
				"server", serverID, "error", err)
			continue
		}

		for _, tool := range tools {
			if filter, ok := e.toolFilter[serverID]; ok && len(filter) > 0 {
				if !slices.Contains(filter, tool.Name) {
					continue
				}
			}
			all = append(all, &remoteTool{
				executor:    e,
				fullName:    fmt.Sprintf("%s.%s", serverID, tool.Name),
				description: tool.Description,
				schema:      marshalSchema(tool.InputSchema),
			})
		}
	}
	return all
}

// ToolSpecs returns the executor's tool set in the shape the model router
// consumes.
func (e *ToolExecutor) ToolSpecs() []contracts.ToolSpec {
	tools := e.List()
	specs := make([]contracts.ToolSpec, 0, len(tools))
	for _, t := range tools {
		specs = append(specs, contracts.ToolSpec{
			Name:             t.Name(),
			Description:      t.Description(),
			ParametersSchema: t.Schema(),
		})
	}
	return specs
}

// Close releases resources (transports, subprocesses).
func (e *ToolExecutor) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// resolveToolCall validates a tool call against the executor's configuration.
func (e *ToolExecutor) resolveToolCall(name string) (serverID, toolName string, err error) {
	serverID, toolName, err = SplitToolName(name)
	if err != nil {
		return "", "", err
	}

	if !slices.Contains(e.serverIDs, serverID) {
		return "", "", fmt.Errorf(
			"tool server %q is not available for this execution. "+
				"Available servers: %s", serverID, strings.Join(e.serverIDs, ", "))
	}

	if filter, ok := e.toolFilter[serverID]; ok && len(filter) > 0 {
		if !slices.Contains(filter, toolName) {
			return "", "", fmt.Errorf(
				"tool %q is not available on server %q. "+
					"Available tools: %s", toolName, serverID, strings.Join(filter, ", "))
		}
	}

	return serverID, toolName, nil
}

// extractTextContent extracts text from an SDK CallToolResult.
// Concatenates all TextContent items. Non-text content (images, embedded
// resources) is logged at debug level and skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("Tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

// marshalSchema serializes a tool's InputSchema to a JSON string.
func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Failed to marshal tool input schema", "error", err)
		return ""
	}
	return string(data)
}
