// Package llm implements the model router: an immutable model-prefix →
// provider resolution table built at startup, plus HTTP provider clients
// that perform the actual completions.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/contracts"
)

// Provider performs completions against one configured backend.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, req contracts.CompletionRequest) (*contracts.CompletionResult, error)
}

// defaultRequestTimeout bounds a single completion HTTP round trip when
// the caller's context carries no deadline.
const defaultRequestTimeout = 120 * time.Second

// httpProvider speaks the OpenAI-compatible chat-completions wire shape,
// which every configured provider type exposes natively or via its
// compatibility endpoint.
type httpProvider struct {
	name    string
	cfg     *config.LLMProviderConfig
	baseURL string
	client  *http.Client
}

func newHTTPProvider(name string, cfg *config.LLMProviderConfig) *httpProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		switch cfg.Type {
		case config.LLMProviderTypeOpenAI:
			baseURL = "https://api.openai.com/v1"
		case config.LLMProviderTypeAnthropic:
			baseURL = "https://api.anthropic.com/v1"
		case config.LLMProviderTypeGoogle:
			baseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
		case config.LLMProviderTypeXAI:
			baseURL = "https://api.x.ai/v1"
		}
	}
	return &httpProvider{
		name:    name,
		cfg:     cfg,
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

func (p *httpProvider) Name() string  { return p.name }
func (p *httpProvider) Model() string { return p.cfg.Model }

// Wire types for the chat-completions request/response.

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	Name       string         `json:"name,omitempty"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type wireTool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	} `json:"function"`
}

type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Tools       []wireTool    `json:"tools,omitempty"`
}

type wireResponse struct {
	Choices []struct {
		Message      wireMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete performs one chat completion round trip.
func (p *httpProvider) Complete(ctx context.Context, req contracts.CompletionRequest) (*contracts.CompletionResult, error) {
	wire := wireRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
	}
	if req.Model == "" {
		wire.Model = p.cfg.Model
	}
	if req.Temperature != 0 {
		t := req.Temperature
		wire.Temperature = &t
	} else if p.cfg.Temperature != nil {
		wire.Temperature = p.cfg.Temperature
	}

	if req.SystemPrompt != "" {
		wire.Messages = append(wire.Messages, wireMessage{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		wm := wireMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			Name:       m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			var w wireToolCall
			w.ID = tc.ID
			w.Type = "function"
			w.Function.Name = tc.Name
			w.Function.Arguments = tc.Arguments
			wm.ToolCalls = append(wm.ToolCalls, w)
		}
		wire.Messages = append(wire.Messages, wm)
	}

	for _, t := range req.Tools {
		var w wireTool
		w.Type = "function"
		w.Function.Name = t.Name
		w.Function.Description = t.Description
		w.Function.Parameters = json.RawMessage(t.ParametersSchema)
		wire.Tools = append(wire.Tools, w)
	}

	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("llm: failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKeyEnv != "" {
		httpReq.Header.Set("Authorization", "Bearer "+os.Getenv(p.cfg.APIKeyEnv))
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm: provider %s request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to read response: %w", err)
	}

	var parsed wireResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("llm: provider %s returned malformed response (status %d): %w",
			p.name, resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("llm: provider %s error: %s", p.name, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm: provider %s returned status %d", p.name, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("llm: provider %s returned no choices", p.name)
	}

	choice := parsed.Choices[0]
	result := &contracts.CompletionResult{
		Content:      choice.Message.Content,
		FinishReason: contracts.FinishReason(choice.FinishReason),
		Usage: contracts.Usage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
	}
	for _, tc := range choice.Message.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, contracts.ToolCallRequest{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return result, nil
}
