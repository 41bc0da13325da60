package model

import (
	"context"
	"fmt"
)

// Message roles used throughout the module. Providers map these onto their
// own wire formats.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single role-tagged entry in a model exchange. Assistant
// messages may carry tool calls; tool messages carry the result for a
// previous call identified by ToolCallID.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall represents a function call request surfaced by a model provider.
// Unified across vendors so downstream logic does not need per-provider branching.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // "function"
	Function FunctionCall `json:"function"`
}

// FunctionCall names the target function and carries its arguments as a JSON string.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request captures the normalized model input produced by agents.
type Request struct {
	Messages []Message        `json:"messages"`
	Tools    []ToolDefinition `json:"tools,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the final result of a single generation round trip. When the
// model requests tool calls, Content may be empty and ToolCalls non-empty;
// the agent is expected to execute the calls and issue a follow-up Request.
type Response struct {
	Content      string      `json:"content"`
	ToolCalls    []ToolCall  `json:"tool_calls,omitempty"`
	FinishReason string      `json:"finish_reason"` // "stop", "length", "tool_calls", etc.
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required by agents to drive generation.
// Generate performs exactly one round trip; there is no retry or pooling.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	info      Info
	responses map[string]string
	toolCalls map[string][]ToolCall
	err       error

	// Requests records every request seen, in order.
	Requests []Request
}

// NewMockModel constructs a MockModel with basic tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:          name,
			Provider:      provider,
			SupportsTools: true,
		},
		responses: make(map[string]string),
		toolCalls: make(map[string][]ToolCall),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// AddToolCalls registers tool calls to emit when the last message matches prompt.
// A subsequent request whose last message is a tool result falls through to
// the canned text response for that result's content.
func (m *MockModel) AddToolCalls(prompt string, calls ...ToolCall) {
	m.toolCalls[prompt] = calls
}

// FailWith makes every Generate call return err.
func (m *MockModel) FailWith(err error) { m.err = err }

// Generate implements Model; replays canned tool calls and completions.
func (m *MockModel) Generate(_ context.Context, req Request) (*Response, error) {
	m.Requests = append(m.Requests, req)
	if m.err != nil {
		return nil, m.err
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	last := req.Messages[len(req.Messages)-1]
	if calls, ok := m.toolCalls[last.Content]; ok {
		delete(m.toolCalls, last.Content)
		return &Response{ToolCalls: calls, FinishReason: "tool_calls"}, nil
	}
	full := m.responses[last.Content]
	if full == "" {
		full = fmt.Sprintf("Mock response to: %s", last.Content)
	}
	return &Response{Content: full, FinishReason: "stop"}, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
