package agent

import "context"

// Capability tags reported by Capabilities.
const (
	// CapabilityTextGeneration is reported by every agent.
	CapabilityTextGeneration = "text_generation"
	// CapabilityConversation is reported by every agent.
	CapabilityConversation = "conversation"
	// CapabilityMCPEnabled is reported only while a tool-provider
	// connection is active.
	CapabilityMCPEnabled = "mcp_enabled"
)

// Agent is the uniform execution contract shared by all agent variants.
type Agent interface {
	// Execute sends the prompt to the model and returns the wrapped
	// result. It never returns an error; failures are reported inside
	// the Response.
	Execute(ctx context.Context, prompt string, optFns ...func(o *ExecuteOptions)) *Response

	// Capabilities returns the ordered capability tags currently exposed
	// by the agent. Pure, no side effects.
	Capabilities() []string
}

// Response is the fixed-shape result record produced by every Execute call.
// Success implies Error is empty; failure implies Content is empty and Error
// is set. A Response is created fresh per call and never mutated afterwards.
type Response struct {
	Success  bool           `json:"success"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// ExecuteOptions configure a single Execute call.
type ExecuteOptions struct {
	// UseTools requests tool augmentation. It is only honored when a
	// tool-provider connection is configured and at least one tool was
	// bound; otherwise the call falls back to plain dispatch.
	UseTools bool
}

// WithoutTools disables tool augmentation for one call.
func WithoutTools() func(o *ExecuteOptions) {
	return func(o *ExecuteOptions) { o.UseTools = false }
}
