package tool

import "context"

// FunctionTool is a generic adapter that exposes a plain Go function as an
// AgentKit tool. It carries a lightweight JSON-Schema-like parameter
// specification and has no internal mutable state after construction, so it
// is safe for concurrent use.
type FunctionTool struct {
	// Tool identifier (snake_case recommended)
	name string
	// Human-readable description shown to models
	description string
	// JSON schema describing accepted arguments
	parameters map[string]any
	// User supplied implementation
	fn func(ctx context.Context, args map[string]any) (string, error)
}

// NewFunctionTool constructs a FunctionTool from explicit schema and function.
func NewFunctionTool(
	name, description string,
	parameters map[string]any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// Name returns the tool identifier.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the human-readable description shown to models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the JSON schema describing accepted arguments.
func (t *FunctionTool) Parameters() map[string]any { return t.parameters }

// Call invokes the wrapped function. Arguments are passed through as-is;
// schema enforcement is left to the model endpoint.
func (t *FunctionTool) Call(ctx context.Context, args map[string]any) (string, error) {
	return t.fn(ctx, args)
}
