// Package tool defines the function / tool calling surface that lets agents
// invoke structured capabilities supplied by external providers.
package tool

import (
	"context"

	"github.com/FenadoAI/agentkit/model"
)

// Tool defines the interface for extending agent capabilities with external functions.
//
// Bound tools become available for the language model to call during a
// conversation. Implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Define proper JSON schema for parameters
//   - Handle errors gracefully
//   - Be safe for concurrent use
type Tool interface {
	// Name returns the unique identifier for this tool.
	// Names should follow function naming conventions (snake_case recommended).
	Name() string

	// Description returns a human-readable description of what this tool does.
	// It is provided to the LLM to help it decide when to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool with structured arguments and returns the
	// textual result handed back to the model.
	Call(ctx context.Context, args map[string]any) (string, error)
}

// Definitions converts a tool list into the declarative form sent to models.
func Definitions(tools []Tool) []model.ToolDefinition {
	defs := make([]model.ToolDefinition, len(tools))
	for i, t := range tools {
		defs[i] = model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		}
	}
	return defs
}
