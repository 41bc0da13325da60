package tool

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool() *FunctionTool {
	return NewFunctionTool(
		"echo",
		"Echoes the input back",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []string{"text"},
		},
		func(_ context.Context, args map[string]any) (string, error) {
			text, ok := args["text"].(string)
			if !ok {
				return "", fmt.Errorf("text argument missing")
			}
			return text, nil
		},
	)
}

func TestFunctionToolCall(t *testing.T) {
	tool := echoTool()

	assert.Equal(t, "echo", tool.Name())
	assert.Equal(t, "Echoes the input back", tool.Description())

	result, err := tool.Call(context.Background(), map[string]any{"text": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", result)

	_, err = tool.Call(context.Background(), map[string]any{})
	assert.Error(t, err)
}

func TestDefinitions(t *testing.T) {
	defs := Definitions([]Tool{echoTool()})

	require.Len(t, defs, 1)
	assert.Equal(t, "function", defs[0].Type)
	assert.Equal(t, "echo", defs[0].Function.Name)
	assert.Equal(t, "Echoes the input back", defs[0].Function.Description)
	assert.Equal(t, "object", defs[0].Function.Parameters["type"])
}

func TestDefinitionsEmpty(t *testing.T) {
	assert.Empty(t, Definitions(nil))
}
