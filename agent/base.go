package agent

import (
	"context"
	"fmt"

	"github.com/FenadoAI/agentkit/config"
	"github.com/FenadoAI/agentkit/llmfactory"
	"github.com/FenadoAI/agentkit/logging"
	"github.com/FenadoAI/agentkit/mcp"
	"github.com/FenadoAI/agentkit/model"
	"github.com/FenadoAI/agentkit/tool"
)

// DefaultSystemPrompt is used when no specialization overrides it.
const DefaultSystemPrompt = "You are a helpful AI assistant."

// maxToolRounds bounds the tool-call loop. The original flow is a single
// round trip; eight rounds is generous for a research exchange and turns a
// looping model into a dispatch failure instead of a hang.
const maxToolRounds = 8

// Options configure agent construction.
//
// Use functional options with the agent constructors to override defaults.
type Options struct {
	// SystemPrompt defines the agent's persona. Specializations supply
	// their own default.
	SystemPrompt string
	// Model overrides the adapter built from the configuration. Mainly
	// used by tests to inject a MockModel.
	Model model.Model
	// Logger defaults to NoOp; binaries typically pass a slog adapter.
	Logger logging.Logger
	// ConnectOptions are forwarded to mcp.Connect during tool setup.
	ConnectOptions []func(o *mcp.ConnectOptions)
}

// WithLogger sets the logger used by the agent.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// BaseAgent holds the configuration, system prompt and optional tool-provider
// connection shared by all agent variants. Tool state is set at most once,
// during construction; afterwards a BaseAgent is immutable and safe for
// concurrent Execute calls.
type BaseAgent struct {
	cfg          config.Config
	systemPrompt string
	llm          model.Model
	logger       logging.Logger
	connectOpts  []func(o *mcp.ConnectOptions)

	toolset             *mcp.Toolset
	toolsDisabledReason string
}

// NewBaseAgent constructs an agent with the default system prompt and the
// model adapter selected by cfg. Specializations embed the result.
func NewBaseAgent(cfg config.Config, optFns ...func(o *Options)) *BaseAgent {
	opts := Options{
		SystemPrompt: DefaultSystemPrompt,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Model == nil {
		opts.Model = llmfactory.New(cfg)
	}

	a := &BaseAgent{
		cfg:          cfg,
		systemPrompt: opts.SystemPrompt,
		llm:          opts.Model,
		logger:       opts.Logger,
		connectOpts:  opts.ConnectOptions,
	}

	a.logger.Info("agent.init", "model", cfg.ModelName, "provider", cfg.Provider)
	return a
}

// ConfigureTools attempts to establish a tool-provider connection for the
// described servers. Setup is deliberately fail-open: on any failure the
// error is logged, the agent stays in tools-disabled mode and the reason is
// recorded. No error ever propagates to the caller. Repeated calls after a
// successful setup are ignored.
func (a *BaseAgent) ConfigureTools(ctx context.Context, servers []mcp.ServerConfig) {
	if a.toolset != nil {
		return
	}

	ts, err := mcp.Connect(ctx, servers, a.connectOpts...)
	if err != nil {
		a.toolsDisabledReason = err.Error()
		a.logger.Warn("agent.tools.setup_failed", "error", err.Error())
		return
	}

	a.toolset = ts
	a.toolsDisabledReason = ""
	a.logger.Info("agent.tools.configured", "tool_count", ts.Len())
}

// ToolsEnabled reports whether a tool-provider connection is active.
func (a *BaseAgent) ToolsEnabled() bool { return a.toolset != nil }

// ToolsDisabledReason returns why tool setup was skipped or failed. Empty
// while tools are enabled or were never requested with a reason.
func (a *BaseAgent) ToolsDisabledReason() string { return a.toolsDisabledReason }

// SystemPrompt returns the fixed instruction text prepended to every exchange.
func (a *BaseAgent) SystemPrompt() string { return a.systemPrompt }

// Execute sends a system+user message pair to the model endpoint, optionally
// bound to the available tools, and wraps the result (or any failure) into a
// Response. An empty prompt is forwarded as-is. No retries are attempted.
func (a *BaseAgent) Execute(ctx context.Context, prompt string, optFns ...func(o *ExecuteOptions)) *Response {
	opts := ExecuteOptions{UseTools: true}
	for _, fn := range optFns {
		fn(&opts)
	}

	messages := []model.Message{
		{Role: model.RoleSystem, Content: a.systemPrompt},
		{Role: model.RoleUser, Content: prompt},
	}

	toolsActive := opts.UseTools && a.toolset != nil && a.toolset.Len() > 0
	a.logger.Debug("agent.execute.start", "model", a.cfg.ModelName, "tools_active", toolsActive)

	var content string
	var err error
	if toolsActive {
		content, err = a.dispatchWithTools(ctx, messages)
	} else {
		content, err = a.dispatch(ctx, messages)
	}
	if err != nil {
		a.logger.Error("agent.execute.failed", "model", a.cfg.ModelName, "error", err.Error())
		return &Response{Success: false, Error: err.Error()}
	}

	toolsUsed := 0
	if opts.UseTools && a.toolset != nil {
		toolsUsed = a.toolset.Len()
	}
	return &Response{
		Success: true,
		Content: content,
		Metadata: map[string]any{
			"model":      a.cfg.ModelName,
			"tools_used": toolsUsed,
		},
	}
}

// Capabilities implements Agent.
func (a *BaseAgent) Capabilities() []string {
	capabilities := []string{CapabilityTextGeneration, CapabilityConversation}
	if a.toolset != nil {
		capabilities = append(capabilities, CapabilityMCPEnabled)
	}
	return capabilities
}

// dispatch performs a plain single-shot model call.
func (a *BaseAgent) dispatch(ctx context.Context, messages []model.Message) (string, error) {
	resp, err := a.llm.Generate(ctx, model.Request{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	return resp.Content, nil
}

// dispatchWithTools runs the tool-aware invocation path: the model may
// request tool calls, whose results are appended to the exchange before the
// model is invoked again. The loop ends when the model answers without tool
// calls; a failing tool call fails the whole dispatch.
func (a *BaseAgent) dispatchWithTools(ctx context.Context, messages []model.Message) (string, error) {
	defs := tool.Definitions(a.toolset.Tools())

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.llm.Generate(ctx, model.Request{Messages: messages, Tools: defs})
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}
		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		messages = append(messages, model.Message{
			Role:      model.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		for _, tc := range resp.ToolCalls {
			a.logger.Debug("agent.tool.call", "tool", tc.Function.Name, "id", tc.ID)
			result, err := a.toolset.Call(ctx, tc.Function.Name, tc.Function.Arguments)
			if err != nil {
				return "", fmt.Errorf("tool call failed: %w", err)
			}
			messages = append(messages, model.Message{
				Role:       model.RoleTool,
				Content:    result,
				ToolCallID: tc.ID,
			})
		}
	}
	return "", fmt.Errorf("tool call limit exceeded after %d rounds", maxToolRounds)
}
