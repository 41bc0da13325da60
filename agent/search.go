package agent

import (
	"context"

	"github.com/FenadoAI/agentkit/config"
	"github.com/FenadoAI/agentkit/mcp"
)

// SearchSystemPrompt is the persona used by the search specialization.
const SearchSystemPrompt = "Research assistant with web search tools. Use search for current info, cite sources."

// WebSearchServerURL is the fixed endpoint of the web search tool provider.
const WebSearchServerURL = "https://mcp.codexhub.ai/web/mcp"

// webSearchAuthHeader carries the provider token on every request.
const webSearchAuthHeader = "x-team-key"

// SearchAgent is the research specialization: the search system prompt plus
// an automatic tool-provider connection to the web search service, gated on
// the presence of a configured auth token. A missing token is an observable
// degradation, not an error: the agent answers without tools.
type SearchAgent struct {
	*BaseAgent
}

// NewSearchAgent constructs a search agent. Tool-provider setup happens
// synchronously here and never again for the agent's lifetime.
func NewSearchAgent(ctx context.Context, cfg config.Config, optFns ...func(o *Options)) *SearchAgent {
	withPrompt := append(
		[]func(o *Options){func(o *Options) { o.SystemPrompt = SearchSystemPrompt }},
		optFns...,
	)
	a := &SearchAgent{BaseAgent: NewBaseAgent(cfg, withPrompt...)}

	auth := config.SearchToolAuth()
	if !auth.Configured {
		a.toolsDisabledReason = "search tool provider token not configured"
		a.logger.Warn("agent.tools.disabled", "reason", a.toolsDisabledReason)
		return a
	}

	a.ConfigureTools(ctx, []mcp.ServerConfig{{
		Transport: mcp.TransportHTTP,
		URL:       WebSearchServerURL,
		Headers:   map[string]string{webSearchAuthHeader: auth.Token},
	}})
	return a
}
