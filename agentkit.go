// Package agentkit provides a small extensible layer for invoking a remote
// language model endpoint, optionally augmented with tools supplied by
// external MCP tool-provider servers. Most applications interact with this
// package by:
//  1. Resolving a configuration (config.FromEnv or explicit values)
//  2. Constructing an agent variant (Chat or Search)
//  3. Calling Execute and inspecting the returned Response envelope
//
// The façade here builds agents straight from the environment for quick
// setups; services that want explicit wiring use the agent package directly.
package agentkit

import (
	"context"

	"github.com/FenadoAI/agentkit/agent"
	"github.com/FenadoAI/agentkit/config"
)

// Chat builds the conversational agent from environment configuration.
func Chat(optFns ...func(o *agent.Options)) *agent.ChatAgent {
	return agent.NewChatAgent(config.FromEnv(), optFns...)
}

// Search builds the research agent from environment configuration. Tool
// provider setup happens synchronously before this returns; a missing auth
// token leaves the agent in tools-disabled mode.
func Search(ctx context.Context, optFns ...func(o *agent.Options)) *agent.SearchAgent {
	return agent.NewSearchAgent(ctx, config.FromEnv(), optFns...)
}
