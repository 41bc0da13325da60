package agent

import "github.com/FenadoAI/agentkit/config"

// ChatSystemPrompt is the persona used by the chat specialization.
const ChatSystemPrompt = "Friendly conversational AI. Natural conversations, explanations, analysis. Helpful, harmless, honest."

// ChatAgent is the general conversation specialization. It never attempts
// tool-provider setup and always operates in tools-disabled mode.
type ChatAgent struct {
	*BaseAgent
}

// NewChatAgent constructs a chat agent with the conversational system prompt.
func NewChatAgent(cfg config.Config, optFns ...func(o *Options)) *ChatAgent {
	withPrompt := append(
		[]func(o *Options){func(o *Options) { o.SystemPrompt = ChatSystemPrompt }},
		optFns...,
	)
	return &ChatAgent{BaseAgent: NewBaseAgent(cfg, withPrompt...)}
}
