// Package agent contains the agent implementations at the heart of AgentKit.
// The package focuses on three concerns:
//
//  1. A uniform request/response contract (Execute -> Response) regardless of
//     which concrete agent handles a prompt
//  2. Base plumbing shared by all agents: system prompt, model dispatch and
//     best-effort tool-provider setup (BaseAgent)
//  3. Two concrete specializations: ChatAgent (conversation, no tools) and
//     SearchAgent (research prompt plus a web search tool provider)
//
// Design principles:
//   - No hidden global state; agents own their configuration and tool
//     connection exclusively and share nothing with each other
//   - Failures never escape Execute; they come back inside the Response
//   - Tool augmentation is best-effort; an agent whose provider setup fails
//     keeps answering in tools-disabled mode
//
// Tool state is fixed at construction time: an agent is either
// tools-disabled for its whole lifetime or tools-enabled from the moment its
// provider connection succeeds. There is no transition back.
package agent
