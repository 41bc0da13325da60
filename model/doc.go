// Package model defines the provider-agnostic abstractions for invoking
// language models inside AgentKit.
//
// Core goals:
//   - Normalize message, tool definition and tool call representation
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI-compatible endpoints, Anthropic) implement the Model
// interface from this package so the agent layer remains decoupled from
// vendor SDKs.
package model
