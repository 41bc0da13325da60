// Package logging provides a minimal logging interface and adapters for AgentKit.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that agents and the HTTP server use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, library defaults)
//
// Usage:
//
//	logger := logging.NewDefaultSlogLogger()
//	chat := agent.NewChatAgent(cfg, agent.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
