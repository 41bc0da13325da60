// Package config resolves the agent layer's configuration from explicit
// values or environment variables with fixed fallback defaults. It is the
// only place in the module that touches the process environment; everything
// else receives an explicit Config.
package config

import "os"

// Environment variables consumed by the resolution functions.
const (
	EnvBaseURL         = "LITELLM_BASE_URL"
	EnvModelName       = "AI_MODEL_NAME"
	EnvAPIKey          = "LITELLM_AUTH_TOKEN"
	EnvProvider        = "AI_MODEL_PROVIDER"
	EnvSearchToolToken = "CODEXHUB_MCP_AUTH_TOKEN"
)

// Fallback defaults used when neither an explicit value nor the
// corresponding environment variable is set.
const (
	DefaultBaseURL   = "https://litellm-docker-545630944929.us-central1.run.app"
	DefaultModelName = "gemini-2.5-pro"
	DefaultAPIKey    = "dummy-key"
	DefaultProvider  = "openai"
)

// Config holds the resolved model endpoint settings. All fields are
// non-empty after resolution. A Config is created once per agent and never
// mutated afterwards.
type Config struct {
	// BaseURL is the model endpoint base URL (OpenAI-compatible unless
	// Provider selects a native backend).
	BaseURL string
	// ModelName is the model identifier sent with every request.
	ModelName string
	// APIKey is the credential for the model endpoint. No format
	// validation is performed; a bad key surfaces when the call fails.
	APIKey string
	// Provider selects the model adapter ("openai" or "anthropic").
	Provider string
}

// Resolve produces a fully populated Config. Each empty argument falls back
// to its environment variable, then to the fixed default. Resolution never
// fails.
func Resolve(baseURL, modelName, apiKey string) Config {
	return Config{
		BaseURL:   coalesce(baseURL, EnvBaseURL, DefaultBaseURL),
		ModelName: coalesce(modelName, EnvModelName, DefaultModelName),
		APIKey:    coalesce(apiKey, EnvAPIKey, DefaultAPIKey),
		Provider:  coalesce("", EnvProvider, DefaultProvider),
	}
}

// FromEnv resolves a Config entirely from the environment. Intended to be
// called once at process start.
func FromEnv() Config {
	return Resolve("", "", "")
}

// Auth reports whether an auth token for the web search tool provider is
// actually configured. Configured is false when the variable is unset or
// still carries the placeholder default, so callers never compare token
// strings themselves.
type Auth struct {
	Token      string
	Configured bool
}

// SearchToolAuth reads the search tool provider token from the environment.
func SearchToolAuth() Auth {
	token := os.Getenv(EnvSearchToolToken)
	return Auth{
		Token:      token,
		Configured: token != "" && token != DefaultAPIKey,
	}
}

func coalesce(explicit, envVar, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}
