package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvModelName, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvProvider, "")

	cfg := Resolve("", "", "")

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModelName, cfg.ModelName)
	assert.Equal(t, DefaultAPIKey, cfg.APIKey)
	assert.Equal(t, DefaultProvider, cfg.Provider)
}

func TestResolveNeverEmpty(t *testing.T) {
	cfg := Resolve("", "", "")

	assert.NotEmpty(t, cfg.BaseURL)
	assert.NotEmpty(t, cfg.ModelName)
	assert.NotEmpty(t, cfg.APIKey)
	assert.NotEmpty(t, cfg.Provider)
}

func TestResolveExplicitWinsOverEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvModelName, "env-model")

	cfg := Resolve("https://explicit.example.com", "", "")

	assert.Equal(t, "https://explicit.example.com", cfg.BaseURL)
	assert.Equal(t, "env-model", cfg.ModelName)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://proxy.example.com")
	t.Setenv(EnvModelName, "gpt-4o")
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvProvider, "anthropic")

	cfg := FromEnv()

	assert.Equal(t, "https://proxy.example.com", cfg.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.ModelName)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "anthropic", cfg.Provider)
}

func TestSearchToolAuth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		configured bool
	}{
		{"unset", "", false},
		{"placeholder", DefaultAPIKey, false},
		{"real token", "team-key-123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSearchToolToken, tt.token)

			auth := SearchToolAuth()

			assert.Equal(t, tt.configured, auth.Configured)
			assert.Equal(t, tt.token, auth.Token)
		})
	}
}
