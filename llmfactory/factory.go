// Package llmfactory constructs model.Model implementations from a resolved
// configuration, keeping provider selection out of the agent layer.
package llmfactory

import (
	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/FenadoAI/agentkit/config"
	"github.com/FenadoAI/agentkit/model"
	"github.com/FenadoAI/agentkit/model/anthropic"
	"github.com/FenadoAI/agentkit/model/openai"
)

// New builds the model adapter selected by cfg.Provider. Unknown providers
// fall back to the OpenAI-compatible adapter, which also serves LiteLLM and
// similar gateways through the configured base URL.
func New(cfg config.Config) model.Model {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			o.Model = anthropicsdk.Model(cfg.ModelName)
			o.BaseURL = cfg.BaseURL
			o.APIKey = cfg.APIKey
		})
	default:
		return openai.NewModel(func(o *openai.Options) {
			o.Model = cfg.ModelName
			o.BaseURL = cfg.BaseURL
			o.APIKey = cfg.APIKey
		})
	}
}
