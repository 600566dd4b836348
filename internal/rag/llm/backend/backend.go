// Package backend picks the completion adapter once, at startup, from configuration.
package backend

import (
	"context"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/customHttpClient"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm/gemini"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm/openai"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

// New never returns nil: a missing key or a client that can't be built degrades to the
// unconfigured placeholder instead of stopping the server.
func New(ctx context.Context, cfg config.CompletionConfig) llm.Provider {
	logger := logger_i.NewLogger("llm_backend")

	key := cfg.APIKey()
	if key == "" {
		logger.Warn("No completion credential configured, feedback will be a placeholder", "backend", cfg.Backend, "env", cfg.APIKeyEnv())
		return llm.Unconfigured(cfg.Backend, cfg.APIKeyEnv())
	}

	httpClient := customHttpClient.GetClient()
	switch cfg.Backend {
	case config.BackendGemini:
		provider, err := gemini.NewClient(ctx, gemini.Options{APIKey: key, Model: cfg.Model(), HTTPClient: httpClient})
		if err != nil {
			logger.Error("Gemini backend unavailable", "error", err)
			return llm.Unconfigured(cfg.Backend, cfg.APIKeyEnv())
		}
		return provider
	default:
		return openai.NewClient(openai.Options{APIKey: key, Model: cfg.Model(), HTTPClient: httpClient})
	}
}
