package llm

import (
	"context"
	"fmt"

	"github.com/halcyondev/jarvis/internal/config"
	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/pkg/log"
)

// NewProvider creates the conversational backend selected by configuration.
// modelOverride (the --model flag) wins over the per-provider env default.
func NewProvider(ctx context.Context, provider, modelOverride string) (core.ConversationalModel, error) {
	model := func(envModel string) string {
		if modelOverride != "" {
			return modelOverride
		}
		return envModel
	}

	switch provider {
	case "gemini":
		cfg := config.NewGeminiConfig(ctx)
		logStart(ctx, provider, model(cfg.Model))
		return NewGemini(cfg.APIKey, model(cfg.Model)), nil
	case "openai":
		cfg := config.NewOpenAIConfig(ctx)
		logStart(ctx, provider, model(cfg.Model))
		return NewOpenAI(cfg.APIKey, model(cfg.Model)), nil
	case "openrouter":
		cfg := config.NewOpenRouterConfig(ctx)
		logStart(ctx, provider, model(cfg.Model))
		return NewOpenRouter(cfg.APIKey, model(cfg.Model)), nil
	case "ollama":
		cfg := config.NewOllamaConfig(ctx)
		logStart(ctx, provider, model(cfg.Model))
		return NewOllama(cfg.BaseURL, cfg.APIKey, model(cfg.Model)), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

func logStart(ctx context.Context, provider, model string) {
	log.FromCtx(ctx).Info().
		Str("provider", provider).
		Str("model", model).
		Msg("starting llm provider")
}
