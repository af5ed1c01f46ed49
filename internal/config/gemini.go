package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/halcyondev/jarvis/pkg/log"
)

// GeminiConfig carries the one required credential. A missing key is a fatal
// configuration error reported before the loop starts.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY,required,notEmpty"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash-latest"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
