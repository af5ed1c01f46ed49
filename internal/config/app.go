package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/halcyondev/jarvis/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"JARVIS_RUNTIME_PATH" envDefault:".jarvis"`
	// Which conversational backend answers unresolved input
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	// Context Management
	ContextWindowSize  int `env:"CONTEXT_WINDOW_SIZE" envDefault:"30"`
	HistoryTokenBudget int `env:"HISTORY_TOKEN_BUDGET" envDefault:"2048"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}

	// Relative paths are anchored at the home directory, matching the
	// pre-flag resolution in GetRuntimePath.
	if !filepath.IsAbs(c.RuntimePath) {
		home, _ := os.UserHomeDir()
		c.RuntimePath = filepath.Join(home, c.RuntimePath)
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "jarvis.db")
}
