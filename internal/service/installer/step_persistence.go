package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyondev/jarvis/internal/config"
	"github.com/halcyondev/jarvis/pkg/env"
)

// setupConfig mirrors the runtime config structs so the collected values
// serialize through the same env tags they will be parsed with.
type setupConfig struct {
	Provider        string `env:"LLM_PROVIDER"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GeminiModel     string `env:"GEMINI_MODEL"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIModel     string `env:"OPENAI_MODEL"`
	OpenRouterKey   string `env:"OPENROUTER_API_KEY"`
	OpenRouterModel string `env:"OPENROUTER_MODEL"`
	OllamaAPIKey    string `env:"OLLAMA_API_KEY"`
	OllamaBaseURL   string `env:"OLLAMA_BASE_URL"`
	OllamaModel     string `env:"OLLAMA_MODEL"`
	VoiceEnabled    string `env:"JARVIS_VOICE_ENABLED"`
	Debug           string `env:"JARVIS_DEBUG"`
}

func (c *setupConfig) fill(vars map[string]string) {
	c.Provider = vars["LLM_PROVIDER"]
	c.GeminiAPIKey = vars["GEMINI_API_KEY"]
	c.GeminiModel = vars["GEMINI_MODEL"]
	c.OpenAIAPIKey = vars["OPENAI_API_KEY"]
	c.OpenAIModel = vars["OPENAI_MODEL"]
	c.OpenRouterKey = vars["OPENROUTER_API_KEY"]
	c.OpenRouterModel = vars["OPENROUTER_MODEL"]
	c.OllamaAPIKey = vars["OLLAMA_API_KEY"]
	c.OllamaBaseURL = vars["OLLAMA_BASE_URL"]
	c.OllamaModel = vars["OLLAMA_MODEL"]
	c.VoiceEnabled = vars["JARVIS_VOICE_ENABLED"]
	c.Debug = vars["JARVIS_DEBUG"]
}

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path := config.GetRuntimePath()

	if err := os.MkdirAll(path, 0755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}

	envPath := filepath.Join(path, ".env")

	if _, err := os.Stat(envPath); err == nil {
		s.err = fmt.Errorf(".env file already exists at %s", envPath)
		return s, nil
	}

	cfg := &setupConfig{}
	cfg.fill(state.EnvVars)

	content, err := env.MarshalEnv(cfg)
	if err != nil {
		s.err = err
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}
