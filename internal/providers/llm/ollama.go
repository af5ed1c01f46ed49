package llm

// Ollama exposes an OpenAI-compatible endpoint since 0.1.24.
type Ollama struct {
	*OpenAICompatible
}

func NewOllama(baseURL, apiKey, model string) *Ollama {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	cfg := OpenAICompatibleConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
	if apiKey != "" {
		cfg.AuthHeader = "Authorization"
		cfg.AuthPrefix = "Bearer "
	}
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(cfg),
	}
}
