package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiAsk(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]any{{"text": "The current time is... a social construct."}},
				}},
			},
		})
	}))
	defer srv.Close()

	g := NewGeminiWithBaseURL(srv.URL, "test-key", "gemini-1.5-flash-latest")

	history := []core.Message{
		{Role: core.RoleUser, Content: "hello"},
		{Role: core.RoleAssistant, Content: "hi there"},
	}
	reply, err := g.Ask(context.Background(), "what time is it, really", history)
	require.NoError(t, err)
	assert.Equal(t, "The current time is... a social construct.", reply)

	assert.Equal(t, "/v1beta/models/gemini-1.5-flash-latest:generateContent", gotPath)

	contents, ok := gotBody["contents"].([]any)
	require.True(t, ok)
	// history turns plus the prompt
	require.Len(t, contents, 3)
	last := contents[2].(map[string]any)
	assert.Equal(t, "user", last["role"])
	// assistant history turns map to the "model" role
	second := contents[1].(map[string]any)
	assert.Equal(t, "model", second["role"])
}

func TestGeminiAskHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeminiWithBaseURL(srv.URL, "test-key", "gemini-1.5-flash-latest")

	_, err := g.Ask(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 429")
}

func TestGeminiModelsFiltersGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{
				{
					"name":                       "models/gemini-1.5-flash-latest",
					"displayName":                "Gemini 1.5 Flash",
					"supportedGenerationMethods": []string{"generateContent", "countTokens"},
				},
				{
					"name":                       "models/embedding-001",
					"displayName":                "Embedding 001",
					"supportedGenerationMethods": []string{"embedContent"},
				},
			},
		})
	}))
	defer srv.Close()

	g := NewGeminiWithBaseURL(srv.URL, "test-key", "gemini-1.5-flash-latest")

	models, err := g.Models(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "gemini-1.5-flash-latest", models[0].ID)
	assert.Equal(t, "Gemini 1.5 Flash", models[0].DisplayName)
}
