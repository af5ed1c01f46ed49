package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello world",
			expected: "Hello world",
		},
		{
			name:     "bold stripped",
			input:    "**bold**",
			expected: "bold",
		},
		{
			name:     "italic stripped",
			input:    "*italic*",
			expected: "italic",
		},
		{
			name:     "inline code kept as text",
			input:    "run `jarvis start` now",
			expected: "run jarvis start now",
		},
		{
			name:     "raw html tags removed",
			input:    "<script>alert(1)</script>fine",
			expected: "fine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToPlainText([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("MarkdownToPlainText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarkdownToPlainTextList(t *testing.T) {
	got := MarkdownToPlainText([]byte("- first\n- second\n"))
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("list items lost: %q", got)
	}
	if strings.Contains(got, "<li>") {
		t.Errorf("html leaked through: %q", got)
	}
}
