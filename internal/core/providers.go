package core

import (
	"context"
	"time"
)

// ConversationalModel is the LLM collaborator behind the fallback route.
type ConversationalModel interface {
	Ask(ctx context.Context, prompt string, history []Message) (string, error)
}

// Recognizer is the speech-to-text collaborator. Silence within the timeout
// yields ("", nil), never an error, so the loop simply re-polls.
type Recognizer interface {
	Listen(ctx context.Context, timeout time.Duration) (string, error)
}

// Synthesizer is the text-to-speech collaborator. Failures degrade to
// text-only output at the sink.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}
