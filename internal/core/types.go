package core

import "time"

const (
	JarvisName      = "Jarvis"
	JarvisVersion   = "2.0.0"
	JarvisUserAgent = "Jarvis-Assistant/2.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of an LLM conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Exchange source values.
const (
	SourceCommand = "command"
	SourceChat    = "chat"
)

// Exchange is one persisted input/output pair of the session transcript.
type Exchange struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}
