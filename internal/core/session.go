package core

import "github.com/google/uuid"

// HistoryEntry is one in-memory input/output pair of the current session.
type HistoryEntry struct {
	Input  string
	Output string
}

// Session is the mutable state of one assistant run. It is owned by the
// session loop: handlers receive it on the loop goroutine and nothing else
// touches it, so no locking is needed.
type Session struct {
	ID           string
	VoiceEnabled bool
	DebugEnabled bool
	Running      bool
	History      []HistoryEntry
}

func NewSession(voiceEnabled, debugEnabled bool) *Session {
	return &Session{
		ID:           "local-" + uuid.NewString(),
		VoiceEnabled: voiceEnabled,
		DebugEnabled: debugEnabled,
		Running:      true,
	}
}

// Record appends one completed exchange to the in-memory history.
func (s *Session) Record(input, output string) {
	s.History = append(s.History, HistoryEntry{Input: input, Output: output})
}
