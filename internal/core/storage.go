package core

import "context"

// TranscriptRepository is the append-only log of everything said in both
// directions. The history command and the LLM context builder read from it.
type TranscriptRepository interface {
	AddExchange(ctx context.Context, ex Exchange) error
	RecentExchanges(ctx context.Context, sessionID string, limit int) ([]Exchange, error)
	Clear(ctx context.Context, sessionID string) error
}
