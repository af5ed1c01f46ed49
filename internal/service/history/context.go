package history

import (
	"context"

	"github.com/pkoukk/tiktoken-go"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/pkg/log"
)

// Builder assembles the model context from the transcript, trimming the
// oldest exchanges first so the result stays inside the token budget.
type Builder struct {
	transcript  core.TranscriptRepository
	window      int
	tokenBudget int
	encoder     *tiktoken.Tiktoken
}

func NewBuilder(transcript core.TranscriptRepository, window, tokenBudget int) *Builder {
	b := &Builder{
		transcript:  transcript,
		window:      window,
		tokenBudget: tokenBudget,
	}

	// The encoding ships with the binary but loading can still fail on
	// exotic setups. Fall back to the length heuristic.
	if enc, err := tiktoken.GetEncoding("cl100k_base"); err == nil {
		b.encoder = enc
	}
	return b
}

func (b *Builder) countTokens(text string) int {
	if b.encoder != nil {
		return len(b.encoder.Encode(text, nil, nil))
	}
	return len(text)/4 + 1
}

// Build returns the conversation history as model messages, oldest
// first, user and assistant roles alternating.
func (b *Builder) Build(ctx context.Context, sessionID string) ([]core.Message, error) {
	exchanges, err := b.transcript.RecentExchanges(ctx, sessionID, b.window)
	if err != nil {
		return nil, err
	}

	// Walk newest to oldest so the budget keeps the recent turns.
	var kept []core.Exchange
	used := 0
	for i := len(exchanges) - 1; i >= 0; i-- {
		cost := b.countTokens(exchanges[i].Input) + b.countTokens(exchanges[i].Output)
		if used+cost > b.tokenBudget && len(kept) > 0 {
			break
		}
		used += cost
		kept = append(kept, exchanges[i])
	}

	messages := make([]core.Message, 0, len(kept)*2)
	for i := len(kept) - 1; i >= 0; i-- {
		messages = append(messages,
			core.Message{Role: core.RoleUser, Content: kept[i].Input},
			core.Message{Role: core.RoleAssistant, Content: kept[i].Output},
		)
	}

	log.FromCtx(ctx).Debug().
		Int("exchanges", len(kept)).
		Int("tokens", used).
		Msg("built model context")
	return messages, nil
}
