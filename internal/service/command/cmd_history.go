package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/halcyondev/jarvis/internal/core"
)

const defaultHistoryLimit = 10

type HistoryCommand struct {
	transcript core.TranscriptRepository
	formatter  *ResponseFormatter
}

func NewHistoryCommand(transcript core.TranscriptRepository) *HistoryCommand {
	return &HistoryCommand{
		transcript: transcript,
		formatter:  NewResponseFormatter(),
	}
}

func (c *HistoryCommand) Name() string        { return "history" }
func (c *HistoryCommand) Aliases() []string   { return nil }
func (c *HistoryCommand) Description() string { return "Show recent exchanges from this session" }
func (c *HistoryCommand) Usage() string       { return "history [count]" }

func (c *HistoryCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return "", fmt.Errorf("%w: history count must be a positive number", core.ErrInvalidArgument)
		}
		limit = n
	}

	exchanges, err := c.transcript.RecentExchanges(ctx, sess.ID, limit)
	if err != nil {
		return "", fmt.Errorf("failed to load history: %w", err)
	}
	if len(exchanges) == 0 {
		return "No history yet in this session.", nil
	}

	items := make([]string, 0, len(exchanges))
	for _, ex := range exchanges {
		items = append(items, fmt.Sprintf("[%s] you: %s", ex.CreatedAt.Format("15:04"), ex.Input))
		items = append(items, fmt.Sprintf("[%s] jarvis: %s", ex.CreatedAt.Format("15:04"), ex.Output))
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Last %d exchanges:", len(exchanges))),
		c.formatter.List(items),
	), nil
}
