package command

import (
	"context"
	"fmt"

	"github.com/halcyondev/jarvis/internal/core"
)

type ClearCommand struct {
	transcript core.TranscriptRepository
}

func NewClearCommand(transcript core.TranscriptRepository) *ClearCommand {
	return &ClearCommand{transcript: transcript}
}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Aliases() []string   { return []string{"reset"} }
func (c *ClearCommand) Description() string { return "Clear the screen and conversation history" }
func (c *ClearCommand) Usage() string       { return "clear" }

func (c *ClearCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if err := c.transcript.Clear(ctx, sess.ID); err != nil {
		return "", fmt.Errorf("failed to clear history: %w", err)
	}
	sess.History = nil

	// ANSI clear plus home, then the confirmation.
	return "\033[2J\033[HConversation history cleared.", nil
}
