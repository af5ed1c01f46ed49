package command

import (
	"context"
	"fmt"
	"time"

	"github.com/halcyondev/jarvis/internal/core"
)

type ListenCommand struct {
	recognizer core.Recognizer
	registry   core.CmdRegistry
	model      core.ConversationalModel
	timeout    time.Duration
}

// NewListenCommand captures a single utterance and runs it through the
// same resolution path as typed input. The registry is registered into
// after construction, so the cycle is safe.
func NewListenCommand(
	recognizer core.Recognizer,
	registry core.CmdRegistry,
	model core.ConversationalModel,
	timeout time.Duration,
) *ListenCommand {
	return &ListenCommand{
		recognizer: recognizer,
		registry:   registry,
		model:      model,
		timeout:    timeout,
	}
}

func (c *ListenCommand) Name() string        { return "listen" }
func (c *ListenCommand) Aliases() []string   { return nil }
func (c *ListenCommand) Description() string { return "Listen for a single voice command" }
func (c *ListenCommand) Usage() string       { return "listen" }

func (c *ListenCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if c.recognizer == nil {
		return "No speech recognizer is available on this machine.", nil
	}

	heard, err := c.recognizer.Listen(ctx, c.timeout)
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}
	if heard == "" {
		return "I didn't catch that.", nil
	}

	if cmd, cmdArgs, ok := c.registry.Resolve(heard); ok {
		return cmd.Execute(ctx, sess, cmdArgs)
	}

	return c.model.Ask(ctx, heard, nil)
}
