package command

import (
	"context"

	"github.com/halcyondev/jarvis/internal/core"
)

type ExitCommand struct{}

func NewExitCommand() *ExitCommand {
	return &ExitCommand{}
}

func (c *ExitCommand) Name() string        { return "exit" }
func (c *ExitCommand) Aliases() []string   { return []string{"quit", "bye"} }
func (c *ExitCommand) Description() string { return "End the session" }
func (c *ExitCommand) Usage() string       { return "exit" }

func (c *ExitCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	sess.Running = false
	return "Goodbye! Have a great day!", nil
}
