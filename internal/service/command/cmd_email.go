package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

type EmailCommand struct {
	opener *system.Opener
}

func NewEmailCommand(opener *system.Opener) *EmailCommand {
	return &EmailCommand{opener: opener}
}

func (c *EmailCommand) Name() string        { return "email" }
func (c *EmailCommand) Aliases() []string   { return []string{"mail"} }
func (c *EmailCommand) Description() string { return "Compose an email in the default mail client" }
func (c *EmailCommand) Usage() string       { return "email [address]" }

func (c *EmailCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	to := ""
	if len(args) > 0 {
		to = args[0]
		if !strings.Contains(to, "@") {
			return "", fmt.Errorf("%w: %q does not look like an email address", core.ErrInvalidArgument, to)
		}
	}

	if err := c.opener.ComposeEmail(ctx, to); err != nil {
		return "", fmt.Errorf("failed to open mail client: %w", err)
	}
	if to == "" {
		return "Opening your mail client.", nil
	}
	return fmt.Sprintf("Composing an email to %s.", to), nil
}
