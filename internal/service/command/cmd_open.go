package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

type OpenCommand struct {
	opener *system.Opener
}

func NewOpenCommand(opener *system.Opener) *OpenCommand {
	return &OpenCommand{opener: opener}
}

func (c *OpenCommand) Name() string        { return "open" }
func (c *OpenCommand) Aliases() []string   { return []string{"launch"} }
func (c *OpenCommand) Description() string { return "Open a website, application or file" }
func (c *OpenCommand) Usage() string       { return "open <target>" }

func (c *OpenCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: open needs a target, e.g. 'open youtube'", core.ErrInvalidArgument)
	}

	target := strings.Join(args, " ")
	confirmation, err := c.opener.Open(ctx, target)
	if err != nil {
		return "", err
	}
	return confirmation, nil
}
