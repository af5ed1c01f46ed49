package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

type SearchCommand struct {
	opener *system.Opener
}

func NewSearchCommand(opener *system.Opener) *SearchCommand {
	return &SearchCommand{opener: opener}
}

func (c *SearchCommand) Name() string        { return "search" }
func (c *SearchCommand) Aliases() []string   { return []string{"google"} }
func (c *SearchCommand) Description() string { return "Search the web" }
func (c *SearchCommand) Usage() string       { return "search <query>" }

func (c *SearchCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: search needs a query, e.g. 'search golang tutorials'", core.ErrInvalidArgument)
	}

	query := strings.Join(args, " ")
	if err := c.opener.SearchWeb(ctx, query); err != nil {
		return "", fmt.Errorf("failed to open search: %w", err)
	}
	return fmt.Sprintf("Searching the web for %s", query), nil
}
