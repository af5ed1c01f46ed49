package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
)

type HelpCommand struct {
	registry  core.CmdRegistry
	formatter *ResponseFormatter
}

func NewHelpCommand(registry core.CmdRegistry) *HelpCommand {
	return &HelpCommand{
		registry:  registry,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Aliases() []string   { return []string{"commands"} }
func (c *HelpCommand) Description() string { return "List available commands" }
func (c *HelpCommand) Usage() string       { return "help [command]" }

func (c *HelpCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if len(args) > 0 {
		return c.describe(args[0])
	}

	items := make([]string, 0)
	for _, cmd := range c.registry.ListCommands() {
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name = fmt.Sprintf("%s (%s)", name, strings.Join(aliases, ", "))
		}
		items = append(items, fmt.Sprintf("%-28s %s", name, cmd.Description()))
	}

	return c.formatter.Combine(
		c.formatter.Info("Available commands:"),
		c.formatter.List(items),
		c.formatter.Tip("anything else goes to the assistant"),
	), nil
}

// describe prints one command's usage and description.
func (c *HelpCommand) describe(name string) (string, error) {
	cmd, _, ok := c.registry.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: no command named %q, try 'help'", core.ErrInvalidArgument, name)
	}

	sections := []string{
		c.formatter.Info(cmd.Description()),
		c.formatter.Usage(cmd.Usage()),
	}
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		sections = append(sections, c.formatter.Label("Aliases", strings.Join(aliases, ", ")))
	}
	return c.formatter.Combine(sections...), nil
}
