package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

var powerActions = []string{"shutdown", "restart", "sleep", "lock", "hibernate", "logout"}

// powerConfirmations are spoken before the action runs since some of
// them terminate the process along with the rest of the machine.
var powerConfirmations = map[string]string{
	"shutdown":  "Shutting down the computer. Goodbye!",
	"restart":   "Restarting the computer.",
	"sleep":     "Putting the computer to sleep.",
	"lock":      "Locking the screen.",
	"hibernate": "Hibernating the computer.",
	"logout":    "Signing you out.",
}

type SystemCommand struct {
	controller *system.Controller
	formatter  *ResponseFormatter
}

func NewSystemCommand(controller *system.Controller) *SystemCommand {
	return &SystemCommand{
		controller: controller,
		formatter:  NewResponseFormatter(),
	}
}

func (c *SystemCommand) Name() string        { return "system" }
func (c *SystemCommand) Aliases() []string   { return nil }
func (c *SystemCommand) Description() string { return "Control power state of the machine" }
func (c *SystemCommand) Usage() string       { return "system <shutdown|restart|sleep|lock|hibernate|logout>" }

func (c *SystemCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Usage(c.Usage()),
			c.formatter.List(powerActions),
		), nil
	}

	action := strings.ToLower(args[0])
	confirmation, ok := powerConfirmations[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown system action %q", core.ErrInvalidArgument, action)
	}

	if err := c.controller.Power(ctx, action); err != nil {
		return "", fmt.Errorf("failed to %s: %w", action, err)
	}
	return confirmation, nil
}
