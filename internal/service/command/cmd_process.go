package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

const processListLimit = 10

type ProcessesCommand struct {
	controller *system.Controller
	formatter  *ResponseFormatter
}

func NewProcessesCommand(controller *system.Controller) *ProcessesCommand {
	return &ProcessesCommand{
		controller: controller,
		formatter:  NewResponseFormatter(),
	}
}

func (c *ProcessesCommand) Name() string        { return "processes" }
func (c *ProcessesCommand) Aliases() []string   { return []string{"ps", "tasks"} }
func (c *ProcessesCommand) Description() string { return "List running processes" }
func (c *ProcessesCommand) Usage() string       { return "processes" }

func (c *ProcessesCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	procs, err := c.controller.Processes(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list processes: %w", err)
	}
	if len(procs) == 0 {
		return "No processes found.", nil
	}

	shown := procs
	if len(shown) > processListLimit {
		shown = shown[:processListLimit]
	}

	items := make([]string, 0, len(shown))
	for _, p := range shown {
		items = append(items, fmt.Sprintf("%d  %s", p.PID, p.Name))
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("%d processes running, showing the first %d:", len(procs), len(shown))),
		c.formatter.List(items),
	), nil
}

type KillCommand struct {
	controller *system.Controller
}

func NewKillCommand(controller *system.Controller) *KillCommand {
	return &KillCommand{controller: controller}
}

func (c *KillCommand) Name() string        { return "kill" }
func (c *KillCommand) Aliases() []string   { return nil }
func (c *KillCommand) Description() string { return "Terminate a process by PID" }
func (c *KillCommand) Usage() string       { return "kill <pid>" }

func (c *KillCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: kill needs a process id, e.g. 'kill 4212'", core.ErrInvalidArgument)
	}

	pid, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid process id", core.ErrInvalidArgument, args[0])
	}

	if err := c.controller.Kill(ctx, pid); err != nil {
		return "", fmt.Errorf("failed to kill process %d: %w", pid, err)
	}
	return fmt.Sprintf("Process %d terminated.", pid), nil
}
