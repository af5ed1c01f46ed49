package command

import (
	"context"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

type SysInfoCommand struct {
	controller *system.Controller
	formatter  *ResponseFormatter
}

func NewSysInfoCommand(controller *system.Controller) *SysInfoCommand {
	return &SysInfoCommand{
		controller: controller,
		formatter:  NewResponseFormatter(),
	}
}

func (c *SysInfoCommand) Name() string        { return "system_info" }
func (c *SysInfoCommand) Aliases() []string   { return []string{"sysinfo", "info"} }
func (c *SysInfoCommand) Description() string { return "Show information about this machine" }
func (c *SysInfoCommand) Usage() string       { return "system_info" }

func (c *SysInfoCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	sections := []string{c.formatter.Info("System Information")}
	for _, f := range c.controller.SystemInfo(ctx) {
		sections = append(sections, c.formatter.Label(f.Key, f.Value))
	}
	return c.formatter.Combine(sections...), nil
}
