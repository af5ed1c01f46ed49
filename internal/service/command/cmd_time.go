package command

import (
	"context"
	"fmt"
	"time"

	"github.com/halcyondev/jarvis/internal/core"
)

type TimeCommand struct {
	now func() time.Time
}

func NewTimeCommand() *TimeCommand {
	return &TimeCommand{now: time.Now}
}

func (c *TimeCommand) Name() string        { return "time" }
func (c *TimeCommand) Aliases() []string   { return nil }
func (c *TimeCommand) Description() string { return "Tell the current time" }
func (c *TimeCommand) Usage() string       { return "time" }

func (c *TimeCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	return fmt.Sprintf("The current time is %s", c.now().Format("03:04 PM")), nil
}

type DateCommand struct {
	now func() time.Time
}

func NewDateCommand() *DateCommand {
	return &DateCommand{now: time.Now}
}

func (c *DateCommand) Name() string        { return "date" }
func (c *DateCommand) Aliases() []string   { return []string{"today"} }
func (c *DateCommand) Description() string { return "Tell today's date" }
func (c *DateCommand) Usage() string       { return "date" }

func (c *DateCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	return fmt.Sprintf("Today is %s", c.now().Format("Monday, January 2, 2006")), nil
}
