package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
)

type VoiceCommand struct {
	available bool
}

// NewVoiceCommand takes whether a synthesizer was found on this machine
// so 'voice on' can refuse instead of silently doing nothing.
func NewVoiceCommand(available bool) *VoiceCommand {
	return &VoiceCommand{available: available}
}

func (c *VoiceCommand) Name() string        { return "voice" }
func (c *VoiceCommand) Aliases() []string   { return nil }
func (c *VoiceCommand) Description() string { return "Turn spoken responses on or off" }
func (c *VoiceCommand) Usage() string       { return "voice [on|off]" }

func (c *VoiceCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	mode := "toggle"
	if len(args) > 0 {
		mode = strings.ToLower(args[0])
	}

	var enable bool
	switch mode {
	case "on":
		enable = true
	case "off":
		enable = false
	case "toggle":
		enable = !sess.VoiceEnabled
	default:
		return "", fmt.Errorf("%w: voice accepts 'on' or 'off', got %q", core.ErrInvalidArgument, mode)
	}

	if enable && !c.available {
		return "No speech synthesizer is available on this machine.", nil
	}

	if enable == sess.VoiceEnabled {
		if enable {
			return "Voice responses are already on.", nil
		}
		return "Voice responses are already off.", nil
	}

	sess.VoiceEnabled = enable
	if enable {
		return "Voice responses enabled.", nil
	}
	return "Voice responses disabled.", nil
}
