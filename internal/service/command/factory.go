package command

import (
	"time"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/system"
)

// NewCommands builds every built-in command. The registry is passed in
// so help and listen can resolve against the final command set.
func NewCommands(
	registry core.CmdRegistry,
	opener *system.Opener,
	controller *system.Controller,
	transcript core.TranscriptRepository,
	model core.ConversationalModel,
	recognizer core.Recognizer,
	voiceAvailable bool,
	listenTimeout time.Duration,
) []core.Command {
	return []core.Command{
		NewTimeCommand(),
		NewDateCommand(),
		NewSearchCommand(opener),
		NewOpenCommand(opener),
		NewSystemCommand(controller),
		NewProcessesCommand(controller),
		NewKillCommand(controller),
		NewSysInfoCommand(controller),
		NewVoiceCommand(voiceAvailable),
		NewListenCommand(recognizer, registry, model, listenTimeout),
		NewClearCommand(transcript),
		NewHistoryCommand(transcript),
		NewEmailCommand(opener),
		NewHelpCommand(registry),
		NewExitCommand(),
	}
}
