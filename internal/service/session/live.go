package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/service/history"
	"github.com/halcyondev/jarvis/pkg/log"
)

// After this many silent reads in a row the loop prompts once; another
// silent read after the prompt ends the chat.
const maxSilentReads = 2

// LiveLoop is the free-form chat mode. Utterances go to the model unless
// they resolve to a registered command or name an exit phrase.
type LiveLoop struct {
	registry   Registry
	model      core.ConversationalModel
	history    *history.Builder
	transcript core.TranscriptRepository
	input      *InputChannel
	sink       *Sink
}

func NewLiveLoop(
	registry Registry,
	model core.ConversationalModel,
	historyBuilder *history.Builder,
	transcript core.TranscriptRepository,
	input *InputChannel,
	sink *Sink,
) *LiveLoop {
	return &LiveLoop{
		registry:   registry,
		model:      model,
		history:    historyBuilder,
		transcript: transcript,
		input:      input,
		sink:       sink,
	}
}

func isChatExit(input string) bool {
	switch input {
	case "exit", "exit chat", "stop chatting", "command mode", "quit", "bye", "goodbye":
		return true
	}
	return false
}

func (l *LiveLoop) Run(ctx context.Context, sess *core.Session) error {
	logger := log.FromCtx(ctx)

	l.sink.Emit(ctx, sess, "Live chat started. Say 'exit chat' to leave.")

	silentReads := 0
	prompted := false

	for sess.Running {
		if err := ctx.Err(); err != nil {
			return nil
		}

		input, err := l.input.Read(ctx, sess)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Error().Err(err).Msg("failed to read input")
			continue
		}

		if input = strings.TrimSpace(input); input == "" {
			if prompted {
				l.sink.Emit(ctx, sess, "Returning to command mode.")
				return nil
			}
			silentReads++
			if silentReads >= maxSilentReads {
				l.sink.Emit(ctx, sess, "I haven't heard from you in a while. Say something or I'll leave live chat.")
				prompted = true
			}
			continue
		}
		silentReads = 0
		prompted = false

		if isChatExit(strings.ToLower(input)) {
			sess.Running = false
			l.sink.Emit(ctx, sess, "Leaving live chat. Goodbye!")
			return nil
		}

		l.handle(ctx, sess, input)
	}
	return nil
}

// handle runs one live turn: a registry hit executes like command mode,
// everything else is conversation.
func (l *LiveLoop) handle(ctx context.Context, sess *core.Session, input string) {
	logger := log.FromCtx(ctx)

	if cmd, args, ok := l.registry.Resolve(input); ok {
		output, err := cmd.Execute(ctx, sess, args)
		if err != nil {
			logger.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
			l.sink.Emit(ctx, sess, fmt.Sprintf("Sorry, that didn't work: %v", err))
			return
		}
		l.sink.Emit(ctx, sess, output)
		l.record(ctx, sess, core.SourceCommand, input, output)
		return
	}

	messages, err := l.history.Build(ctx, sess.ID)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build model context")
		messages = nil
	}

	answer, err := l.model.Ask(ctx, input, messages)
	if err != nil {
		logger.Error().Err(err).Msg("model request failed")
		l.sink.Emit(ctx, sess, "I couldn't reach the assistant. Please try again.")
		return
	}

	l.sink.Emit(ctx, sess, answer)
	l.record(ctx, sess, core.SourceChat, input, answer)
}

func (l *LiveLoop) record(ctx context.Context, sess *core.Session, source, input, output string) {
	sess.Record(input, output)

	err := l.transcript.AddExchange(ctx, core.Exchange{
		SessionID: sess.ID,
		Source:    source,
		Input:     input,
		Output:    output,
	})
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to persist exchange")
	}
}
