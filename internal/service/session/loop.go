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

// Registry resolves raw input to a command, or reports that the input
// should be answered by the model instead.
type Registry interface {
	Resolve(input string) (core.Command, []string, bool)
}

// Loop is the session driver. Each turn reads one input, dispatches it
// to a command or the model and emits exactly one response.
type Loop struct {
	registry   Registry
	model      core.ConversationalModel
	history    *history.Builder
	transcript core.TranscriptRepository
	input      *InputChannel
	sink       *Sink
}

func NewLoop(
	registry Registry,
	model core.ConversationalModel,
	historyBuilder *history.Builder,
	transcript core.TranscriptRepository,
	input *InputChannel,
	sink *Sink,
) *Loop {
	return &Loop{
		registry:   registry,
		model:      model,
		history:    historyBuilder,
		transcript: transcript,
		input:      input,
		sink:       sink,
	}
}

func (l *Loop) Run(ctx context.Context, sess *core.Session) error {
	logger := log.FromCtx(ctx)

	l.sink.Emit(ctx, sess, fmt.Sprintf("%s %s at your service. Say 'help' for commands.", core.JarvisName, core.JarvisVersion))

	for sess.Running {
		if err := ctx.Err(); err != nil {
			logger.Debug().Msg("session cancelled")
			return nil
		}

		input, err := l.input.Read(ctx, sess)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Error().Err(err).Msg("failed to read input")
			l.sink.Emit(ctx, sess, "I couldn't read that input. Please try again.")
			continue
		}
		if input = strings.TrimSpace(input); input == "" {
			continue
		}

		l.handle(ctx, sess, input)
	}
	return nil
}

// handle runs one turn. Errors are reported to the user and never
// terminate the session.
func (l *Loop) handle(ctx context.Context, sess *core.Session, input string) {
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

	answer, err := l.askModel(ctx, sess, input)
	if err != nil {
		logger.Error().Err(err).Msg("model request failed")
		l.sink.Emit(ctx, sess, "I couldn't reach the assistant. Please try again.")
		return
	}

	l.sink.Emit(ctx, sess, answer)
	l.record(ctx, sess, core.SourceChat, input, answer)
}

func (l *Loop) askModel(ctx context.Context, sess *core.Session, input string) (string, error) {
	messages, err := l.history.Build(ctx, sess.ID)
	if err != nil {
		// Losing context is survivable; answering without it beats failing.
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to build model context")
		messages = nil
	}
	return l.model.Ask(ctx, input, messages)
}

func (l *Loop) record(ctx context.Context, sess *core.Session, source, input, output string) {
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
