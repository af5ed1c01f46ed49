package session

import (
	"context"
	"fmt"
	"io"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/pkg/conv"
	"github.com/halcyondev/jarvis/pkg/log"
)

// Sink delivers responses. The console line is always printed; speech
// is added on top when the session has voice enabled.
type Sink struct {
	out         io.Writer
	synthesizer core.Synthesizer
}

func NewSink(out io.Writer, synthesizer core.Synthesizer) *Sink {
	return &Sink{
		out:         out,
		synthesizer: synthesizer,
	}
}

func (s *Sink) Emit(ctx context.Context, sess *core.Session, text string) {
	if text == "" {
		return
	}

	fmt.Fprintf(s.out, "Jarvis: %s\n", text)

	if !sess.VoiceEnabled || s.synthesizer == nil {
		return
	}

	spoken := conv.MarkdownToPlainText([]byte(text))
	if err := s.synthesizer.Speak(ctx, spoken); err != nil {
		// A broken synthesizer must not take the session down.
		log.FromCtx(ctx).Debug().Err(err).Msg("speech synthesis failed")
	}
}
