package session

import (
	"context"
	"time"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/pkg/log"
)

// LineReader yields one line of typed input. Implementations return
// io.EOF when the terminal is closed.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// InputChannel picks the input source per read so a 'voice on' issued
// mid-session takes effect on the very next turn.
type InputChannel struct {
	reader        LineReader
	recognizer    core.Recognizer
	listenTimeout time.Duration
}

func NewInputChannel(reader LineReader, recognizer core.Recognizer, listenTimeout time.Duration) *InputChannel {
	return &InputChannel{
		reader:        reader,
		recognizer:    recognizer,
		listenTimeout: listenTimeout,
	}
}

// Read blocks for the next utterance or line. Voice silence comes back
// as an empty string, never as an error.
func (c *InputChannel) Read(ctx context.Context, sess *core.Session) (string, error) {
	if sess.VoiceEnabled && c.recognizer != nil {
		heard, err := c.recognizer.Listen(ctx, c.listenTimeout)
		if err != nil {
			return "", err
		}
		if heard != "" {
			log.FromCtx(ctx).Debug().Str("heard", heard).Msg("recognized utterance")
		}
		return heard, nil
	}

	return c.reader.ReadLine(ctx)
}
