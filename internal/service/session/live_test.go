package session

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/service/history"
)

func newTestLiveLoop(reader LineReader, recognizer core.Recognizer, model *fakeModel) (*LiveLoop, *fakeTranscript, *bytes.Buffer) {
	repo := &fakeTranscript{}
	out := &bytes.Buffer{}

	registry := &stubRegistry{commands: map[string]core.Command{
		"time": &stubTimeCommand{},
		"boom": &failingCommand{},
	}}

	loop := NewLiveLoop(
		registry,
		model,
		history.NewBuilder(repo, 30, 2048),
		repo,
		NewInputChannel(reader, recognizer, time.Second),
		NewSink(out, nil),
	)
	return loop, repo, out
}

type stubTimeCommand struct{}

func (c *stubTimeCommand) Name() string        { return "time" }
func (c *stubTimeCommand) Aliases() []string   { return nil }
func (c *stubTimeCommand) Description() string { return "time" }
func (c *stubTimeCommand) Usage() string       { return "time" }

func (c *stubTimeCommand) Execute(ctx context.Context, sess *core.Session, args []string) (string, error) {
	return "The current time is 03:04 PM", nil
}

func TestLiveLoopForwardsConversationToModel(t *testing.T) {
	model := &fakeModel{answer: "sure thing"}
	loop, repo, out := newTestLiveLoop(&fakeReader{lines: []string{"how are you", "tell me a joke", "exit chat"}}, nil, model)

	sess := core.NewSession(false, false)
	require.NoError(t, loop.Run(context.Background(), sess))

	require.Len(t, model.prompts, 2)
	assert.Equal(t, []string{"how are you", "tell me a joke"}, model.prompts)
	assert.Contains(t, out.String(), "sure thing")

	require.Len(t, repo.exchanges, 2)
	assert.Equal(t, core.SourceChat, repo.exchanges[0].Source)
}

func TestLiveLoopInterceptsCommandKeywords(t *testing.T) {
	model := &fakeModel{answer: "chat reply"}
	loop, repo, out := newTestLiveLoop(&fakeReader{lines: []string{"time", "exit chat"}}, nil, model)

	sess := core.NewSession(false, false)
	require.NoError(t, loop.Run(context.Background(), sess))

	// A registry hit executes like command mode instead of going to the model.
	assert.Empty(t, model.prompts)
	assert.Contains(t, out.String(), "The current time is 03:04 PM")

	require.Len(t, repo.exchanges, 1)
	assert.Equal(t, core.SourceCommand, repo.exchanges[0].Source)
}

func TestLiveLoopSurvivesCommandFailure(t *testing.T) {
	model := &fakeModel{answer: "hi"}
	loop, repo, out := newTestLiveLoop(&fakeReader{lines: []string{"boom", "exit chat"}}, nil, model)

	sess := core.NewSession(false, false)
	require.NoError(t, loop.Run(context.Background(), sess))

	assert.Contains(t, out.String(), "Sorry, that didn't work")
	assert.Empty(t, repo.exchanges)
}

func TestLiveLoopExitPhrases(t *testing.T) {
	for _, phrase := range []string{"exit chat", "stop chatting", "command mode", "Exit", "goodbye"} {
		model := &fakeModel{answer: "hi"}
		loop, _, out := newTestLiveLoop(&fakeReader{lines: []string{phrase}}, nil, model)

		sess := core.NewSession(false, false)
		require.NoError(t, loop.Run(context.Background(), sess))

		assert.False(t, sess.Running, "phrase %q", phrase)
		assert.Empty(t, model.prompts, "phrase %q", phrase)
		assert.Contains(t, out.String(), "Leaving live chat")
	}
}

func TestLiveLoopPromptsAfterConsecutiveSilence(t *testing.T) {
	model := &fakeModel{answer: "hi"}
	recognizer := &fakeRecognizer{}
	loop, _, out := newTestLiveLoop(&fakeReader{}, recognizer, model)

	// Every read is silence: two silent reads trigger the prompt, the
	// next one ends the chat.
	sess := core.NewSession(true, false)
	require.NoError(t, loop.Run(context.Background(), sess))

	assert.Contains(t, out.String(), "I haven't heard from you in a while")
	assert.Contains(t, out.String(), "Returning to command mode.")
	assert.Empty(t, model.prompts)
}

func TestLiveLoopSilenceCounterResets(t *testing.T) {
	model := &fakeModel{answer: "hi"}
	recognizer := &fakeRecognizer{utterances: []string{"", "hello there", "", "exit chat"}}
	loop, _, out := newTestLiveLoop(&fakeReader{}, recognizer, model)

	sess := core.NewSession(true, false)
	require.NoError(t, loop.Run(context.Background(), sess))

	// Speech between silent reads resets the counter, so no prompt fires.
	assert.NotContains(t, out.String(), "I haven't heard from you in a while")
	assert.Equal(t, []string{"hello there"}, model.prompts)
}
