package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyondev/jarvis/internal/core"
)

type fakeTranscript struct {
	exchanges []core.Exchange
	cleared   []string
}

func (f *fakeTranscript) AddExchange(ctx context.Context, ex core.Exchange) error {
	f.exchanges = append(f.exchanges, ex)
	return nil
}

func (f *fakeTranscript) RecentExchanges(ctx context.Context, sessionID string, limit int) ([]core.Exchange, error) {
	if len(f.exchanges) > limit {
		return f.exchanges[len(f.exchanges)-limit:], nil
	}
	return f.exchanges, nil
}

func (f *fakeTranscript) Clear(ctx context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	f.exchanges = nil
	return nil
}

func testSession() *core.Session {
	return core.NewSession(false, false)
}

func TestTimeCommand(t *testing.T) {
	c := NewTimeCommand()
	c.now = func() time.Time {
		return time.Date(2025, time.March, 14, 15, 4, 0, 0, time.UTC)
	}

	out, err := c.Execute(context.Background(), testSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, "The current time is 03:04 PM", out)
}

func TestDateCommand(t *testing.T) {
	c := NewDateCommand()
	c.now = func() time.Time {
		return time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	}

	out, err := c.Execute(context.Background(), testSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Today is Friday, March 14, 2025", out)
}

func TestVoiceCommandToggle(t *testing.T) {
	c := NewVoiceCommand(true)
	sess := testSession()

	out, err := c.Execute(context.Background(), sess, nil)
	require.NoError(t, err)
	assert.True(t, sess.VoiceEnabled)
	assert.Equal(t, "Voice responses enabled.", out)

	out, err = c.Execute(context.Background(), sess, []string{"off"})
	require.NoError(t, err)
	assert.False(t, sess.VoiceEnabled)
	assert.Equal(t, "Voice responses disabled.", out)
}

func TestVoiceCommandIdempotent(t *testing.T) {
	c := NewVoiceCommand(true)
	sess := testSession()

	out, err := c.Execute(context.Background(), sess, []string{"off"})
	require.NoError(t, err)
	assert.Equal(t, "Voice responses are already off.", out)
	assert.False(t, sess.VoiceEnabled)
}

func TestVoiceCommandUnavailableSynthesizer(t *testing.T) {
	c := NewVoiceCommand(false)
	sess := testSession()

	out, err := c.Execute(context.Background(), sess, []string{"on"})
	require.NoError(t, err)
	assert.False(t, sess.VoiceEnabled)
	assert.Contains(t, out, "No speech synthesizer")
}

func TestVoiceCommandRejectsBadMode(t *testing.T) {
	c := NewVoiceCommand(true)
	_, err := c.Execute(context.Background(), testSession(), []string{"loud"})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestExitCommandStopsSession(t *testing.T) {
	c := NewExitCommand()
	sess := testSession()

	out, err := c.Execute(context.Background(), sess, nil)
	require.NoError(t, err)
	assert.False(t, sess.Running)
	assert.Equal(t, "Goodbye! Have a great day!", out)
}

func TestKillCommandValidatesArgs(t *testing.T) {
	c := NewKillCommand(nil)

	_, err := c.Execute(context.Background(), testSession(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = c.Execute(context.Background(), testSession(), []string{"chrome"})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestSystemCommandRejectsUnknownAction(t *testing.T) {
	c := NewSystemCommand(nil)
	_, err := c.Execute(context.Background(), testSession(), []string{"explode"})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestSystemCommandNoArgsShowsUsage(t *testing.T) {
	c := NewSystemCommand(nil)
	out, err := c.Execute(context.Background(), testSession(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: system")
	assert.Contains(t, out, "shutdown")
}

func TestClearCommandResetsHistory(t *testing.T) {
	repo := &fakeTranscript{}
	c := NewClearCommand(repo)

	sess := testSession()
	sess.Record("hi", "hello")

	out, err := c.Execute(context.Background(), sess, nil)
	require.NoError(t, err)
	assert.Empty(t, sess.History)
	assert.Equal(t, []string{sess.ID}, repo.cleared)
	assert.Contains(t, out, "Conversation history cleared.")
}

func TestHistoryCommandEmpty(t *testing.T) {
	c := NewHistoryCommand(&fakeTranscript{})
	out, err := c.Execute(context.Background(), testSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, "No history yet in this session.", out)
}

func TestHistoryCommandRejectsBadCount(t *testing.T) {
	c := NewHistoryCommand(&fakeTranscript{})
	_, err := c.Execute(context.Background(), testSession(), []string{"lots"})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestEmailCommandValidatesAddress(t *testing.T) {
	c := NewEmailCommand(nil)
	_, err := c.Execute(context.Background(), testSession(), []string{"not-an-address"})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestHelpDescribesSingleCommand(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewVoiceCommand(true)))

	help := NewHelpCommand(r)
	out, err := help.Execute(context.Background(), testSession(), []string{"voice"})
	require.NoError(t, err)

	assert.Contains(t, out, "Turn spoken responses on or off")
	assert.Contains(t, out, "Usage: voice [on|off]")
}

func TestHelpRejectsUnknownCommand(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "time"}))

	help := NewHelpCommand(r)
	_, err := help.Execute(context.Background(), testSession(), []string{"teleport"})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestHelpListsEveryRegisteredCommand(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "time"}))
	require.NoError(t, r.Register(&stubCommand{name: "exit", aliases: []string{"quit"}}))
	require.NoError(t, r.Register(NewHelpCommand(r)))

	help := NewHelpCommand(r)
	out, err := help.Execute(context.Background(), testSession(), nil)
	require.NoError(t, err)

	assert.Contains(t, out, "time")
	assert.Contains(t, out, "exit (quit)")
	assert.Contains(t, out, "help")
}
