package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyondev/jarvis/internal/core"
)

type fakeTranscript struct {
	exchanges []core.Exchange
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
	f.exchanges = nil
	return nil
}

func TestBuildAlternatesRoles(t *testing.T) {
	repo := &fakeTranscript{exchanges: []core.Exchange{
		{Input: "hello", Output: "hi there"},
		{Input: "what time is it", Output: "The current time is 03:04 PM"},
	}}

	b := NewBuilder(repo, 30, 2048)
	messages, err := b.Build(context.Background(), "s")
	require.NoError(t, err)

	require.Len(t, messages, 4)
	assert.Equal(t, core.RoleUser, messages[0].Role)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, core.RoleAssistant, messages[1].Role)
	assert.Equal(t, core.RoleUser, messages[2].Role)
	assert.Equal(t, core.RoleAssistant, messages[3].Role)
	assert.Equal(t, "The current time is 03:04 PM", messages[3].Content)
}

func TestBuildTrimsOldestFirst(t *testing.T) {
	long := make([]byte, 4000)
	for i := range long {
		long[i] = 'a'
	}

	repo := &fakeTranscript{exchanges: []core.Exchange{
		{Input: string(long), Output: string(long)},
		{Input: "recent question", Output: "recent answer"},
	}}

	// Budget fits the recent pair only.
	b := NewBuilder(repo, 30, 64)
	b.encoder = nil

	messages, err := b.Build(context.Background(), "s")
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, "recent question", messages[0].Content)
	assert.Equal(t, "recent answer", messages[1].Content)
}

func TestBuildAlwaysKeepsNewestExchange(t *testing.T) {
	long := make([]byte, 4000)
	for i := range long {
		long[i] = 'a'
	}

	repo := &fakeTranscript{exchanges: []core.Exchange{
		{Input: string(long), Output: string(long)},
	}}

	b := NewBuilder(repo, 30, 8)
	b.encoder = nil

	messages, err := b.Build(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, messages, 2)
}

func TestBuildEmptyTranscript(t *testing.T) {
	b := NewBuilder(&fakeTranscript{}, 30, 2048)
	messages, err := b.Build(context.Background(), "s")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
