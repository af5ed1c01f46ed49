package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyondev/jarvis/internal/core"
)

func newTestRepo(t *testing.T) *TranscriptRepo {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "jarvis.db")
	db, err := NewDB(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewTranscriptRepo(db)
}

func TestTranscriptRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inputs := []string{"time", "what is the capital of France?", "date"}
	for _, in := range inputs {
		err := repo.AddExchange(ctx, core.Exchange{
			SessionID: "sess-1",
			Source:    core.SourceCommand,
			Input:     in,
			Output:    "ok: " + in,
		})
		require.NoError(t, err)
	}

	exchanges, err := repo.RecentExchanges(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, exchanges, 3)

	// Chronological order, oldest first.
	for i, in := range inputs {
		assert.Equal(t, in, exchanges[i].Input)
		assert.Equal(t, "ok: "+in, exchanges[i].Output)
		assert.False(t, exchanges[i].CreatedAt.IsZero())
	}
}

func TestRecentExchangesHonorsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AddExchange(ctx, core.Exchange{
			SessionID: "sess-1",
			Source:    core.SourceChat,
			Input:     string(rune('a' + i)),
			Output:    "out",
		})
		require.NoError(t, err)
	}

	exchanges, err := repo.RecentExchanges(ctx, "sess-1", 2)
	require.NoError(t, err)
	require.Len(t, exchanges, 2)

	// The two newest, still oldest first.
	assert.Equal(t, "d", exchanges[0].Input)
	assert.Equal(t, "e", exchanges[1].Input)
}

func TestRecentExchangesScopedBySession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddExchange(ctx, core.Exchange{SessionID: "a", Source: core.SourceCommand, Input: "x", Output: "y"}))
	require.NoError(t, repo.AddExchange(ctx, core.Exchange{SessionID: "b", Source: core.SourceCommand, Input: "p", Output: "q"}))

	exchanges, err := repo.RecentExchanges(ctx, "a", 10)
	require.NoError(t, err)
	require.Len(t, exchanges, 1)
	assert.Equal(t, "x", exchanges[0].Input)
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddExchange(ctx, core.Exchange{SessionID: "a", Source: core.SourceCommand, Input: "x", Output: "y"}))
	require.NoError(t, repo.Clear(ctx, "a"))

	exchanges, err := repo.RecentExchanges(ctx, "a", 10)
	require.NoError(t, err)
	assert.Empty(t, exchanges)
}
