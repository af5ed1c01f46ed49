package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/pkg/log"
)

// TranscriptRepo persists the append-only exchange log.
type TranscriptRepo struct {
	db *sql.DB
}

func NewTranscriptRepo(db *sql.DB) *TranscriptRepo {
	return &TranscriptRepo{db: db}
}

func (r *TranscriptRepo) AddExchange(ctx context.Context, ex core.Exchange) error {
	query := `INSERT INTO exchanges (session_id, source, input, output) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, ex.SessionID, ex.Source, ex.Input, ex.Output)
	if err != nil {
		return fmt.Errorf("failed to insert exchange: %w", err)
	}
	return nil
}

// RecentExchanges returns the last 'limit' exchanges in chronological order.
func (r *TranscriptRepo) RecentExchanges(ctx context.Context, sessionID string, limit int) ([]core.Exchange, error) {
	query := `SELECT id, session_id, source, input, output, created_at
		FROM exchanges WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []core.Exchange
	for rows.Next() {
		var ex core.Exchange
		if err := rows.Scan(&ex.ID, &ex.SessionID, &ex.Source, &ex.Input, &ex.Output, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		exchanges = append(exchanges, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query returned newest-first; flip back to chronological order.
	for i, j := 0, len(exchanges)-1; i < j; i, j = i+1, j-1 {
		exchanges[i], exchanges[j] = exchanges[j], exchanges[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(exchanges)).Msg("loaded transcript exchanges")
	return exchanges, nil
}

func (r *TranscriptRepo) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM exchanges WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}
	return nil
}
