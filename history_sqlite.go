package promptlab

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shaharia-lab/promptlab/observability"
)

// SQLiteHistoryStore is an SQLite-backed implementation of HistoryStore
// so experiments survive process restarts. Callers must import an
// SQLite driver (e.g. github.com/mattn/go-sqlite3).
type SQLiteHistoryStore struct {
	db        *sql.DB
	sessionID string
	mu        sync.Mutex
	logger    observability.Logger
}

// NewSQLiteHistoryStore opens (or creates) the SQLite database at the
// given path and initializes the history schema.
func NewSQLiteHistoryStore(dbPath string, logger observability.Logger) (*SQLiteHistoryStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := &SQLiteHistoryStore{
		db:        db,
		sessionID: uuid.New().String(),
		logger:    logger,
	}

	if err := store.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return store, nil
}

// SessionID returns the store's session identifier.
func (s *SQLiteHistoryStore) SessionID() string {
	return s.sessionID
}

// Close closes the underlying database handle.
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteHistoryStore) initSchema(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS history_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		model TEXT NOT NULL,
		system_message TEXT DEFAULT '',
		prompt TEXT NOT NULL,
		temperature REAL NOT NULL,
		max_tokens INTEGER NOT NULL,
		top_p REAL NOT NULL,
		frequency_penalty REAL NOT NULL,
		presence_penalty REAL NOT NULL,
		response TEXT NOT NULL,
		input_tokens INTEGER DEFAULT 0,
		output_tokens INTEGER DEFAULT 0,
		finish_reason TEXT DEFAULT '',
		completion_time REAL DEFAULT 0,
		estimated_cost REAL DEFAULT 0
	);`

	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_history_entries_model ON history_entries (model);`

	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, createIndexSQL); err != nil {
		return fmt.Errorf("failed to create history index: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{"session_id": s.sessionID}).
		Debug("history schema initialized")
	return nil
}

// Append adds a new entry to the log, stamping its session ID.
func (s *SQLiteHistoryStore) Append(ctx context.Context, entry HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	insertSQL := `
	INSERT INTO history_entries (
		session_id, timestamp, model, system_message, prompt,
		temperature, max_tokens, top_p, frequency_penalty, presence_penalty,
		response, input_tokens, output_tokens, finish_reason, completion_time, estimated_cost
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, insertSQL,
		s.sessionID, entry.Timestamp.UTC().Format(time.RFC3339Nano),
		entry.Model, entry.SystemMessage, entry.Prompt,
		entry.Temperature, entry.MaxTokens, entry.TopP,
		entry.FrequencyPenalty, entry.PresencePenalty,
		entry.Response, entry.InputTokens, entry.OutputTokens,
		entry.FinishReason, entry.CompletionTime, entry.EstimatedCost,
	)
	if err != nil {
		s.logger.WithErr(err).Error("failed to append history entry")
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// All returns every entry in insertion order.
func (s *SQLiteHistoryStore) All(ctx context.Context) ([]HistoryEntry, error) {
	return s.query(ctx, HistoryFilter{})
}

// Filter returns the entries matching the filter, in insertion order.
func (s *SQLiteHistoryStore) Filter(ctx context.Context, filter HistoryFilter) ([]HistoryEntry, error) {
	return s.query(ctx, filter)
}

func (s *SQLiteHistoryStore) query(ctx context.Context, filter HistoryFilter) ([]HistoryEntry, error) {
	querySQL := `
	SELECT id, session_id, timestamp, model, system_message, prompt,
		temperature, max_tokens, top_p, frequency_penalty, presence_penalty,
		response, input_tokens, output_tokens, finish_reason, completion_time, estimated_cost
	FROM history_entries`

	var args []interface{}
	if filter.Model != "" {
		querySQL += ` WHERE model = ?`
		args = append(args, filter.Model)
	}
	querySQL += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var timestamp string
		if err := rows.Scan(
			&entry.ID, &entry.SessionID, &timestamp, &entry.Model,
			&entry.SystemMessage, &entry.Prompt,
			&entry.Temperature, &entry.MaxTokens, &entry.TopP,
			&entry.FrequencyPenalty, &entry.PresencePenalty,
			&entry.Response, &entry.InputTokens, &entry.OutputTokens,
			&entry.FinishReason, &entry.CompletionTime, &entry.EstimatedCost,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		if parsed, err := time.Parse(time.RFC3339Nano, timestamp); err == nil {
			entry.Timestamp = parsed
		} else {
			s.logger.WithErr(err).WithFields(map[string]interface{}{
				"entry_id": entry.ID,
			}).Warn("failed to parse stored timestamp")
		}

		if filter.matches(entry) {
			entries = append(entries, entry)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history entries: %w", err)
	}

	return entries, nil
}

// Clear removes all entries across all sessions.
func (s *SQLiteHistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM history_entries`); err != nil {
		s.logger.WithErr(err).Error("failed to clear history")
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
