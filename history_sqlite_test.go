package promptlab

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/promptlab/observability"
)

func setupTestStore(t *testing.T) (*SQLiteHistoryStore, func()) {
	tempFile, err := os.CreateTemp("", "promptlab_history_test_*.db")
	require.NoError(t, err)
	tempFilePath := tempFile.Name()
	tempFile.Close()

	store, err := NewSQLiteHistoryStore(tempFilePath, observability.NewNullLogger())
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.Remove(tempFilePath)
	}

	return store, cleanup
}

func TestNewSQLiteHistoryStore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotNil(t, store)
	assert.NotEmpty(t, store.SessionID())
}

func sampleEntry(model string) HistoryEntry {
	return HistoryEntry{
		Timestamp:        time.Now().UTC().Truncate(time.Millisecond),
		Model:            model,
		SystemMessage:    "You are a helpful assistant",
		Prompt:           "Summarize: Hello world",
		Temperature:      0.7,
		MaxTokens:        500,
		TopP:             1.0,
		FrequencyPenalty: 0.1,
		PresencePenalty:  -0.1,
		Response:         "Hello world, summarized.",
		InputTokens:      12,
		OutputTokens:     6,
		FinishReason:     "stop",
		CompletionTime:   0.42,
		EstimatedCost:    0.0001,
	}
}

func TestSQLiteHistoryStore_AppendAndAll(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	entry := sampleEntry("llama-3.1-8b-instant")
	require.NoError(t, store.Append(ctx, entry))
	require.NoError(t, store.Append(ctx, sampleEntry("mixtral-8x7b-32768")))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got := entries[0]
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, store.SessionID(), got.SessionID)
	assert.Equal(t, entry.Model, got.Model)
	assert.Equal(t, entry.SystemMessage, got.SystemMessage)
	assert.Equal(t, entry.Prompt, got.Prompt)
	assert.Equal(t, entry.Temperature, got.Temperature)
	assert.Equal(t, entry.MaxTokens, got.MaxTokens)
	assert.Equal(t, entry.Response, got.Response)
	assert.Equal(t, entry.InputTokens, got.InputTokens)
	assert.Equal(t, entry.OutputTokens, got.OutputTokens)
	assert.Equal(t, entry.FinishReason, got.FinishReason)
	assert.InDelta(t, entry.EstimatedCost, got.EstimatedCost, 1e-9)
	assert.WithinDuration(t, entry.Timestamp, got.Timestamp, time.Second)
}

func TestSQLiteHistoryStore_Filter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleEntry("llama-3.1-8b-instant")))
	require.NoError(t, store.Append(ctx, sampleEntry("mixtral-8x7b-32768")))
	require.NoError(t, store.Append(ctx, sampleEntry("llama-3.1-8b-instant")))

	filtered, err := store.Filter(ctx, HistoryFilter{Model: "llama-3.1-8b-instant"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, entry := range filtered {
		assert.Equal(t, "llama-3.1-8b-instant", entry.Model)
	}

	none, err := store.Filter(ctx, HistoryFilter{Model: "gemma2-9b-it"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteHistoryStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleEntry(DefaultModel)))
	require.NoError(t, store.Clear(ctx))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSQLiteHistoryStore_AppendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO history_entries").
		WillReturnError(assert.AnError)

	store := &SQLiteHistoryStore{
		db:        db,
		sessionID: "test-session",
		logger:    observability.NewNullLogger(),
	}

	err = store.Append(context.Background(), sampleEntry(DefaultModel))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteHistoryStore_MalformedTimestampLogsWarning(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "session_id", "timestamp", "model", "system_message", "prompt",
		"temperature", "max_tokens", "top_p", "frequency_penalty", "presence_penalty",
		"response", "input_tokens", "output_tokens", "finish_reason", "completion_time", "estimated_cost",
	}).AddRow(
		1, "test-session", "not-a-timestamp", DefaultModel, "", "hello",
		0.7, 500, 1.0, 0.0, 0.0,
		"hi", 3, 1, "stop", 0.1, 0.0,
	)
	mock.ExpectQuery("SELECT (.+) FROM history_entries").WillReturnRows(rows)

	logrusLogger, hook := logrustest.NewNullLogger()
	store := &SQLiteHistoryStore{
		db:        db,
		sessionID: "test-session",
		logger:    observability.NewLogrusLogger(logrusLogger),
	}

	entries, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Timestamp.IsZero())

	// The unparsable timestamp is reported, not silently dropped.
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteHistoryStore_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM history_entries").
		WillReturnError(assert.AnError)

	store := &SQLiteHistoryStore{
		db:        db,
		sessionID: "test-session",
		logger:    observability.NewNullLogger(),
	}

	_, err = store.All(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
