package promptlab

import (
	"context"
	"time"
)

// HistoryEntry records one completed request/response pair. Entries are
// append-only and never mutated after creation; every entry corresponds
// to exactly one successful remote call.
type HistoryEntry struct {
	// ID is the entry's position in insertion order, starting at 1.
	ID int64 `json:"id"`
	// SessionID identifies the playground session that produced the entry.
	SessionID string `json:"session_id"`
	// Timestamp is when the entry was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Request parameters.
	Model            string  `json:"model"`
	SystemMessage    string  `json:"system_message"`
	Prompt           string  `json:"prompt"`
	Temperature      float64 `json:"temperature"`
	MaxTokens        int64   `json:"max_tokens"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`

	// Completion result.
	Response       string  `json:"response"`
	InputTokens    int     `json:"input_tokens"`
	OutputTokens   int     `json:"output_tokens"`
	FinishReason   string  `json:"finish_reason"`
	CompletionTime float64 `json:"completion_time"`
	// EstimatedCost is USD estimated from the pricing table; zero for
	// free models and models with no known pricing.
	EstimatedCost float64 `json:"estimated_cost"`
}

// HistoryFilter selects a subset of history entries. Zero-valued fields
// match everything.
type HistoryFilter struct {
	// Model keeps only entries produced with the given model ID.
	Model string
	// Since keeps only entries recorded at or after the given time.
	Since time.Time
}

func (f HistoryFilter) matches(entry HistoryEntry) bool {
	if f.Model != "" && entry.Model != f.Model {
		return false
	}
	if !f.Since.IsZero() && entry.Timestamp.Before(f.Since) {
		return false
	}
	return true
}

// HistoryStore is an append-only, insertion-ordered log of completed
// requests.
type HistoryStore interface {
	// Append adds a new entry to the log. The store assigns the entry ID.
	Append(ctx context.Context, entry HistoryEntry) error

	// All returns every entry in insertion order.
	All(ctx context.Context) ([]HistoryEntry, error)

	// Filter returns the entries matching the filter, in insertion order.
	Filter(ctx context.Context, filter HistoryFilter) ([]HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// HistoryTotals aggregates token usage and cost across history entries.
type HistoryTotals struct {
	Requests      int     `json:"requests"`
	InputTokens   int     `json:"input_tokens"`
	OutputTokens  int     `json:"output_tokens"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// SummarizeHistory computes aggregate totals for the given entries.
func SummarizeHistory(entries []HistoryEntry) HistoryTotals {
	var totals HistoryTotals
	for _, entry := range entries {
		totals.Requests++
		totals.InputTokens += entry.InputTokens
		totals.OutputTokens += entry.OutputTokens
		totals.EstimatedCost += entry.EstimatedCost
	}
	return totals
}

// newHistoryEntry builds an unsaved entry from a request and its result.
func newHistoryEntry(messages []PromptMessage, config RequestConfig, result CompletionResult) HistoryEntry {
	entry := HistoryEntry{
		Timestamp:        time.Now(),
		Model:            config.model,
		Temperature:      config.temperature,
		MaxTokens:        config.maxTokens,
		TopP:             config.topP,
		FrequencyPenalty: config.frequencyPenalty,
		PresencePenalty:  config.presencePenalty,
		Response:         result.Text,
		InputTokens:      result.InputTokens,
		OutputTokens:     result.OutputTokens,
		FinishReason:     result.FinishReason,
		CompletionTime:   result.CompletionTime,
		EstimatedCost:    EstimateCost(config.model, result.InputTokens, result.OutputTokens),
	}

	for _, msg := range messages {
		switch msg.Role {
		case SystemRole:
			entry.SystemMessage = msg.Text
		case UserRole:
			entry.Prompt = msg.Text
		}
	}

	return entry
}
