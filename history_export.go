package promptlab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// historyCSVHeader lists the export columns, one per HistoryEntry field.
var historyCSVHeader = []string{
	"id", "session_id", "timestamp", "model", "system_message", "prompt",
	"temperature", "max_tokens", "top_p", "frequency_penalty", "presence_penalty",
	"response", "input_tokens", "output_tokens", "finish_reason",
	"completion_time", "estimated_cost",
}

// WriteHistoryCSV writes the entries to w as CSV, one row per entry
// plus a header row. The row count always equals the entry count.
func WriteHistoryCSV(w io.Writer, entries []HistoryEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(historyCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.SessionID,
			entry.Timestamp.UTC().Format(time.RFC3339),
			entry.Model,
			entry.SystemMessage,
			entry.Prompt,
			strconv.FormatFloat(entry.Temperature, 'f', -1, 64),
			strconv.FormatInt(entry.MaxTokens, 10),
			strconv.FormatFloat(entry.TopP, 'f', -1, 64),
			strconv.FormatFloat(entry.FrequencyPenalty, 'f', -1, 64),
			strconv.FormatFloat(entry.PresencePenalty, 'f', -1, 64),
			entry.Response,
			strconv.Itoa(entry.InputTokens),
			strconv.Itoa(entry.OutputTokens),
			entry.FinishReason,
			strconv.FormatFloat(entry.CompletionTime, 'f', -1, 64),
			strconv.FormatFloat(entry.EstimatedCost, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// HistoryCSV renders the entries as a CSV string.
func HistoryCSV(entries []HistoryEntry) (string, error) {
	var sb strings.Builder
	if err := WriteHistoryCSV(&sb, entries); err != nil {
		return "", err
	}
	return sb.String(), nil
}
