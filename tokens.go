package promptlab

import "strings"

// charsPerToken is the rough ratio used for offline estimates. Real
// token counts come from the provider's usage report.
const charsPerToken = 4

// EstimateTokens returns an approximate token count for the text, used
// for pre-flight estimates before any provider-reported usage exists.
func EstimateTokens(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	estimate := len(trimmed) / charsPerToken
	if estimate == 0 {
		return 1
	}
	return estimate
}

// EstimateMessageTokens returns an approximate token count for a set of
// prompt messages.
func EstimateMessageTokens(messages []PromptMessage) int {
	total := 0
	for _, msg := range messages {
		total += EstimateTokens(msg.Text)
	}
	return total
}
