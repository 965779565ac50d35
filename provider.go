package promptlab

import "context"

// CompletionProvider is implemented by completion backends. A provider
// performs a single synchronous call per invocation; there is no retry,
// batching, or concurrency control at this layer, and a failed call
// returns a ProviderError for the caller to surface.
type CompletionProvider interface {
	// Complete sends the messages to the remote completion service and
	// returns the generated text plus token usage counts.
	Complete(ctx context.Context, messages []PromptMessage, config RequestConfig) (CompletionResult, error)
}
