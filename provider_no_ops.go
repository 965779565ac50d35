package promptlab

import "context"

// NoOpProvider implements the CompletionProvider interface for testing
// purposes. It returns a configurable canned result or error and counts
// how many times it was called.
type NoOpProvider struct {
	result CompletionResult
	err    error
	calls  int
}

// NoOpOption defines the function signature for the option pattern.
type NoOpOption func(*NoOpProvider)

// WithResult sets a custom CompletionResult for the NoOpProvider.
func WithResult(result CompletionResult) NoOpOption {
	return func(p *NoOpProvider) {
		p.result = result
	}
}

// WithError makes the NoOpProvider fail every call with the given error.
func WithError(err error) NoOpOption {
	return func(p *NoOpProvider) {
		p.err = err
	}
}

// NewNoOpProvider creates a new NoOpProvider with optional configurations.
func NewNoOpProvider(opts ...NoOpOption) *NoOpProvider {
	provider := &NoOpProvider{
		result: CompletionResult{
			Text:           "Default no-op response",
			InputTokens:    10,
			OutputTokens:   3,
			FinishReason:   "stop",
			CompletionTime: 0.1,
		},
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

// Complete implements the CompletionProvider interface.
func (p *NoOpProvider) Complete(_ context.Context, _ []PromptMessage, _ RequestConfig) (CompletionResult, error) {
	p.calls++
	if p.err != nil {
		return CompletionResult{}, p.err
	}
	return p.result, nil
}

// Calls reports how many times Complete was invoked.
func (p *NoOpProvider) Calls() int {
	return p.calls
}
