package promptlab

import (
	"context"
	"fmt"

	"github.com/shaharia-lab/promptlab/observability"
)

// Playground wires the request builder, a completion provider, and a
// history store into the experiment loop: build, validate, call,
// record. Exactly one history entry is recorded per successful call;
// failed calls are surfaced as errors and never recorded.
type Playground struct {
	provider CompletionProvider
	history  HistoryStore
	builder  *RequestBuilder
	logger   observability.Logger
}

// PlaygroundConfig holds the dependencies for a Playground. Only
// Provider is required; History defaults to a fresh in-memory store,
// Registry to the builtin templates, and Logger to a no-op logger.
type PlaygroundConfig struct {
	Provider CompletionProvider
	History  HistoryStore
	Registry *TemplateRegistry
	Logger   observability.Logger
}

// NewPlayground creates a Playground from the given configuration.
//
// Example usage:
//
//	client := promptlab.NewGroqClient(apiKey)
//	playground := promptlab.NewPlayground(promptlab.PlaygroundConfig{
//	    Provider: promptlab.NewGroqProvider(promptlab.GroqProviderConfig{Client: client}),
//	})
//
//	result, err := playground.Run(ctx, promptlab.BuildInput{
//	    Prompt: "Explain prompt engineering in one sentence.",
//	    Config: promptlab.NewRequestConfig(promptlab.WithTemperature(0.3)),
//	})
func NewPlayground(config PlaygroundConfig) *Playground {
	if config.History == nil {
		config.History = NewInMemoryHistoryStore()
	}
	if config.Logger == nil {
		config.Logger = observability.NewNullLogger()
	}

	return &Playground{
		provider: config.Provider,
		history:  config.History,
		builder:  NewRequestBuilder(config.Registry),
		logger:   config.Logger,
	}
}

// Run builds and validates a request, sends it to the provider, records
// the outcome in history, and returns the completion result. Validation
// failures and provider errors leave the history untouched.
func (p *Playground) Run(ctx context.Context, in BuildInput) (CompletionResult, error) {
	messages, err := p.builder.Build(in)
	if err != nil {
		return CompletionResult{}, err
	}

	p.logger.WithFields(map[string]interface{}{
		"model":            in.Config.model,
		"temperature":      in.Config.temperature,
		"max_tokens":       in.Config.maxTokens,
		"estimated_tokens": EstimateMessageTokens(messages),
	}).Debug("sending completion request")

	result, err := p.provider.Complete(ctx, messages, in.Config)
	if err != nil {
		p.logger.WithErr(err).Error("completion request failed")
		return CompletionResult{}, err
	}

	entry := newHistoryEntry(messages, in.Config, result)
	if err := p.history.Append(ctx, entry); err != nil {
		return CompletionResult{}, fmt.Errorf("completion succeeded but recording history failed: %w", err)
	}

	p.logger.WithFields(map[string]interface{}{
		"model":           entry.Model,
		"input_tokens":    entry.InputTokens,
		"output_tokens":   entry.OutputTokens,
		"completion_time": entry.CompletionTime,
	}).Info("completion recorded")

	return result, nil
}

// History returns the playground's history store.
func (p *Playground) History() HistoryStore {
	return p.history
}

// Templates returns the playground's template registry.
func (p *Playground) Templates() *TemplateRegistry {
	return p.builder.registry
}

// VerifyCredential checks whether the provider accepts the configured
// credential by making a minimal completion call. A rate-limited
// response still counts as a valid key.
func (p *Playground) VerifyCredential(ctx context.Context) KeyStatus {
	// The model is left unset so each provider uses its own default;
	// verification must never send another provider's model ID.
	config := RequestConfig{maxTokens: 5}
	messages := []PromptMessage{{Role: UserRole, Text: "test"}}

	_, err := p.provider.Complete(ctx, messages, config)
	switch {
	case err == nil:
		return KeyStatus{Valid: true, Message: "API key is valid and working"}
	case IsRateLimitError(err):
		return KeyStatus{Valid: true, Message: "API key is valid (rate limit reached, but key works)"}
	case IsAuthenticationError(err):
		return KeyStatus{Valid: false, Message: "Invalid API key. Please check your key and try again."}
	default:
		return KeyStatus{Valid: false, Message: fmt.Sprintf("API key verification failed: %v", err)}
	}
}
