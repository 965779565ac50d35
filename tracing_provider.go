package promptlab

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// TracingProvider implements the decorator pattern for tracing
// completion calls with OpenTelemetry.
type TracingProvider struct {
	provider CompletionProvider
}

// NewTracingProvider creates a new tracing decorator for any
// CompletionProvider.
func NewTracingProvider(provider CompletionProvider) *TracingProvider {
	return &TracingProvider{
		provider: provider,
	}
}

// Complete implements the CompletionProvider interface with added tracing.
func (t *TracingProvider) Complete(ctx context.Context, messages []PromptMessage, config RequestConfig) (CompletionResult, error) {
	ctx, span := StartSpan(ctx, "CompletionProvider.Complete")
	defer span.End()

	result, err := t.provider.Complete(ctx, messages, config)
	if err != nil {
		span.RecordError(err)
		return CompletionResult{}, err
	}

	span.SetAttributes(
		attribute.String("model", config.model),
		attribute.Int("message_count", len(messages)),
		attribute.Int("input_tokens", result.InputTokens),
		attribute.Int("output_tokens", result.OutputTokens),
		attribute.Float64("completion_time", result.CompletionTime),
		attribute.Float64("temperature", config.temperature),
		attribute.Float64("top_p", config.topP),
		attribute.Int64("max_tokens", config.maxTokens),
	)

	return result, nil
}
