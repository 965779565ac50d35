package promptlab

import (
	"context"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayground_Defaults(t *testing.T) {
	playground := NewPlayground(PlaygroundConfig{
		Provider: NewNoOpProvider(),
	})

	assert.NotNil(t, playground.History())
	assert.NotNil(t, playground.Templates())
	assert.Contains(t, playground.Templates().Names(), "Zero-Shot")
}

func TestPlayground_Run_RecordsExactlyOneEntry(t *testing.T) {
	provider := NewNoOpProvider(WithResult(CompletionResult{
		Text:           "a summary",
		InputTokens:    20,
		OutputTokens:   8,
		FinishReason:   "stop",
		CompletionTime: 0.3,
	}))
	playground := NewPlayground(PlaygroundConfig{Provider: provider})
	ctx := context.Background()

	result, err := playground.Run(ctx, BuildInput{
		Prompt:        "Summarize: Hello world",
		SystemMessage: "You are concise",
		Config:        NewRequestConfig(WithModel("llama-3.1-8b-instant")),
	})

	require.NoError(t, err)
	assert.Equal(t, "a summary", result.Text)

	entries, err := playground.History().All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "llama-3.1-8b-instant", entry.Model)
	assert.Equal(t, "Summarize: Hello world", entry.Prompt)
	assert.Equal(t, "You are concise", entry.SystemMessage)
	assert.Equal(t, "a summary", entry.Response)
	assert.Equal(t, 20, entry.InputTokens)
	assert.Equal(t, 8, entry.OutputTokens)
	assert.Equal(t, DefaultTemperature, entry.Temperature)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestPlayground_Run_FailedCallRecordsNothing(t *testing.T) {
	provider := NewNoOpProvider(WithError(&ProviderError{
		Kind:       ErrKindRateLimit,
		StatusCode: 429,
		Message:    "slow down",
	}))
	playground := NewPlayground(PlaygroundConfig{Provider: provider})
	ctx := context.Background()

	_, err := playground.Run(ctx, BuildInput{
		Prompt: "hello",
		Config: NewRequestConfig(),
	})

	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))

	entries, err := playground.History().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlayground_Run_ValidationHappensBeforeNetworkCall(t *testing.T) {
	provider := NewNoOpProvider()
	playground := NewPlayground(PlaygroundConfig{Provider: provider})

	_, err := playground.Run(context.Background(), BuildInput{
		Prompt: "hello",
		Config: NewRequestConfig(WithTemperature(2.5)),
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, provider.Calls(), "provider must not be called for invalid input")
}

func TestPlayground_Run_TemplateFlow(t *testing.T) {
	provider := NewNoOpProvider()
	playground := NewPlayground(PlaygroundConfig{Provider: provider})
	ctx := context.Background()

	_, err := playground.Run(ctx, BuildInput{
		TemplateName:   "Zero-Shot",
		TemplateFields: map[string]string{"language": "French", "text": "Hello"},
		Config:         NewRequestConfig(),
	})
	require.NoError(t, err)

	entries, err := playground.History().All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Translate the following to French: Hello", entries[0].Prompt)

	// Missing field: no call, no entry.
	_, err = playground.Run(ctx, BuildInput{
		TemplateName: "Zero-Shot",
		Config:       NewRequestConfig(),
	})
	require.Error(t, err)
	assert.Equal(t, 1, provider.Calls())
}

func TestPlayground_Compare(t *testing.T) {
	provider := NewNoOpProvider()
	playground := NewPlayground(PlaygroundConfig{Provider: provider})
	ctx := context.Background()

	configs := []RequestConfig{
		NewRequestConfig(WithTemperature(0.2)),
		NewRequestConfig(WithTemperature(0.9)),
		NewRequestConfig(WithTemperature(5)), // invalid on purpose
	}

	results := playground.Compare(ctx, BuildInput{Prompt: "compare me"}, configs)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Error(t, results[2].Err)
	assert.Equal(t, 0.2, results[0].Config.Temperature())
	assert.Equal(t, 0.9, results[1].Config.Temperature())

	// Only the successful runs were recorded.
	entries, err := playground.History().All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPlayground_VerifyCredential(t *testing.T) {
	tests := []struct {
		name        string
		provider    *NoOpProvider
		wantValid   bool
		wantMessage string
	}{
		{
			name:        "valid key",
			provider:    NewNoOpProvider(),
			wantValid:   true,
			wantMessage: "API key is valid and working",
		},
		{
			name: "rate limited key is still valid",
			provider: NewNoOpProvider(WithError(&ProviderError{
				Kind: ErrKindRateLimit, StatusCode: 429, Message: "throttled",
			})),
			wantValid:   true,
			wantMessage: "API key is valid (rate limit reached, but key works)",
		},
		{
			name: "invalid key",
			provider: NewNoOpProvider(WithError(&ProviderError{
				Kind: ErrKindAuthentication, StatusCode: 401, Message: "bad key",
			})),
			wantValid: false,
		},
		{
			name: "network failure",
			provider: NewNoOpProvider(WithError(&ProviderError{
				Kind: ErrKindNetwork, Message: "connection refused",
			})),
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playground := NewPlayground(PlaygroundConfig{Provider: tt.provider})

			status := playground.VerifyCredential(context.Background())

			assert.Equal(t, tt.wantValid, status.Valid)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, status.Message)
			}
			assert.NotEmpty(t, status.Message)
		})
	}
}

func TestPlayground_VerifyCredential_UsesProviderDefaultModel(t *testing.T) {
	client := &mockAnthropicClient{
		createMessageFunc: func(_ context.Context, _ anthropic.MessageNewParams) (*anthropic.Message, error) {
			return &anthropic.Message{
				Content: []anthropic.ContentBlock{
					{Type: anthropic.ContentBlockTypeText, Text: "ok"},
				},
				StopReason: anthropic.MessageStopReasonEndTurn,
			}, nil
		},
	}
	playground := NewPlayground(PlaygroundConfig{
		Provider: NewAnthropicProvider(AnthropicProviderConfig{Client: client}),
	})

	status := playground.VerifyCredential(context.Background())

	require.True(t, status.Valid)
	// The verification call must not leak another provider's default
	// model ID into the request.
	assert.Equal(t, anthropic.ModelClaude_3_5_Sonnet_20240620, client.lastParams.Model.Value)
}

func TestPlayground_TracingProviderPassthrough(t *testing.T) {
	inner := NewNoOpProvider(WithResult(CompletionResult{Text: "traced", InputTokens: 1, OutputTokens: 1}))
	playground := NewPlayground(PlaygroundConfig{Provider: NewTracingProvider(inner)})

	result, err := playground.Run(context.Background(), BuildInput{
		Prompt: "hello",
		Config: NewRequestConfig(),
	})

	require.NoError(t, err)
	assert.Equal(t, "traced", result.Text)
	assert.Equal(t, 1, inner.Calls())
}
