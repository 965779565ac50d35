package promptlab

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GroqBaseURL is Groq's OpenAI-compatible API endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// GroqClientProvider defines the interface for talking to Groq's
// OpenAI-compatible chat completion API. It abstracts the single
// operation used by GroqProvider so tests can substitute a mock client.
type GroqClientProvider interface {
	// CreateCompletion creates a new chat completion.
	CreateCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// GroqClient implements GroqClientProvider using the OpenAI Go SDK
// pointed at Groq's OpenAI-compatible endpoint.
type GroqClient struct {
	client *openai.Client
}

// NewGroqClient creates a new GroqClient with the provided API key and
// optional request options.
//
// Example usage:
//
//	// Basic usage with API key
//	client := NewGroqClient("gsk_your-api-key")
//
//	// Usage with custom HTTP client
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	client := NewGroqClient(
//	    "gsk_your-api-key",
//	    option.WithHTTPClient(httpClient),
//	)
func NewGroqClient(apiKey string, opts ...option.RequestOption) *GroqClient {
	opts = append(opts, option.WithAPIKey(apiKey), option.WithBaseURL(GroqBaseURL))
	return &GroqClient{
		client: openai.NewClient(opts...),
	}
}

// CreateCompletion implements the GroqClientProvider interface.
func (c *GroqClient) CreateCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
