package promptlab

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
)

// GroqProvider implements the CompletionProvider interface using Groq's
// OpenAI-compatible API.
type GroqProvider struct {
	client GroqClientProvider
	model  string
}

// GroqProviderConfig holds configuration for the Groq provider.
type GroqProviderConfig struct {
	// Client is the GroqClientProvider implementation to use
	Client GroqClientProvider
	// Model specifies which model to use (e.g. "llama-3.1-8b-instant")
	Model string
}

// NewGroqProvider creates a new Groq provider with the specified
// configuration. If no model is specified, it defaults to DefaultModel.
//
// Example usage:
//
//	client := NewGroqClient("gsk_your-api-key")
//	provider := NewGroqProvider(GroqProviderConfig{
//	    Client: client,
//	    Model:  "llama-3.3-70b-versatile",
//	})
func NewGroqProvider(config GroqProviderConfig) *GroqProvider {
	if config.Model == "" {
		config.Model = DefaultModel
	}

	return &GroqProvider{
		client: config.Client,
		model:  config.Model,
	}
}

// convertToChatMessages converts internal messages to the SDK's format.
func (p *GroqProvider) convertToChatMessages(messages []PromptMessage) []openai.ChatCompletionMessageParamUnion {
	var chatMessages []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case SystemRole:
			chatMessages = append(chatMessages, openai.SystemMessage(msg.Text))
		case AssistantRole:
			chatMessages = append(chatMessages, openai.AssistantMessage(msg.Text))
		default:
			chatMessages = append(chatMessages, openai.UserMessage(msg.Text))
		}
	}
	return chatMessages
}

// Complete sends a single synchronous chat completion request and
// returns the generated text with token usage. Failures are classified
// into a ProviderError; there is no retry.
func (p *GroqProvider) Complete(ctx context.Context, messages []PromptMessage, config RequestConfig) (CompletionResult, error) {
	startTime := time.Now()

	model := config.model
	if model == "" {
		model = p.model
	}

	params := openai.ChatCompletionNewParams{
		Messages:         openai.F(p.convertToChatMessages(messages)),
		Model:            openai.F(model),
		MaxTokens:        openai.Int(config.maxTokens),
		Temperature:      openai.Float(config.temperature),
		TopP:             openai.Float(config.topP),
		FrequencyPenalty: openai.Float(config.frequencyPenalty),
		PresencePenalty:  openai.Float(config.presencePenalty),
	}

	completion, err := p.client.CreateCompletion(ctx, params)
	if err != nil {
		return CompletionResult{}, wrapOpenAIError(err)
	}

	if len(completion.Choices) == 0 {
		return CompletionResult{}, &ProviderError{
			Kind:    ErrKindInvalidRequest,
			Message: "no choices in response",
		}
	}

	return CompletionResult{
		Text:           completion.Choices[0].Message.Content,
		InputTokens:    int(completion.Usage.PromptTokens),
		OutputTokens:   int(completion.Usage.CompletionTokens),
		FinishReason:   string(completion.Choices[0].FinishReason),
		CompletionTime: time.Since(startTime).Seconds(),
	}, nil
}

// wrapOpenAIError converts an OpenAI SDK error into a ProviderError,
// classifying it by the provider-reported HTTP status. Errors that never
// produced an HTTP response are reported as network errors.
func wrapOpenAIError(err error) *ProviderError {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Kind:       classifyStatus(apiErr.StatusCode),
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Error(),
		}
	}

	return &ProviderError{
		Kind:    ErrKindNetwork,
		Message: err.Error(),
	}
}
