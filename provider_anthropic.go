package promptlab

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicProvider implements the CompletionProvider interface using
// Anthropic's official Go SDK, giving the playground access to Claude
// models through the same interface as the Groq-hosted ones.
type AnthropicProvider struct {
	client AnthropicClientProvider
	model  anthropic.Model
}

// AnthropicProviderConfig holds configuration for the Anthropic provider.
type AnthropicProviderConfig struct {
	// Client is the AnthropicClientProvider implementation to use
	Client AnthropicClientProvider
	// Model specifies which Anthropic model to use
	Model anthropic.Model
}

// NewAnthropicProvider creates a new Anthropic provider with the
// specified configuration. If no model is specified, it defaults to
// Claude 3.5 Sonnet.
func NewAnthropicProvider(config AnthropicProviderConfig) *AnthropicProvider {
	if config.Model == "" {
		config.Model = anthropic.ModelClaude_3_5_Sonnet_20240620
	}

	return &AnthropicProvider{
		client: config.Client,
		model:  config.Model,
	}
}

// prepareMessageParams creates the Anthropic message parameters from the
// prompt messages and config. Anthropic takes the system message as a
// separate parameter rather than a message role.
func (p *AnthropicProvider) prepareMessageParams(messages []PromptMessage, config RequestConfig) anthropic.MessageNewParams {
	var anthropicMessages []anthropic.MessageParam
	var systemMessage string

	for _, msg := range messages {
		switch msg.Role {
		case SystemRole:
			systemMessage = msg.Text
		case AssistantRole:
			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Text)))
		default:
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Text)))
		}
	}

	model := anthropic.Model(config.model)
	if config.model == "" {
		model = p.model
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.F(model),
		Messages:    anthropic.F(anthropicMessages),
		MaxTokens:   anthropic.F(config.maxTokens),
		Temperature: anthropic.Float(config.temperature),
		TopP:        anthropic.Float(config.topP),
	}

	if systemMessage != "" {
		params.System = anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(systemMessage),
		})
	}

	return params
}

// Complete sends a single synchronous message request to Anthropic and
// returns the generated text with token usage. The frequency and
// presence penalties have no Anthropic equivalent and are not sent.
func (p *AnthropicProvider) Complete(ctx context.Context, messages []PromptMessage, config RequestConfig) (CompletionResult, error) {
	startTime := time.Now()
	params := p.prepareMessageParams(messages, config)

	message, err := p.client.CreateMessage(ctx, params)
	if err != nil {
		return CompletionResult{}, wrapAnthropicError(err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			text.WriteString(block.Text)
		}
	}

	return CompletionResult{
		Text:           text.String(),
		InputTokens:    int(message.Usage.InputTokens),
		OutputTokens:   int(message.Usage.OutputTokens),
		FinishReason:   string(message.StopReason),
		CompletionTime: time.Since(startTime).Seconds(),
	}, nil
}

// wrapAnthropicError converts an Anthropic SDK error into a
// ProviderError classified by the provider-reported HTTP status.
func wrapAnthropicError(err error) *ProviderError {
	var apiErr *anthropic.Error
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
