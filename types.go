// Package promptlab provides building blocks for experimenting with
// prompt-engineering techniques against hosted large-language-model APIs.
package promptlab

// PromptRole represents the role of a message in a completion request.
type PromptRole string

const (
	// UserRole represents the user in a conversation.
	UserRole PromptRole = "user"
	// AssistantRole represents the model's previous responses.
	AssistantRole PromptRole = "assistant"
	// SystemRole represents instructions that steer the model's behaviour.
	SystemRole PromptRole = "system"
)

// PromptMessage is a single message sent to a completion provider.
type PromptMessage struct {
	Role PromptRole `json:"role"`
	Text string     `json:"text"`
}

// CompletionResult holds the generated text and usage metadata returned
// by a completion provider for a single request.
type CompletionResult struct {
	// Text is the generated completion.
	Text string `json:"text"`
	// InputTokens is the provider-reported prompt token count.
	InputTokens int `json:"input_tokens"`
	// OutputTokens is the provider-reported completion token count.
	OutputTokens int `json:"output_tokens"`
	// FinishReason reports why generation stopped (e.g. "stop", "length").
	FinishReason string `json:"finish_reason"`
	// CompletionTime is the wall-clock duration of the call in seconds.
	CompletionTime float64 `json:"completion_time"`
}

// TotalTokens returns the combined prompt and completion token count.
func (r CompletionResult) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// RequestConfig defines the generation parameters for a completion request.
// Use NewRequestConfig with RequestOption functions to build one; the zero
// value is not valid.
type RequestConfig struct {
	model            string
	temperature      float64
	maxTokens        int64
	topP             float64
	frequencyPenalty float64
	presencePenalty  float64
}

// RequestOption is a function that modifies a RequestConfig.
type RequestOption func(*RequestConfig)

// NewRequestConfig creates a RequestConfig with default values, applying
// the provided options in order.
//
// Example usage:
//
//	config := promptlab.NewRequestConfig(
//	    promptlab.WithModel("llama-3.1-8b-instant"),
//	    promptlab.WithTemperature(0.9),
//	    promptlab.WithMaxTokens(200),
//	)
func NewRequestConfig(opts ...RequestOption) RequestConfig {
	config := RequestConfig{
		model:            DefaultModel,
		temperature:      DefaultTemperature,
		maxTokens:        DefaultMaxTokens,
		topP:             DefaultTopP,
		frequencyPenalty: DefaultFrequencyPenalty,
		presencePenalty:  DefaultPresencePenalty,
	}

	for _, opt := range opts {
		opt(&config)
	}

	return config
}

// WithModel sets the model identifier.
func WithModel(model string) RequestOption {
	return func(c *RequestConfig) {
		c.model = model
	}
}

// WithTemperature sets the sampling temperature. Valid range is
// [MinTemperature, MaxTemperature].
func WithTemperature(temperature float64) RequestOption {
	return func(c *RequestConfig) {
		c.temperature = temperature
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(maxTokens int64) RequestOption {
	return func(c *RequestConfig) {
		c.maxTokens = maxTokens
	}
}

// WithTopP sets the nucleus-sampling parameter. Valid range is
// [MinTopP, MaxTopP].
func WithTopP(topP float64) RequestOption {
	return func(c *RequestConfig) {
		c.topP = topP
	}
}

// WithFrequencyPenalty sets the frequency penalty. Valid range is
// [MinFrequencyPenalty, MaxFrequencyPenalty].
func WithFrequencyPenalty(penalty float64) RequestOption {
	return func(c *RequestConfig) {
		c.frequencyPenalty = penalty
	}
}

// WithPresencePenalty sets the presence penalty. Valid range is
// [MinPresencePenalty, MaxPresencePenalty].
func WithPresencePenalty(penalty float64) RequestOption {
	return func(c *RequestConfig) {
		c.presencePenalty = penalty
	}
}

// Model returns the configured model identifier.
func (c RequestConfig) Model() string { return c.model }

// Temperature returns the configured sampling temperature.
func (c RequestConfig) Temperature() float64 { return c.temperature }

// MaxTokens returns the configured generation limit.
func (c RequestConfig) MaxTokens() int64 { return c.maxTokens }

// TopP returns the configured nucleus-sampling parameter.
func (c RequestConfig) TopP() float64 { return c.topP }

// FrequencyPenalty returns the configured frequency penalty.
func (c RequestConfig) FrequencyPenalty() float64 { return c.frequencyPenalty }

// PresencePenalty returns the configured presence penalty.
func (c RequestConfig) PresencePenalty() float64 { return c.presencePenalty }
