package promptlab

import "fmt"

// Validate checks every generation parameter against its documented
// range and returns a ValidationError describing the first violation.
// It is always called before a network request is attempted.
func (c RequestConfig) Validate() error {
	if c.model == "" {
		return &ValidationError{Field: "model", Message: "model identifier must not be empty"}
	}
	if c.temperature < MinTemperature || c.temperature > MaxTemperature {
		return &ValidationError{
			Field:   "temperature",
			Message: fmt.Sprintf("%.2f is outside the allowed range [%.1f, %.1f]", c.temperature, MinTemperature, MaxTemperature),
		}
	}
	if c.maxTokens < MinMaxTokens || c.maxTokens > MaxMaxTokens {
		return &ValidationError{
			Field:   "max_tokens",
			Message: fmt.Sprintf("%d is outside the allowed range [%d, %d]", c.maxTokens, MinMaxTokens, MaxMaxTokens),
		}
	}
	if c.topP < MinTopP || c.topP > MaxTopP {
		return &ValidationError{
			Field:   "top_p",
			Message: fmt.Sprintf("%.2f is outside the allowed range [%.1f, %.1f]", c.topP, MinTopP, MaxTopP),
		}
	}
	if c.frequencyPenalty < MinFrequencyPenalty || c.frequencyPenalty > MaxFrequencyPenalty {
		return &ValidationError{
			Field:   "frequency_penalty",
			Message: fmt.Sprintf("%.2f is outside the allowed range [%.1f, %.1f]", c.frequencyPenalty, MinFrequencyPenalty, MaxFrequencyPenalty),
		}
	}
	if c.presencePenalty < MinPresencePenalty || c.presencePenalty > MaxPresencePenalty {
		return &ValidationError{
			Field:   "presence_penalty",
			Message: fmt.Sprintf("%.2f is outside the allowed range [%.1f, %.1f]", c.presencePenalty, MinPresencePenalty, MaxPresencePenalty),
		}
	}
	return nil
}

// Clamped returns a copy of the config with every numeric parameter
// forced into its documented range, for callers that prefer clamping
// over rejection.
func (c RequestConfig) Clamped() RequestConfig {
	clamped := c
	clamped.temperature = clampFloat(c.temperature, MinTemperature, MaxTemperature)
	clamped.maxTokens = clampInt(c.maxTokens, MinMaxTokens, MaxMaxTokens)
	clamped.topP = clampFloat(c.topP, MinTopP, MaxTopP)
	clamped.frequencyPenalty = clampFloat(c.frequencyPenalty, MinFrequencyPenalty, MaxFrequencyPenalty)
	clamped.presencePenalty = clampFloat(c.presencePenalty, MinPresencePenalty, MaxPresencePenalty)
	return clamped
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// BuildInput collects everything needed to assemble one completion
// request: the raw prompt or a template reference, an optional system
// message, and the generation parameters.
type BuildInput struct {
	// Prompt is the raw user prompt. Ignored when TemplateName is set.
	Prompt string
	// SystemMessage overrides the template's system pattern when set.
	SystemMessage string
	// TemplateName selects a registered template; empty means no template.
	TemplateName string
	// TemplateFields supplies values for the template's placeholders.
	TemplateFields map[string]string
	// Config holds the generation parameters.
	Config RequestConfig
}

// RequestBuilder assembles validated prompt messages from user input,
// resolving templates from its registry.
type RequestBuilder struct {
	registry *TemplateRegistry
}

// NewRequestBuilder creates a builder backed by the given template
// registry. A nil registry falls back to the builtin templates.
func NewRequestBuilder(registry *TemplateRegistry) *RequestBuilder {
	if registry == nil {
		registry = BuiltinTemplates()
	}
	return &RequestBuilder{registry: registry}
}

// Build validates the input and returns the messages to send to a
// completion provider. When a template is selected its placeholders are
// filled from TemplateFields; a missing field fails the build with a
// ValidationError naming it. Build never performs network I/O.
func (b *RequestBuilder) Build(in BuildInput) ([]PromptMessage, error) {
	if err := in.Config.Validate(); err != nil {
		return nil, err
	}

	prompt := in.Prompt
	system := in.SystemMessage

	if in.TemplateName != "" {
		template, err := b.registry.Get(in.TemplateName)
		if err != nil {
			return nil, err
		}

		rendered, err := template.Render(in.TemplateFields)
		if err != nil {
			return nil, err
		}

		prompt = rendered.User
		if system == "" {
			system = rendered.System
		}
	}

	if prompt == "" {
		return nil, &ValidationError{Field: "prompt", Message: "prompt must not be empty"}
	}

	var messages []PromptMessage
	if system != "" {
		messages = append(messages, PromptMessage{Role: SystemRole, Text: system})
	}
	messages = append(messages, PromptMessage{Role: UserRole, Text: prompt})

	return messages, nil
}
