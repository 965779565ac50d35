package promptlab

// Default generation parameters, matching the documented ranges below.
const (
	DefaultModel            = "llama-3.1-8b-instant"
	DefaultTemperature      = 0.7
	DefaultMaxTokens        = 500
	DefaultTopP             = 1.0
	DefaultFrequencyPenalty = 0.0
	DefaultPresencePenalty  = 0.0
)

// Documented parameter ranges. Values outside these ranges fail validation.
const (
	MinTemperature = 0.0
	MaxTemperature = 2.0

	MinMaxTokens = 1
	MaxMaxTokens = 8000

	MinTopP = 0.0
	MaxTopP = 1.0

	MinFrequencyPenalty = -2.0
	MaxFrequencyPenalty = 2.0

	MinPresencePenalty = -2.0
	MaxPresencePenalty = 2.0
)

// ModelInfo describes a model from the fixed catalog.
type ModelInfo struct {
	// ID is the model identifier sent to the provider.
	ID string
	// Name is a human-readable display name.
	Name string
	// Description summarises what the model is good at.
	Description string
	// ContextWindow is the model's context size in tokens.
	ContextWindow int
}

// ModelPricing holds per-million-token prices in USD.
type ModelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// modelCatalog is the fixed list of models the playground knows about.
// Groq-hosted models are currently free; the Claude entries carry
// published list prices so cost comparisons stay meaningful.
var modelCatalog = []ModelInfo{
	{
		ID:            "llama-3.3-70b-versatile",
		Name:          "Llama 3.3 70B Versatile",
		Description:   "Large general-purpose model, best quality on Groq",
		ContextWindow: 128000,
	},
	{
		ID:            "llama-3.1-70b-versatile",
		Name:          "Llama 3.1 70B Versatile",
		Description:   "Previous-generation large model",
		ContextWindow: 128000,
	},
	{
		ID:            "llama-3.1-8b-instant",
		Name:          "Llama 3.1 8B Instant",
		Description:   "Fast and economical, good default for experiments",
		ContextWindow: 128000,
	},
	{
		ID:            "mixtral-8x7b-32768",
		Name:          "Mixtral 8x7B",
		Description:   "Mixture-of-experts model with a 32K context",
		ContextWindow: 32768,
	},
	{
		ID:            "gemma2-9b-it",
		Name:          "Gemma 2 9B",
		Description:   "Small instruction-tuned model",
		ContextWindow: 8192,
	},
	{
		ID:            "claude-3-5-sonnet-20240620",
		Name:          "Claude 3.5 Sonnet",
		Description:   "Anthropic's balanced model, strong reasoning",
		ContextWindow: 200000,
	},
	{
		ID:            "claude-3-haiku-20240307",
		Name:          "Claude 3 Haiku",
		Description:   "Anthropic's fastest and cheapest model",
		ContextWindow: 200000,
	},
}

// modelPricing maps model IDs to per-1M-token prices. Groq models are
// free at time of writing but are tracked anyway so history cost
// columns stay consistent across providers.
var modelPricing = map[string]ModelPricing{
	"llama-3.3-70b-versatile":    {InputPerMillion: 0, OutputPerMillion: 0},
	"llama-3.1-70b-versatile":    {InputPerMillion: 0, OutputPerMillion: 0},
	"llama-3.1-8b-instant":       {InputPerMillion: 0, OutputPerMillion: 0},
	"mixtral-8x7b-32768":         {InputPerMillion: 0, OutputPerMillion: 0},
	"gemma2-9b-it":               {InputPerMillion: 0, OutputPerMillion: 0},
	"claude-3-5-sonnet-20240620": {InputPerMillion: 3.00, OutputPerMillion: 15.00},
	"claude-3-haiku-20240307":    {InputPerMillion: 0.25, OutputPerMillion: 1.25},
}

// AvailableModels returns the identifiers of every model in the catalog,
// in catalog order.
func AvailableModels() []string {
	ids := make([]string, 0, len(modelCatalog))
	for _, m := range modelCatalog {
		ids = append(ids, m.ID)
	}
	return ids
}

// GetModelInfo returns catalog metadata for the given model ID. The
// second return value is false when the model is not in the catalog.
func GetModelInfo(modelID string) (ModelInfo, bool) {
	for _, m := range modelCatalog {
		if m.ID == modelID {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// PricingFor returns the pricing entry for the given model ID. The
// second return value is false when no price is known.
func PricingFor(modelID string) (ModelPricing, bool) {
	p, ok := modelPricing[modelID]
	return p, ok
}

// IsKnownModel reports whether the model ID appears in the fixed catalog.
func IsKnownModel(modelID string) bool {
	_, ok := GetModelInfo(modelID)
	return ok
}
