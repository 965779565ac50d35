package promptlab

// EstimateCost returns the estimated USD cost of a call from the
// hardcoded pricing table. Models with no pricing entry cost zero,
// matching how the original pricing sheet treats free-tier models.
func EstimateCost(modelID string, inputTokens, outputTokens int) float64 {
	pricing, ok := PricingFor(modelID)
	if !ok {
		return 0
	}

	inputCost := float64(inputTokens) * pricing.InputPerMillion / 1_000_000
	outputCost := float64(outputTokens) * pricing.OutputPerMillion / 1_000_000
	return inputCost + outputCost
}
