package promptlab

import "context"

// ComparisonResult holds the outcome of one configuration in a
// comparison run.
type ComparisonResult struct {
	// Config is the configuration the prompt was run with.
	Config RequestConfig
	// Result is the completion, valid only when Err is nil.
	Result CompletionResult
	// Err is the failure for this configuration, if any.
	Err error
}

// Compare runs the same prompt against each configuration in turn and
// collects the per-configuration outcomes. Calls are sequential and
// blocking; a failure for one configuration does not stop the rest.
// Successful calls are recorded in history like any other run.
func (p *Playground) Compare(ctx context.Context, in BuildInput, configs []RequestConfig) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(configs))

	for _, config := range configs {
		runInput := in
		runInput.Config = config

		result, err := p.Run(ctx, runInput)
		results = append(results, ComparisonResult{
			Config: config,
			Result: result,
			Err:    err,
		})
	}

	return results
}
