package generation

import "context"

// Generator produces practice questions using an LLM provider.
type Generator interface {
	// Generate produces a batch of questions for the given input context.
	// Items that fail structural checks are dropped, so the returned
	// batch may be shorter than input.Count.
	Generate(ctx context.Context, input Input) ([]Candidate, error)

	// GenerateIncremental produces a small batch mid-session, steering
	// away from the excluded skills and types. Used by the diagnostic
	// extension path.
	GenerateIncremental(ctx context.Context, input IncrementalInput) ([]Candidate, error)
}
