package generation

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Batches are
	// larger than single questions, so this is sized accordingly.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAvoidQuestions is the maximum number of already-seen questions
	// to include in the prompt for deduplication.
	MaxAvoidQuestions int

	// MaxQuestionLen and MaxPassageLen bound generated text; items
	// exceeding them are dropped.
	MaxQuestionLen int
	MaxPassageLen  int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         4096,
		Temperature:       0.8,
		MaxAvoidQuestions: 20,
		MaxQuestionLen:    500,
		MaxPassageLen:     2000,
	}
}
