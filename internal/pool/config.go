package pool

// Config holds the pool search tunables. The exploration bonus and the
// calibration threshold are deliberate configuration, not constants: both
// were chosen empirically and are expected to be retuned.
type Config struct {
	// CalibrationThreshold is the response count at which a question's
	// empirical IRT parameters are trusted over its authored label.
	CalibrationThreshold int

	// ExplorationBonus is added to uncalibrated questions so new content
	// accumulates the responses calibration needs.
	ExplorationBonus float64

	// CandidateMultiplier scales the requested count into the retrieval
	// bound, capped by CandidateCap.
	CandidateMultiplier int
	CandidateCap        int

	// ServableTypes is the in-scope modality set. Question types outside
	// it (e.g. flashcards owned by the spaced-repetition system) are
	// filtered before scoring.
	ServableTypes map[string]bool
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		CalibrationThreshold: 20,
		ExplorationBonus:     0.15,
		CandidateMultiplier:  5,
		CandidateCap:         256,
		ServableTypes: map[string]bool{
			"multiple_choice":    true,
			"fill_blank":         true,
			"translation":        true,
			"reading":            true,
			"listening":          true,
			"speaking":           true,
			"sentence_order":     true,
		},
	}
}
