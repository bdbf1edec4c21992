package session

import "time"

// Config holds the lifecycle and runner tunables.
type Config struct {
	// Staleness thresholds for the periodic cleanup sweep. Prefetching
	// and failed rows age by creation time, ready rows by creation time,
	// active rows by last update so a long but progressing session is
	// never evicted.
	StalePrefetching time.Duration
	StaleFailed      time.Duration
	StaleReady       time.Duration
	StaleActive      time.Duration

	// FixedSetSize is the number of questions prefetched for a fixed
	// session.
	FixedSetSize int

	// DiagnosticSeedSize is the initial pool size for a diagnostic
	// session; the runner grows it on demand.
	DiagnosticSeedSize int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		StalePrefetching:   time.Hour,
		StaleFailed:        time.Hour,
		StaleReady:         6 * time.Hour,
		StaleActive:        24 * time.Hour,
		FixedSetSize:       10,
		DiagnosticSeedSize: 6,
	}
}

// Diagnostic protocol constants.
const (
	// DiagnosticMinAnswers is the earliest point at which the learner may
	// finish early.
	DiagnosticMinAnswers = 4

	// DiagnosticMaxAnswers is the hard cap on non-skipped answers.
	DiagnosticMaxAnswers = 10

	// extensionBuffer triggers incremental generation when this many
	// unanswered questions remain.
	extensionBuffer = 2

	// recomputeWindow is how many recent non-skipped answers drive the
	// target-difficulty up/down/hold rule.
	recomputeWindow = 3

	// exclusionWindow is how many recent non-skipped answers contribute
	// their skills and types to the generation exclusion lists. A sliding
	// window, not the whole session, so topics may resurface later.
	exclusionWindow = 5
)
