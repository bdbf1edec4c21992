package pool

import (
	"math"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/irt"
	"github.com/abhisek/lingo/internal/store"
)

// Composite weights. Calibrated questions lean on Fisher information;
// uncalibrated ones on difficulty fit plus an exploration bonus.
const (
	wInfo           = 0.40
	wFit            = 0.25
	wRelevance      = 0.20
	wDiscrimination = 0.15

	wFitUncal       = 0.35
	wRelevanceUncal = 0.35
	wDiscUncal      = 0.15
)

// tag relevance is a weighted Jaccard across the three tag categories.
const (
	wGrammarTags = 0.4
	wVocabTags   = 0.3
	wTopicTags   = 0.3
)

// scored pairs a candidate with its composite score.
type scored struct {
	q     *store.PoolQuestion
	score float64
}

// params resolves a question's effective IRT parameters: calibrated values
// when enough responses exist, defaults (a=1, b=label anchor) otherwise.
func params(q *store.PoolQuestion, threshold int) (a, b float64, calibrated bool) {
	calibrated = q.TotalResponses >= threshold
	a = irt.DefaultDiscrimination
	b = difficulty.Anchor(q.DifficultyLabel)
	if calibrated {
		if q.Discrimination != nil {
			a = *q.Discrimination
		}
		if q.EmpiricalDifficulty != nil {
			b = *q.EmpiricalDifficulty
		}
	}
	return a, b, calibrated
}

// Score computes the composite ranking score for one candidate.
func Score(q *store.PoolQuestion, theta float64, target TargetTags, cfg Config) float64 {
	a, b, calibrated := params(q, cfg.CalibrationThreshold)

	fit := irt.DifficultyFit(theta, b)

	relevance := wGrammarTags*NewTagSet(q.GrammarTags...).Jaccard(target.Grammar) +
		wVocabTags*NewTagSet(q.VocabTags...).Jaccard(target.Vocab) +
		wTopicTags*NewTagSet(q.TopicTags...).Jaccard(target.Topic)

	if !calibrated {
		return wFitUncal*fit + wRelevanceUncal*relevance + wDiscUncal*0.5 + cfg.ExplorationBonus
	}

	info := irt.Information(theta, a, b)
	discQuality := math.Min(a/2, 1)
	return wInfo*info + wFit*fit + wRelevance*relevance + wDiscrimination*discQuality
}
