// Package learner maintains the per-(user, language) ability model from
// finished practice sessions.
package learner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/irt"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

// Ability update tunables.
const (
	// abilityStep scales how far one skill update moves theta. The step
	// shrinks as confidence accumulates.
	abilityStep = 0.5

	// confidenceGain is added per skill update, saturating at 1.
	confidenceGain = 0.05

	// skillDecay is the EWMA weight kept from the previous skill score.
	skillDecay = 0.7
)

// SkillUpdate is one batched per-skill aggregate from a finished session.
type SkillUpdate struct {
	Skill         skill.Skill
	AvgScore      float64 // mean of 100-or-0 over the group
	AvgDifficulty float64 // mean label anchor over the group
	Count         int
}

// Invalidator discards stale prefetch for a (user, language) key.
// Satisfied by session.Lifecycle.
type Invalidator interface {
	Invalidate(ctx context.Context, userID, lang string) error
}

// Enqueuer queues a background prefetch. Satisfied by
// session.Prefetcher.
type Enqueuer interface {
	Enqueue(ctx context.Context, userID, lang string, mode store.SessionMode, translationLang string) (string, error)
}

// Updater applies end-of-session ability updates, then discards stale
// prefetch and queues a fresh one reflecting the new estimate.
type Updater struct {
	learners   store.LearnerRepo
	lifecycle  Invalidator
	prefetcher Enqueuer
	log        *zap.Logger
}

// NewUpdater creates an Updater over the given collaborators.
func NewUpdater(learners store.LearnerRepo, lifecycle Invalidator, prefetcher Enqueuer, log *zap.Logger) *Updater {
	return &Updater{learners: learners, lifecycle: lifecycle, prefetcher: prefetcher, log: log}
}

// Aggregate groups a session's non-skipped answers by target skill,
// producing exactly one update per distinct skill. Answers with an
// unknown skill fall into the default group.
func Aggregate(answers []store.AnswerRecord) []SkillUpdate {
	type group struct {
		score float64
		diff  float64
		count int
	}
	groups := make(map[skill.Skill]*group)
	for _, a := range answers {
		if a.Skipped {
			continue
		}
		s := skill.Normalize(a.TargetSkill)
		g := groups[s]
		if g == nil {
			g = &group{}
			groups[s] = g
		}
		if a.IsCorrect {
			g.score += 100
		}
		g.diff += difficulty.Anchor(difficulty.Label(a.DifficultyLabel))
		g.count++
	}

	names := make([]skill.Skill, 0, len(groups))
	for s := range groups {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	out := make([]SkillUpdate, 0, len(names))
	for _, s := range names {
		g := groups[s]
		out = append(out, SkillUpdate{
			Skill:         s,
			AvgScore:      g.score / float64(g.count),
			AvgDifficulty: g.diff / float64(g.count),
			Count:         g.count,
		})
	}
	return out
}

// Finish applies the session's batched updates to the learner profile,
// invalidates stale prefetch for the key, and enqueues a fresh one.
func (u *Updater) Finish(ctx context.Context, s *store.PracticeSession, translationLang string) error {
	var answers []store.AnswerRecord
	if s.Progress != nil {
		answers = s.Progress.Answers
	}

	updates := Aggregate(answers)
	if len(updates) > 0 {
		profile, err := u.learners.GetOrCreate(ctx, s.UserID, s.Language)
		if err != nil {
			return fmt.Errorf("loading learner profile: %w", err)
		}
		for _, up := range updates {
			applyUpdate(profile, up)
		}
		if err := u.learners.Save(ctx, profile); err != nil {
			return fmt.Errorf("saving learner profile: %w", err)
		}
		u.log.Info("learner model updated",
			zap.String("user_id", s.UserID),
			zap.String("language", s.Language),
			zap.Int("skill_updates", len(updates)),
			zap.Float64("ability", profile.AbilityEstimate))
	}

	// The old prefetch reflects the pre-session ability; discard it and
	// queue a fresh one. An in-progress session is left alone.
	if err := u.lifecycle.Invalidate(ctx, s.UserID, s.Language); err != nil {
		return err
	}
	if _, err := u.prefetcher.Enqueue(ctx, s.UserID, s.Language, store.ModeFixed, translationLang); err != nil && !errors.Is(err, session.ErrNoSlot) {
		return err
	}
	return nil
}

// applyUpdate moves the ability estimate toward the observed performance
// on one skill. The surprise term compares the observed success rate to
// the 2PL expectation at the group's average difficulty.
func applyUpdate(p *store.LearnerProfile, up SkillUpdate) {
	expected := irt.Probability(p.AbilityEstimate, irt.DefaultDiscrimination, up.AvgDifficulty)
	actual := up.AvgScore / 100

	step := abilityStep * (1 - p.AbilityConfidence*0.5)
	p.AbilityEstimate = irt.Clamp(p.AbilityEstimate + step*(actual-expected))
	p.AbilityConfidence = math.Min(1, p.AbilityConfidence+confidenceGain*float64(up.Count))

	if p.SkillScores == nil {
		p.SkillScores = make(map[string]float64)
	}
	name := string(up.Skill)
	if old, ok := p.SkillScores[name]; ok {
		p.SkillScores[name] = skillDecay*old + (1-skillDecay)*up.AvgScore
	} else {
		p.SkillScores[name] = up.AvgScore
	}
}
