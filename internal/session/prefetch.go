package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/pool"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

// weakScoreThreshold marks a skill as weak when its profile score falls
// below it.
const weakScoreThreshold = 60

// prefetchTimeout bounds one background set build, generation included.
const prefetchTimeout = 2 * time.Minute

// Prefetcher builds practice sets in the background. Callers claim the
// slot and return immediately; the set lands via markReady, or the slot
// goes to failed.
type Prefetcher struct {
	lifecycle *Lifecycle
	learners  store.LearnerRepo
	pool      store.PoolRepo
	exposure  store.ExposureRepo
	searcher  *pool.Searcher
	gen       generation.Generator
	cfg       Config
	log       *zap.Logger

	wg sync.WaitGroup
}

// NewPrefetcher creates a Prefetcher over the given collaborators.
func NewPrefetcher(lifecycle *Lifecycle, learners store.LearnerRepo, poolRepo store.PoolRepo, exposure store.ExposureRepo, searcher *pool.Searcher, gen generation.Generator, cfg Config, log *zap.Logger) *Prefetcher {
	return &Prefetcher{
		lifecycle: lifecycle,
		learners:  learners,
		pool:      poolRepo,
		exposure:  exposure,
		searcher:  searcher,
		gen:       gen,
		cfg:       cfg,
		log:       log,
	}
}

// Enqueue claims the (user, language) slot and kicks the background
// build. Returns ErrNoSlot when a live session already holds the slot.
func (p *Prefetcher) Enqueue(ctx context.Context, userID, lang string, mode store.SessionMode, translationLang string) (string, error) {
	sessionID, err := p.lifecycle.ClaimSlot(ctx, userID, lang, mode)
	if err != nil {
		return "", err
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.build(sessionID, userID, lang, mode, translationLang)
	}()
	return sessionID, nil
}

// Wait blocks until all in-flight builds finish. Used on shutdown and
// in tests.
func (p *Prefetcher) Wait() { p.wg.Wait() }

func (p *Prefetcher) build(sessionID, userID, lang string, mode store.SessionMode, translationLang string) {
	ctx, cancel := context.WithTimeout(context.Background(), prefetchTimeout)
	defer cancel()

	set, err := p.buildSet(ctx, userID, lang, mode, translationLang)
	if err != nil {
		_ = p.lifecycle.MarkFailed(ctx, sessionID, err.Error())
		return
	}
	if len(set) == 0 {
		_ = p.lifecycle.MarkFailed(ctx, sessionID, "no questions available")
		return
	}
	if err := p.lifecycle.MarkReady(ctx, sessionID, set); err != nil {
		p.log.Error("marking session ready failed",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (p *Prefetcher) buildSet(ctx context.Context, userID, lang string, mode store.SessionMode, translationLang string) ([]store.PracticeQuestion, error) {
	profile, err := p.learners.GetOrCreate(ctx, userID, lang)
	if err != nil {
		return nil, err
	}

	count := p.cfg.FixedSetSize
	if mode == store.ModeDiagnostic {
		count = p.cfg.DiagnosticSeedSize
	}
	target := difficulty.Nearest(profile.AbilityEstimate)
	weakAreas, focusSkills := weakSkills(profile.SkillScores)

	set := make([]store.PracticeQuestion, 0, count)
	var servedHashes []string

	res, err := p.searcher.Search(ctx, pool.SearchInput{
		UserID:              userID,
		Language:            lang,
		TranslationLanguage: translationLang,
		TargetDifficulty:    target,
		Count:               count,
		AbilityEstimate:     &profile.AbilityEstimate,
		WeakAreas:           weakAreas,
	})
	if err != nil {
		// Pool unavailability is not fatal; generation can still fill
		// the whole set.
		p.log.Warn("pool search failed", zap.Error(err))
	} else {
		for _, q := range res.Questions {
			set = append(set, fromPool(q))
			servedHashes = append(servedHashes, q.Hash)
		}
	}

	if len(set) < count {
		generated := p.generateFill(ctx, lang, translationLang, target, count-len(set), focusSkills, set)
		for _, q := range generated {
			set = append(set, q)
			servedHashes = append(servedHashes, q.Hash)
		}
	}

	if len(servedHashes) > 0 {
		if err := p.exposure.MarkSeen(ctx, userID, lang, servedHashes); err != nil {
			p.log.Warn("marking prefetched questions seen failed", zap.Error(err))
		}
	}
	return set, nil
}

// generateFill tops the set up with fresh questions, inserting them
// into the shared pool as a side effect. Generation failure degrades to
// an empty batch.
func (p *Prefetcher) generateFill(ctx context.Context, lang, translationLang string, target difficulty.Label, need int, focusSkills []skill.Skill, existing []store.PracticeQuestion) []store.PracticeQuestion {
	avoid := make([]string, 0, len(existing))
	inSet := make(map[string]struct{}, len(existing))
	for _, q := range existing {
		avoid = append(avoid, q.Question)
		inSet[q.Hash] = struct{}{}
	}

	candidates, err := p.gen.Generate(ctx, generation.Input{
		Language:            lang,
		TranslationLanguage: translationLang,
		TargetDifficulty:    target,
		Count:               need,
		FocusSkills:         focusSkills,
		AvoidQuestions:      avoid,
	})
	if err != nil {
		p.log.Warn("question generation failed", zap.Error(err))
		return nil
	}

	out := make([]store.PracticeQuestion, 0, need)
	for _, c := range candidates {
		if len(out) >= need {
			break
		}
		if _, dup := inSet[c.Hash]; dup {
			continue
		}
		if err := p.pool.Insert(ctx, toPoolRow(c)); err != nil && !errors.Is(err, store.ErrDuplicateQuestion) {
			p.log.Warn("pool insert failed", zap.String("hash", c.Hash), zap.Error(err))
		}
		out = append(out, fromCandidate(c))
	}
	return out
}

// weakSkills derives the weak-area and focus-skill lists from the
// profile's per-skill scores.
func weakSkills(scores map[string]float64) ([]pool.WeakArea, []skill.Skill) {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	var areas []pool.WeakArea
	var focus []skill.Skill
	for _, name := range names {
		if scores[name] >= weakScoreThreshold {
			continue
		}
		s := skill.Normalize(name)
		areas = append(areas, pool.WeakArea{Skill: s, Tag: name})
		focus = append(focus, s)
	}
	return areas, focus
}
