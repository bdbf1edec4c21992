package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/store"
)

// extensionBatchSize is how many questions one incremental generation
// round asks for.
const extensionBatchSize = 3

// Extender grows a diagnostic session's question pool mid-flight.
// Concurrent triggers for the same session collapse into one in-flight
// generation task; a session aborted while the task runs discards the
// late result instead of merging it.
type Extender struct {
	gen      generation.Generator
	pool     store.PoolRepo
	exposure store.ExposureRepo
	log      *zap.Logger

	group singleflight.Group

	mu      sync.Mutex
	aborted map[string]struct{}
}

// NewExtender creates an Extender over the given collaborators.
func NewExtender(gen generation.Generator, pool store.PoolRepo, exposure store.ExposureRepo, log *zap.Logger) *Extender {
	return &Extender{
		gen:      gen,
		pool:     pool,
		exposure: exposure,
		log:      log,
		aborted:  make(map[string]struct{}),
	}
}

// Abort flags the session so any in-flight extension result is
// discarded. Called on completion, early finish and restart.
func (e *Extender) Abort(sessionID string) {
	e.mu.Lock()
	e.aborted[sessionID] = struct{}{}
	e.mu.Unlock()
	e.group.Forget(sessionID)
}

// Release drops the session's abort flag once its row is gone.
func (e *Extender) Release(sessionID string) {
	e.mu.Lock()
	delete(e.aborted, sessionID)
	e.mu.Unlock()
}

func (e *Extender) isAborted(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.aborted[sessionID]
	return ok
}

// Extend generates a top-up batch for the session, excluding the skills
// and types of its recent answers. Generation failure degrades to an
// empty batch; the caller then treats the pool as exhausted.
func (e *Extender) Extend(ctx context.Context, s *store.PracticeSession, targetTier int, translationLang string) []store.PracticeQuestion {
	if e.isAborted(s.SessionID) {
		return nil
	}

	v, err, _ := e.group.Do(s.SessionID, func() (any, error) {
		return e.generate(ctx, s, targetTier, translationLang)
	})
	e.group.Forget(s.SessionID)

	if err != nil {
		e.log.Warn("diagnostic extension failed",
			zap.String("session_id", s.SessionID),
			zap.Error(err))
		return nil
	}
	if e.isAborted(s.SessionID) {
		e.log.Debug("discarding extension for aborted session",
			zap.String("session_id", s.SessionID))
		return nil
	}
	return v.([]store.PracticeQuestion)
}

func (e *Extender) generate(ctx context.Context, s *store.PracticeSession, targetTier int, translationLang string) ([]store.PracticeQuestion, error) {
	var answers []store.AnswerRecord
	if s.Progress != nil {
		answers = s.Progress.Answers
	}
	excludeSkills, excludeTypes := recentSkillsAndTypes(answers)

	recent := make([]string, 0, len(answers))
	for _, a := range answers {
		recent = append(recent, a.QuestionText)
	}
	for _, q := range s.PracticeSet {
		recent = append(recent, q.Question)
	}

	in := generation.IncrementalInput{
		Language:            s.Language,
		TranslationLanguage: translationLang,
		TargetDifficulty:    difficulty.ForTier(targetTier),
		Count:               extensionBatchSize,
		RecentQuestions:     recent,
		ExcludeSkills:       skillsOf(excludeSkills),
		ExcludeTypes:        excludeTypes,
	}

	candidates, err := e.gen.GenerateIncremental(ctx, in)
	if err != nil {
		return nil, err
	}

	out := make([]store.PracticeQuestion, 0, len(candidates))
	hashes := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if err := e.pool.Insert(ctx, toPoolRow(c)); err != nil && !errors.Is(err, store.ErrDuplicateQuestion) {
			e.log.Warn("pool insert failed", zap.String("hash", c.Hash), zap.Error(err))
		}
		out = append(out, fromCandidate(c))
		hashes = append(hashes, c.Hash)
	}
	if len(hashes) > 0 {
		if err := e.exposure.MarkSeen(ctx, s.UserID, s.Language, hashes); err != nil {
			e.log.Warn("marking extension questions seen failed", zap.Error(err))
		}
	}
	return out, nil
}
