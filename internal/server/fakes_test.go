package server

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/grading"
	"github.com/abhisek/lingo/internal/store"
)

// fakeSessionRepo is an in-memory SessionRepo. One mutex serializes all
// methods, mirroring the store's transactional slot claim.
type fakeSessionRepo struct {
	mu   sync.Mutex
	rows map[string]*store.PracticeSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: make(map[string]*store.PracticeSession)}
}

func (f *fakeSessionRepo) ClaimSlot(_ context.Context, row *store.PracticeSession) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.rows {
		if r.UserID != row.UserID || r.Language != row.Language {
			continue
		}
		if r.Status == store.StatusFailed {
			delete(f.rows, id)
			continue
		}
		if r.Status.Live() {
			return false, nil
		}
	}
	now := time.Now()
	row.Status = store.StatusPrefetching
	row.CreatedAt = now
	row.UpdatedAt = now
	f.rows[row.SessionID] = row
	return true, nil
}

func (f *fakeSessionRepo) ListByOwner(_ context.Context, userID, lang string) ([]*store.PracticeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.PracticeSession
	for _, r := range f.rows {
		if r.UserID == userID && r.Language == lang {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Get(_ context.Context, sessionID string) (*store.PracticeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[sessionID], nil
}

func (f *fakeSessionRepo) MarkReady(_ context.Context, sessionID string, set []store.PracticeQuestion) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[sessionID]
	if !ok || r.Status != store.StatusPrefetching {
		return false, nil
	}
	r.Status = store.StatusReady
	r.PracticeSet = set
	r.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeSessionRepo) ActivateReady(_ context.Context, userID, lang string, progress *store.SessionProgress) (*store.PracticeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.UserID == userID && r.Language == lang && r.Status == store.StatusReady {
			r.Status = store.StatusActive
			r.Progress = progress
			r.UpdatedAt = time.Now()
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) MarkFailed(_ context.Context, sessionID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rows[sessionID]; ok {
		r.Status = store.StatusFailed
		r.FailureReason = reason
		r.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeSessionRepo) SaveProgress(_ context.Context, sessionID string, progress *store.SessionProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rows[sessionID]; ok {
		r.Progress = progress
		r.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeSessionRepo) UpdatePracticeSet(_ context.Context, sessionID string, set []store.PracticeQuestion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rows[sessionID]; ok {
		r.PracticeSet = set
		r.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, sessionID)
	return nil
}

func (f *fakeSessionRepo) DeleteByOwnerStatuses(_ context.Context, userID, lang string, statuses ...store.SessionStatus) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, r := range f.rows {
		if r.UserID != userID || r.Language != lang {
			continue
		}
		for _, s := range statuses {
			if r.Status == s {
				delete(f.rows, id)
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) DeleteAllByUser(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, r := range f.rows {
		if r.UserID == userID {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) DeleteStale(_ context.Context, status store.SessionStatus, field store.AgeField, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, r := range f.rows {
		if r.Status != status {
			continue
		}
		ts := r.CreatedAt
		if field == store.AgeByUpdated {
			ts = r.UpdatedAt
		}
		if ts.Before(cutoff) {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) statuses(userID, lang string) []store.SessionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.SessionStatus
	for _, r := range f.rows {
		if r.UserID == userID && r.Language == lang {
			out = append(out, r.Status)
		}
	}
	return out
}

// fakePoolRepo is an in-memory PoolRepo keyed by content hash.
type fakePoolRepo struct {
	mu        sync.Mutex
	questions map[string]*store.PoolQuestion
}

func newFakePoolRepo(questions ...*store.PoolQuestion) *fakePoolRepo {
	f := &fakePoolRepo{questions: make(map[string]*store.PoolQuestion)}
	for _, q := range questions {
		f.questions[q.Hash] = q
	}
	return f
}

func (f *fakePoolRepo) Insert(_ context.Context, q *store.PoolQuestion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.questions[q.Hash]; ok {
		return store.ErrDuplicateQuestion
	}
	f.questions[q.Hash] = q
	return nil
}

func (f *fakePoolRepo) SearchByDifficulty(_ context.Context, lang string, labels []difficulty.Label, limit int) ([]*store.PoolQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.PoolQuestion
	for _, q := range f.questions {
		if q.Language != lang {
			continue
		}
		for _, l := range labels {
			if q.DifficultyLabel == l {
				out = append(out, q)
				break
			}
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakePoolRepo) CountByLanguage(_ context.Context, lang string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, q := range f.questions {
		if q.Language == lang {
			n++
		}
	}
	return n, nil
}

func (f *fakePoolRepo) RecordResponse(_ context.Context, _ string, _ bool) error {
	return nil
}

// fakeExposureRepo is an in-memory ExposureRepo.
type fakeExposureRepo struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{}
}

func newFakeExposureRepo() *fakeExposureRepo {
	return &fakeExposureRepo{seen: make(map[string]map[string]struct{})}
}

func (f *fakeExposureRepo) SeenHashes(_ context.Context, userID, lang string) (map[string]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]struct{})
	for h := range f.seen[userID+"|"+lang] {
		out[h] = struct{}{}
	}
	return out, nil
}

func (f *fakeExposureRepo) MarkSeen(_ context.Context, userID, lang string, hashes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID + "|" + lang
	if f.seen[key] == nil {
		f.seen[key] = make(map[string]struct{})
	}
	for _, h := range hashes {
		f.seen[key][h] = struct{}{}
	}
	return nil
}

// fakeLearnerRepo serves one profile per call and records the last save.
type fakeLearnerRepo struct {
	mu    sync.Mutex
	saved *store.LearnerProfile
}

func (f *fakeLearnerRepo) GetOrCreate(_ context.Context, userID, lang string) (*store.LearnerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved != nil {
		return f.saved, nil
	}
	return &store.LearnerProfile{UserID: userID, Language: lang, SkillScores: map[string]float64{}}, nil
}

func (f *fakeLearnerRepo) Save(_ context.Context, p *store.LearnerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = p
	return nil
}

func (f *fakeLearnerRepo) lastSaved() *store.LearnerProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}

// fakeGenerator returns a canned batch.
type fakeGenerator struct {
	mu    sync.Mutex
	batch []generation.Candidate
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, _ generation.Input) ([]generation.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batch, f.err
}

func (f *fakeGenerator) GenerateIncremental(_ context.Context, _ generation.IncrementalInput) ([]generation.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batch, f.err
}

// fakeGrader returns a fixed result.
type fakeGrader struct {
	result grading.Result
	err    error
}

func (f *fakeGrader) Grade(_ context.Context, _ grading.GradeInput) (grading.Result, error) {
	return f.result, f.err
}

// fakeSpeech returns a fixed speech result.
type fakeSpeech struct {
	result grading.SpeechResult
	err    error
}

func (f *fakeSpeech) Evaluate(_ context.Context, _ grading.SpeechInput) (grading.SpeechResult, error) {
	return f.result, f.err
}
