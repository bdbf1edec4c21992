package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/learner"
	"github.com/abhisek/lingo/internal/pool"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type env struct {
	repo       *fakeSessionRepo
	learners   *fakeLearnerRepo
	prefetcher *session.Prefetcher
	router     *gin.Engine
}

func newEnv(t *testing.T, poolQuestions ...*store.PoolQuestion) *env {
	t.Helper()
	log := zap.NewNop()

	repo := newFakeSessionRepo()
	poolRepo := newFakePoolRepo(poolQuestions...)
	exposure := newFakeExposureRepo()
	learners := &fakeLearnerRepo{}
	gen := &fakeGenerator{}
	grader := &fakeGrader{}
	speech := &fakeSpeech{}

	cfg := session.DefaultConfig()
	cfg.FixedSetSize = 3

	lifecycle := session.NewLifecycle(repo, cfg, log)
	searcher := pool.NewSearcher(poolRepo, exposure, pool.DefaultConfig(), log)
	prefetcher := session.NewPrefetcher(lifecycle, learners, poolRepo, exposure, searcher, gen, cfg, log)
	extender := session.NewExtender(gen, poolRepo, exposure, log)
	runner := session.NewRunner(repo, poolRepo, grader, speech, extender, log)
	updater := learner.NewUpdater(learners, lifecycle, prefetcher, log)

	handler := NewPracticeHandler(lifecycle, prefetcher, runner, extender, updater, repo, log)
	router := NewRouter(Config{Origins: []string{"*"}, AuthSecret: testSecret}, handler)

	return &env{repo: repo, learners: learners, prefetcher: prefetcher, router: router}
}

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return out
}

func poolQuestion(hash string) *store.PoolQuestion {
	return &store.PoolQuestion{
		Hash:            hash,
		Language:        "french",
		Type:            "multiple_choice",
		TargetSkill:     skill.Vocabulary,
		DifficultyLabel: difficulty.B1,
		Payload: store.QuestionPayload{
			Question:      "Choose the word for 'bread' (" + hash + ")",
			CorrectAnswer: "le pain",
			Options:       []string{"le pain", "le vin", "le lait", "la pomme"},
		},
	}
}

func mcQuestion(id string) store.PracticeQuestion {
	return store.PracticeQuestion{
		QuestionID:      id,
		Type:            "multiple_choice",
		TargetSkill:     "vocabulary",
		DifficultyLabel: "B1",
		Points:          10,
		Question:        "Choose the word for 'bread' (" + id + ")",
		CorrectAnswer:   "le pain",
		Options:         []string{"le pain", "le vin", "le lait", "la pomme"},
	}
}

// seedActive inserts an active session straight into the repo.
func (e *env) seedActive(userID, lang string, set []store.PracticeQuestion) *store.PracticeSession {
	s := &store.PracticeSession{
		SessionID:   "sess-" + userID + "-" + lang,
		UserID:      userID,
		Language:    lang,
		Status:      store.StatusActive,
		Mode:        store.ModeFixed,
		PracticeSet: set,
		Progress: &store.SessionProgress{
			Answers: []store.AnswerRecord{},
			Phase:   "questions",
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	e.repo.mu.Lock()
	e.repo.rows[s.SessionID] = s
	e.repo.mu.Unlock()
	return s
}

func TestHealthcheckIsPublic(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/healthcheck", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("healthcheck status = %d, want 200", w.Code)
	}
}

func TestMissingTokenRejected(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/api/practice/next", "", gin.H{"user_id": "alice", "language": "french"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestForgedTokenRejected(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, "wrong-secret", "alice")
	w := e.do(t, http.MethodPost, "/api/practice/next", token, gin.H{"user_id": "alice", "language": "french"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestIdentityMismatchFailsFast(t *testing.T) {
	e := newEnv(t, poolQuestion("q1"))
	token := signToken(t, testSecret, "mallory")

	w := e.do(t, http.MethodPost, "/api/practice/next", token, gin.H{"user_id": "alice", "language": "french"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if got := e.repo.statuses("alice", "french"); len(got) != 0 {
		t.Errorf("mismatched request changed state: %v", got)
	}
}

func TestUnsupportedLanguageRejected(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	w := e.do(t, http.MethodPost, "/api/practice/next", token, gin.H{"user_id": "alice", "language": "klingon"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestNextPreparingThenReady(t *testing.T) {
	e := newEnv(t, poolQuestion("q1"), poolQuestion("q2"), poolQuestion("q3"))
	token := signToken(t, testSecret, "alice")
	body := gin.H{"user_id": "alice", "language": "french"}

	w := e.do(t, http.MethodPost, "/api/practice/next", token, body)
	if w.Code != http.StatusAccepted {
		t.Fatalf("first call status = %d, want 202: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["status"]; got != "preparing" {
		t.Fatalf("first call status field = %v, want preparing", got)
	}

	e.prefetcher.Wait()

	w = e.do(t, http.MethodPost, "/api/practice/next", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("second call status = %d, want 200: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["status"] != "ready" {
		t.Errorf("status field = %v, want ready", resp["status"])
	}
	if resp["next_question"] == nil {
		t.Error("ready response has no next_question")
	}
	if q, ok := resp["next_question"].(map[string]any); ok {
		if _, leaked := q["correct_answer"]; leaked {
			t.Error("next_question leaks the answer key")
		}
	}

	// The slot is now active; a third call resumes it.
	w = e.do(t, http.MethodPost, "/api/practice/next", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("third call status = %d, want 200", w.Code)
	}
	if got := decode(t, w)["status"]; got != "active" {
		t.Errorf("third call status field = %v, want active", got)
	}
}

func TestAnswerCorrect(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	s := e.seedActive("alice", "french", []store.PracticeQuestion{mcQuestion("pq1"), mcQuestion("pq2")})

	w := e.do(t, http.MethodPost, "/api/practice/answer", token, gin.H{
		"user_id":     "alice",
		"session_id":  s.SessionID,
		"question_id": "pq1",
		"answer":      "le pain",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["is_correct"] != true {
		t.Errorf("is_correct = %v, want true", resp["is_correct"])
	}
	if got := resp["earned_points"]; got != float64(10) {
		t.Errorf("earned_points = %v, want 10", got)
	}
}

func TestAnswerUnknownQuestion(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	s := e.seedActive("alice", "french", []store.PracticeQuestion{mcQuestion("pq1")})

	w := e.do(t, http.MethodPost, "/api/practice/answer", token, gin.H{
		"user_id":     "alice",
		"session_id":  s.SessionID,
		"question_id": "nope",
		"answer":      "x",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAnswerForeignSessionNotFound(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	s := e.seedActive("bob", "french", []store.PracticeQuestion{mcQuestion("pq1")})

	w := e.do(t, http.MethodPost, "/api/practice/answer", token, gin.H{
		"user_id":     "alice",
		"session_id":  s.SessionID,
		"question_id": "pq1",
		"answer":      "le pain",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSubmitUpdatesLearnerAndRotatesPrefetch(t *testing.T) {
	e := newEnv(t, poolQuestion("q1"), poolQuestion("q2"), poolQuestion("q3"))
	token := signToken(t, testSecret, "alice")
	s := e.seedActive("alice", "french", []store.PracticeQuestion{mcQuestion("pq1"), mcQuestion("pq2")})
	s.Progress.Answers = []store.AnswerRecord{
		{QuestionID: "pq1", QuestionText: "t1", TargetSkill: "vocabulary", DifficultyLabel: "B1", IsCorrect: true, EarnedPoints: 10},
		{QuestionID: "pq2", QuestionText: "t2", TargetSkill: "vocabulary", DifficultyLabel: "B1", IsCorrect: false},
	}
	s.Progress.TotalScore = 10
	s.Progress.MaxScore = 20

	w := e.do(t, http.MethodPost, "/api/practice/submit", token, gin.H{
		"user_id":    "alice",
		"session_id": s.SessionID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if got := resp["answered"]; got != float64(2) {
		t.Errorf("answered = %v, want 2", got)
	}
	if got := resp["correct"]; got != float64(1) {
		t.Errorf("correct = %v, want 1", got)
	}
	if got := resp["total_score"]; got != float64(10) {
		t.Errorf("total_score = %v, want 10", got)
	}

	if e.learners.lastSaved() == nil {
		t.Error("learner profile was not saved")
	}

	// The slot row is gone and a fresh prefetch took its place.
	e.prefetcher.Wait()
	statuses := e.repo.statuses("alice", "french")
	if len(statuses) != 1 || statuses[0] == store.StatusActive {
		t.Errorf("post-submit statuses = %v, want one non-active row", statuses)
	}
}

func TestSubmitDiagnosticBeforeMinimumRejected(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	s := e.seedActive("alice", "french", []store.PracticeQuestion{
		mcQuestion("pq1"), mcQuestion("pq2"), mcQuestion("pq3"),
		mcQuestion("pq4"), mcQuestion("pq5"), mcQuestion("pq6"),
	})
	s.Mode = store.ModeDiagnostic
	s.Progress.Answers = []store.AnswerRecord{
		{QuestionID: "pq1", QuestionText: "t1", TargetSkill: "vocabulary", DifficultyLabel: "B1", IsCorrect: true, EarnedPoints: 10},
	}

	w := e.do(t, http.MethodPost, "/api/practice/submit", token, gin.H{
		"user_id":    "alice",
		"session_id": s.SessionID,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}

	// The session survives untouched and no ability update happened.
	statuses := e.repo.statuses("alice", "french")
	if len(statuses) != 1 || statuses[0] != store.StatusActive {
		t.Errorf("post-reject statuses = %v, want one active row", statuses)
	}
	if e.learners.lastSaved() != nil {
		t.Error("learner profile must not be updated on a rejected submit")
	}

	// Once enough answers are scored the same submit goes through.
	for i := 2; i <= session.DiagnosticMinAnswers; i++ {
		s.Progress.Answers = append(s.Progress.Answers, store.AnswerRecord{
			QuestionID:      fmt.Sprintf("pq%d", i),
			QuestionText:    fmt.Sprintf("t%d", i),
			TargetSkill:     "vocabulary",
			DifficultyLabel: "B1",
			IsCorrect:       true,
			EarnedPoints:    10,
		})
	}
	w = e.do(t, http.MethodPost, "/api/practice/submit", token, gin.H{
		"user_id":    "alice",
		"session_id": s.SessionID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if e.learners.lastSaved() == nil {
		t.Error("learner profile was not saved after a valid submit")
	}
}

func TestGetSessionResume(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")

	w := e.do(t, http.MethodGet, "/api/practice/session?user_id=alice&language=french", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("no-session status = %d, want 404", w.Code)
	}

	e.seedActive("alice", "french", []store.PracticeQuestion{mcQuestion("pq1")})
	w = e.do(t, http.MethodGet, "/api/practice/session?user_id=alice&language=french", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["status"]; got != "active" {
		t.Errorf("status field = %v, want active", got)
	}
}

func TestDeleteSessionRemovesAllRowsForKey(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	e.seedActive("alice", "french", []store.PracticeQuestion{mcQuestion("pq1")})
	e.seedActive("alice", "german", []store.PracticeQuestion{mcQuestion("pq2")})

	w := e.do(t, http.MethodDelete, "/api/practice/session?user_id=alice&language=french", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["deleted"]; got != float64(1) {
		t.Errorf("deleted = %v, want 1", got)
	}
	if got := e.repo.statuses("alice", "french"); len(got) != 0 {
		t.Errorf("french rows remain: %v", got)
	}
	if got := e.repo.statuses("alice", "german"); len(got) != 1 {
		t.Errorf("german rows affected: %v", got)
	}
}

func TestDeleteAllSessionsSpansLanguages(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "alice")
	e.seedActive("alice", "french", []store.PracticeQuestion{mcQuestion("pq1")})
	e.seedActive("alice", "german", []store.PracticeQuestion{mcQuestion("pq2")})
	e.seedActive("bob", "french", []store.PracticeQuestion{mcQuestion("pq3")})

	w := e.do(t, http.MethodDelete, "/api/practice/sessions?user_id=alice", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["deleted"]; got != float64(2) {
		t.Errorf("deleted = %v, want 2", got)
	}
	if got := e.repo.statuses("bob", "french"); len(got) != 1 {
		t.Errorf("bob's rows affected: %v", got)
	}
}

func TestCleanupEndpoint(t *testing.T) {
	e := newEnv(t)
	token := signToken(t, testSecret, "ops")
	w := e.do(t, http.MethodPost, "/api/maintenance/cleanup", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["removed"]; got != float64(0) {
		t.Errorf("removed = %v, want 0", got)
	}
}
