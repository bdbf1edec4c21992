// Package server exposes the practice engine over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/learner"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/store"
)

// PracticeHandler serves the learner-facing practice endpoints.
type PracticeHandler struct {
	lifecycle  *session.Lifecycle
	prefetcher *session.Prefetcher
	runner     *session.Runner
	extender   *session.Extender
	updater    *learner.Updater
	sessions   store.SessionRepo
	log        *zap.Logger
}

// NewPracticeHandler creates a PracticeHandler over the given collaborators.
func NewPracticeHandler(
	lifecycle *session.Lifecycle,
	prefetcher *session.Prefetcher,
	runner *session.Runner,
	extender *session.Extender,
	updater *learner.Updater,
	sessions store.SessionRepo,
	log *zap.Logger,
) *PracticeHandler {
	return &PracticeHandler{
		lifecycle:  lifecycle,
		prefetcher: prefetcher,
		runner:     runner,
		extender:   extender,
		updater:    updater,
		sessions:   sessions,
		log:        log,
	}
}

type nextRequest struct {
	UserID              string `json:"user_id" binding:"required"`
	Language            string `json:"language" binding:"required"`
	Mode                string `json:"mode"`
	TranslationLanguage string `json:"translation_language"`
}

// Next activates the learner's prefetched session when one is ready,
// resumes an already-active one, or claims the slot and kicks off
// background generation.
func (h *PracticeHandler) Next(c *gin.Context) {
	var req nextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !requireIdentity(c, req.UserID) {
		return
	}
	if !language.IsValid(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language"})
		return
	}
	lang := language.Normalize(req.Language)
	translation := req.TranslationLanguage
	if translation == "" {
		translation = language.Default
	}

	if s, err := h.lifecycle.Activate(c.Request.Context(), req.UserID, lang); err != nil {
		h.fail(c, "activating session", err)
		return
	} else if s != nil {
		h.respondSession(c, s, "ready")
		return
	}

	if s := h.findActive(c, req.UserID, lang); s != nil {
		h.respondSession(c, s, "active")
		return
	}
	if c.IsAborted() {
		return
	}

	mode := store.ModeFixed
	if req.Mode == string(store.ModeDiagnostic) {
		mode = store.ModeDiagnostic
	}
	sessionID, err := h.prefetcher.Enqueue(c.Request.Context(), req.UserID, lang, mode, translation)
	if err == nil {
		c.JSON(http.StatusAccepted, gin.H{"status": "preparing", "session_id": sessionID})
		return
	}
	if !errors.Is(err, session.ErrNoSlot) {
		h.fail(c, "enqueueing prefetch", err)
		return
	}

	// The slot is held: a prefetch raced in, or a ready row appeared
	// between the activate attempt and the claim.
	if s, err := h.lifecycle.Activate(c.Request.Context(), req.UserID, lang); err == nil && s != nil {
		h.respondSession(c, s, "ready")
		return
	}
	rows, err := h.sessions.ListByOwner(c.Request.Context(), req.UserID, lang)
	if err != nil {
		h.fail(c, "listing sessions", err)
		return
	}
	for _, row := range rows {
		if row.Status == store.StatusPrefetching {
			c.JSON(http.StatusAccepted, gin.H{"status": "preparing", "session_id": row.SessionID})
			return
		}
	}
	c.JSON(http.StatusConflict, gin.H{"error": "session slot busy"})
}

type answerRequest struct {
	UserID              string `json:"user_id" binding:"required"`
	SessionID           string `json:"session_id" binding:"required"`
	QuestionID          string `json:"question_id" binding:"required"`
	Answer              string `json:"answer"`
	Transcript          string `json:"transcript"`
	TranslationLanguage string `json:"translation_language"`
	ResponseTimeMs      int    `json:"response_time_ms"`
	Skip                bool   `json:"skip"`
}

// Answer grades and records one submitted answer.
func (h *PracticeHandler) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !requireIdentity(c, req.UserID) {
		return
	}

	s := h.ownedActiveSession(c, req.SessionID, req.UserID)
	if s == nil {
		return
	}

	feedback, err := h.runner.RecordAnswer(c.Request.Context(), s, session.AnswerInput{
		QuestionID:          req.QuestionID,
		Answer:              req.Answer,
		Transcript:          req.Transcript,
		TranslationLanguage: req.TranslationLanguage,
		ResponseTimeMs:      req.ResponseTimeMs,
		Skip:                req.Skip,
	})
	if errors.Is(err, session.ErrUnknownQuestion) {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not in session"})
		return
	}
	if err != nil {
		h.fail(c, "recording answer", err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

type submitRequest struct {
	UserID              string `json:"user_id" binding:"required"`
	SessionID           string `json:"session_id" binding:"required"`
	TranslationLanguage string `json:"translation_language"`
}

// Submit closes the session: in-flight diagnostic generation is
// aborted, the slot row is removed, and the learner model is updated
// before a fresh prefetch is queued.
func (h *PracticeHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !requireIdentity(c, req.UserID) {
		return
	}

	s := h.ownedActiveSession(c, req.SessionID, req.UserID)
	if s == nil {
		return
	}
	if !h.runner.CanFinish(s) {
		c.JSON(http.StatusConflict, gin.H{"error": "diagnostic session needs more answers before finishing"})
		return
	}

	h.extender.Abort(s.SessionID)
	defer h.extender.Release(s.SessionID)

	if err := h.sessions.Delete(c.Request.Context(), s.SessionID); err != nil {
		h.fail(c, "deleting session", err)
		return
	}
	if err := h.updater.Finish(c.Request.Context(), s, req.TranslationLanguage); err != nil {
		h.fail(c, "finishing session", err)
		return
	}

	answered, correct := 0, 0
	if s.Progress != nil {
		for _, a := range s.Progress.Answers {
			if a.Skipped {
				continue
			}
			answered++
			if a.IsCorrect {
				correct++
			}
		}
	}
	summary := gin.H{
		"session_id": s.SessionID,
		"answered":   answered,
		"correct":    correct,
	}
	if s.Progress != nil {
		summary["total_score"] = s.Progress.TotalScore
		summary["max_score"] = s.Progress.MaxScore
	}
	c.JSON(http.StatusOK, summary)
}

// Session returns the learner's active session, for resuming after a
// reconnect.
func (h *PracticeHandler) Session(c *gin.Context) {
	userID := c.Query("user_id")
	lang := language.Normalize(c.Query("language"))
	if userID == "" || lang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and language are required"})
		return
	}
	if !requireIdentity(c, userID) {
		return
	}

	s := h.findActive(c, userID, lang)
	if c.IsAborted() {
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	h.respondSession(c, s, "active")
}

// DeleteSession removes every session row for the (user, language)
// key, active ones included. In-flight generation is aborted first.
func (h *PracticeHandler) DeleteSession(c *gin.Context) {
	userID := c.Query("user_id")
	lang := language.Normalize(c.Query("language"))
	if userID == "" || lang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and language are required"})
		return
	}
	if !requireIdentity(c, userID) {
		return
	}

	rows, err := h.sessions.ListByOwner(c.Request.Context(), userID, lang)
	if err != nil {
		h.fail(c, "listing sessions", err)
		return
	}
	for _, row := range rows {
		h.extender.Abort(row.SessionID)
		h.extender.Release(row.SessionID)
	}

	n, err := h.sessions.DeleteByOwnerStatuses(c.Request.Context(), userID, lang,
		store.StatusPrefetching, store.StatusReady, store.StatusActive, store.StatusFailed)
	if err != nil {
		h.fail(c, "deleting sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// DeleteAllSessions removes every session row for a user across all
// languages.
func (h *PracticeHandler) DeleteAllSessions(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	if !requireIdentity(c, userID) {
		return
	}

	n, err := h.sessions.DeleteAllByUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "deleting sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// Cleanup sweeps stale session rows on demand.
func (h *PracticeHandler) Cleanup(c *gin.Context) {
	n, err := h.lifecycle.CleanupStale(c.Request.Context())
	if err != nil {
		h.fail(c, "cleaning up sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}

// respondSession writes the session view with its next question. A
// session whose pool is already exhausted reports complete instead.
func (h *PracticeHandler) respondSession(c *gin.Context, s *store.PracticeSession, status string) {
	q, done, err := h.runner.Next(c.Request.Context(), s)
	if err != nil {
		h.fail(c, "selecting next question", err)
		return
	}

	body := gin.H{
		"status":     status,
		"session_id": s.SessionID,
		"language":   s.Language,
		"mode":       s.Mode,
		"complete":   done,
	}
	if s.Progress != nil {
		body["answered"] = len(s.Progress.Answers)
		body["total_score"] = s.Progress.TotalScore
		body["max_score"] = s.Progress.MaxScore
	}
	if q != nil {
		body["next_question"] = clientQuestion(q)
	}
	c.JSON(http.StatusOK, body)
}

// clientQuestion strips the answer key before the question leaves the
// server.
func clientQuestion(q *store.PracticeQuestion) gin.H {
	body := gin.H{
		"question_id":      q.QuestionID,
		"type":             q.Type,
		"target_skill":     q.TargetSkill,
		"difficulty_label": q.DifficultyLabel,
		"points":           q.Points,
		"question":         q.Question,
	}
	if q.Passage != "" {
		body["passage"] = q.Passage
	}
	if len(q.Options) > 0 {
		body["options"] = q.Options
	}
	if q.AudioURL != "" {
		body["audio_url"] = q.AudioURL
	}
	if q.Type == "speaking" {
		// Speaking prompts show the target text for the learner to read.
		body["target_text"] = q.CorrectAnswer
	}
	return body
}

// ownedActiveSession loads the session and enforces ownership and the
// active status. Writes the error response and returns nil on failure.
func (h *PracticeHandler) ownedActiveSession(c *gin.Context, sessionID, userID string) *store.PracticeSession {
	s, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "loading session", err)
		return nil
	}
	if s == nil || s.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil
	}
	if s.Status != store.StatusActive {
		c.JSON(http.StatusConflict, gin.H{"error": "session is not active"})
		return nil
	}
	return s
}

func (h *PracticeHandler) findActive(c *gin.Context, userID, lang string) *store.PracticeSession {
	rows, err := h.sessions.ListByOwner(c.Request.Context(), userID, lang)
	if err != nil {
		h.fail(c, "listing sessions", err)
		return nil
	}
	for _, row := range rows {
		if row.Status == store.StatusActive {
			return row
		}
	}
	return nil
}

func (h *PracticeHandler) fail(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
