package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/store"
)

// ErrNoSlot is returned by ClaimSlot when a live session already holds
// the (user, language) slot.
var ErrNoSlot = errors.New("session: slot already claimed")

// Lifecycle is the session slot state machine. All transitions delegate
// their status guards to the store so racing handlers cannot clobber a
// transition that already happened.
type Lifecycle struct {
	sessions store.SessionRepo
	cfg      Config
	log      *zap.Logger
	now      func() time.Time
}

// NewLifecycle creates a Lifecycle over the given session repo.
func NewLifecycle(sessions store.SessionRepo, cfg Config, log *zap.Logger) *Lifecycle {
	return &Lifecycle{sessions: sessions, cfg: cfg, log: log, now: time.Now}
}

// ClaimSlot claims the (user, language) slot for background prefetch.
// Failed rows are swept aside; if a live row remains, ErrNoSlot is
// returned. This is the sole admission gate preventing duplicate
// background generation, so the store executes it as one transaction.
func (l *Lifecycle) ClaimSlot(ctx context.Context, userID, lang string, mode store.SessionMode) (string, error) {
	row := &store.PracticeSession{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Language:  lang,
		Status:    store.StatusPrefetching,
		Mode:      mode,
	}
	ok, err := l.sessions.ClaimSlot(ctx, row)
	if err != nil {
		return "", fmt.Errorf("claiming session slot: %w", err)
	}
	if !ok {
		return "", ErrNoSlot
	}
	l.log.Debug("claimed session slot",
		zap.String("session_id", row.SessionID),
		zap.String("user_id", userID),
		zap.String("language", lang),
		zap.String("mode", string(mode)))
	return row.SessionID, nil
}

// MarkReady attaches the generated practice set. A no-op when the row is
// no longer prefetching: the session was invalidated mid-generation and
// the result is simply discarded.
func (l *Lifecycle) MarkReady(ctx context.Context, sessionID string, set []store.PracticeQuestion) error {
	ok, err := l.sessions.MarkReady(ctx, sessionID, set)
	if err != nil {
		return fmt.Errorf("marking session ready: %w", err)
	}
	if !ok {
		l.log.Debug("mark ready skipped, session no longer prefetching",
			zap.String("session_id", sessionID))
	}
	return nil
}

// Activate consumes the key's ready row, attaching a zeroed progress
// record. Returns nil when no ready row exists.
func (l *Lifecycle) Activate(ctx context.Context, userID, lang string) (*store.PracticeSession, error) {
	progress := &store.SessionProgress{
		Answers: []store.AnswerRecord{},
		Phase:   "questions",
	}
	s, err := l.sessions.ActivateReady(ctx, userID, lang, progress)
	if err != nil {
		return nil, fmt.Errorf("activating session: %w", err)
	}
	return s, nil
}

// MarkFailed unconditionally transitions the row to failed. The UI can
// retry from this state; the next claim sweeps the row aside.
func (l *Lifecycle) MarkFailed(ctx context.Context, sessionID, reason string) error {
	if err := l.sessions.MarkFailed(ctx, sessionID, reason); err != nil {
		return fmt.Errorf("marking session failed: %w", err)
	}
	l.log.Warn("session prefetch failed",
		zap.String("session_id", sessionID),
		zap.String("reason", reason))
	return nil
}

// Invalidate discards prefetching, ready and failed rows for the key.
// An active row is never touched: the learner model changing mid-session
// must not disturb the session in progress.
func (l *Lifecycle) Invalidate(ctx context.Context, userID, lang string) error {
	n, err := l.sessions.DeleteByOwnerStatuses(ctx, userID, lang,
		store.StatusPrefetching, store.StatusReady, store.StatusFailed)
	if err != nil {
		return fmt.Errorf("invalidating sessions: %w", err)
	}
	if n > 0 {
		l.log.Debug("invalidated stale prefetch",
			zap.String("user_id", userID),
			zap.String("language", lang),
			zap.Int("deleted", n))
	}
	return nil
}

// CleanupStale deletes rows past their staleness threshold. Idempotent;
// safe to run from both the scheduler and the maintenance endpoint.
func (l *Lifecycle) CleanupStale(ctx context.Context) (int, error) {
	now := l.now()
	sweeps := []struct {
		status store.SessionStatus
		field  store.AgeField
		maxAge time.Duration
	}{
		{store.StatusPrefetching, store.AgeByCreated, l.cfg.StalePrefetching},
		{store.StatusFailed, store.AgeByCreated, l.cfg.StaleFailed},
		{store.StatusReady, store.AgeByCreated, l.cfg.StaleReady},
		{store.StatusActive, store.AgeByUpdated, l.cfg.StaleActive},
	}

	total := 0
	for _, s := range sweeps {
		n, err := l.sessions.DeleteStale(ctx, s.status, s.field, now.Add(-s.maxAge))
		if err != nil {
			return total, fmt.Errorf("cleaning up %s sessions: %w", s.status, err)
		}
		total += n
	}
	if total > 0 {
		l.log.Info("cleaned up stale sessions", zap.Int("deleted", total))
	}
	return total, nil
}
