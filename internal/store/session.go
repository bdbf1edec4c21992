package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/lingo/ent"
	"github.com/abhisek/lingo/ent/activesession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) ClaimSlot(ctx context.Context, row *PracticeSession) (bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin claim tx: %w", err)
	}
	defer tx.Rollback()

	// Failed rows are transient debris; sweep them as part of the claim.
	_, err = tx.ActiveSession.Delete().
		Where(
			activesession.UserIDEQ(row.UserID),
			activesession.LanguageEQ(row.Language),
			activesession.StatusEQ(string(StatusFailed)),
		).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("sweep failed rows: %w", err)
	}

	live, err := tx.ActiveSession.Query().
		Where(
			activesession.UserIDEQ(row.UserID),
			activesession.LanguageEQ(row.Language),
			activesession.StatusIn(
				string(StatusPrefetching),
				string(StatusReady),
				string(StatusActive),
			),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count live rows: %w", err)
	}
	if live > 0 {
		return false, tx.Rollback()
	}

	_, err = tx.ActiveSession.Create().
		SetSessionID(row.SessionID).
		SetUserID(row.UserID).
		SetLanguage(row.Language).
		SetStatus(string(StatusPrefetching)).
		SetMode(string(row.Mode)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("insert prefetching row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit claim: %w", err)
	}
	return true, nil
}

func (r *sessionRepo) ListByOwner(ctx context.Context, userID, lang string) ([]*PracticeSession, error) {
	rows, err := r.client.ActiveSession.Query().
		Where(
			activesession.UserIDEQ(userID),
			activesession.LanguageEQ(lang),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]*PracticeSession, 0, len(rows))
	for _, row := range rows {
		s, err := entSession(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*PracticeSession, error) {
	row, err := r.client.ActiveSession.Query().
		Where(activesession.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return entSession(row)
}

func (r *sessionRepo) MarkReady(ctx context.Context, sessionID string, set []PracticeQuestion) (bool, error) {
	setMaps, err := questionsToMaps(set)
	if err != nil {
		return false, fmt.Errorf("marshal practice set: %w", err)
	}

	n, err := r.client.ActiveSession.Update().
		Where(
			activesession.SessionIDEQ(sessionID),
			activesession.StatusEQ(string(StatusPrefetching)),
		).
		SetStatus(string(StatusReady)).
		SetPracticeSet(setMaps).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark ready: %w", err)
	}
	return n > 0, nil
}

func (r *sessionRepo) ActivateReady(ctx context.Context, userID, lang string, progress *SessionProgress) (*PracticeSession, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin activate tx: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.ActiveSession.Query().
		Where(
			activesession.UserIDEQ(userID),
			activesession.LanguageEQ(lang),
			activesession.StatusEQ(string(StatusReady)),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, tx.Rollback()
		}
		return nil, fmt.Errorf("find ready row: %w", err)
	}

	progressMap, err := progressToMap(progress)
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}

	row, err = row.Update().
		SetStatus(string(StatusActive)).
		SetProgress(progressMap).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("activate session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit activate: %w", err)
	}
	return entSession(row)
}

func (r *sessionRepo) MarkFailed(ctx context.Context, sessionID, reason string) error {
	_, err := r.client.ActiveSession.Update().
		Where(activesession.SessionIDEQ(sessionID)).
		SetStatus(string(StatusFailed)).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

func (r *sessionRepo) SaveProgress(ctx context.Context, sessionID string, progress *SessionProgress) error {
	progressMap, err := progressToMap(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = r.client.ActiveSession.Update().
		Where(activesession.SessionIDEQ(sessionID)).
		SetProgress(progressMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *sessionRepo) UpdatePracticeSet(ctx context.Context, sessionID string, set []PracticeQuestion) error {
	setMaps, err := questionsToMaps(set)
	if err != nil {
		return fmt.Errorf("marshal practice set: %w", err)
	}
	_, err = r.client.ActiveSession.Update().
		Where(activesession.SessionIDEQ(sessionID)).
		SetPracticeSet(setMaps).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update practice set: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.ActiveSession.Delete().
		Where(activesession.SessionIDEQ(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteByOwnerStatuses(ctx context.Context, userID, lang string, statuses ...SessionStatus) (int, error) {
	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}
	n, err := r.client.ActiveSession.Delete().
		Where(
			activesession.UserIDEQ(userID),
			activesession.LanguageEQ(lang),
			activesession.StatusIn(strs...),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete by statuses: %w", err)
	}
	return n, nil
}

func (r *sessionRepo) DeleteAllByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.ActiveSession.Delete().
		Where(activesession.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all by user: %w", err)
	}
	return n, nil
}

func (r *sessionRepo) DeleteStale(ctx context.Context, status SessionStatus, field AgeField, cutoff time.Time) (int, error) {
	agePred := activesession.CreatedAtLT(cutoff)
	if field == AgeByUpdated {
		agePred = activesession.UpdatedAtLT(cutoff)
	}
	n, err := r.client.ActiveSession.Delete().
		Where(
			activesession.StatusEQ(string(status)),
			agePred,
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete stale %s rows: %w", status, err)
	}
	return n, nil
}

// entSession converts an ent row to the domain record.
func entSession(row *ent.ActiveSession) (*PracticeSession, error) {
	s := &PracticeSession{
		SessionID:     row.SessionID,
		UserID:        row.UserID,
		Language:      row.Language,
		Status:        SessionStatus(row.Status),
		Mode:          SessionMode(row.Mode),
		FailureReason: row.FailureReason,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if len(row.PracticeSet) > 0 {
		set, err := mapsToQuestions(row.PracticeSet)
		if err != nil {
			return nil, fmt.Errorf("decode practice set for %s: %w", row.SessionID, err)
		}
		s.PracticeSet = set
	}
	if len(row.Progress) > 0 {
		var p SessionProgress
		if err := reencode(row.Progress, &p); err != nil {
			return nil, fmt.Errorf("decode progress for %s: %w", row.SessionID, err)
		}
		s.Progress = &p
	}
	return s, nil
}

func questionsToMaps(set []PracticeQuestion) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(set))
	for _, q := range set {
		var m map[string]any
		if err := reencode(q, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func mapsToQuestions(maps []map[string]any) ([]PracticeQuestion, error) {
	out := make([]PracticeQuestion, 0, len(maps))
	for _, m := range maps {
		var q PracticeQuestion
		if err := reencode(m, &q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func progressToMap(p *SessionProgress) (map[string]any, error) {
	if p == nil {
		return nil, nil
	}
	var m map[string]any
	if err := reencode(*p, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// reencode marshals v and unmarshals into out.
func reencode(v any, out any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
