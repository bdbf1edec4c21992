package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/store"
)

func newTestLifecycle(repo store.SessionRepo) *Lifecycle {
	return NewLifecycle(repo, DefaultConfig(), zap.NewNop())
}

func TestClaimSlot(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	id, err := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a session id")
	}

	// The slot is held; a second claim must fail.
	if _, err := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("expected ErrNoSlot, got %v", err)
	}

	// A different language is an independent slot.
	if _, err := lc.ClaimSlot(ctx, "u1", "french", store.ModeFixed); err != nil {
		t.Fatalf("unexpected error for second language: %v", err)
	}
}

func TestClaimSlot_SweepsFailedRows(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	id, err := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := lc.MarkFailed(ctx, id, "boom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The failed row must not block a new claim.
	id2, err := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	if err != nil {
		t.Fatalf("expected claim after failure, got %v", err)
	}
	if id2 == id {
		t.Fatal("expected a fresh session id")
	}

	statuses := repo.statuses("u1", "spanish")
	if len(statuses) != 1 || statuses[0] != store.StatusPrefetching {
		t.Fatalf("expected exactly one prefetching row, got %v", statuses)
	}
}

func TestClaimSlot_ConcurrentClaims(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	const claimers = 8
	var wg sync.WaitGroup
	results := make(chan error, claimers)
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrNoSlot):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning claim, got %d (losses %d)", wins, losses)
	}

	live := 0
	for _, s := range repo.statuses("u1", "spanish") {
		if s.Live() {
			live++
		}
	}
	if live != 1 {
		t.Fatalf("expected one live row, got %d", live)
	}
}

func TestMarkReady_NoOpUnlessPrefetching(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	id, _ := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	set := []store.PracticeQuestion{{QuestionID: "q1", Question: "hola?"}}

	if err := lc.MarkReady(ctx, id, set); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := repo.Get(ctx, id)
	if s.Status != store.StatusReady {
		t.Fatalf("expected ready, got %s", s.Status)
	}

	// Ready already; a second markReady must not disturb the row.
	if err := lc.MarkReady(ctx, id, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ = repo.Get(ctx, id)
	if s.Status != store.StatusReady || len(s.PracticeSet) != 1 {
		t.Fatal("expected the ready row to be untouched")
	}
}

func TestActivate(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	// No ready row yet.
	s, err := lc.Activate(ctx, "u1", "spanish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil without a ready row")
	}

	id, _ := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	_ = lc.MarkReady(ctx, id, []store.PracticeQuestion{{QuestionID: "q1"}})

	s, err = lc.Activate(ctx, "u1", "spanish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil || s.Status != store.StatusActive {
		t.Fatalf("expected an active session, got %+v", s)
	}
	if s.Progress == nil || len(s.Progress.Answers) != 0 || s.Progress.Phase != "questions" {
		t.Fatalf("expected zeroed progress, got %+v", s.Progress)
	}
	if s.Progress.TotalScore != 0 || s.Progress.MaxScore != 0 {
		t.Fatal("expected zero scores on activation")
	}
}

func TestInvalidate_NeverRemovesActive(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	id, _ := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	_ = lc.MarkReady(ctx, id, []store.PracticeQuestion{{QuestionID: "q1"}})
	if s, _ := lc.Activate(ctx, "u1", "spanish"); s == nil {
		t.Fatal("expected activation")
	}

	if err := lc.Invalidate(ctx, "u1", "spanish"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := repo.Get(ctx, id)
	if s == nil || s.Status != store.StatusActive {
		t.Fatal("invalidate must never remove an active session")
	}
}

func TestInvalidate_RemovesPrefetchAndReady(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()

	id, _ := lc.ClaimSlot(ctx, "u1", "spanish", store.ModeFixed)
	_ = lc.MarkReady(ctx, id, nil)

	if err := lc.Invalidate(ctx, "u1", "spanish"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.statuses("u1", "spanish"); len(got) != 0 {
		t.Fatalf("expected no rows, got %v", got)
	}
}

func TestCleanupStale(t *testing.T) {
	repo := newFakeSessionRepo()
	lc := newTestLifecycle(repo)
	ctx := context.Background()
	now := time.Now()

	seed := func(id string, status store.SessionStatus, created, updated time.Time) {
		repo.rows[id] = &store.PracticeSession{
			SessionID: id, UserID: "u-" + id, Language: "spanish",
			Status: status, CreatedAt: created, UpdatedAt: updated,
		}
	}
	seed("ready-old", store.StatusReady, now.Add(-7*time.Hour), now.Add(-7*time.Hour))
	seed("ready-new", store.StatusReady, now.Add(-1*time.Hour), now.Add(-1*time.Hour))
	seed("prefetch-old", store.StatusPrefetching, now.Add(-2*time.Hour), now.Add(-2*time.Hour))
	seed("prefetch-new", store.StatusPrefetching, now.Add(-10*time.Minute), now.Add(-10*time.Minute))
	seed("failed-old", store.StatusFailed, now.Add(-90*time.Minute), now.Add(-90*time.Minute))
	// Created long ago but recently touched: a progressing session is
	// never evicted.
	seed("active-progressing", store.StatusActive, now.Add(-48*time.Hour), now.Add(-1*time.Hour))
	seed("active-abandoned", store.StatusActive, now.Add(-48*time.Hour), now.Add(-30*time.Hour))

	n, err := lc.CleanupStale(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 deletions, got %d", n)
	}

	for _, id := range []string{"ready-new", "prefetch-new", "active-progressing"} {
		if s, _ := repo.Get(ctx, id); s == nil {
			t.Errorf("expected %s to survive the sweep", id)
		}
	}
	for _, id := range []string{"ready-old", "prefetch-old", "failed-old", "active-abandoned"} {
		if s, _ := repo.Get(ctx, id); s != nil {
			t.Errorf("expected %s to be deleted", id)
		}
	}
}
