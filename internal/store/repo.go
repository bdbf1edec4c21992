package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/skill"
)

// ErrDuplicateQuestion is returned by PoolRepo.Insert when a question with
// the same content hash already exists. The pool is append-only and
// deduplicated; callers treat this as a benign no-op signal.
var ErrDuplicateQuestion = errors.New("store: duplicate question hash")

// QuestionPayload is the authored content of a pool question.
type QuestionPayload struct {
	Question      string            `json:"question"`
	Passage       string            `json:"passage,omitempty"`
	CorrectAnswer string            `json:"correct_answer"`
	Options       []string          `json:"options,omitempty"`
	Translations  map[string]string `json:"translations,omitempty"`
	AudioURL      string            `json:"audio_url,omitempty"`
}

// PoolQuestion is one row of the shared question corpus.
type PoolQuestion struct {
	ID                  int
	Hash                string
	Language            string
	Type                string
	TargetSkill         skill.Skill
	DifficultyLabel     difficulty.Label
	EmpiricalDifficulty *float64
	Discrimination      *float64
	TotalResponses      int
	CorrectResponses    int
	GrammarTags         []string
	VocabTags           []string
	TopicTags           []string
	Payload             QuestionPayload
	CreatedAt           time.Time
}

// PoolRepo provides indexed access to the question corpus.
type PoolRepo interface {
	// Insert adds a question, returning ErrDuplicateQuestion when the
	// hash is already present. Content is immutable once inserted.
	Insert(ctx context.Context, q *PoolQuestion) error

	// SearchByDifficulty returns up to limit questions for the language
	// whose label is in labels, via the (language, difficulty_label) index.
	SearchByDifficulty(ctx context.Context, lang string, labels []difficulty.Label, limit int) ([]*PoolQuestion, error)

	// CountByLanguage returns the corpus size for a language.
	CountByLanguage(ctx context.Context, lang string) (int, error)

	// RecordResponse increments the response counters for a question and,
	// once enough responses accumulate, refreshes its calibration fields.
	// Counter updates are additive, so concurrent learners need no lock.
	RecordResponse(ctx context.Context, hash string, correct bool) error
}

// ExposureRepo tracks which pool questions a learner has already seen.
type ExposureRepo interface {
	// SeenHashes returns the learner's seen-set for a language.
	SeenHashes(ctx context.Context, userID, lang string) (map[string]struct{}, error)

	// MarkSeen records hashes as seen. Already-seen hashes are ignored.
	MarkSeen(ctx context.Context, userID, lang string, hashes []string) error
}

// SessionStatus is the lifecycle state of a practice session slot.
type SessionStatus string

const (
	StatusPrefetching SessionStatus = "prefetching"
	StatusReady       SessionStatus = "ready"
	StatusActive      SessionStatus = "active"
	StatusFailed      SessionStatus = "failed"
)

// Live reports whether the status occupies the (user, language) slot.
func (s SessionStatus) Live() bool {
	return s == StatusPrefetching || s == StatusReady || s == StatusActive
}

// SessionMode distinguishes a pre-generated fixed set from a diagnostic
// session that grows its own pool.
type SessionMode string

const (
	ModeFixed      SessionMode = "fixed"
	ModeDiagnostic SessionMode = "diagnostic"
)

// PracticeQuestion is a session-scoped question, denormalized from the
// pool (or fresh generation) at prefetch time.
type PracticeQuestion struct {
	QuestionID        string   `json:"question_id"`
	Hash              string   `json:"hash,omitempty"`
	Type              string   `json:"type"`
	TargetSkill       string   `json:"target_skill"`
	DifficultyLabel   string   `json:"difficulty_label"`
	DifficultyNumeric float64  `json:"difficulty_numeric"`
	Points            int      `json:"points"`
	Question          string   `json:"question"`
	Passage           string   `json:"passage,omitempty"`
	CorrectAnswer     string   `json:"correct_answer"`
	Options           []string `json:"options,omitempty"`
	AudioURL          string   `json:"audio_url,omitempty"`
	RequiresAudio     bool     `json:"requires_audio,omitempty"`
}

// AnswerRecord is one answered (or skipped) question within a session.
// Append-only; never mutated after being recorded.
type AnswerRecord struct {
	QuestionID      string `json:"question_id"`
	QuestionText    string `json:"question_text"`
	QuestionType    string `json:"question_type,omitempty"`
	TargetSkill     string `json:"target_skill"`
	DifficultyLabel string `json:"difficulty_label"`
	UserAnswer      string `json:"user_answer"`
	IsCorrect       bool   `json:"is_correct"`
	EarnedPoints    int    `json:"earned_points"`
	ResponseTimeMs  int    `json:"response_time_ms"`
	Skipped         bool   `json:"skipped,omitempty"`
}

// SessionProgress is the mutable in-session record attached on activation.
type SessionProgress struct {
	Answers            []AnswerRecord `json:"answers"`
	Phase              string         `json:"phase"`
	TotalScore         int            `json:"total_score"`
	MaxScore           int            `json:"max_score"`
	LastTargetTier     int            `json:"last_target_tier,omitempty"`
	EarlyFinishOffered bool           `json:"early_finish_offered,omitempty"`
}

// PracticeSession is one row of the session slot table.
type PracticeSession struct {
	SessionID     string
	UserID        string
	Language      string
	Status        SessionStatus
	Mode          SessionMode
	PracticeSet   []PracticeQuestion
	Progress      *SessionProgress
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AgeField selects which timestamp a staleness delete compares against.
type AgeField int

const (
	AgeByCreated AgeField = iota
	AgeByUpdated
)

// SessionRepo persists practice-session slots. Conditional methods embed
// their status guard in the store query so racing writers cannot clobber a
// transition that already happened.
type SessionRepo interface {
	// ClaimSlot atomically claims the (user, language) slot: failed rows
	// for the key are deleted, and when no live row remains the given row
	// is inserted with status prefetching. Returns false without inserting
	// when a live row holds the slot. The whole read-modify-write runs in
	// one store transaction.
	ClaimSlot(ctx context.Context, row *PracticeSession) (bool, error)

	// ListByOwner returns all rows for the key, any status.
	ListByOwner(ctx context.Context, userID, lang string) ([]*PracticeSession, error)

	// Get returns the row by session id, or nil when absent.
	Get(ctx context.Context, sessionID string) (*PracticeSession, error)

	// MarkReady attaches the practice set and transitions to ready, only
	// when the current status is prefetching. Returns false otherwise.
	MarkReady(ctx context.Context, sessionID string, set []PracticeQuestion) (bool, error)

	// ActivateReady finds the key's ready row, transitions it to active
	// with the given zeroed progress, and returns it. Nil when no ready
	// row exists.
	ActivateReady(ctx context.Context, userID, lang string, progress *SessionProgress) (*PracticeSession, error)

	// MarkFailed unconditionally transitions the row to failed.
	MarkFailed(ctx context.Context, sessionID, reason string) error

	// SaveProgress overwrites the progress record of an active session.
	SaveProgress(ctx context.Context, sessionID string, progress *SessionProgress) error

	// UpdatePracticeSet replaces the practice set (diagnostic extension).
	UpdatePracticeSet(ctx context.Context, sessionID string, set []PracticeQuestion) error

	// Delete removes the row by session id.
	Delete(ctx context.Context, sessionID string) error

	// DeleteByOwnerStatuses removes the key's rows matching any of the
	// given statuses, returning the count removed.
	DeleteByOwnerStatuses(ctx context.Context, userID, lang string, statuses ...SessionStatus) (int, error)

	// DeleteAllByUser removes every row for a user across languages.
	DeleteAllByUser(ctx context.Context, userID string) (int, error)

	// DeleteStale removes rows in status whose age field is older than
	// cutoff, returning the count removed.
	DeleteStale(ctx context.Context, status SessionStatus, field AgeField, cutoff time.Time) (int, error)
}

// LearnerProfile is the per-(user, language) ability record.
type LearnerProfile struct {
	UserID            string
	Language          string
	AbilityEstimate   float64
	AbilityConfidence float64
	SkillScores       map[string]float64
	UpdatedAt         time.Time
}

// LearnerRepo persists learner profiles.
type LearnerRepo interface {
	// GetOrCreate returns the profile, creating a zeroed one on first use.
	GetOrCreate(ctx context.Context, userID, lang string) (*LearnerProfile, error)

	// Save overwrites the profile's mutable fields.
	Save(ctx context.Context, p *LearnerProfile) error
}
