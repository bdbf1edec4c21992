// Package pool implements the question-pool search and ranking used to
// assemble practice sets. Retrieval widens the difficulty range by one
// tier for recall, then candidates are filtered, scored with the 2PL
// composite and greedily diversified by (type, skill).
package pool

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/store"
)

// SearchInput describes one pool search.
type SearchInput struct {
	UserID   string
	Language string

	// TranslationLanguage is the learner's instruction language. A
	// candidate without a translation for it is never served.
	TranslationLanguage string

	TargetDifficulty difficulty.Label
	Count            int

	// AbilityEstimate is the learner's theta when known. When nil, the
	// target difficulty's anchor stands in so difficulty targeting still
	// behaves sensibly for new learners.
	AbilityEstimate *float64

	WeakAreas []WeakArea
	Interests []string
}

// Result is the ranked outcome of a search. PoolSize counts the
// candidates that survived filtering; zero tells the caller to fall back
// to fresh generation.
type Result struct {
	Questions []*store.PoolQuestion
	PoolSize  int
}

// Searcher runs pool searches against the store.
type Searcher struct {
	pool     store.PoolRepo
	exposure store.ExposureRepo
	cfg      Config
	log      *zap.Logger
}

// NewSearcher constructs a Searcher.
func NewSearcher(pool store.PoolRepo, exposure store.ExposureRepo, cfg Config, log *zap.Logger) *Searcher {
	return &Searcher{pool: pool, exposure: exposure, cfg: cfg, log: log}
}

// Search retrieves, filters, scores and diversifies candidates.
func (s *Searcher) Search(ctx context.Context, in SearchInput) (*Result, error) {
	if in.Count <= 0 {
		return &Result{}, nil
	}

	limit := in.Count * s.cfg.CandidateMultiplier
	if limit > s.cfg.CandidateCap {
		limit = s.cfg.CandidateCap
	}
	labels := difficulty.Adjacent(in.TargetDifficulty)

	// The candidate query and the seen-set read are independent; issue
	// them concurrently.
	var (
		candidates []*store.PoolQuestion
		seen       map[string]struct{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = s.pool.SearchByDifficulty(gctx, in.Language, labels, limit)
		return err
	})
	g.Go(func() error {
		var err error
		seen, err = s.exposure.SeenHashes(gctx, in.UserID, in.Language)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	survivors := s.filter(candidates, seen, in.TranslationLanguage)
	if len(survivors) == 0 {
		s.log.Debug("pool search found no servable candidates",
			zap.String("user_id", in.UserID),
			zap.String("language", in.Language),
			zap.String("target", string(in.TargetDifficulty)))
		return &Result{PoolSize: 0}, nil
	}

	theta := difficulty.Anchor(in.TargetDifficulty)
	if in.AbilityEstimate != nil {
		theta = *in.AbilityEstimate
	}
	target := BuildTargetTags(in.WeakAreas, in.Interests)

	ranked := make([]scored, 0, len(survivors))
	for _, q := range survivors {
		ranked = append(ranked, scored{q: q, score: Score(q, theta, target, s.cfg)})
	}
	// Stable sort keeps retrieval order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	picked := diversify(ranked, in.Count)

	return &Result{Questions: picked, PoolSize: len(survivors)}, nil
}

// filter drops candidates that are out-of-scope, already seen by the
// learner, or missing the required translation.
func (s *Searcher) filter(candidates []*store.PoolQuestion, seen map[string]struct{}, translationLang string) []*store.PoolQuestion {
	out := make([]*store.PoolQuestion, 0, len(candidates))
	for _, q := range candidates {
		if !s.cfg.ServableTypes[q.Type] {
			continue
		}
		if _, ok := seen[q.Hash]; ok {
			continue
		}
		if translationLang != "" && q.Payload.Translations[translationLang] == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}

// diversify greedily selects up to count questions, skipping (type, skill)
// duplicates while the remaining supply can still fill the quota. When it
// can't, the best skipped candidates backfill in score order: diversity
// degrades gracefully rather than starving the set.
func diversify(ranked []scored, count int) []*store.PoolQuestion {
	type pair struct{ typ, sk string }
	taken := make(map[pair]bool)

	picked := make([]*store.PoolQuestion, 0, count)
	var skipped []scored
	for _, c := range ranked {
		if len(picked) == count {
			break
		}
		k := pair{c.q.Type, string(c.q.TargetSkill)}
		if taken[k] {
			skipped = append(skipped, c)
			continue
		}
		taken[k] = true
		picked = append(picked, c.q)
	}
	for _, c := range skipped {
		if len(picked) == count {
			break
		}
		picked = append(picked, c.q)
	}
	return picked
}
