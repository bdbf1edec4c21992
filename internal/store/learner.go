package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingo/ent"
	"github.com/abhisek/lingo/ent/learnerprofile"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) GetOrCreate(ctx context.Context, userID, lang string) (*LearnerProfile, error) {
	row, err := r.client.LearnerProfile.Query().
		Where(
			learnerprofile.UserIDEQ(userID),
			learnerprofile.LanguageEQ(lang),
		).
		Only(ctx)
	if err == nil {
		return entLearner(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("get learner profile: %w", err)
	}

	row, err = r.client.LearnerProfile.Create().
		SetUserID(userID).
		SetLanguage(lang).
		SetSkillScores(map[string]float64{}).
		Save(ctx)
	if err != nil {
		// A concurrent first request may have created it already.
		if ent.IsConstraintError(err) {
			return r.GetOrCreate(ctx, userID, lang)
		}
		return nil, fmt.Errorf("create learner profile: %w", err)
	}
	return entLearner(row), nil
}

func (r *learnerRepo) Save(ctx context.Context, p *LearnerProfile) error {
	_, err := r.client.LearnerProfile.Update().
		Where(
			learnerprofile.UserIDEQ(p.UserID),
			learnerprofile.LanguageEQ(p.Language),
		).
		SetAbilityEstimate(p.AbilityEstimate).
		SetAbilityConfidence(p.AbilityConfidence).
		SetSkillScores(p.SkillScores).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save learner profile: %w", err)
	}
	return nil
}

func entLearner(row *ent.LearnerProfile) *LearnerProfile {
	scores := row.SkillScores
	if scores == nil {
		scores = map[string]float64{}
	}
	return &LearnerProfile{
		UserID:            row.UserID,
		Language:          row.Language,
		AbilityEstimate:   row.AbilityEstimate,
		AbilityConfidence: row.AbilityConfidence,
		SkillScores:       scores,
		UpdatedAt:         row.UpdatedAt,
	}
}
