package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingo/ent"
	"github.com/abhisek/lingo/ent/questionexposure"
)

// exposureRepo implements ExposureRepo using the ent client.
type exposureRepo struct {
	client *ent.Client
}

func (r *exposureRepo) SeenHashes(ctx context.Context, userID, lang string) (map[string]struct{}, error) {
	hashes, err := r.client.QuestionExposure.Query().
		Where(
			questionexposure.UserIDEQ(userID),
			questionexposure.LanguageEQ(lang),
		).
		Select(questionexposure.FieldHash).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query seen hashes: %w", err)
	}

	seen := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		seen[h] = struct{}{}
	}
	return seen, nil
}

func (r *exposureRepo) MarkSeen(ctx context.Context, userID, lang string, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}
	builders := make([]*ent.QuestionExposureCreate, 0, len(hashes))
	for _, h := range hashes {
		builders = append(builders, r.client.QuestionExposure.Create().
			SetUserID(userID).
			SetLanguage(lang).
			SetHash(h))
	}
	err := r.client.QuestionExposure.CreateBulk(builders...).
		OnConflict().
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}
