package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/abhisek/lingo/ent"
	"github.com/abhisek/lingo/ent/poolquestion"
	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/irt"
	"github.com/abhisek/lingo/internal/skill"
)

// calibrationMinResponses is how many responses a question needs before
// its empirical difficulty is refreshed from observed correctness.
const calibrationMinResponses = 20

// poolRepo implements PoolRepo using the ent client.
type poolRepo struct {
	client *ent.Client
}

func (r *poolRepo) Insert(ctx context.Context, q *PoolQuestion) error {
	payload, err := payloadToMap(q.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	create := r.client.PoolQuestion.Create().
		SetHash(q.Hash).
		SetLanguage(q.Language).
		SetType(q.Type).
		SetTargetSkill(string(q.TargetSkill)).
		SetDifficultyLabel(string(q.DifficultyLabel)).
		SetTotalResponses(q.TotalResponses).
		SetCorrectResponses(q.CorrectResponses).
		SetGrammarTags(q.GrammarTags).
		SetVocabTags(q.VocabTags).
		SetTopicTags(q.TopicTags).
		SetPayload(payload)
	if q.EmpiricalDifficulty != nil {
		create.SetEmpiricalDifficulty(*q.EmpiricalDifficulty)
	}
	if q.Discrimination != nil {
		create.SetDiscrimination(*q.Discrimination)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateQuestion
		}
		return fmt.Errorf("insert pool question: %w", err)
	}
	return nil
}

func (r *poolRepo) SearchByDifficulty(ctx context.Context, lang string, labels []difficulty.Label, limit int) ([]*PoolQuestion, error) {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}

	rows, err := r.client.PoolQuestion.Query().
		Where(
			poolquestion.LanguageEQ(lang),
			poolquestion.DifficultyLabelIn(strs...),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search pool: %w", err)
	}

	out := make([]*PoolQuestion, 0, len(rows))
	for _, row := range rows {
		q, err := entPoolQuestion(row)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *poolRepo) CountByLanguage(ctx context.Context, lang string) (int, error) {
	n, err := r.client.PoolQuestion.Query().
		Where(poolquestion.LanguageEQ(lang)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pool: %w", err)
	}
	return n, nil
}

func (r *poolRepo) RecordResponse(ctx context.Context, hash string, correct bool) error {
	row, err := r.client.PoolQuestion.Query().
		Where(poolquestion.HashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Freshly generated questions may not be pooled yet; nothing
			// to calibrate.
			return nil
		}
		return fmt.Errorf("load question for response: %w", err)
	}

	total := row.TotalResponses + 1
	correctCount := row.CorrectResponses
	if correct {
		correctCount++
	}

	upd := row.Update().
		SetTotalResponses(total).
		SetCorrectResponses(correctCount)

	if total >= calibrationMinResponses {
		b := empiricalDifficulty(correctCount, total)
		upd.SetEmpiricalDifficulty(b)
		if row.Discrimination == nil {
			upd.SetDiscrimination(irt.DefaultDiscrimination)
		}
	}

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("record response: %w", err)
	}
	return nil
}

// empiricalDifficulty derives a 2PL b parameter from the observed correct
// rate, assuming a unit-discrimination item answered by a theta~0
// population. The rate is clamped away from 0 and 1 so the logit stays
// finite.
func empiricalDifficulty(correct, total int) float64 {
	p := float64(correct) / float64(total)
	p = math.Min(math.Max(p, 0.05), 0.95)
	return irt.Clamp(math.Log((1 - p) / p))
}

// entPoolQuestion converts an ent row to the domain record.
func entPoolQuestion(row *ent.PoolQuestion) (*PoolQuestion, error) {
	var payload QuestionPayload
	if err := mapToPayload(row.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode payload for %s: %w", row.Hash, err)
	}

	q := &PoolQuestion{
		ID:               row.ID,
		Hash:             row.Hash,
		Language:         row.Language,
		Type:             row.Type,
		TargetSkill:      skill.Normalize(row.TargetSkill),
		DifficultyLabel:  difficulty.Label(row.DifficultyLabel),
		TotalResponses:   row.TotalResponses,
		CorrectResponses: row.CorrectResponses,
		GrammarTags:      row.GrammarTags,
		VocabTags:        row.VocabTags,
		TopicTags:        row.TopicTags,
		Payload:          payload,
		CreatedAt:        row.CreatedAt,
	}
	if row.EmpiricalDifficulty != nil {
		v := *row.EmpiricalDifficulty
		q.EmpiricalDifficulty = &v
	}
	if row.Discrimination != nil {
		v := *row.Discrimination
		q.Discrimination = &v
	}
	return q, nil
}

// payloadToMap converts a QuestionPayload to map[string]any for ent JSON
// storage.
func payloadToMap(p QuestionPayload) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToPayload converts the stored JSON map back to a QuestionPayload.
func mapToPayload(m map[string]any, p *QuestionPayload) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, p)
}
