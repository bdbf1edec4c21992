package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PoolQuestion is one entry in the shared question corpus for a language.
// Authored content is immutable after ingestion; only the response counters
// and calibration fields are ever patched. Rows are never deleted.
type PoolQuestion struct {
	ent.Schema
}

func (PoolQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("hash").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Content fingerprint used for deduplication"),
		field.String("language").
			Immutable().
			NotEmpty().
			Comment("Content language code, e.g. japanese"),
		field.String("type").
			Immutable().
			NotEmpty().
			Comment("Question modality, e.g. multiple_choice"),
		field.String("target_skill").
			Immutable().
			Comment("Skill the question exercises"),
		field.String("difficulty_label").
			Comment("Authored CEFR label (A1-C2)"),
		field.Float("empirical_difficulty").
			Optional().
			Nillable().
			Comment("Calibrated IRT b parameter"),
		field.Float("discrimination").
			Optional().
			Nillable().
			Comment("Calibrated IRT a parameter"),
		field.Int("total_responses").
			Default(0),
		field.Int("correct_responses").
			Default(0),
		field.Strings("grammar_tags").
			Optional(),
		field.Strings("vocab_tags").
			Optional(),
		field.Strings("topic_tags").
			Optional(),
		field.JSON("payload", map[string]any{}).
			Comment("Authored question content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PoolQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hash").Unique(),
		index.Fields("language", "difficulty_label"),
		index.Fields("language", "target_skill"),
	}
}
