package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerProfile holds the per-(user, language) ability estimate and
// per-skill scores. Mutated at session end (one batched update per
// distinct skill) and by response calibration.
type LearnerProfile struct {
	ent.Schema
}

func (LearnerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable().
			NotEmpty(),
		field.String("language").
			Immutable().
			NotEmpty(),
		field.Float("ability_estimate").
			Default(0).
			Comment("IRT theta, roughly [-3, 3]"),
		field.Float("ability_confidence").
			Default(0).
			Comment("0..1, grows with response volume"),
		field.JSON("skill_scores", map[string]float64{}).
			Optional().
			Comment("Rolling 0..100 score per skill"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearnerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "language").Unique(),
	}
}
