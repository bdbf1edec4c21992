package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionExposure marks a pool question as seen by a learner. The set of
// hashes for a (user, language) pair is the exclusion list pool search
// applies so a learner never receives the same question twice.
type QuestionExposure struct {
	ent.Schema
}

func (QuestionExposure) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable().
			NotEmpty(),
		field.String("language").
			Immutable().
			NotEmpty(),
		field.String("hash").
			Immutable().
			NotEmpty(),
		field.Time("seen_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionExposure) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "language"),
		index.Fields("user_id", "language", "hash").Unique(),
	}
}
