package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActiveSession is the single practice-session slot for a (user, language)
// pair. At most one row per pair may hold status prefetching, ready or
// active at any instant; failed rows are transient and swept or replaced.
type ActiveSession struct {
	ent.Schema
}

func (ActiveSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID assigned at slot claim"),
		field.String("user_id").
			Immutable().
			NotEmpty(),
		field.String("language").
			Immutable().
			NotEmpty(),
		field.String("status").
			Comment("prefetching, ready, active or failed"),
		field.String("mode").
			Default("fixed").
			Comment("fixed or diagnostic"),
		field.JSON("practice_set", []map[string]any{}).
			Optional().
			Comment("Serialized practice questions, set on markReady"),
		field.JSON("progress", map[string]any{}).
			Optional().
			Comment("Answers, phase and scores; zeroed on activation"),
		field.String("failure_reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ActiveSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").Unique(),
		index.Fields("user_id", "language"),
		index.Fields("status"),
	}
}
