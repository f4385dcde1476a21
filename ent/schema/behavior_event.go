package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BehaviorEvent records one learner action: a quiz submission, a mercy
// completion, a remediation request, a navigation step. The engine's
// behavior stats aggregate over these.
type BehaviorEvent struct {
	ent.Schema
}

func (BehaviorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BehaviorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").
			Comment("Learner the event belongs to"),
		field.String("kind").
			Comment("Action kind: quiz_submitted, quiz_passed, quiz_failed, mercy_completed, remedial_inserted, unit_viewed, session_reset"),
		field.String("unit_id").
			Default("").
			Comment("Unit the action targeted, if any"),
		field.String("detail").
			Default("").
			Comment("Free-form detail, e.g. the score ratio"),
	}
}

func (BehaviorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("kind"),
	}
}
