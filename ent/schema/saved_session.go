package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SavedSession is one persisted learning session. The session snapshot
// itself is stored as versioned JSON; last_modified is the sole
// conflict-resolution signal for sync.
type SavedSession struct {
	ent.Schema
}

func (SavedSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable().
			Comment("Generated session ID, stable across devices"),
		field.String("owner_id").
			Immutable().
			Comment("Learner the session belongs to"),
		field.String("title").
			Comment("Display title, usually the source material title"),
		field.Time("last_modified").
			Default(time.Now).
			Comment("Updated on every save; drives last-write-wins sync"),
		field.Float("progress_percent").
			Default(0).
			Comment("Share of units completed, 0-100"),
		field.JSON("data", map[string]any{}).
			Comment("Full SessionSnapshot as JSON"),
	}
}

func (SavedSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "session_id").Unique(),
		index.Fields("last_modified"),
	}
}
