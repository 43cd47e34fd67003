package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Message is a single chat message in an appointment's conversation thread.
// Messages are keyed by appointment id; there is no separate conversation
// entity.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
		SoftDeleteMixin{},
	}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("Conversation key, FK → appointments.id"),

		field.UUID("sender_id", uuid.UUID{}).
			Comment("User or psychologist id of the sender"),

		field.Text("content").
			Optional().
			Nillable(),

		field.Bool("is_read").
			Default(false),

		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "created_at"),
		index.Fields("sender_id"),
	}
}
