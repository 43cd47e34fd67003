package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a patient and a psychologist.
// The notification service reads appointments; it never creates them.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → psychologists.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("pending", "confirmed", "completed", "cancelled").
			Default("pending"),

		field.Enum("channel").
			Values("video", "chat").
			Default("video"),

		field.String("video_room_url").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "start_time"),
		index.Fields("psychologist_id", "start_time"),
		index.Fields("status"),
	}
}
