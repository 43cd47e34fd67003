package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// NotificationPref holds per-account delivery preferences. Missing row means
// push channels on, SMS and email off.
type NotificationPref struct {
	ent.Schema
}

func (NotificationPref) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (NotificationPref) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("account_id", uuid.UUID{}),

		field.Bool("message_push").
			Default(true),

		field.Bool("appointment_push").
			Default(true),

		field.Bool("appointment_sms").
			Default(false),

		field.Bool("appointment_email").
			Default(false),
	}
}

func (NotificationPref) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id").Unique(),
	}
}
