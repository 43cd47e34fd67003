package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// UserDevice stores FCM device tokens per account. An account with no active
// device row is simply unreachable by push.
type UserDevice struct {
	ent.Schema
}

func (UserDevice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (UserDevice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("account_id", uuid.UUID{}).
			Comment("users.id or psychologists.id"),

		field.Enum("account_role").
			Values("patient", "psychologist"),

		field.String("device_token").
			MaxLen(512),

		field.Enum("platform").
			Values("web", "android", "ios"),

		field.Bool("is_active").
			Default(true),
	}
}

func (UserDevice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "device_token").Unique(),
		index.Fields("account_id", "is_active"),
	}
}
