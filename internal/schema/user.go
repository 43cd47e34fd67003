package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a patient account on the platform.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_name").
			MaxLen(255),

		field.String("email").
			MaxLen(320).
			Optional().
			Nillable(),

		field.String("phone").
			MaxLen(32).
			Optional().
			Nillable().
			Comment("E.164 format"),

		field.String("locale").
			MaxLen(8).
			Default("id"),

		field.Bool("is_active").
			Default(true),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
