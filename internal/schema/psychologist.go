package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Psychologist is a clinician account. Kept as a separate collection from
// users so sender identity can be resolved by probing each collection.
type Psychologist struct {
	ent.Schema
}

func (Psychologist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Psychologist) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_name").
			MaxLen(255),

		field.String("title").
			MaxLen(64).
			Optional().
			Nillable().
			Comment("e.g. M.Psi., Psikolog"),

		field.String("email").
			MaxLen(320).
			Optional().
			Nillable(),

		field.String("phone").
			MaxLen(32).
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Psychologist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
