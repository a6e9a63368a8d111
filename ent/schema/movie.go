package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Movie is a single entry in the personal movie list.
type Movie struct {
	ent.Schema
}

func (Movie) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			Unique().
			NotEmpty().
			MaxRuneLen(250),
		field.Int("year").
			Optional().
			Nillable(),
		// Overview from the metadata provider, truncated before insert.
		field.String("description").
			Optional().
			MaxRuneLen(250),
		// Absent until the first review.
		field.Float("rating").
			Optional().
			Nillable().
			Min(0).
			Max(10),
		field.String("review").
			Optional().
			Nillable().
			MaxRuneLen(250),
		// Absolute URL into the provider's image CDN.
		field.String("img_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Movie) Indexes() []ent.Index {
	return []ent.Index{
		// The list page orders by rating on every load.
		index.Fields("rating"),
	}
}
