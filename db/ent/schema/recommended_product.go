package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type RecommendedProduct struct{ ent.Schema }

func (RecommendedProduct) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recommended_products"},
	}
}

func (RecommendedProduct) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("proposal_id", uuid.UUID{}),
		field.String("name"),
		field.String("reason").Default(""),
	}
}

func (RecommendedProduct) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("proposal", Proposal.Type).
			Ref("recommended_products").
			Field("proposal_id").
			Required().
			Unique(),
	}
}
