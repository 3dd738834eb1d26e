package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type PaymentCondition struct{ ent.Schema }

func (PaymentCondition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "payment_conditions"},
	}
}

func (PaymentCondition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("proposal_id", uuid.UUID{}),
		field.String("description"),
		field.Int("installments").Default(1).Min(1),
		field.String("method").Default(""),
	}
}

func (PaymentCondition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("proposal", Proposal.Type).
			Ref("payment_conditions").
			Field("proposal_id").
			Required().
			Unique(),
	}
}
