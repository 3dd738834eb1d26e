package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ProposalSolution struct{ ent.Schema }

func (ProposalSolution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proposal_solutions"},
	}
}

func (ProposalSolution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("proposal_id", uuid.UUID{}),
		field.String("name"),
		field.String("description").Default(""),
	}
}

func (ProposalSolution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("proposal", Proposal.Type).
			Ref("solutions").
			Field("proposal_id").
			Required().
			Unique(),
	}
}
