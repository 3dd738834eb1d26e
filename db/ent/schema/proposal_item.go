package schema

import (
	"errors"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var errInvalidStatus = errors.New("invalid proposal status")

type ProposalItem struct{ ent.Schema }

func (ProposalItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proposal_items"},
	}
}

func (ProposalItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("proposal_id", uuid.UUID{}),
		field.Int("position").Min(0),
		field.String("description"),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("unit").Default(""),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (ProposalItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE proposal (FK: proposal_items.proposal_id)
		edge.From("proposal", Proposal.Type).
			Ref("items").
			Field("proposal_id").
			Required().
			Unique(),
	}
}

func (ProposalItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("proposal_id", "position"),
	}
}
