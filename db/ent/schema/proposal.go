package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/google/uuid"
)

type Proposal struct{ ent.Schema }

func (Proposal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proposals"},
	}
}

func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("client_name"),
		field.String("vendor_name"),
		field.String("proposal_number"),
		field.Time("proposal_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("subtotal").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("observations").
			Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.ProposalDraft)).
			Validate(func(s string) error {
				if constants.ValidProposalStatus(s) {
					return nil
				}
				return errInvalidStatus
			}),
		field.Time("valid_until").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("source_asset_id").Optional().Nillable(),
		field.Int("confidence").Default(0).Min(0).Max(100),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Proposal) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE proposal -> MANY items / conditions / solutions / recommendations
		edge.To("items", ProposalItem.Type),
		edge.To("payment_conditions", PaymentCondition.Type),
		edge.To("solutions", ProposalSolution.Type),
		edge.To("recommended_products", RecommendedProduct.Type),
	}
}

func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("proposal_number"),
	}
}
