package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type PipelineMetric struct{ ent.Schema }

func (PipelineMetric) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pipeline_metrics"},
	}
}

func (PipelineMetric) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Time("metric_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("stage").NotEmpty(),
		field.Int("attempts").Default(0).Min(0),
		field.Int("successes").Default(0).Min(0),
		field.Int("errors").Default(0).Min(0),
		// Rolling average; concurrent writers race on this field and
		// last-writer-wins is accepted.
		field.Int64("avg_duration_ms").Default(0),
	}
}

func (PipelineMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("metric_date", "stage").Unique(),
	}
}
