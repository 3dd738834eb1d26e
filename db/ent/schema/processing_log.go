package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ProcessingLog struct{ ent.Schema }

func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_log"},
	}
}

func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("processing_id").NotEmpty().Immutable(),
		field.String("stage").NotEmpty().Immutable(),
		field.String("status").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.PipelineStatuses...)),
		field.Int64("duration_ms").Default(0).Immutable(),
		field.String("error_message").Optional().Nillable().Immutable(),
		field.JSON("details", json.RawMessage{}).Optional().Immutable(),
		field.String("user_id").Default("").Immutable(),
		field.String("file_name").Default("").Immutable(),
		field.Time("created_at").Default(time.Now).Immutable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("processing_id", "created_at"),
		index.Fields("stage", "status"),
	}
}
