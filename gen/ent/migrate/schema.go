// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PaymentConditionsColumns holds the columns for the "payment_conditions" table.
	PaymentConditionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "installments", Type: field.TypeInt, Default: 1},
		{Name: "method", Type: field.TypeString, Default: ""},
		{Name: "proposal_id", Type: field.TypeUUID},
	}
	// PaymentConditionsTable holds the schema information for the "payment_conditions" table.
	PaymentConditionsTable = &schema.Table{
		Name:       "payment_conditions",
		Columns:    PaymentConditionsColumns,
		PrimaryKey: []*schema.Column{PaymentConditionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payment_conditions_proposals_payment_conditions",
				Columns:    []*schema.Column{PaymentConditionsColumns[4]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PipelineMetricsColumns holds the columns for the "pipeline_metrics" table.
	PipelineMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "metric_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "stage", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "successes", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeInt, Default: 0},
		{Name: "avg_duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// PipelineMetricsTable holds the schema information for the "pipeline_metrics" table.
	PipelineMetricsTable = &schema.Table{
		Name:       "pipeline_metrics",
		Columns:    PipelineMetricsColumns,
		PrimaryKey: []*schema.Column{PipelineMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinemetric_metric_date_stage",
				Unique:  true,
				Columns: []*schema.Column{PipelineMetricsColumns[1], PipelineMetricsColumns[2]},
			},
		},
	}
	// ProcessingLogColumns holds the columns for the "processing_log" table.
	ProcessingLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "processing_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "file_name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// ProcessingLogTable holds the schema information for the "processing_log" table.
	ProcessingLogTable = &schema.Table{
		Name:       "processing_log",
		Columns:    ProcessingLogColumns,
		PrimaryKey: []*schema.Column{ProcessingLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_processing_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogColumns[1], ProcessingLogColumns[9]},
			},
			{
				Name:    "processinglog_stage_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogColumns[2], ProcessingLogColumns[3]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_name", Type: field.TypeString},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "proposal_number", Type: field.TypeString},
		{Name: "proposal_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "subtotal", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "observations", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "valid_until", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "source_asset_id", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proposal_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[8], ProposalsColumns[12]},
			},
			{
				Name:    "proposal_proposal_number",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[3]},
			},
		},
	}
	// ProposalItemsColumns holds the columns for the "proposal_items" table.
	ProposalItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit", Type: field.TypeString, Default: ""},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "proposal_id", Type: field.TypeUUID},
	}
	// ProposalItemsTable holds the schema information for the "proposal_items" table.
	ProposalItemsTable = &schema.Table{
		Name:       "proposal_items",
		Columns:    ProposalItemsColumns,
		PrimaryKey: []*schema.Column{ProposalItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "proposal_items_proposals_items",
				Columns:    []*schema.Column{ProposalItemsColumns[7]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "proposalitem_proposal_id_position",
				Unique:  false,
				Columns: []*schema.Column{ProposalItemsColumns[7], ProposalItemsColumns[1]},
			},
		},
	}
	// ProposalSolutionsColumns holds the columns for the "proposal_solutions" table.
	ProposalSolutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "proposal_id", Type: field.TypeUUID},
	}
	// ProposalSolutionsTable holds the schema information for the "proposal_solutions" table.
	ProposalSolutionsTable = &schema.Table{
		Name:       "proposal_solutions",
		Columns:    ProposalSolutionsColumns,
		PrimaryKey: []*schema.Column{ProposalSolutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "proposal_solutions_proposals_solutions",
				Columns:    []*schema.Column{ProposalSolutionsColumns[3]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// RecommendedProductsColumns holds the columns for the "recommended_products" table.
	RecommendedProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "proposal_id", Type: field.TypeUUID},
	}
	// RecommendedProductsTable holds the schema information for the "recommended_products" table.
	RecommendedProductsTable = &schema.Table{
		Name:       "recommended_products",
		Columns:    RecommendedProductsColumns,
		PrimaryKey: []*schema.Column{RecommendedProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recommended_products_proposals_recommended_products",
				Columns:    []*schema.Column{RecommendedProductsColumns[3]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PaymentConditionsTable,
		PipelineMetricsTable,
		ProcessingLogTable,
		ProposalsTable,
		ProposalItemsTable,
		ProposalSolutionsTable,
		RecommendedProductsTable,
	}
)

func init() {
	PaymentConditionsTable.ForeignKeys[0].RefTable = ProposalsTable
	PaymentConditionsTable.Annotation = &entsql.Annotation{
		Table: "payment_conditions",
	}
	PipelineMetricsTable.Annotation = &entsql.Annotation{
		Table: "pipeline_metrics",
	}
	ProcessingLogTable.Annotation = &entsql.Annotation{
		Table: "processing_log",
	}
	ProposalsTable.Annotation = &entsql.Annotation{
		Table: "proposals",
	}
	ProposalItemsTable.ForeignKeys[0].RefTable = ProposalsTable
	ProposalItemsTable.Annotation = &entsql.Annotation{
		Table: "proposal_items",
	}
	ProposalSolutionsTable.ForeignKeys[0].RefTable = ProposalsTable
	ProposalSolutionsTable.Annotation = &entsql.Annotation{
		Table: "proposal_solutions",
	}
	RecommendedProductsTable.ForeignKeys[0].RefTable = ProposalsTable
	RecommendedProductsTable.Annotation = &entsql.Annotation{
		Table: "recommended_products",
	}
}
