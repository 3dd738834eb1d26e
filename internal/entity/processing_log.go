package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProcessingLog represents one append-only audit row of a pipeline run.
type ProcessingLog struct {
	ID           uuid.UUID       `json:"id"`
	ProcessingID string          `json:"processing_id"`
	Stage        string          `json:"stage"`
	Status       string          `json:"status"`
	DurationMS   int64           `json:"duration_ms"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Details      json.RawMessage `json:"details,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	FileName     string          `json:"file_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PipelineMetric is the day-keyed aggregate maintained alongside terminal
// log rows. AvgDurationMS is a rolling average with last-writer-wins
// semantics under concurrent writers.
type PipelineMetric struct {
	MetricDate    time.Time `json:"metric_date"`
	Stage         string    `json:"stage"`
	Attempts      int       `json:"attempts"`
	Successes     int       `json:"successes"`
	Errors        int       `json:"errors"`
	AvgDurationMS int64     `json:"avg_duration_ms"`
}
