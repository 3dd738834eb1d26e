package plog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
)

// Entry is one stage transition to record.
type Entry struct {
	ProcessingID string
	Stage        constants.Stage
	Status       constants.PipelineStatus
	Duration     time.Duration
	ErrorMessage string
	Details      map[string]any
	UserID       string
	FileName     string
}

// Sink persists audit rows and day-keyed aggregates. The repository layer
// implements it against the database; tests substitute a fake.
type Sink interface {
	AppendEntry(ctx context.Context, e Entry) error
	BumpDailyMetric(ctx context.Context, day time.Time, stage constants.Stage, status constants.PipelineStatus, duration time.Duration) error
}

// Logger records pipeline stage transitions. Failures to persist are
// absorbed and written to the diagnostic log only: observability must never
// abort the business operation it is observing.
type Logger struct {
	sink   Sink
	logger *slog.Logger
	now    func() time.Time
}

func NewLogger(sink Sink, logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{sink: sink, logger: logger, now: time.Now}
}

// NewRun returns a fresh processing (correlation) ID. A caller retrying a
// failed stage starts a new logical run; terminal states are never resumed.
func (l *Logger) NewRun() string {
	return uuid.New().String()
}

// Log persists one audit row and, for terminal states, bumps the same-day
// aggregate. It never returns an error and never panics on a nil sink.
func (l *Logger) Log(ctx context.Context, e Entry) string {
	if e.ProcessingID == "" {
		e.ProcessingID = common.ProcessingIDFromContext(ctx)
	}
	if e.ProcessingID == "" {
		e.ProcessingID = l.NewRun()
	}
	if e.UserID == "" {
		e.UserID = common.UserIDFromContext(ctx)
	}
	if !e.Status.Valid() {
		l.logger.Warn("plog.invalid_status", "status", string(e.Status), "stage", string(e.Stage))
		return e.ProcessingID
	}
	if l.sink == nil {
		return e.ProcessingID
	}

	if err := l.sink.AppendEntry(ctx, e); err != nil {
		l.logger.Error("plog.append_failed",
			"processing_id", e.ProcessingID,
			"stage", string(e.Stage),
			"status", string(e.Status),
			"error", err,
		)
		return e.ProcessingID
	}

	if e.Status.Terminal() {
		day := l.now().UTC().Truncate(24 * time.Hour)
		if err := l.sink.BumpDailyMetric(ctx, day, e.Stage, e.Status, e.Duration); err != nil {
			l.logger.Error("plog.metric_failed",
				"processing_id", e.ProcessingID,
				"stage", string(e.Stage),
				"error", err,
			)
		}
	}
	return e.ProcessingID
}

// DetailsJSON renders the free-form detail blob for storage. Encoding
// failures degrade to nil rather than surfacing.
func DetailsJSON(details map[string]any) json.RawMessage {
	if len(details) == 0 {
		return nil
	}
	b, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	return b
}
