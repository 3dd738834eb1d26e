package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/gen/ent"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/construtiva/proposal-pipeline/gen/ent/processinglog"
	"github.com/construtiva/proposal-pipeline/internal/entity"
	"github.com/construtiva/proposal-pipeline/internal/plog"
	"github.com/construtiva/proposal-pipeline/internal/utils"
)

// ProcessingLogRepository persists audit rows and the day-keyed aggregates.
// It implements plog.Sink.
type ProcessingLogRepository interface {
	plog.Sink
	ListByProcessingID(ctx context.Context, processingID string) ([]*entity.ProcessingLog, error)
}

type processingLogRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessingLogRepository(entc *ent.Client, log *slog.Logger) ProcessingLogRepository {
	return &processingLogRepo{ent: entc, log: log}
}

func (r *processingLogRepo) AppendEntry(ctx context.Context, e plog.Entry) error {
	builder := r.ent.ProcessingLog.Create().
		SetProcessingID(e.ProcessingID).
		SetStage(string(e.Stage)).
		SetStatus(string(e.Status)).
		SetDurationMs(e.Duration.Milliseconds()).
		SetUserID(e.UserID).
		SetFileName(e.FileName)
	if e.ErrorMessage != "" {
		builder = builder.SetErrorMessage(e.ErrorMessage)
	}
	if d := plog.DetailsJSON(e.Details); d != nil {
		builder = builder.SetDetails(d)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("processing_log append failed",
			"processing_id", e.ProcessingID, "stage", string(e.Stage), "err", err)
		return err
	}
	r.log.Debug("processing_log appended",
		"id", row.ID, "processing_id", e.ProcessingID,
		"stage", string(e.Stage), "status", string(e.Status))
	return nil
}

// BumpDailyMetric maintains the (date, stage) aggregate row. Counters go
// through an upsert-with-increment; the rolling average is recomputed from a
// prior read, so concurrent writers race on it with last-writer-wins
// semantics. That approximation is accepted.
func (r *processingLogRepo) BumpDailyMetric(ctx context.Context, day time.Time, stage constants.Stage, status constants.PipelineStatus, duration time.Duration) error {
	durMS := duration.Milliseconds()
	var succ, errs int
	switch status {
	case constants.StatusSuccess:
		succ = 1
	case constants.StatusError, constants.StatusTimeout:
		errs = 1
	}

	newAvg := durMS
	prev, err := r.ent.PipelineMetric.Query().
		Where(
			pipelinemetric.MetricDate(day),
			pipelinemetric.Stage(string(stage)),
		).
		Only(ctx)
	if err == nil && prev.Attempts > 0 {
		newAvg = (prev.AvgDurationMs*int64(prev.Attempts) + durMS) / int64(prev.Attempts+1)
	} else if err != nil && !ent.IsNotFound(err) {
		r.log.Error("pipeline_metric read failed", "stage", string(stage), "err", err)
		return err
	}

	err = r.ent.PipelineMetric.Create().
		SetMetricDate(day).
		SetStage(string(stage)).
		SetAttempts(1).
		SetSuccesses(succ).
		SetErrors(errs).
		SetAvgDurationMs(durMS).
		OnConflictColumns(pipelinemetric.FieldMetricDate, pipelinemetric.FieldStage).
		Update(func(u *ent.PipelineMetricUpsert) {
			u.AddAttempts(1)
			u.AddSuccesses(succ)
			u.AddErrors(errs)
			u.SetAvgDurationMs(newAvg)
		}).
		Exec(ctx)
	if err != nil {
		r.log.Error("pipeline_metric upsert failed", "stage", string(stage), "err", err)
		return err
	}
	return nil
}

func (r *processingLogRepo) ListByProcessingID(ctx context.Context, processingID string) ([]*entity.ProcessingLog, error) {
	rows, err := r.ent.ProcessingLog.Query().
		Where(processinglog.ProcessingID(processingID)).
		Order(processinglog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("processing_log list failed", "processing_id", processingID, "err", err)
		return nil, err
	}
	out := make([]*entity.ProcessingLog, len(rows))
	for i, row := range rows {
		out[i] = utils.ToProcessingLog(row)
	}
	return out, nil
}
