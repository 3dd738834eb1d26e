package plog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
)

type fakeSink struct {
	entries    []Entry
	metricDays []time.Time
	appendErr  error
	metricErr  error
}

func (f *fakeSink) AppendEntry(_ context.Context, e Entry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeSink) BumpDailyMetric(_ context.Context, day time.Time, _ constants.Stage, _ constants.PipelineStatus, _ time.Duration) error {
	if f.metricErr != nil {
		return f.metricErr
	}
	f.metricDays = append(f.metricDays, day)
	return nil
}

func TestLog_GeneratesProcessingID(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)

	id := l.Log(context.Background(), Entry{
		Stage:  constants.StageUpload,
		Status: constants.StatusProgress,
	})
	require.NotEmpty(t, id)
	require.Len(t, sink.entries, 1)
	assert.Equal(t, id, sink.entries[0].ProcessingID)
}

func TestLog_FallsBackToContextValues(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)

	ctx := common.WithUserID(common.WithProcessingID(context.Background(), "run-ctx"), "u-ctx")
	id := l.Log(ctx, Entry{
		Stage:  constants.StageUpload,
		Status: constants.StatusProgress,
	})
	assert.Equal(t, "run-ctx", id)
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "u-ctx", sink.entries[0].UserID)
}

func TestLog_ExplicitFieldsWinOverContext(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)

	ctx := common.WithProcessingID(context.Background(), "run-ctx")
	id := l.Log(ctx, Entry{
		ProcessingID: "run-explicit",
		Stage:        constants.StageUpload,
		Status:       constants.StatusProgress,
	})
	assert.Equal(t, "run-explicit", id)
}

func TestLog_KeepsCallerProcessingID(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)

	id := l.Log(context.Background(), Entry{
		ProcessingID: "run-1",
		Stage:        constants.StageOrganize,
		Status:       constants.StatusProgress,
	})
	assert.Equal(t, "run-1", id)
}

func TestLog_TerminalStatusBumpsMetric(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)
	fixed := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.Log(context.Background(), Entry{
		ProcessingID: "run-1",
		Stage:        constants.StagePersist,
		Status:       constants.StatusSuccess,
		Duration:     820 * time.Millisecond,
	})

	require.Len(t, sink.metricDays, 1)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), sink.metricDays[0], "metric keyed on UTC day")
}

func TestLog_NonTerminalSkipsMetric(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)

	l.Log(context.Background(), Entry{
		ProcessingID: "run-1",
		Stage:        constants.StageUpload,
		Status:       constants.StatusStarted,
	})
	l.Log(context.Background(), Entry{
		ProcessingID: "run-1",
		Stage:        constants.StageUpload,
		Status:       constants.StatusProgress,
	})

	assert.Len(t, sink.entries, 2)
	assert.Empty(t, sink.metricDays)
}

func TestLog_SinkFailureIsAbsorbed(t *testing.T) {
	sink := &fakeSink{appendErr: errors.New("connection refused")}
	l := NewLogger(sink, nil)

	assert.NotPanics(t, func() {
		id := l.Log(context.Background(), Entry{
			ProcessingID: "run-1",
			Stage:        constants.StagePersist,
			Status:       constants.StatusSuccess,
		})
		assert.Equal(t, "run-1", id)
	})
	assert.Empty(t, sink.metricDays, "metric skipped when the entry itself failed")
}

func TestLog_MetricFailureIsAbsorbed(t *testing.T) {
	sink := &fakeSink{metricErr: errors.New("deadlock")}
	l := NewLogger(sink, nil)

	assert.NotPanics(t, func() {
		l.Log(context.Background(), Entry{
			ProcessingID: "run-1",
			Stage:        constants.StagePersist,
			Status:       constants.StatusError,
		})
	})
	assert.Len(t, sink.entries, 1, "entry still persisted")
}

func TestLog_InvalidStatusNotPersisted(t *testing.T) {
	sink := &fakeSink{}
	l := NewLogger(sink, nil)

	id := l.Log(context.Background(), Entry{
		ProcessingID: "run-1",
		Stage:        constants.StageUpload,
		Status:       constants.PipelineStatus("RUNNING"),
	})
	assert.Equal(t, "run-1", id)
	assert.Empty(t, sink.entries)
}

func TestLog_NilSink(t *testing.T) {
	l := NewLogger(nil, nil)
	assert.NotPanics(t, func() {
		id := l.Log(context.Background(), Entry{Stage: constants.StageUpload, Status: constants.StatusStarted})
		assert.NotEmpty(t, id)
	})
}

func TestDetailsJSON(t *testing.T) {
	assert.Nil(t, DetailsJSON(nil))
	assert.Nil(t, DetailsJSON(map[string]any{}))

	got := DetailsJSON(map[string]any{"asset_id": "a-1"})
	assert.JSONEq(t, `{"asset_id":"a-1"}`, string(got))

	assert.Nil(t, DetailsJSON(map[string]any{"bad": func() {}}), "unencodable detail degrades to nil")
}
