package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "log-set",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"exercise": "Bench"},
	})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=log-set")
	assert.Contains(t, out, "duration_ms=3")
	assert.Contains(t, out, "fields.exercise=Bench")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "export-log", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
	assert.NotContains(t, buf.String(), "code=")
}

func TestLogUseCaseObserver_RejectionsAreWarnings(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	err := fmt.Errorf("undo: %w", &app.LogError{Code: app.LogErrNothingToUndo, Message: "no sets"})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "undo-set", Err: err})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "code=NOTHING_TO_UNDO")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "deload-check",
		Err:  &app.DeloadError{Code: app.DeloadErrInvalidDropPct, Message: "95"},
	})
	assert.Contains(t, buf.String(), "code=INVALID_DROP_PCT")
}

func TestTrack_ReportsNamedError(t *testing.T) {
	rec := &recordingObserver{}
	run := func() (err error) {
		defer track(context.Background(), rec, "export-log", map[string]any{"records": 0})(&err)
		return errors.New("disk full")
	}
	_ = run()

	ev := rec.last()
	assert.Equal(t, "export-log", ev.Name)
	assert.False(t, ev.Success)
	assert.EqualError(t, ev.Err, "disk full")
}

func TestCombineObservers(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, combineObservers([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers(nil))

	other := &recordingObserver{}
	both := combineObservers([]UseCaseObserver{rec, nil, other})
	both.ObserveUseCase(context.Background(), UseCaseEvent{Name: "log-set", Success: true})
	assert.Equal(t, "log-set", rec.last().Name)
	assert.Equal(t, "log-set", other.last().Name)
}
