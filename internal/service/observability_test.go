package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "build-schedule",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"warnings": 2},
	})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "use_case=build-schedule")
	assert.Contains(t, buf.String(), "warnings=2")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset-settings", Err: errors.New("locked")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=locked")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
