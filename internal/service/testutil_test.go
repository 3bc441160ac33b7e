package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tempconv/internal/history"
	"tempconv/internal/logger"
	"tempconv/internal/models"
	"tempconv/internal/repository"
)

// fakeStateRepo keeps the converter state in memory.
type fakeStateRepo struct {
	state   models.ConverterState
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeStateRepo) Save(_ context.Context, s models.ConverterState) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.state = s
	return nil
}

func (f *fakeStateRepo) Load(_ context.Context) (models.ConverterState, error) {
	if f.loadErr != nil {
		return models.ConverterState{}, f.loadErr
	}
	return f.state, nil
}

// failingKV accepts reads and fails every write.
type failingKV struct{ repository.KeyValue }

var errWrite = errors.New("write failed")

func (failingKV) Save(context.Context, string, string) error { return errWrite }
func (failingKV) Remove(context.Context, string) error       { return errWrite }

type testEnv struct {
	store    *history.Store
	events   *fakeEventRepo
	notifier *NotificationService
	history  *HistoryService
	state    *fakeStateRepo
	conv     *ConverterService
	logs     *bytes.Buffer
}

func newTestEnv(t *testing.T, kv repository.KeyValue) *testEnv {
	t.Helper()
	now := func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }

	store, err := history.Open(context.Background(), kv, history.Options{Now: now})
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	events := &fakeEventRepo{}
	notifier := NewNotificationService(time.Minute)
	logs := &bytes.Buffer{}
	log := logger.NewWithWriter(logger.WarnLevel, logger.JSONFormat, logs)
	hist := NewHistoryService(store, NewEventLogService(events), notifier, log)
	state := &fakeStateRepo{}
	conv := NewConverterService(hist, state, log)
	conv.now = now

	return &testEnv{
		store:    store,
		events:   events,
		notifier: notifier,
		history:  hist,
		state:    state,
		conv:     conv,
		logs:     logs,
	}
}
