package service

import (
	"context"
	"errors"
	"fmt"

	"tempconv/internal/conversion"
	"tempconv/internal/history"
	"tempconv/internal/logger"
	"tempconv/internal/models"
)

// MsgInvalidNumber is pushed whenever a conversion input is rejected.
const MsgInvalidNumber = "Enter a valid number!"

// User-facing notification texts.
const (
	msgEntryUpdated = "Entry updated!"
	msgEntryDeleted = "Entry deleted!"
	msgHistoryClear = "All history cleared!"
)

// HistoryService wraps the history store with audit events and notifications.
type HistoryService struct {
	store    *history.Store
	events   EventLog
	notifier Notifier
	log      *logger.Logger
}

func NewHistoryService(store *history.Store, events EventLog, notifier Notifier, log *logger.Logger) *HistoryService {
	if log == nil {
		log = logger.Nop()
	}
	return &HistoryService{store: store, events: events, notifier: notifier, log: log}
}

// Add records a new conversion at the head of the history.
func (s *HistoryService) Add(ctx context.Context, p ConvertParams) (models.ConversionRecord, error) {
	rec, err := s.store.Add(ctx, p.Value, p.From, p.To)
	if err != nil {
		s.notifyInvalid(err)
		return models.ConversionRecord{}, err
	}
	s.audit(ctx, models.EventAdd, fmt.Sprintf("Added conversion %d", rec.ID), rec)
	return rec, nil
}

// View renders the history, newest first, with the edited row flagged.
func (s *HistoryService) View() models.HistoryView {
	rows := s.store.Rows()
	v := models.HistoryView{Rows: rows, Count: len(rows)}
	if id, ok := s.store.EditingID(); ok {
		v.EditingID = &id
	}
	return v
}

// Edit opens the edit session on id; unknown ids are ignored.
func (s *HistoryService) Edit(id int64) bool {
	return s.store.Edit(id)
}

// SaveEdit applies the edit to record id and closes the session.
func (s *HistoryService) SaveEdit(ctx context.Context, id int64, p ConvertParams) (models.ConversionRecord, error) {
	rec, err := s.store.SaveEdit(ctx, id, p.Value, p.From, p.To)
	if err != nil {
		s.notifyInvalid(err)
		return models.ConversionRecord{}, err
	}
	s.audit(ctx, models.EventUpdate, fmt.Sprintf("Updated conversion %d", rec.ID), rec)
	s.notifier.Push(models.NotificationSuccess, msgEntryUpdated)
	return rec, nil
}

func (s *HistoryService) CancelEdit() {
	s.store.CancelEdit()
}

// Delete removes record id after confirmation.
func (s *HistoryService) Delete(ctx context.Context, id int64, c history.Confirmer) (bool, error) {
	ok, err := s.store.Delete(ctx, id, c)
	if !ok || err != nil {
		return ok, err
	}
	s.audit(ctx, models.EventDelete, fmt.Sprintf("Deleted conversion %d", id), map[string]any{"id": id})
	s.notifier.Push(models.NotificationSuccess, msgEntryDeleted)
	return true, nil
}

// ClearAll empties the history after confirmation.
func (s *HistoryService) ClearAll(ctx context.Context, c history.Confirmer) (bool, error) {
	ok, err := s.store.ClearAll(ctx, c)
	if !ok || err != nil {
		return ok, err
	}
	s.audit(ctx, models.EventClear, "Cleared history", nil)
	s.notifier.Push(models.NotificationSuccess, msgHistoryClear)
	return true, nil
}

func (s *HistoryService) notifyInvalid(err error) {
	if errors.Is(err, conversion.ErrInvalidInput) && !errors.Is(err, models.ErrUnknownScale) {
		s.notifier.Push(models.NotificationError, MsgInvalidNumber)
	}
}

// audit is best-effort: the history change is already persisted.
func (s *HistoryService) audit(ctx context.Context, typ, description string, metadata any) {
	if err := s.events.Record(ctx, typ, description, metadata); err != nil {
		s.log.Warnw("history_audit_failed", "type", typ, "err", err)
	}
}
