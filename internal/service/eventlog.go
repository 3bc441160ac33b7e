package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tempconv/internal/models"
	"tempconv/internal/repository"

	"github.com/google/uuid"
)

type EventLogService struct {
	eventRepo repository.EventRepo
	now       func() time.Time
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo, now: time.Now}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errNegativeLimit    = errors.New("invalid limit: must be >= 0")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates them.
func normalizeAndValidateFilter(f LogFilter) (LogFilter, error) {
	f.From = normalizeToUTC(f.From)
	f.To = normalizeToUTC(f.To)
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return LogFilter{}, errInvalidTimeRange
	}
	if f.Limit < 0 {
		return LogFilter{}, errNegativeLimit
	}
	f.Type = normalizeEventType(f.Type)
	return f, nil
}

// Record appends an audit event stamped now.
func (s *EventLogService) Record(ctx context.Context, typ, description string, metadata any) error {
	return s.eventRepo.Append(ctx, models.HistoryEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  s.now().UTC(),
		Type:        normalizeEventType(typ),
		Description: description,
		Metadata:    metadata,
	})
}

// List returns matching events in chronological order.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.HistoryEvent, error) {
	f, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.List(ctx, f.From, f.To, f.Type)
	if err != nil {
		return nil, err
	}
	if f.Limit > 0 && len(events) > f.Limit {
		events = events[len(events)-f.Limit:]
	}
	return events, nil
}
