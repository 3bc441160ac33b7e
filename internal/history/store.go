// Package history keeps the ordered conversion history, newest first, and
// the single in-progress edit session.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"tempconv/internal/conversion"
	"tempconv/internal/models"
)

const (
	DefaultKey           = "tempHistory"
	DefaultTimeFormat    = "02/01/2006, 15.04.05"
	DefaultUpdatedSuffix = " (updated)"
)

var ErrRecordNotFound = errors.New("history record not found")

// Options tunes a Store. Zero fields take the defaults above.
type Options struct {
	Key           string
	TimeFormat    string
	UpdatedSuffix string
	Now           func() time.Time
}

// Store is the conversion history. Every mutation writes the whole sequence
// to Persistence under a single key before it is applied in memory.
type Store struct {
	mu sync.Mutex

	persist       Persistence
	key           string
	timeFormat    string
	updatedSuffix string
	now           func() time.Time
	ids           idSequence

	records   []models.ConversionRecord
	editingID int64
	editing   bool
}

// Open loads the persisted history. A missing key yields an empty history.
func Open(ctx context.Context, p Persistence, opts Options) (*Store, error) {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	if opts.UpdatedSuffix == "" {
		opts.UpdatedSuffix = DefaultUpdatedSuffix
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		persist:       p,
		key:           opts.Key,
		timeFormat:    opts.TimeFormat,
		updatedSuffix: opts.UpdatedSuffix,
		now:           opts.Now,
		ids:           idSequence{now: opts.Now},
	}

	raw, found, err := p.Load(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load history %q: %w", s.key, err)
	}
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.records); err != nil {
			return nil, fmt.Errorf("decode history %q: %w", s.key, err)
		}
	}
	for _, r := range s.records {
		s.ids.observe(r.ID)
	}
	return s, nil
}

// Add converts input and inserts the new record at the head.
func (s *Store) Add(ctx context.Context, input float64, from, to models.Scale) (models.ConversionRecord, error) {
	if err := validate(input, from, to); err != nil {
		return models.ConversionRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.ConversionRecord{
		ID:          s.ids.next(),
		InputValue:  input,
		SourceScale: from,
		TargetScale: to,
		ResultValue: conversion.Convert(input, from, to),
		RecordedAt:  s.stamp(),
	}
	next := make([]models.ConversionRecord, 0, len(s.records)+1)
	next = append(next, rec)
	next = append(next, s.records...)

	if err := s.write(ctx, next); err != nil {
		return models.ConversionRecord{}, err
	}
	s.records = next
	return rec, nil
}

// Edit opens the edit session on id, replacing any other session. It is a
// no-op returning false when id is not in the history.
func (s *Store) Edit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return false
	}
	s.editingID, s.editing = id, true
	return true
}

// EditingID reports the record currently being edited.
func (s *Store) EditingID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID, s.editing
}

// SaveEdit recomputes record id in place, keeping its id and position, and
// closes the edit session.
func (s *Store) SaveEdit(ctx context.Context, id int64, input float64, from, to models.Scale) (models.ConversionRecord, error) {
	if err := validate(input, from, to); err != nil {
		return models.ConversionRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.ConversionRecord{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}

	rec := models.ConversionRecord{
		ID:          id,
		InputValue:  input,
		SourceScale: from,
		TargetScale: to,
		ResultValue: conversion.Convert(input, from, to),
		RecordedAt:  s.stamp() + s.updatedSuffix,
	}
	next := slices.Clone(s.records)
	next[i] = rec

	if err := s.write(ctx, next); err != nil {
		return models.ConversionRecord{}, err
	}
	s.records = next
	s.editing, s.editingID = false, 0
	return rec, nil
}

// CancelEdit closes the edit session, if any.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing, s.editingID = false, 0
}

// Delete removes record id once c confirms. Deleting an absent id changes
// nothing. The bool reports whether the user confirmed.
func (s *Store) Delete(ctx context.Context, id int64, c Confirmer) (bool, error) {
	if !c.Confirm(ConfirmDeleteMessage) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.records), func(r models.ConversionRecord) bool {
		return r.ID == id
	})
	if err := s.write(ctx, next); err != nil {
		return true, err
	}
	s.records = next
	if s.editing && s.editingID == id {
		s.editing, s.editingID = false, 0
	}
	return true, nil
}

// ClearAll empties the history and removes the persisted key once c confirms.
func (s *Store) ClearAll(ctx context.Context, c Confirmer) (bool, error) {
	if !c.Confirm(ConfirmClearMessage) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.Remove(ctx, s.key); err != nil {
		return true, fmt.Errorf("remove history %q: %w", s.key, err)
	}
	s.records = nil
	s.editing, s.editingID = false, 0
	return true, nil
}

// List returns a snapshot of the history, newest first.
func (s *Store) List() []models.ConversionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Rows returns the history with the edited record flagged.
func (s *Store) Rows() []models.HistoryRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]models.HistoryRow, 0, len(s.records))
	for _, r := range s.records {
		rows = append(rows, conversion.Row(r, s.editing && r.ID == s.editingID))
	}
	return rows
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.records, func(r models.ConversionRecord) bool { return r.ID == id })
}

func (s *Store) stamp() string {
	return s.now().Format(s.timeFormat)
}

func (s *Store) write(ctx context.Context, records []models.ConversionRecord) error {
	if records == nil {
		records = []models.ConversionRecord{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.persist.Save(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("save history %q: %w", s.key, err)
	}
	return nil
}

func validate(input float64, from, to models.Scale) error {
	if err := conversion.ValidateInput(input); err != nil {
		return err
	}
	return conversion.ValidateScales(from, to)
}
