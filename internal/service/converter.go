package service

import (
	"context"
	"fmt"
	"time"

	"tempconv/internal/conversion"
	"tempconv/internal/logger"
	"tempconv/internal/models"
	"tempconv/internal/repository"
)

const converterStateID = 1

// ConverterService converts temperatures, recording each conversion in the
// history and remembering the selected scales and last result.
type ConverterService struct {
	history   History
	stateRepo repository.ConverterStateRepo
	log       *logger.Logger
	now       func() time.Time
}

func NewConverterService(h History, stateRepo repository.ConverterStateRepo, log *logger.Logger) *ConverterService {
	if log == nil {
		log = logger.Nop()
	}
	return &ConverterService{history: h, stateRepo: stateRepo, log: log, now: time.Now}
}

// Convert records the conversion and returns its presentation view.
func (s *ConverterService) Convert(ctx context.Context, p ConvertParams) (models.Conversion, error) {
	view, _, err := s.convert(ctx, p)
	return view, err
}

// State returns the persisted selection, or Celsius -> Fahrenheit when none
// has been stored yet.
func (s *ConverterService) State(ctx context.Context) (models.ConverterState, error) {
	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.ConverterState{}, err
	}
	if st.ID == 0 {
		return s.baselineState(), nil
	}
	return st, nil
}

// Swap exchanges source and target. A previous result, rounded to display
// precision, becomes the new input and is converted again.
func (s *ConverterService) Swap(ctx context.Context) (SwapResult, error) {
	st, err := s.State(ctx)
	if err != nil {
		return SwapResult{}, err
	}
	st.SourceScale, st.TargetScale = st.TargetScale, st.SourceScale

	if !st.HasResult {
		st.UpdatedAt = s.now().UTC()
		if err := s.stateRepo.Save(ctx, st); err != nil {
			return SwapResult{}, fmt.Errorf("save converter state: %w", err)
		}
		return SwapResult{State: st}, nil
	}

	view, next, err := s.convert(ctx, ConvertParams{
		Value: conversion.RoundDisplay(st.LastResult),
		From:  st.SourceScale,
		To:    st.TargetScale,
	})
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{State: next, Conversion: &view}, nil
}

func (s *ConverterService) convert(ctx context.Context, p ConvertParams) (models.Conversion, models.ConverterState, error) {
	rec, err := s.history.Add(ctx, p)
	if err != nil {
		return models.Conversion{}, models.ConverterState{}, err
	}

	st := models.ConverterState{
		ID:          converterStateID,
		SourceScale: rec.SourceScale,
		TargetScale: rec.TargetScale,
		LastInput:   rec.InputValue,
		LastResult:  rec.ResultValue,
		HasResult:   true,
		UpdatedAt:   s.now().UTC(),
	}
	// The history record is the committed result; the remembered selection
	// only seeds the next request.
	if err := s.stateRepo.Save(ctx, st); err != nil {
		s.log.Warnw("converter_state_save_failed", "record_id", rec.ID, "err", err)
	}
	return conversion.Describe(rec), st, nil
}

func (s *ConverterService) baselineState() models.ConverterState {
	return models.ConverterState{
		ID:          converterStateID,
		SourceScale: models.Celsius,
		TargetScale: models.Fahrenheit,
		UpdatedAt:   s.now().UTC(),
	}
}
