package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tempconv/internal/models"
)

type ConverterStateSQLite struct {
	db *sql.DB
}

func NewConverterStateSQLite(db *sql.DB) *ConverterStateSQLite {
	return &ConverterStateSQLite{db: db}
}

var _ ConverterStateRepo = (*ConverterStateSQLite)(nil)

const (
	converterStateRowID = 1

	upsertConverterStateSQL = `
		INSERT INTO converter_state (id, from_scale, to_scale, last_input, last_result, has_result, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			from_scale=excluded.from_scale,
			to_scale=excluded.to_scale,
			last_input=excluded.last_input,
			last_result=excluded.last_result,
			has_result=excluded.has_result,
			updated_at=excluded.updated_at
	`

	selectConverterStateSQL = `
		SELECT id, from_scale, to_scale, last_input, last_result, has_result, updated_at
		FROM converter_state WHERE id=?
	`
)

// Save upserts the single converter_state row (id always 1).
func (r *ConverterStateSQLite) Save(ctx context.Context, st models.ConverterState) error {
	ts := st.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertConverterStateSQL,
		converterStateRowID,
		string(st.SourceScale),
		string(st.TargetScale),
		st.LastInput,
		st.LastResult,
		st.HasResult,
		ts,
	)
	if err != nil {
		return fmt.Errorf("save converter state: %w", err)
	}
	return nil
}

// Load fetches the converter_state row; a zero value means nothing is stored yet.
func (r *ConverterStateSQLite) Load(ctx context.Context) (models.ConverterState, error) {
	var (
		st            models.ConverterState
		from, to      string
		input, result sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, selectConverterStateSQL, converterStateRowID).Scan(
		&st.ID,
		&from,
		&to,
		&input,
		&result,
		&st.HasResult,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConverterState{}, nil
		}
		return models.ConverterState{}, fmt.Errorf("load converter state: %w", err)
	}

	st.SourceScale = models.Scale(from)
	st.TargetScale = models.Scale(to)
	st.LastInput = input.Float64
	st.LastResult = result.Float64
	st.UpdatedAt = st.UpdatedAt.UTC()
	return st, nil
}
