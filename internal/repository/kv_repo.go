package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type KVSQLite struct {
	db *sql.DB
}

func NewKVSQLite(db *sql.DB) *KVSQLite { return &KVSQLite{db: db} }

var _ KeyValue = (*KVSQLite)(nil)

const (
	selectKVSQL = `SELECT value FROM kv_store WHERE key = ?`
	upsertKVSQL = `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
	`
	deleteKVSQL = `DELETE FROM kv_store WHERE key = ?`
)

// Load returns the value stored under key; found is false if there is none.
func (r *KVSQLite) Load(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, selectKVSQL, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select key %q: %w", key, err)
	}
	return v, true, nil
}

// Save inserts or replaces the value under key.
func (r *KVSQLite) Save(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertKVSQL, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (r *KVSQLite) Remove(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteKVSQL, key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
