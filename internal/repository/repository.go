package repository

import (
	"context"
	"database/sql"
	"time"

	"tempconv/internal/models"
)

// KeyValue is the string store backing the conversion history.
type KeyValue interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// UserRepo stores the accounts that may call /api/v1.
type UserRepo interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type ConverterStateRepo interface {
	Save(ctx context.Context, s models.ConverterState) error
	Load(ctx context.Context) (models.ConverterState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.HistoryEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.HistoryEvent, error)
}

type Repository struct {
	KeyValue       KeyValue
	ConverterState ConverterStateRepo
	EventRepo      EventRepo
	Users          UserRepo
}

// NewRepository wires every repository to db. A non-nil kv replaces the
// SQLite key-value store (e.g. MemoryKV).
func NewRepository(db *sql.DB, kv KeyValue) *Repository {
	if kv == nil {
		kv = NewKVSQLite(db)
	}
	return &Repository{
		KeyValue:       kv,
		ConverterState: NewConverterStateSQLite(db),
		EventRepo:      NewEventSQLite(db),
		Users:          NewUserSQLite(db),
	}
}
