package main

import (
	"context"
	"database/sql"
	"fmt"

	"tempconv/internal/config"
	"tempconv/internal/history"
	"tempconv/internal/logger"
	"tempconv/internal/repository"
	"tempconv/internal/repository/db"
	"tempconv/internal/service"
)

// app holds everything a command needs.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *sql.DB
	services *service.Service
}

// newApp loads configuration, opens the database and wires the services.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("init sqlite: %w", err)
	}

	var kv repository.KeyValue
	if cfg.Storage.Driver == config.StorageMemory {
		log.Infow("history kept in memory only", "driver", cfg.Storage.Driver)
		kv = repository.NewMemoryKV()
	}
	repos := repository.NewRepository(sqlDB, kv)

	store, err := history.Open(ctx, repos.KeyValue, history.Options{
		Key:           cfg.History.Key,
		TimeFormat:    cfg.History.TimeFormat,
		UpdatedSuffix: cfg.History.UpdatedSuffix,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("load history: %w", err)
	}

	services := service.NewService(repos, store, service.Options{
		SigningKey:      cfg.Auth.SigningKey,
		TokenTTL:        cfg.Auth.TokenTTL,
		NotificationTTL: cfg.Notifications.TTL,
		Log:             log,
	})
	return &app{cfg: cfg, log: log, db: sqlDB, services: services}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorw("failed to close sqlite", "err", err)
	}
}

// withApp runs fn with a wired app and closes it afterwards.
func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
