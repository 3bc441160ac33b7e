package service

import (
	"context"
	"time"

	"tempconv/internal/history"
	"tempconv/internal/logger"
	"tempconv/internal/models"
	"tempconv/internal/repository"
)

// Authorization guards /api/v1 with bearer tokens.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (models.User, error)
	GenerateToken(ctx context.Context, username, password string) (models.AccessToken, error)
	ParseToken(accessToken string) (int, error)
	Users(ctx context.Context) ([]models.User, error)
}

// Converter converts temperatures and remembers the last selection.
type Converter interface {
	Convert(ctx context.Context, p ConvertParams) (models.Conversion, error)
	Swap(ctx context.Context) (SwapResult, error)
	State(ctx context.Context) (models.ConverterState, error)
}

// History exposes the conversion history and its edit session.
type History interface {
	Add(ctx context.Context, p ConvertParams) (models.ConversionRecord, error)
	View() models.HistoryView
	Edit(id int64) bool
	SaveEdit(ctx context.Context, id int64, p ConvertParams) (models.ConversionRecord, error)
	CancelEdit()
	Delete(ctx context.Context, id int64, c history.Confirmer) (bool, error)
	ClearAll(ctx context.Context, c history.Confirmer) (bool, error)
}

// Notifier holds transient user-facing messages.
// Run prunes expired messages until ctx is canceled.
type Notifier interface {
	Push(kind, message string) models.Notification
	Active() []models.Notification
	Run(ctx context.Context, tick time.Duration)
}

// EventLog records and lists history audit events.
type EventLog interface {
	Record(ctx context.Context, typ, description string, metadata any) error
	List(ctx context.Context, f LogFilter) ([]models.HistoryEvent, error)
}

// Service aggregates all sub-services.
type Service struct {
	Converter
	History
	Notifier
	EventLog
	Authorization
}

// Options carries the settings services need from configuration.
type Options struct {
	SigningKey      string
	TokenTTL        time.Duration
	NotificationTTL time.Duration
	Log             *logger.Logger
}

// NewService wires the repositories and the history store into services.
func NewService(repos *repository.Repository, store *history.Store, opts Options) *Service {
	notifier := NewNotificationService(opts.NotificationTTL)
	events := NewEventLogService(repos.EventRepo)
	hist := NewHistoryService(store, events, notifier, opts.Log)

	return &Service{
		Converter:     NewConverterService(hist, repos.ConverterState, opts.Log),
		History:       hist,
		Notifier:      notifier,
		EventLog:      events,
		Authorization: NewAuthService(repos.Users, opts.SigningKey, opts.TokenTTL),
	}
}
