package service

import (
	"context"
	"sync"
	"time"

	"tempconv/internal/models"

	"github.com/google/uuid"
)

const defaultNotificationTTL = 3 * time.Second

// NotificationService keeps transient messages until they expire.
type NotificationService struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []models.Notification
}

// NewNotificationService returns a notifier; ttl <= 0 uses three seconds.
func NewNotificationService(ttl time.Duration) *NotificationService {
	if ttl <= 0 {
		ttl = defaultNotificationTTL
	}
	return &NotificationService{ttl: ttl, now: time.Now}
}

// Push adds a message that expires after the configured ttl.
func (s *NotificationService) Push(kind, message string) models.Notification {
	now := s.now().UTC()
	n := models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.items = append(s.items, n)
	s.mu.Unlock()
	return n
}

// Active returns unexpired messages, oldest first.
func (s *NotificationService) Active() []models.Notification {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, 0, len(s.items))
	for _, n := range s.items {
		if n.ExpiresAt.After(now) {
			out = append(out, n)
		}
	}
	return out
}

// Run ticks at the given interval until ctx is canceled, dropping expired
// messages.
func (s *NotificationService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = time.Second
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.prune(now)
		}
	}
}

// prune drops messages expired at now and reports how many were removed.
func (s *NotificationService) prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, n := range s.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	removed := len(s.items) - len(kept)
	clear(s.items[len(kept):])
	s.items = kept
	return removed
}
