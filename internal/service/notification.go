package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// DefaultNotificationTTL is how long a notification stays visible before
// it dismisses itself.
const DefaultNotificationTTL = 3 * time.Second

// NotificationService raises ephemeral user-facing messages. Only one
// notification is visible at a time: showing a new one replaces the
// current one, and each notification dismisses itself after the TTL
// unless it was already replaced or hidden.
type NotificationService struct {
	logger *slog.Logger
	bus    ports.EventBus
	ttl    time.Duration

	mu      sync.Mutex
	current *domain.Notification
	timer   *time.Timer
	closed  bool
}

// NewNotificationService creates the notification service with the
// default time-to-live.
func NewNotificationService(logger *slog.Logger, bus ports.EventBus) *NotificationService {
	return &NotificationService{
		logger: logger,
		bus:    bus,
		ttl:    DefaultNotificationTTL,
	}
}

// SetTTL overrides the auto-dismiss delay. Useful in tests.
func (s *NotificationService) SetTTL(ttl time.Duration) {
	s.mu.Lock()
	s.ttl = ttl
	s.mu.Unlock()
}

// Show raises a notification, replacing the current one if present. The
// returned notification carries the generated ID.
func (s *NotificationService) Show(message string, kind domain.NotificationKind) domain.Notification {
	n := domain.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		ShownAt: time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return n
	}
	s.stopTimerLocked()
	s.current = &n
	s.timer = time.AfterFunc(s.ttl, func() { s.Hide(n.ID) })
	s.mu.Unlock()

	s.logger.Debug("notification shown", "id", n.ID, "kind", kind)
	s.bus.Publish(domain.NewNotificationShownEvent(n))
	return n
}

// Hide dismisses the notification with the given ID. Hiding a
// notification that is no longer current is a no-op, which de-duplicates
// the auto-dismiss timer against explicit hides.
func (s *NotificationService) Hide(id string) {
	s.mu.Lock()
	if s.current == nil || s.current.ID != id {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()
	s.current = nil
	s.mu.Unlock()

	s.bus.Publish(domain.NewNotificationHiddenEvent(id))
}

// Current returns the visible notification, or nil.
func (s *NotificationService) Current() *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	n := *s.current
	return &n
}

// Close stops the pending timer. No further notifications are shown.
func (s *NotificationService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopTimerLocked()
	s.current = nil
	return nil
}

func (s *NotificationService) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Verify that the service can back library confirmations
var _ Notifier = (*NotificationService)(nil)
