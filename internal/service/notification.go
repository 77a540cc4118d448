package service

import (
	"sync"
	"time"

	"itexe-marketplace-api/internal/model"
)

// DefaultNotificationTTL is how long a notification stays in the queue
// before it expires on its own.
const DefaultNotificationTTL = 4 * time.Second

// Notifier is the sink services report mutation outcomes through.
type Notifier interface {
	Notify(message string, kind model.NotificationKind) model.Notification
}

// NotificationService holds the ordered queue of short-lived user-facing
// messages. Every enqueued notification is removed after the configured TTL
// or by explicit dismissal, whichever comes first.
type NotificationService struct {
	mu     sync.Mutex
	ttl    time.Duration
	queue  []model.Notification
	lastID int64
}

// NewNotificationService creates a notification service. A non-positive ttl
// falls back to DefaultNotificationTTL.
func NewNotificationService(ttl time.Duration) *NotificationService {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &NotificationService{ttl: ttl}
}

// Notify enqueues a message and schedules its auto-expiry.
func (s *NotificationService) Notify(message string, kind model.NotificationKind) model.Notification {
	s.mu.Lock()

	// Millisecond timestamps collide when two outcomes land in the same
	// tick; bump until unique so dismissal targets exactly one message.
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	n := model.Notification{ID: id, Message: message, Kind: kind}
	s.queue = append(s.queue, n)
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() {
		s.Dismiss(id)
	})

	return n
}

// Dismiss removes the notification with the given id. Dismissing an id that
// already expired is a no-op.
func (s *NotificationService) Dismiss(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.queue {
		if n.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Active returns a copy of the live notification queue in enqueue order.
func (s *NotificationService) Active() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Notification, len(s.queue))
	copy(result, s.queue)
	return result
}

// Ensure NotificationService implements Notifier
var _ Notifier = (*NotificationService)(nil)
