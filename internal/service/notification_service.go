package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/models"
	"github.com/noah-isme/campushub/pkg/jobs"
)

// TaskKindRelayNotification is the queue task that forwards a toast to other instances.
const TaskKindRelayNotification = "notification.relay"

const defaultInboxSize = 20

type taskQueue interface {
	Enqueue(task jobs.Task) error
}

type notificationPublisher interface {
	Publish(ctx context.Context, n models.Notification) error
}

type inbox struct {
	items   []models.Notification
	touched time.Time
}

// NotificationService is the toast channel. Toasts go to live streams of the
// session when any are open and to the session inbox otherwise.
type NotificationService struct {
	mu          sync.Mutex
	inboxes     map[string]*inbox
	subscribers map[string]map[chan models.Notification]struct{}
	limit       int
	queue       taskQueue
	metrics     *MetricsService
	logger      *zap.Logger
	now         func() time.Time
}

// NewNotificationService constructs the channel. queue may be nil when the
// relay is disabled.
func NewNotificationService(limit int, queue taskQueue, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if limit <= 0 {
		limit = defaultInboxSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		inboxes:     make(map[string]*inbox),
		subscribers: make(map[string]map[chan models.Notification]struct{}),
		limit:       limit,
		queue:       queue,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Success emits a success toast.
func (s *NotificationService) Success(ctx context.Context, sessionID, message string) models.Notification {
	return s.emit(ctx, sessionID, models.NotificationSuccess, message)
}

// Error emits an error toast.
func (s *NotificationService) Error(ctx context.Context, sessionID, message string) models.Notification {
	return s.emit(ctx, sessionID, models.NotificationError, message)
}

// Info emits an informational toast.
func (s *NotificationService) Info(ctx context.Context, sessionID, message string) models.Notification {
	return s.emit(ctx, sessionID, models.NotificationInfo, message)
}

func (s *NotificationService) emit(_ context.Context, sessionID string, level models.NotificationLevel, message string) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Level:     level,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	s.metrics.NotificationEmitted(string(level))
	s.Deliver(n)
	if s.queue != nil {
		err := s.queue.Enqueue(jobs.Task{ID: n.ID, Kind: TaskKindRelayNotification, Payload: n})
		if err != nil {
			s.logger.Warn("relay enqueue failed", zap.String("notification_id", n.ID), zap.Error(err))
		}
	}
	return n
}

// Deliver hands a toast to the session's live streams, or stores it in the
// inbox when none is listening. The inbox keeps the newest entries only.
func (s *NotificationService) Deliver(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delivered := false
	for ch := range s.subscribers[n.SessionID] {
		select {
		case ch <- n:
			delivered = true
		default:
		}
	}
	if delivered {
		return
	}
	box := s.inboxes[n.SessionID]
	if box == nil {
		box = &inbox{}
		s.inboxes[n.SessionID] = box
	}
	box.items = append(box.items, n)
	if len(box.items) > s.limit {
		box.items = box.items[len(box.items)-s.limit:]
	}
	box.touched = s.now()
}

// Drain returns and clears the session's pending toasts, oldest first.
func (s *NotificationService) Drain(sessionID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	box := s.inboxes[sessionID]
	delete(s.inboxes, sessionID)
	if box == nil {
		return []models.Notification{}
	}
	return box.items
}

// Sweep drops inboxes untouched for longer than ttl, the same lifetime as
// the session they belong to, and reports how many were removed.
func (s *NotificationService) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, box := range s.inboxes {
		if box.touched.Before(cutoff) {
			delete(s.inboxes, id)
			removed++
		}
	}
	return removed
}

// Subscribe opens a live stream for the session. Toasts queued before the
// call are flushed into it. The returned func closes the stream.
func (s *NotificationService) Subscribe(sessionID string) (<-chan models.Notification, func()) {
	ch := make(chan models.Notification, s.limit)

	s.mu.Lock()
	if s.subscribers[sessionID] == nil {
		s.subscribers[sessionID] = make(map[chan models.Notification]struct{})
	}
	s.subscribers[sessionID][ch] = struct{}{}
	if box := s.inboxes[sessionID]; box != nil {
		for _, n := range box.items {
			ch <- n
		}
	}
	delete(s.inboxes, sessionID)
	s.mu.Unlock()
	s.metrics.StreamOpened(1)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[sessionID], ch)
			if len(s.subscribers[sessionID]) == 0 {
				delete(s.subscribers, sessionID)
			}
			s.mu.Unlock()
			s.metrics.StreamOpened(-1)
		})
	}
	return ch, cancel
}

// RelayHandler is the queue handler that publishes toasts to other instances.
func RelayHandler(publisher notificationPublisher) jobs.Handler {
	return func(ctx context.Context, task jobs.Task) error {
		n, ok := task.Payload.(models.Notification)
		if !ok {
			return fmt.Errorf("task %s: %w", task.ID, errUnexpectedPayload)
		}
		return publisher.Publish(ctx, n)
	}
}

var errUnexpectedPayload = errors.New("unexpected relay payload")
