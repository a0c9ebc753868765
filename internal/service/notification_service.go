package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/logger"
	"pylearn/internal/util"

	"go.uber.org/zap"
)

const (
	DefaultNotificationLimit = 20
	MaxNotificationLimit     = 100
)

var ErrRealtimeUnavailable = errors.New("realtime notifications are not configured")

type NotificationService interface {
	// Notify persists n and then publishes it. Publishing is best effort.
	Notify(ctx context.Context, n *domain.Notification) error
	// Store persists n without publishing; used inside transactions.
	Store(ctx context.Context, n *domain.Notification) error
	// Publish pushes an already persisted notification to live subscribers.
	Publish(ctx context.Context, n *domain.Notification)
	List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	Subscribe(ctx context.Context, userID string) (<-chan *domain.Notification, error)
}

type notificationServiceImpl struct {
	repo      domain.NotificationRepository
	publisher domain.NotificationPublisher
}

// NewNotificationService accepts a nil publisher; realtime delivery is then disabled.
func NewNotificationService(repo domain.NotificationRepository, publisher domain.NotificationPublisher) NotificationService {
	return &notificationServiceImpl{repo: repo, publisher: publisher}
}

func newNotification(userID, kind, title, message string, metadata map[string]interface{}) *domain.Notification {
	return &domain.Notification{
		ID:        util.NewULID(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
}

func (s *notificationServiceImpl) Notify(ctx context.Context, n *domain.Notification) error {
	if err := s.Store(ctx, n); err != nil {
		return err
	}
	s.Publish(ctx, n)
	return nil
}

func (s *notificationServiceImpl) Store(ctx context.Context, n *domain.Notification) error {
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return domain.NewInternalError("failed to save notification", err)
	}
	return nil
}

func (s *notificationServiceImpl) Publish(ctx context.Context, n *domain.Notification) {
	if s.publisher == nil || n == nil {
		return
	}
	if err := s.publisher.Publish(ctx, n); err != nil {
		logger.Get().Warn("Failed to publish notification",
			zap.String("user_id", n.UserID),
			zap.String("notification_id", n.ID),
			zap.Error(err))
	}
}

func (s *notificationServiceImpl) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	limit = min(limit, MaxNotificationLimit)
	list, err := s.repo.ListNotifications(ctx, userID, unreadOnly, limit)
	if err != nil {
		return nil, domain.NewInternalError("failed to list notifications", err)
	}
	return list, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID string) error {
	ok, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return domain.NewInternalError("failed to mark notification read", err)
	}
	if !ok {
		return domain.NewError(domain.CodeNotificationMissing, "notification not found", nil).
			WithContext("notification_id", notificationID)
	}
	return nil
}

func (s *notificationServiceImpl) Subscribe(ctx context.Context, userID string) (<-chan *domain.Notification, error) {
	if s.publisher == nil {
		return nil, ErrRealtimeUnavailable
	}
	ch, err := s.publisher.Subscribe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to notifications: %w", err)
	}
	return ch, nil
}
