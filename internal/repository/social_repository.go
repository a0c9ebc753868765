package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/repository/models"
	"pylearn/internal/util"

	"github.com/jmoiron/sqlx"
)

const friendshipColumns = `id, requester_id, addressee_id, status, created_at`

type sqlxFriendRepository struct {
	db *sqlx.DB
}

func NewSQLXFriendRepository(db *sqlx.DB) domain.FriendRepository {
	return &sqlxFriendRepository{db: db}
}

func toDomainFriendship(m *models.Friendship) *domain.Friendship {
	return &domain.Friendship{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		AddresseeID: m.AddresseeID,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *sqlxFriendRepository) CreateFriendship(ctx context.Context, f *domain.Friendship) error {
	query := `INSERT INTO friendships (` + friendshipColumns + `)
	          VALUES (:id, :requester_id, :addressee_id, :status, :created_at)`

	if f.ID == "" {
		f.ID = util.NewULID()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	m := &models.Friendship{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create friendship: %w", err)
	}
	return nil
}

func (r *sqlxFriendRepository) get(ctx context.Context, query string, args ...interface{}) (*domain.Friendship, error) {
	var m models.Friendship
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return toDomainFriendship(&m), nil
}

func (r *sqlxFriendRepository) GetFriendshipByID(ctx context.Context, id string) (*domain.Friendship, error) {
	return r.get(ctx, `SELECT `+friendshipColumns+` FROM friendships WHERE id = $1`, id)
}

// FindBetween looks the pair up in either direction.
func (r *sqlxFriendRepository) FindBetween(ctx context.Context, userA, userB string) (*domain.Friendship, error) {
	return r.get(ctx, `SELECT `+friendshipColumns+` FROM friendships
	                   WHERE (requester_id = $1 AND addressee_id = $2) OR (requester_id = $2 AND addressee_id = $1)
	                   LIMIT 1`, userA, userB)
}

func (r *sqlxFriendRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `UPDATE friendships SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update friendship status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("friendship %s not found for update: %w", id, sql.ErrNoRows)
	}
	return nil
}

func (r *sqlxFriendRepository) DeleteFriendship(ctx context.Context, id string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM friendships WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}
	return nil
}

func (r *sqlxFriendRepository) ListFriendships(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	var rows []models.Friendship
	query := `SELECT ` + friendshipColumns + ` FROM friendships
	          WHERE requester_id = $1 OR addressee_id = $1
	          ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	out := make([]*domain.Friendship, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainFriendship(&rows[i]))
	}
	return out, nil
}

func (r *sqlxFriendRepository) CountAccepted(ctx context.Context, userID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM friendships WHERE status = 'accepted' AND (requester_id = $1 OR addressee_id = $1)`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &n, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count friends: %w", err)
	}
	return n, nil
}

const notificationColumns = `id, user_id, type, title, message, metadata, is_read, created_at`

type sqlxNotificationRepository struct {
	db *sqlx.DB
}

func NewSQLXNotificationRepository(db *sqlx.DB) domain.NotificationRepository {
	return &sqlxNotificationRepository{db: db}
}

func (r *sqlxNotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `)
	          VALUES (:id, :user_id, :type, :title, :message, :metadata, :is_read, :created_at)`

	if n.ID == "" {
		n.ID = util.NewULID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	m := &models.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  models.JSONMap(n.Metadata),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *sqlxNotificationRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	var rows []models.Notification
	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE user_id = $1 AND (NOT $2 OR NOT is_read)
	          ORDER BY created_at DESC
	          LIMIT $3`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, unreadOnly, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	out := make([]*domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      row.Type,
			Title:     row.Title,
			Message:   row.Message,
			Metadata:  map[string]interface{}(row.Metadata),
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead reports false when the notification does not belong to userID.
func (r *sqlxNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, notificationID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

type sqlxChatRepository struct {
	db *sqlx.DB
}

func NewSQLXChatRepository(db *sqlx.DB) domain.ChatRepository {
	return &sqlxChatRepository{db: db}
}

func (r *sqlxChatRepository) SaveMessage(ctx context.Context, msg *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, user_id, conversation_id, role, content, created_at)
	          VALUES (:id, :user_id, :conversation_id, :role, :content, :created_at)`

	if msg.ID == "" {
		msg.ID = util.NewULID()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	m := &models.ChatMessage{
		ID:             msg.ID,
		UserID:         msg.UserID,
		ConversationID: msg.ConversationID,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

func (r *sqlxChatRepository) RecentMessages(ctx context.Context, userID, conversationID string, limit int) ([]*domain.ChatMessage, error) {
	var rows []models.ChatMessage
	query := `SELECT id, user_id, conversation_id, role, content, created_at FROM (
	              SELECT id, user_id, conversation_id, role, content, created_at
	              FROM chat_messages
	              WHERE user_id = $1 AND conversation_id = $2
	              ORDER BY created_at DESC, id DESC
	              LIMIT $3
	          ) recent ORDER BY created_at ASC, id ASC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, conversationID, limit); err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	out := make([]*domain.ChatMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.ChatMessage{
			ID:             row.ID,
			UserID:         row.UserID,
			ConversationID: row.ConversationID,
			Role:           row.Role,
			Content:        row.Content,
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}
