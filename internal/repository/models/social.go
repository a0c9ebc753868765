package models

import "time"

type Friendship struct {
	ID          string    `db:"id"`
	RequesterID string    `db:"requester_id"`
	AddresseeID string    `db:"addressee_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Metadata  JSONMap   `db:"metadata"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type ChatMessage struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	ConversationID string    `db:"conversation_id"`
	Role           string    `db:"role"`
	Content        string    `db:"content"`
	CreatedAt      time.Time `db:"created_at"`
}
