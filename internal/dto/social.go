package dto

import (
	"time"

	"pylearn/internal/domain"

	"github.com/samber/lo"
)

// FriendRequest sends a friend request to another learner.
// @Description Request body for sending a friend request
type FriendRequest struct {
	FriendID string `json:"friend_id"`
}

type FriendshipResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	AddresseeID string    `json:"addressee_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewFriendshipResponse(f *domain.Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
}

type FriendResponse struct {
	Friendship FriendshipResponse `json:"friendship"`
	Friend     ProfileResponse    `json:"friend"`
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func NewNotificationResponses(list []*domain.Notification) []NotificationResponse {
	return lo.Map(list, func(n *domain.Notification, _ int) NotificationResponse {
		return NewNotificationResponse(n)
	})
}

// ChatRequest is a message to the AI tutor.
// @Description Request body for the AI chat
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
	LessonContext  string `json:"lesson_context,omitempty"`
	Personality    string `json:"personality,omitempty"`
}

type ChatResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	Provider       string `json:"provider"`
	Model          string `json:"model,omitempty"`
	ResponseTimeMS int64  `json:"response_time"`
}

func NewChatResponse(r *domain.ChatReply) ChatResponse {
	return ChatResponse{
		Message:        r.Message,
		ConversationID: r.ConversationID,
		Provider:       r.Provider,
		Model:          r.Model,
		ResponseTimeMS: r.ResponseTime.Milliseconds(),
	}
}
