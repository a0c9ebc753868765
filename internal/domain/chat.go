package domain

import (
	"context"
	"time"
)

type Personality string

const (
	PersonalityMotivational Personality = "motivational"
	PersonalityTechnical    Personality = "technical"
	PersonalityFriendly     Personality = "friendly"
)

func (p Personality) Valid() bool {
	switch p {
	case PersonalityMotivational, PersonalityTechnical, PersonalityFriendly:
		return true
	}
	return false
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	ID             string
	UserID         string
	ConversationID string
	Role           string
	Content        string
	CreatedAt      time.Time
}

type ChatRequest struct {
	UserID         string
	Message        string
	ConversationID string
	LessonContext  string
	Personality    Personality
}

type ChatReply struct {
	Message        string
	ConversationID string
	Provider       string
	Model          string
	ResponseTime   time.Duration
}

// ChatModel generates an assistant reply from a system prompt and prior turns.
type ChatModel interface {
	Name() string
	Model() string
	Generate(ctx context.Context, systemPrompt string, history []*ChatMessage, message string) (string, error)
}

type ChatRepository interface {
	SaveMessage(ctx context.Context, m *ChatMessage) error
	// RecentMessages returns up to limit messages, oldest first.
	RecentMessages(ctx context.Context, userID, conversationID string, limit int) ([]*ChatMessage, error)
}
