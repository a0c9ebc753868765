package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/logger"
	"pylearn/internal/util"

	"go.uber.org/zap"
)

const (
	chatHistoryLimit = 10
	FallbackProvider = "fallback"
)

var systemPrompts = map[domain.Personality]string{
	domain.PersonalityMotivational: `You are Sky, an enthusiastic and supportive AI learning companion for Python programming.
Be encouraging and positive, celebrate small wins, explain concepts patiently and step by step, and use emojis to show enthusiasm.
Help the learner think problems through. Be concise but thorough and use markdown for code examples.`,
	domain.PersonalityTechnical: `You are Sky, a knowledgeable and technical AI programming assistant specializing in Python.
Be precise and accurate, focus on best practices and industry standards, and emphasize code quality and efficiency.
Include relevant examples and explain the reasoning behind your suggestions.`,
	domain.PersonalityFriendly: `You are Sky, a friendly and approachable AI friend who helps people learn Python programming.
Use a casual, conversational tone and relatable everyday analogies so programming feels less intimidating.
Encourage questions and make learning feel like a fun adventure.`,
}

var genericFallbacks = []string{
	"I'm having trouble connecting right now, but I'd love to help! Could you try asking your question again in a moment? 🌟",
	"My circuits are a bit busy at the moment! While I reconnect, could you rephrase your question? I'm here to help! 💪",
	"Looks like I'm experiencing some technical difficulties. Don't worry though, I'll be back to help you learn Python in no time! Try again in a few seconds. 🚀",
	"I'm taking a quick coffee break! ☕ Could you ask me again? I'm excited to help you on your Python learning journey!",
}

// topicFallbacks is checked in order; the first keyword found in the message wins.
var topicFallbacks = []struct {
	keyword   string
	responses []string
}{
	{"variable", []string{
		"Variables in Python are like labeled boxes where you store information. For example, `my_name = \"Sky\"` stores the text \"Sky\" in a variable called my_name. 📦",
		"You create a variable by giving it a name and using the equals sign: `age = 25`. You can change it later with `age = 26`. Variables make your code flexible and reusable! 🎯",
	}},
	{"loop", []string{
		"Loops let you repeat code without writing it over and over. `for i in range(5): print(i)` prints the numbers 0 through 4. 🔄",
		"A `while` loop keeps going as long as its condition is true: `while user_input != 'quit':` runs until the user types 'quit'. ⏰",
	}},
	{"function", []string{
		"Functions are reusable recipes! `def greet(name): return f'Hello, {name}!'` lets you call `greet('Student')` anytime you want to say hello. 🎉",
		"Functions organize your code into logical chunks. `def calculate_total(price, tax): return price * (1 + tax)` is a tool you can use anywhere in your program. 🛠️",
	}},
}

type ChatService interface {
	Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error)
}

type chatServiceImpl struct {
	models []domain.ChatModel
	repo   domain.ChatRepository
}

// NewChatService tries models in order. With no models every reply is a canned fallback.
func NewChatService(repo domain.ChatRepository, models ...domain.ChatModel) ChatService {
	return &chatServiceImpl{models: models, repo: repo}
}

func systemPrompt(p domain.Personality, lessonContext string) string {
	prompt, ok := systemPrompts[p]
	if !ok {
		prompt = systemPrompts[domain.PersonalityFriendly]
	}
	if lessonContext != "" {
		prompt += "\n\nCurrent lesson context: " + lessonContext +
			"\n\nPlease tailor your responses to help with this specific lesson topic."
	}
	return prompt
}

func fallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, t := range topicFallbacks {
		if strings.Contains(lower, t.keyword) {
			return t.responses[rand.IntN(len(t.responses))]
		}
	}
	return genericFallbacks[rand.IntN(len(genericFallbacks))]
}

func retryableChatError(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (s *chatServiceImpl) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.NewInvalidInputError("message is required")
	}
	if req.ConversationID == "" {
		req.ConversationID = util.NewULID()
	}
	if req.Personality == "" {
		req.Personality = domain.PersonalityFriendly
	}

	history, err := s.repo.RecentMessages(ctx, req.UserID, req.ConversationID, chatHistoryLimit)
	if err != nil {
		logger.Get().Warn("Failed to load chat history",
			zap.String("user_id", req.UserID), zap.String("conversation_id", req.ConversationID), zap.Error(err))
		history = nil
	}

	start := time.Now()
	prompt := systemPrompt(req.Personality, req.LessonContext)
	reply := &domain.ChatReply{ConversationID: req.ConversationID}

	for _, m := range s.models {
		var text string
		err := util.Retry(ctx, retryableChatError, func(ctx context.Context) error {
			var genErr error
			text, genErr = m.Generate(ctx, prompt, history, message)
			return genErr
		})
		if err != nil {
			logger.Get().Warn("Chat provider failed",
				zap.String("provider", m.Name()), zap.String("model", m.Model()), zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		reply.Message, reply.Provider, reply.Model = text, m.Name(), m.Model()
		break
	}
	if reply.Message == "" {
		reply.Message, reply.Provider = fallbackReply(message), FallbackProvider
	}
	reply.ResponseTime = time.Since(start)

	s.save(ctx, req, domain.ChatRoleUser, message)
	s.save(ctx, req, domain.ChatRoleAssistant, reply.Message)

	logger.Get().Info("Chat reply generated",
		zap.String("user_id", req.UserID),
		zap.String("provider", reply.Provider),
		zap.Duration("response_time", reply.ResponseTime))
	return reply, nil
}

func (s *chatServiceImpl) save(ctx context.Context, req domain.ChatRequest, role, content string) {
	msg := &domain.ChatMessage{
		ID:             util.NewULID(),
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		logger.Get().Warn("Failed to save chat message",
			zap.String("user_id", req.UserID), zap.String("role", role), zap.Error(err))
	}
}
