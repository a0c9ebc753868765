package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pylearn/internal/config"
	"pylearn/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangchainChatModel adapts a langchaingo model to domain.ChatModel.
type LangchainChatModel struct {
	provider string
	model    string
	llm      llms.Model
}

func NewLangchainChatModel(provider, model string, llm llms.Model) *LangchainChatModel {
	return &LangchainChatModel{provider: provider, model: model, llm: llm}
}

// NewOllamaChatModel connects to an Ollama server.
func NewOllamaChatModel(cfg config.LLMConfig) (*LangchainChatModel, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.OllamaServer),
		ollama.WithModel(cfg.OllamaModel),
		ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return NewLangchainChatModel("ollama", cfg.OllamaModel, llm), nil
}

// NewOpenAIChatModel requires cfg.OpenAIAPIKey.
func NewOpenAIChatModel(cfg config.LLMConfig) (*LangchainChatModel, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}
	llm, err := openai.New(
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.OpenAIModel),
		openai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return NewLangchainChatModel("openai", cfg.OpenAIModel, llm), nil
}

func (m *LangchainChatModel) Name() string  { return m.provider }
func (m *LangchainChatModel) Model() string { return m.model }

func (m *LangchainChatModel) Generate(ctx context.Context, systemPrompt string, history []*domain.ChatMessage, message string) (string, error) {
	msgs := make([]llms.MessageContent, 0, len(history)+2)
	msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	for _, h := range history {
		role := llms.ChatMessageTypeHuman
		if h.Role == domain.ChatRoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, h.Content))
	}
	msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeHuman, message))

	resp, err := m.llm.GenerateContent(ctx, msgs, llms.WithTemperature(0.7), llms.WithMaxTokens(500))
	if err != nil {
		return "", fmt.Errorf("%s generate failed: %w", m.provider, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", m.provider)
	}
	text := strings.TrimSpace(stripThinking(resp.Choices[0].Content))
	if text == "" {
		return "", fmt.Errorf("%s returned an empty reply", m.provider)
	}
	return text, nil
}

// stripThinking removes a <think>...</think> preamble some local models emit.
func stripThinking(s string) string {
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end == -1 || end < start {
		return s
	}
	return s[:start] + s[end+len("</think>"):]
}
