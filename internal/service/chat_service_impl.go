package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/llm"
	"github.com/jmallek/compass/internal/repository"
)

const chatSystemPrompt = `You are a concise program-management assistant.
Answer questions about program plans, milestones, risks, and budgets.
Keep answers short and practical.`

type chatService struct {
	messages repository.ChatRepo
	client   llm.Client // nil means canned replies only
}

func NewChatService(messages repository.ChatRepo, client llm.Client) ChatService {
	return &chatService{messages: messages, client: client}
}

// Send stores the user's message, asks the model for a reply, and
// stores that too. With no client, or a failing one, a deterministic
// fallback reply is used; the user's message is kept either way.
func (s *chatService) Send(ctx context.Context, programID *string, text string) (*domain.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	now := time.Now().UTC()
	userMsg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		ProgramID: programID,
		Role:      domain.ChatUser,
		Content:   text,
		CreatedAt: now,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("storing message: %w", err)
	}

	reply := s.replyFor(ctx, text)
	assistantMsg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		ProgramID: programID,
		Role:      domain.ChatAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("storing reply: %w", err)
	}
	return assistantMsg, nil
}

func (s *chatService) replyFor(ctx context.Context, text string) string {
	if s.client != nil {
		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskChat,
			SystemPrompt: chatSystemPrompt,
			UserPrompt:   text,
		})
		if err == nil && resp.Text != "" {
			return resp.Text
		}
	}
	return "I can't reach the model right now. Try `compass roadmap` for the current plan, or `compass risk list` for open risks."
}

func (s *chatService) History(ctx context.Context, programID string) ([]*domain.ChatMessage, error) {
	return s.messages.ListByProgram(ctx, programID)
}

func (s *chatService) Recent(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.messages.ListRecent(ctx, limit)
}
