package services

import (
	"context"
	"strings"
	"time"

	"github.com/rakhaanw/mindhaven/internal/models"
	mongorepo "github.com/rakhaanw/mindhaven/internal/repositories/mongo"
	"github.com/rakhaanw/mindhaven/internal/utils"
)

type SendMessageResult struct {
	UserMessage string             `json:"userMessage"`
	AIMessage   string             `json:"aiMessage"`
	UpdatedChat *models.ChatThread `json:"updatedChat"`
}

type ChatService interface {
	GetOrCreateThread(ctx context.Context, userID string) (*models.ChatThread, error)
	SendMessage(ctx context.Context, userID, text string) (*SendMessageResult, error)
}

type chatService struct {
	chats mongorepo.ChatRepository
	ai    AIService
}

func NewChatService(chats mongorepo.ChatRepository, ai AIService) ChatService {
	return &chatService{chats: chats, ai: ai}
}

func (s *chatService) GetOrCreateThread(ctx context.Context, userID string) (*models.ChatThread, error) {
	const op = "ChatService.GetOrCreateThread"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	t, err := s.chats.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load chat thread", err)
	}
	return t, nil
}

func (s *chatService) SendMessage(ctx context.Context, userID, text string) (*SendMessageResult, error) {
	const op = "ChatService.SendMessage"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if strings.TrimSpace(text) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "please add text", nil)
	}

	thread, err := s.chats.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load chat thread", err)
	}

	// Reply generation sees the history as stored before this message; the
	// reply itself never fails outward (fallback text on model trouble).
	reply := s.ai.GenerateCompanionReply(ctx, text, thread.Messages)

	now := time.Now().UTC()
	pair := []models.ChatMessage{
		{Role: models.RoleChatUser, Text: text, SentAt: now},
		{Role: models.RoleChatModel, Text: reply, SentAt: now},
	}

	// The pair is appended in a single store-level push, so concurrent sends
	// for the same user interleave whole pairs instead of overwriting each
	// other, and the user message always precedes its reply.
	updated, err := s.chats.AppendMessages(ctx, userID, pair)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to append messages", err)
	}

	return &SendMessageResult{
		UserMessage: text,
		AIMessage:   reply,
		UpdatedChat: updated,
	}, nil
}
