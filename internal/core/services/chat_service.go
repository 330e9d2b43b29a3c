package services

import (
	"context"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/adapters/api"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

// ChatService keeps the assistant transcript and exchanges turns with the
// backend. The user's message is appended optimistically before the request;
// if the request fails the message stays in the transcript and the failure is
// reported so the view can render it inline.
type ChatService struct {
	gateway    ports.Gateway
	transcript []domain.Message
}

// NewChatService creates a chat service with an empty transcript.
func NewChatService(gateway ports.Gateway) *ChatService {
	return &ChatService{gateway: gateway}
}

// Send appends the user's turn, asks the backend, and appends the reply.
// The returned message is the assistant's turn on success.
func (s *ChatService) Send(ctx context.Context, text string) (domain.Message, error) {
	history := s.History()
	s.transcript = append(s.transcript, domain.NewMessage(domain.RoleUser, text))

	reply, err := s.gateway.Chat(ctx, text, history)
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.NewMessage(domain.RoleAssistant, reply)
	s.transcript = append(s.transcript, msg)
	return msg, nil
}

// History returns a copy of the transcript in insertion order.
func (s *ChatService) History() []domain.Message {
	out := make([]domain.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// LastReply returns the most recent assistant turn, if any.
func (s *ChatService) LastReply() (domain.Message, bool) {
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Role == domain.RoleAssistant {
			return s.transcript[i], true
		}
	}
	return domain.Message{}, false
}

// Clear wipes the transcript.
func (s *ChatService) Clear() {
	s.transcript = nil
}

// IsAuthFailure reports whether a Send error calls for a re-login rather
// than a retry.
func IsAuthFailure(err error) bool {
	return api.IsUnauthorized(err)
}
