package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmadziyad0807/portfolio-sub002/internal/model/chat"
	"github.com/ahmadziyad0807/portfolio-sub002/internal/service/reply"
)

var (
	ErrEmptyMessage    = errors.New("message must not be empty")
	ErrSessionNotFound = errors.New("session not found")
)

// Service encapsulates conversation state management. All mutation happens
// synchronously inside the calling request, so there is no partial-failure
// window to recover from.
type Service struct {
	store   chat.Store
	replier reply.Generator
}

// NewService wires the service to an injected store and reply generator.
func NewService(store chat.Store, replier reply.Generator) *Service {
	return &Service{store: store, replier: replier}
}

// CreateSession provisions an anonymous session with an empty history.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	return s.store.CreateSession(), nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	session, ok := s.store.GetSession(sessionID)
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Transcript returns the stored messages for the provided session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Message, error) {
	messages, ok := s.store.Messages(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return messages, nil
}

// SendMessage records the visitor turn, synthesizes the assistant turn, and
// returns it. Validation happens before any mutation so a rejected request
// leaves the session untouched.
func (s *Service) SendMessage(_ context.Context, sessionID, text string) (chat.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	if _, ok := s.store.AppendMessage(sessionID, chat.Message{
		Type:    chat.TypeUser,
		Content: trimmed,
	}); !ok {
		return chat.Message{}, ErrSessionNotFound
	}

	assistant, ok := s.store.AppendMessage(sessionID, chat.Message{
		Type:    chat.TypeAssistant,
		Content: s.replier.Reply(trimmed),
	})
	if !ok {
		// The store never deletes sessions, so the session vanishing between
		// the two appends cannot happen in practice.
		return chat.Message{}, ErrSessionNotFound
	}
	return assistant, nil
}
