package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes session state to the service layer. It is injected rather
// than held as package state so tests and future persistence swaps stay
// cheap.
type Store interface {
	CreateSession() Session
	GetSession(sessionID string) (Session, bool)
	AppendMessage(sessionID string, message Message) (Message, bool)
	Messages(sessionID string) ([]Message, bool)
}

// MemoryStore implements Store with process-lifetime maps, suitable for a
// single-binary deployment. One writer lock serializes all mutation, which
// also serializes appends within any one session.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	messages map[string][]Message
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		messages: make(map[string][]Message),
	}
}

// CreateSession provisions a fresh anonymous session. It never fails.
func (s *MemoryStore) CreateSession() Session {
	session := Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]Message, 0, 16)
	s.mu.Unlock()

	return session
}

// GetSession looks up a session by identifier.
func (s *MemoryStore) GetSession(sessionID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

// AppendMessage adds a message to the session history, assigning its ID and
// timestamp, and returns the stored copy. Histories are append-only and
// ordered by creation.
func (s *MemoryStore) AppendMessage(sessionID string, message Message) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return Message{}, false
	}

	message.ID = uuid.NewString()
	message.SessionID = sessionID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.messages[sessionID] = append(s.messages[sessionID], message)
	return message, true
}

// Messages returns a snapshot copy of the stored transcript.
func (s *MemoryStore) Messages(sessionID string) ([]Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, false
	}

	copied := make([]Message, len(messages))
	copy(copied, messages)
	return copied, true
}
