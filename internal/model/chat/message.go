package chat

import "time"

// Message type values. A turn is authored either by the visitor or by the
// assistant; no other authors exist.
const (
	TypeUser      = "user"
	TypeAssistant = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
