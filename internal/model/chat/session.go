package chat

import "time"

// Session captures a transient anonymous conversation.
type Session struct {
	ID        string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}
