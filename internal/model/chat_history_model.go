package model

import (
	"time"

	"github.com/google/uuid"
)

// Persisted shapes for the kv medium. JSON names match the web client's
// local-storage format, so an exported browser state imports cleanly.

type Message struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
	Pending   bool      `json:"isTyping,omitempty"`
}

type Conversation struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Messages     []Message `json:"messages"`
	LastActivity time.Time `json:"timestamp"`
}

// ChatHistoryState is the full snapshot re-serialized on every mutation,
// ordered most-recent-first.
type ChatHistoryState struct {
	Conversations        []Conversation `json:"conversations"`
	ActiveConversationId uuid.UUID      `json:"activeConversationId"`
}
