package entity

import (
	"time"

	"eva-support-be/internal/constant"

	"github.com/google/uuid"
)

// Conversation is a named, ordered thread of messages. It is never empty: a
// freshly created conversation is seeded with the assistant welcome message.
type Conversation struct {
	Id           uuid.UUID
	Title        string
	Messages     []Message
	LastActivity time.Time
}

// Clone returns a deep copy, safe to hand out across goroutines.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Messages = make([]Message, len(c.Messages))
	copy(cp.Messages, c.Messages)
	return &cp
}

// UserMessages returns the user-authored messages in order.
func (c *Conversation) UserMessages() []Message {
	out := make([]Message, 0, len(c.Messages))
	for _, m := range c.Messages {
		if m.Role == constant.ChatMessageRoleUser {
			out = append(out, m)
		}
	}
	return out
}
