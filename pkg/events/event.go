package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_MESSAGE_SETTLED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete implementation backing every chat event.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event types published on the chat topic.
const (
	TypeRevealFragment       = "CHAT_REVEAL_FRAGMENT"
	TypeMessageSettled       = "CHAT_MESSAGE_SETTLED"
	TypeConversationDeleted  = "CHAT_CONVERSATION_DELETED"
	TypeConversationRestored = "CHAT_CONVERSATION_RESTORED"
)

func NewRevealFragment(conversationId, messageId uuid.UUID, fragment string) Event {
	return BaseEvent{
		Type: TypeRevealFragment,
		Data: map[string]interface{}{
			"conversation_id": conversationId.String(),
			"message_id":      messageId.String(),
			"fragment":        fragment,
		},
		OccurredAt: time.Now(),
	}
}

func NewMessageSettled(conversationId, messageId uuid.UUID, content string) Event {
	return BaseEvent{
		Type: TypeMessageSettled,
		Data: map[string]interface{}{
			"conversation_id": conversationId.String(),
			"message_id":      messageId.String(),
			"content":         content,
		},
		OccurredAt: time.Now(),
	}
}

func NewConversationDeleted(conversationId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeConversationDeleted,
		Data: map[string]interface{}{
			"conversation_id": conversationId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewConversationRestored(conversationId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeConversationRestored,
		Data: map[string]interface{}{
			"conversation_id": conversationId.String(),
		},
		OccurredAt: time.Now(),
	}
}
