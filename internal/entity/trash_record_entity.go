package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrashRecord retains deleted content so destructive actions stay reversible
// until the user purges them.
type TrashRecord struct {
	Id      uuid.UUID
	Kind    string // constant.TrashKindConversation | constant.TrashKindMessage
	Content string

	// Snapshot of the whole conversation, set only for conversation records.
	Conversation *Conversation

	// Weak reference: the conversation may no longer exist.
	OriginalConversationId uuid.UUID

	DeletedAt time.Time
}
