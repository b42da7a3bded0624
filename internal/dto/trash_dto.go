package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrashRecordResponse struct {
	Id                     uuid.UUID `json:"id"`
	Kind                   string    `json:"kind"`
	Content                string    `json:"content,omitempty"`
	ConversationTitle      string    `json:"conversation_title,omitempty"`
	MessageCount           int       `json:"message_count,omitempty"`
	OriginalConversationId uuid.UUID `json:"original_conversation_id"`
	DeletedAt              time.Time `json:"deleted_at"`
}

type RestoreTrashResponse struct {
	ConversationId uuid.UUID `json:"conversation_id"`
	Reconstituted  bool      `json:"reconstituted"`
}
