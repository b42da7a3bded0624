package model

import (
	"time"

	"github.com/google/uuid"
)

type TrashRecord struct {
	Id                     uuid.UUID     `json:"id"`
	Kind                   string        `json:"kind"`
	Content                string        `json:"content"`
	Conversation           *Conversation `json:"conversation,omitempty"`
	OriginalConversationId uuid.UUID     `json:"chatId"`
	DeletedAt              time.Time     `json:"timestamp"`
}

type TrashState struct {
	Records []TrashRecord `json:"records"`
}
