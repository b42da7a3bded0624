package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type GetAllConversationsResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	LastActivity time.Time `json:"last_activity"`
	Active       bool      `json:"active"`
}

type ConversationMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Pending   bool      `json:"pending,omitempty"`
}

type GetConversationResponse struct {
	Id           uuid.UUID                     `json:"id"`
	Title        string                        `json:"title"`
	Messages     []ConversationMessageResponse `json:"messages"`
	LastActivity time.Time                     `json:"last_activity"`
}

type SendChatRequest struct {
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Content        string     `json:"content" validate:"required"`
}

type SendChatResponse struct {
	ConversationId uuid.UUID                    `json:"conversation_id"`
	Sent           *ConversationMessageResponse `json:"sent"`
	Reply          *ConversationMessageResponse `json:"reply"`
}

type RenameConversationRequest struct {
	Title string `json:"title" validate:"required,max=120"`
}

type SelectConversationRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
}
